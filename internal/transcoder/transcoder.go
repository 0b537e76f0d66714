// Package transcoder finds the ffmpeg executable on the host.
package transcoder

import (
	"os/exec"
	"path/filepath"

	"fetcharr/internal/domain/consts"
)

// Locator searches PATH for a transcoder binary.
type Locator struct {
	// Name of the binary, ffmpeg when empty.
	Name string
}

// Locate returns the resolved path of the binary, or "" when it is absent.
//
// The lookup is repeated on every call.
func (l Locator) Locate() string {
	name := l.Name
	if name == "" {
		name = consts.FFmpegBinary
	}
	p, err := exec.LookPath(name)
	if err != nil {
		return ""
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

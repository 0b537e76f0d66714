// Package workspace manages the per-request download directories under a single root.
package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"fetcharr/internal/domain/consts"
	"fetcharr/internal/domain/errconsts"
	"fetcharr/internal/domain/errs"

	"github.com/google/uuid"
)

// Manager creates, lists and removes workspaces under Root.
//
// Workspaces are not locked. CleanupAll removes directories that a running
// download may still be writing to.
type Manager struct {
	Root string
}

// File is a file produced inside a workspace.
type File struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// New returns a Manager rooted at root, creating the directory if needed.
func New(root string) (*Manager, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errors.New("download root is empty")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve download root %q: %w", root, err)
	}
	if err := os.MkdirAll(abs, consts.PermsDownloadDir); err != nil {
		return nil, fmt.Errorf("failed to create download root %q: %w", abs, err)
	}
	return &Manager{Root: abs}, nil
}

// Create makes a new workspace with a random identifier.
func (m *Manager) Create() (string, error) {
	id := uuid.NewString()
	if err := os.MkdirAll(m.Dir(id), consts.PermsWorkspaceDir); err != nil {
		return "", fmt.Errorf(errconsts.WorkspaceFailure, err)
	}
	return id, nil
}

// Dir returns the directory for a workspace id.
func (m *Manager) Dir(id string) string {
	return filepath.Join(m.Root, id)
}

// CleanupAll removes every directory directly under the root.
//
// Plain files in the root are left alone. Returns how many directories were removed.
func (m *Manager) CleanupAll() (int, error) {
	entries, err := os.ReadDir(m.Root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read download root %q: %w", m.Root, err)
	}

	removed := 0
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if err := os.RemoveAll(filepath.Join(m.Root, e.Name())); err != nil {
			return removed, fmt.Errorf("failed to remove workspace %q: %w", e.Name(), err)
		}
		removed++
	}
	return removed, nil
}

// Resolve returns the path of a produced file.
//
// Ids and filenames must be single path elements. Anything else, and any
// path that is missing or a directory, is reported as not found.
func (m *Manager) Resolve(id, filename string) (string, error) {
	if !validElement(id) || !validElement(filename) {
		return "", errs.New(errs.NotFound, errconsts.FileNotFound)
	}

	p := filepath.Join(m.Dir(id), filename)
	info, err := os.Stat(p)
	if err != nil || info.IsDir() {
		return "", errs.New(errs.NotFound, errconsts.FileNotFound)
	}
	return p, nil
}

// Files lists every regular file in a workspace, relative to it, sorted by name.
func (m *Manager) Files(id string) ([]File, error) {
	if !validElement(id) {
		return nil, errs.New(errs.NotFound, "workspace not found")
	}
	dir := m.Dir(id)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, errs.New(errs.NotFound, "workspace not found")
	}

	var files []File
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, File{Name: filepath.ToSlash(rel), Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list workspace %q: %w", id, err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// validElement reports whether s is usable as a single path element.
func validElement(s string) bool {
	if s == "" || s == "." || s == ".." {
		return false
	}
	return !strings.ContainsAny(s, `/\`) && !strings.ContainsRune(s, 0)
}

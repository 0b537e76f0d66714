package consts

import "time"

// Server timeouts.
//
// No write timeout is set: a download request holds its connection for the whole extraction.
const (
	ServerReadHeaderTimeout = 10 * time.Second
	ServerIdleTimeout       = 120 * time.Second
	ServerShutdownTimeout   = 30 * time.Second
)

// Database timeouts.
const (
	DatabaseBusyTimeoutMs = 5000
)

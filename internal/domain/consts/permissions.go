package consts

// Recommended permissions for the files and directories fetcharr might create.
const (
	// Download root and workspaces - world readable
	PermsDownloadDir  = 0o755
	PermsWorkspaceDir = 0o755

	// Other files
	PermsLogFile = 0o644
	PermsDBFile  = 0o644
	PermsDBDir   = 0o750
)

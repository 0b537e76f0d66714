package consts

// Database table names.
const (
	DBDownloads = "downloads"
)

// Downloads table columns.
const (
	QDLID          = "id"
	QDLWorkspaceID = "workspace_id"
	QDLURL         = "url"
	QDLKind        = "kind"
	QDLResolution  = "resolution"
	QDLPlaylist    = "playlist"
	QDLStatus      = "status"
	QDLFilename    = "filename"
	QDLError       = "error_message"
	QDLCreatedAt   = "created_at"
)

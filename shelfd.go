package shelfd

var (
	VERSION = "dev"
	COMMIT  = "unknown"
)

package good

// Logger interface for operational logging, warnings, and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

const (
	logMsgUserInserted        = "user inserted"
	logMsgUserLoaded          = "user loaded"
	logMsgExecutedSQL         = "executed sql"
	logMsgBuildQueryFailed    = "failed to build user query"
	logMsgDBQueryFailed       = "database query execution failed"
	logMsgDBExecFailed        = "database execution failed during user insert"
	logMsgUnexpectedRowsCount = "unexpected rows affected count"
	logAttrError              = "error"
	logAttrQuery              = "query"
	logAttrUserID             = "user_id"
	logAttrRowsAffected       = "rows_affected"
)

package good

const (
	logMsgFileWritten   = "value written to file"
	logMsgWriteSkipped  = "file exists and overwrite is false, write skipped"
	logMsgWriteFailed   = "writing value to file failed"
	logMsgCloseFailed   = "closing file failed"
	logAttrFile         = "file"
	logAttrOverwrite    = "overwrite"
	logAttrError        = "error"
	logAttrBytesWritten = "bytes_written"
)

// Logger interface for operational logging, warnings, and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

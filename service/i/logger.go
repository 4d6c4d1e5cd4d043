package i

// Logger is the logging surface services and controllers depend on.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}

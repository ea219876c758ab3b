package i

// Logger is the logging surface shared by all components.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}

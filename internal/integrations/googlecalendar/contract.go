package googlecalendar

// Metrics метрики вызовов внешних API
type Metrics interface {
	ObserveUpstream(upstream, operation string, seconds float64, err error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package pmsapi

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder приемник метрик внешних запросов
type MetricsRecorder interface {
	ObserveExternalRequest(target, operation string, status int, duration time.Duration)
}

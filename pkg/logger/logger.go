package logger

import (
	"log"
	"os"
)

// Logger es la interfaz de logging de la aplicación
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// SimpleLogger es una implementación simple de Logger
type SimpleLogger struct {
	infoLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	warnLogger  *log.Logger
}

// NewLogger crea una nueva instancia de Logger
func NewLogger() Logger {
	return &SimpleLogger{
		infoLogger:  log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile),
		errorLogger: log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile),
		debugLogger: log.New(os.Stdout, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile),
		warnLogger:  log.New(os.Stdout, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile),
	}
}

// Info registra un mensaje informativo
func (l *SimpleLogger) Info(msg string, keysAndValues ...interface{}) {
	l.infoLogger.Printf(msg+" %v", keysAndValues...)
}

// Error registra un mensaje de error
func (l *SimpleLogger) Error(msg string, keysAndValues ...interface{}) {
	l.errorLogger.Printf(msg+" %v", keysAndValues...)
}

// Debug registra un mensaje de depuración
func (l *SimpleLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.debugLogger.Printf(msg+" %v", keysAndValues...)
}

// Warn registra un mensaje de advertencia
func (l *SimpleLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.warnLogger.Printf(msg+" %v", keysAndValues...)
}

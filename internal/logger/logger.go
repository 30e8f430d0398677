package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Fields are structured key/value pairs attached to a log entry
type Fields = map[string]interface{}

var log = logrus.New()

// Init initializes the logger with the specified level
func Init(level string) error {
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)

	return nil
}

// SetOutput redirects log output, e.g. away from a TUI's screen
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// Debug logs a debug message
func Debug(msg string, fields ...Fields) {
	entry(fields).Debug(msg)
}

// Info logs an info message
func Info(msg string, fields ...Fields) {
	entry(fields).Info(msg)
}

// Warn logs a warning message
func Warn(msg string, fields ...Fields) {
	entry(fields).Warn(msg)
}

// Error logs an error message
func Error(msg string, err error, fields ...Fields) {
	entry(fields).WithError(err).Error(msg)
}

func entry(fields []Fields) *logrus.Entry {
	if len(fields) > 0 && fields[0] != nil {
		return log.WithFields(fields[0])
	}
	return logrus.NewEntry(log)
}

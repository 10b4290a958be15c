package utils

import (
	"os"

	"github.com/sirupsen/logrus"
)

var (
	InfoLogger  *logrus.Logger
	ErrorLogger *logrus.Logger
)

func InitLogger() {
	InfoLogger = logrus.New()
	ErrorLogger = logrus.New()

	// InfoLogger ke stdout
	InfoLogger.SetOutput(os.Stdout)
	InfoLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	// ErrorLogger ke stderr
	ErrorLogger.SetOutput(os.Stderr)
	ErrorLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	InfoLogger.SetLevel(logrus.InfoLevel)
	ErrorLogger.SetLevel(logrus.ErrorLevel)
}

// SetLogLevel applies a textual level ("debug", "warn", ...) to InfoLogger.
// Unknown levels are ignored and reported on ErrorLogger.
func SetLogLevel(level string) {
	if level == "" || InfoLogger == nil {
		return
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		if ErrorLogger != nil {
			ErrorLogger.Printf("Invalid LOG_LEVEL %q: %v", level, err)
		}
		return
	}
	InfoLogger.SetLevel(lvl)
}

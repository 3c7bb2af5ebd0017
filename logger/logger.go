// file: logger/logger.go

package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared application logger. Call Init before using it.
var Log *logrus.Logger

// Init configures the global logger. JSON output is used outside of
// development so logs can be ingested by aggregators.
func Init() {
	Log = logrus.New()
	Log.SetOutput(os.Stdout)

	if os.Getenv("APP_ENV") == "development" {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		Log.SetLevel(logrus.DebugLevel)
	} else {
		Log.SetFormatter(&logrus.JSONFormatter{})
		Log.SetLevel(logrus.InfoLevel)
	}
}

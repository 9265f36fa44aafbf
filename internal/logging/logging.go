package logging

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging builds the JSON logger used by every component. level is a
// logrus level name such as "debug" or "info".
func SetupLogging(level string) (*logrus.Logger, error) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   os.Stdout,
		Hooks: make(logrus.LevelHooks),
		Level: parsed,
	}

	return &logger, nil
}

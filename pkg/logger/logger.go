package logger

import (
	"fmt"
	"path"
	"runtime"

	log "github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02 15:04:05"

func SetupLogger(level string) {
	configure(log.StandardLogger(), level)
}

// New returns a standalone logger configured the same way as the global one.
func New(level string) *log.Logger {
	l := log.New()
	configure(l, level)
	return l
}

func configure(l *log.Logger, level string) {
	loggerLevel, err := log.ParseLevel(level)
	l.SetReportCaller(true)

	l.SetFormatter(&log.JSONFormatter{
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			return "", fmt.Sprintf("%s:%d", path.Base(frame.File), frame.Line)
		},
		TimestampFormat: timestampFormat,
	})

	if err != nil {
		l.Infof("Level setup default INFO, err: %v", err)
		l.SetLevel(log.InfoLevel)
	} else {
		l.SetLevel(loggerLevel)
	}
}

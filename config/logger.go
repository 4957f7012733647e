package config

import (
	"github.com/MonkyMars/gecho"
)

var logger gecho.Logger

// InitializeLogger builds the process-wide logger at the configured
// level. Request-scoped loggers are constructed separately by the
// router.
func InitializeLogger() *gecho.Logger {
	level := gecho.ParseLogLevel(GetLogLevel())
	logger = *gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(true), gecho.WithLogLevel(level)))
	return &logger
}

func GetLogger() *gecho.Logger {
	return &logger
}

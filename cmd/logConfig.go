package cmd

import "github.com/elliopitas/MNER/logging"

// logConfig builds the logger configuration from the log flags.
func logConfig() *logging.Config {
	return &logging.Config{
		Level:      cfgLogLevel,
		Format:     cfgLogFormat,
		FilePath:   cfgLogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     28,
	}
}

package config

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger creates a timestamped logger writing to w. The level comes from
// ASTEROIDS_LOG_LEVEL (debug, info, warn, error) and defaults to info.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(GetEnv("ASTEROIDS_LOG_LEVEL", "info"))
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          prefix,
		Level:           level,
	})
}

package dump

import (
	"io"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFileConfig configures a rotating dump log.
type LogFileConfig struct {
	Filename   string `toml:"filename"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
	Compress   bool   `toml:"compress"`
}

// OpenLogFile returns a writer that appends to cfg.Filename and rotates it
// once it exceeds MaxSizeMB (100 MB if zero). Missing directories are
// created on first write.
func OpenLogFile(cfg LogFileConfig) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
}

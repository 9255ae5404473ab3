package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileOptions configures a rotating file logger.
type FileOptions struct {
	Path       string
	Level      string // debug, info, warn, error
	Prefix     string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// FileLogger writes JSON lines to a rotating log file. The TUI owns the
// terminal, so everything it logs goes here instead of stderr.
type FileLogger struct {
	*zapLogger
	file *lumberjack.Logger
}

// DefaultLogPath returns <user cache dir>/wheel/wheel.log, falling back to
// the temp dir when no cache dir is available.
func DefaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "wheel", "wheel.log")
}

// NewFileLogger opens (creating directories as needed) a rotating log file.
func NewFileLogger(opts FileOptions) (*FileLogger, error) {
	if opts.Path == "" {
		opts.Path = DefaultLogPath()
	}
	if opts.MaxSizeMB == 0 {
		opts.MaxSizeMB = 5
	}
	if opts.MaxBackups == 0 {
		opts.MaxBackups = 3
	}
	if opts.MaxAgeDays == 0 {
		opts.MaxAgeDays = 14
	}

	level := zapcore.InfoLevel
	if opts.Level != "" {
		parsed, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return nil, err
	}

	file := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(file), level)

	return &FileLogger{
		zapLogger: newZapLogger(core, opts.Prefix),
		file:      file,
	}, nil
}

// Close flushes buffered entries and closes the underlying file.
func (l *FileLogger) Close() error {
	_ = l.s.Sync()
	return l.file.Close()
}

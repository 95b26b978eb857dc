// Package logflags configures the driver's zap logger from command
// line flags.
package logflags

import (
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Flags struct {
	Level      string
	Path       string
	MaxSize    int
	MaxBackups int
}

func (f *Flags) SetFlags(fs *pflag.FlagSet) {
	fs.StringVar(&f.Level, "log.level", "warn", "log level (debug, info, warn, error)")
	fs.StringVar(&f.Path, "log.path", "", "log file path (stderr if unset)")
	fs.IntVar(&f.MaxSize, "log.maxsize", 50, "maximum log file size in MB before rotation")
	fs.IntVar(&f.MaxBackups, "log.maxbackups", 3, "maximum number of rotated log files to keep")
}

// Open builds the logger.  Logging to a file goes through lumberjack
// rotation with JSON encoding; stderr gets the console encoding.
func (f *Flags) Open() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(f.Level)
	if err != nil {
		return nil, err
	}
	var enc zapcore.Encoder
	var ws zapcore.WriteSyncer
	if f.Path == "" {
		cfg := zap.NewDevelopmentEncoderConfig()
		enc = zapcore.NewConsoleEncoder(cfg)
		ws = zapcore.Lock(os.Stderr)
	} else {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(cfg)
		ws = zapcore.AddSync(&lumberjack.Logger{
			Filename:   f.Path,
			MaxSize:    f.MaxSize,
			MaxBackups: f.MaxBackups,
		})
	}
	return zap.New(zapcore.NewCore(enc, ws, level)), nil
}

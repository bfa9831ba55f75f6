package logsvc

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/trezcool/cgpa/core"
)

// ConsoleLogger writes to a logrus logger only.
type ConsoleLogger struct {
	std *logrus.Logger
}

var _ core.Logger = (*ConsoleLogger)(nil)

// NewStdLogger returns a logrus logger with full timestamps at the given level ("info" when invalid).
func NewStdLogger(out io.Writer, level string) *logrus.Logger {
	if out == nil {
		out = os.Stdout
	}
	std := logrus.New()
	std.SetOutput(out)
	std.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05.000",
		FullTimestamp:   true,
	})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	std.SetLevel(lvl)
	return std
}

func NewConsoleLogger(std *logrus.Logger) *ConsoleLogger {
	return &ConsoleLogger{std: std}
}

func (l ConsoleLogger) Debug(msg string, args ...interface{}) {
	l.std.WithFields(fields(args)).Debug(msg)
}

func (l ConsoleLogger) Info(msg string, args ...interface{}) {
	l.std.WithFields(fields(args)).Info(msg)
}

func (l ConsoleLogger) Warn(msg string, args ...interface{}) {
	l.std.WithFields(fields(args)).Warn(msg)
}

func (l ConsoleLogger) Error(msg string, args ...interface{}) {
	l.std.WithFields(fields(args)).Error(msg)
}

func (l ConsoleLogger) Fatal(msg string, args ...interface{}) {
	l.std.WithFields(fields(args)).Fatal(msg)
}

// New picks the Rollbar logger when a token is configured outside debug mode,
// the console logger otherwise.
func New(std *logrus.Logger, conf *core.Config) core.Logger {
	if conf.RollbarToken != "" && !conf.Debug && !conf.TestMode {
		l := NewRollbarLogger(std, conf)
		l.Enable(true)
		return l
	}
	return NewConsoleLogger(std)
}

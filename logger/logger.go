package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Ctx is the set of fields attached to a log line.
type Ctx map[string]any

var log = newLogger(os.Stderr)

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Setup configures level and format ("text" or "json"). Unknown levels fall
// back to info.
func Setup(level string, format string) {
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	if format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// SetOutput redirects log output, mostly for tests.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// Writer returns a writer that logs each line at info level. It feeds gin's
// request logger.
func Writer() *io.PipeWriter {
	return log.Writer()
}

func entry(ctx []Ctx) *logrus.Entry {
	e := logrus.NewEntry(log)
	for _, c := range ctx {
		e = e.WithFields(logrus.Fields(c))
	}
	return e
}

func Debug(msg string, ctx ...Ctx) { entry(ctx).Debug(msg) }
func Info(msg string, ctx ...Ctx)  { entry(ctx).Info(msg) }
func Warn(msg string, ctx ...Ctx)  { entry(ctx).Warn(msg) }
func Error(msg string, ctx ...Ctx) { entry(ctx).Error(msg) }
func Fatal(msg string, ctx ...Ctx) { entry(ctx).Fatal(msg) }

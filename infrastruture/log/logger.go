// Package logger provides prefixed, colored loggers backed by logrus.
package logger

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

var ErrEmptyPrefix = errors.New("logger prefix must not be empty")

// ANSI colors for the level tag.
const (
	errorColor   = "\033[31m"
	infoColor    = "\033[32m"
	warningColor = "\033[33m"
	colorReset   = "\033[0m"
)

// Logger writes lines shaped as "[PREFIX] [LEVEL] message".
type Logger struct {
	entry *logrus.Logger
}

// New creates a logger writing to out. color is an ANSI escape applied to
// the prefix.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if strings.TrimSpace(prefix) == "" {
		return nil, ErrEmptyPrefix
	}
	if out == nil {
		out = io.Discard
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&prefixFormatter{prefix: prefix, color: color})
	return &Logger{entry: l}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.entry.Info(msg)
}

// Warning logs a warning message.
func (l *Logger) Warning(msg string) {
	l.entry.Warn(msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.entry.Error(msg)
}

type prefixFormatter struct {
	prefix string
	color  string
}

// Format implements logrus.Formatter.
func (f *prefixFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	if f.color != "" {
		fmt.Fprintf(&b, "%s[%s]%s ", f.color, f.prefix, colorReset)
	} else {
		fmt.Fprintf(&b, "[%s] ", f.prefix)
	}

	fmt.Fprintf(&b, "%s[%s]%s %s %s\n", levelColor(e.Level), strings.ToUpper(e.Level.String()), colorReset,
		e.Time.Format("2006-01-02 15:04:05"), e.Message)
	return b.Bytes(), nil
}

func levelColor(lvl logrus.Level) string {
	switch lvl {
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return errorColor
	case logrus.WarnLevel:
		return warningColor
	}
	return infoColor
}

package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

type implLogger struct {
	logger *log.Logger
	out    io.Writer
	level  string
	format string
}

// New creates a text Logger writing to stdout.
func New(level string) Logger {
	return NewWithFormat(level, "text", os.Stdout)
}

// NewWithFormat creates a Logger writing to w in the given format ("text" or "json").
func NewWithFormat(level, format string, w io.Writer) Logger {
	return &implLogger{
		logger: log.New(w, "", log.LstdFlags),
		out:    w,
		level:  strings.ToLower(level),
		format: strings.ToLower(format),
	}
}

var levels = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

func (l *implLogger) shouldLog(level string) bool {
	currentLevel, ok := levels[l.level]
	if !ok {
		currentLevel = 1 // default to info
	}

	targetLevel, ok := levels[level]
	if !ok {
		return true
	}

	return targetLevel >= currentLevel
}

func (l *implLogger) write(ctx context.Context, level, msg string, args []interface{}) {
	if !l.shouldLog(level) {
		return
	}

	text := fmt.Sprintf(msg, args...)
	reqID := RequestID(ctx)

	if l.format == "json" {
		entry := map[string]string{
			"time":  time.Now().UTC().Format(time.RFC3339),
			"level": level,
			"msg":   text,
		}
		if reqID != "" {
			entry["request_id"] = reqID
		}
		b, err := json.Marshal(entry)
		if err != nil {
			return
		}
		fmt.Fprintln(l.out, string(b))
		return
	}

	prefix := "[" + strings.ToUpper(level) + "] "
	if reqID != "" {
		prefix += "[" + reqID + "] "
	}
	l.logger.Print(prefix + text)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "debug", msg, args)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "info", msg, args)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "warn", msg, args)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "error", msg, args)
}

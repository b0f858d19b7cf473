package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// jsonMarshal is a variable for dependency injection in tests.
var jsonMarshal = json.Marshal

// LogEntry represents a single JSON log entry.
type LogEntry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// Options configures the JSONLogger.
type Options struct {
	// OutputPath is the log file path. When empty, entries go
	// to stdout.
	OutputPath string

	// Level is the minimum level emitted.
	Level LogLevel

	// Fields are default fields attached to every entry.
	Fields map[string]any
}

// JSONLogger implements Logger with JSON Lines output.
type JSONLogger struct {
	mu     sync.Mutex
	output io.Writer
	level  LogLevel
	fields map[string]any
	closed bool
}

// NewJSONLogger creates a new JSON logger. If OutputPath is
// empty, entries are written to stdout.
func NewJSONLogger(opts Options) (*JSONLogger, error) {
	logger := &JSONLogger{
		level:  opts.Level,
		fields: opts.Fields,
	}
	if logger.fields == nil {
		logger.fields = make(map[string]any)
	}

	if opts.OutputPath != "" {
		dir := filepath.Dir(opts.OutputPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf(
				"failed to create log directory: %w", err,
			)
		}
		file, err := os.OpenFile(
			opts.OutputPath,
			os.O_CREATE|os.O_WRONLY|os.O_APPEND,
			0644,
		)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to open log file: %w", err,
			)
		}
		logger.output = file
	} else {
		logger.output = os.Stdout
	}

	return logger, nil
}

func (j *JSONLogger) log(
	level LogLevel, msg string, fields ...Field,
) {
	if level < j.level {
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now().Format(time.RFC3339Nano),
		Level:     level.String(),
		Message:   msg,
	}

	if len(j.fields) > 0 || len(fields) > 0 {
		entry.Fields = make(
			map[string]any, len(j.fields)+len(fields),
		)
		for k, v := range j.fields {
			entry.Fields[k] = v
		}
		for _, f := range fields {
			entry.Fields[f.Key] = f.Value
		}
	}

	data, err := jsonMarshal(entry)
	if err != nil {
		fmt.Fprintf(
			os.Stderr,
			"logging: marshal entry: %v\n", err,
		)
		return
	}

	j.output.Write(append(data, '\n'))
}

// Info logs an informational message.
func (j *JSONLogger) Info(msg string, fields ...Field) {
	j.log(LevelInfo, msg, fields...)
}

// Warn logs a warning message.
func (j *JSONLogger) Warn(msg string, fields ...Field) {
	j.log(LevelWarn, msg, fields...)
}

// Error logs an error message.
func (j *JSONLogger) Error(msg string, fields ...Field) {
	j.log(LevelError, msg, fields...)
}

// Debug logs a debug-level message.
func (j *JSONLogger) Debug(msg string, fields ...Field) {
	j.log(LevelDebug, msg, fields...)
}

// WithFields returns a new Logger sharing the same output with
// additional default fields.
func (j *JSONLogger) WithFields(fields ...Field) Logger {
	newFields := make(map[string]any, len(j.fields)+len(fields))
	for k, v := range j.fields {
		newFields[k] = v
	}
	for _, f := range fields {
		newFields[f.Key] = f.Value
	}
	return &JSONLogger{
		output: j.output,
		level:  j.level,
		fields: newFields,
	}
}

// Close closes the underlying file if one was opened. Entries
// logged after Close are dropped.
func (j *JSONLogger) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed {
		return nil
	}
	j.closed = true

	if closer, ok := j.output.(io.Closer); ok {
		if j.output != os.Stdout {
			return closer.Close()
		}
	}
	return nil
}

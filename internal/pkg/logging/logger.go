package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger is created once and reconfigured in place by InitLogger, so goroutines holding
// it never observe a replacement.
var Logger = newLogger()

var (
	outputMu sync.Mutex
	logFile  *os.File
)

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return logger
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json, text, simple, or compact
	File   string `yaml:"file"`   // empty means stdout
}

// CompactFormatter implements a custom formatter for compact logging
type CompactFormatter struct {
	ShowTime bool
}

// Format renders a single log entry
func (f *CompactFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	if f.ShowTime {
		b.WriteString(fmt.Sprintf("[%s]", entry.Time.Format("15:04:05")))
	}

	level := strings.ToUpper(entry.Level.String())
	b.WriteString(fmt.Sprintf("[%s]", level))

	// Component and endpoint go in brackets ahead of the message
	component, hasComponent := entry.Data["component"]
	endpoint, hasEndpoint := entry.Data["endpoint"]

	if hasComponent {
		b.WriteString(fmt.Sprintf("[%s]", component))
	}
	if hasEndpoint {
		b.WriteString(fmt.Sprintf("[%s]", endpoint))
	}

	b.WriteString(" ")
	b.WriteString(entry.Message)

	remainingFields := make(map[string]interface{})
	for k, v := range entry.Data {
		if k != "component" && k != "endpoint" {
			remainingFields[k] = v
		}
	}

	if len(remainingFields) > 0 {
		b.WriteString(" (")

		// Sort fields for consistent output
		keys := make([]string, 0, len(remainingFields))
		for k := range remainingFields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for i, key := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(fmt.Sprintf("%s=%v", key, remainingFields[key]))
		}
		b.WriteString(")")
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

// InitLogger applies the provided configuration to the global logger
func InitLogger(config LogConfig) {
	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
		Logger.Warnf("Invalid log level '%s', defaulting to 'info'", config.Level)
	}
	Logger.SetLevel(level)

	switch strings.ToLower(config.Format) {
	case "json":
		Logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	case "simple":
		Logger.SetFormatter(&CompactFormatter{ShowTime: false})
	case "compact":
		Logger.SetFormatter(&CompactFormatter{ShowTime: true})
	case "text", "":
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	default:
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
		Logger.Warnf("Invalid log format '%s', defaulting to 'text'", config.Format)
	}

	w, f := openOutput(config.File)
	setOutput(w, f)

	Logger.Debugf("Logger initialized with level: %s, format: %s", level.String(), config.Format)
}

// openOutput returns the log destination and, when it opened one, the file to close later.
// Falls back to stdout if the file cannot be opened.
func openOutput(path string) (io.Writer, *os.File) {
	if path == "" {
		return os.Stdout, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file %s, logging to stdout: %v\n", path, err)
		return os.Stdout, nil
	}
	return f, f
}

// setOutput switches the destination and closes the log file opened by a previous InitLogger.
func setOutput(w io.Writer, owned *os.File) {
	outputMu.Lock()
	defer outputMu.Unlock()

	Logger.SetOutput(w)
	if logFile != nil && logFile != owned {
		logFile.Close()
	}
	logFile = owned
}

// Close closes the configured log file, if any, and sends further output to stdout.
func Close() {
	setOutput(os.Stdout, nil)
}

// GetLogger returns the global logger instance
func GetLogger() *logrus.Logger {
	return Logger
}

// SetOutput redirects the global logger, e.g. away from a terminal UI.
func SetOutput(w io.Writer) {
	setOutput(w, nil)
}

// Helper functions for common logging patterns
func WithComponent(component string) *logrus.Entry {
	return GetLogger().WithField("component", component)
}

func WithComponentAndEndpoint(component, endpoint string) *logrus.Entry {
	return GetLogger().WithFields(logrus.Fields{
		"component": component,
		"endpoint":  endpoint,
	})
}

package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/grovetools/semcommit/config"
	"github.com/grovetools/semcommit/util/pathutil"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
)

// NewLogger creates and returns a pre-configured logger for a specific component.
// Loggers are cached per component.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	var logCfg Config
	if cfg, err := config.LoadDefault(); err == nil {
		if err := cfg.UnmarshalExtension("logging", &logCfg); err != nil {
			logrus.Warnf("Failed to parse 'logging' config: %v", err)
		}
	}

	interactive := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	entry := newLogger(component, logCfg, os.Stderr, interactive)
	loggers[component] = entry
	return entry
}

// Reset drops all cached loggers so the next NewLogger call re-reads configuration.
func Reset() {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	loggers = make(map[string]*logrus.Entry)
}

// newLogger builds a logger from logCfg. stderr receives output according to
// Format.StructuredToStderr; interactive reports whether stderr is a terminal.
func newLogger(component string, logCfg Config, stderr io.Writer, interactive bool) *logrus.Entry {
	logger := logrus.New()

	levelStr := "info"
	if env := os.Getenv("SEMCOMMIT_LOG_LEVEL"); env != "" {
		levelStr = env
	} else if logCfg.Level != "" {
		levelStr = logCfg.Level
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if os.Getenv("SEMCOMMIT_LOG_CALLER") == "true" || logCfg.ReportCaller {
		logger.SetReportCaller(true)
	}

	logger.SetFormatter(formatterFor(logCfg.Format))

	var writers []io.Writer

	if logCfg.File.Enabled && logCfg.File.Path != "" {
		if file, err := openLogFile(logCfg.File.Path); err != nil {
			logger.Warnf("Failed to open log file %s: %v", logCfg.File.Path, err)
		} else {
			writers = append(writers, file)
			// The file sink carries its own format when set.
			if logCfg.File.Format == "json" {
				logger.SetFormatter(&logrus.JSONFormatter{})
			}
		}
	}

	stderrMode := "auto"
	if logCfg.Format.StructuredToStderr != "" {
		stderrMode = logCfg.Format.StructuredToStderr
	}

	switch stderrMode {
	case "always":
		writers = append(writers, stderr)
	case "never":
	default:
		// Interactive sessions only see warnings unless debugging.
		if level >= logrus.DebugLevel || !interactive {
			writers = append(writers, stderr)
		} else {
			logger.AddHook(&levelWriterHook{writer: stderr, formatter: logger.Formatter, levels: []logrus.Level{
				logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel, logrus.WarnLevel,
			}})
		}
	}

	switch len(writers) {
	case 0:
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(writers[0])
	default:
		logger.SetOutput(io.MultiWriter(writers...))
	}

	return logger.WithField("component", component)
}

func formatterFor(format FormatConfig) logrus.Formatter {
	switch format.Preset {
	case "json":
		return &logrus.JSONFormatter{}
	case "simple":
		return &TextFormatter{Config: FormatConfig{
			DisableTimestamp: true,
			DisableComponent: true,
		}}
	default:
		return &TextFormatter{Config: format}
	}
}

func openLogFile(path string) (*os.File, error) {
	expanded, err := pathutil.Expand(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// levelWriterHook writes entries of the given levels to writer.
type levelWriterHook struct {
	writer    io.Writer
	formatter logrus.Formatter
	levels    []logrus.Level
}

func (h *levelWriterHook) Levels() []logrus.Level {
	return h.levels
}

func (h *levelWriterHook) Fire(entry *logrus.Entry) error {
	line, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = h.writer.Write(line)
	return err
}

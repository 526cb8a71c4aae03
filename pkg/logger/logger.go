package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level уровень логирования
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel парсит уровень логирования из строки конфигурации
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("logger: unknown level %q", s)
	}
}

// Logger простой файловый логгер с уровнями.
// При пустом пути (или "stdout") пишет в stdout.
type Logger struct {
	l     *log.Logger
	level Level
	file  *os.File
}

// New создает логгер, пишущий в указанный файл
func New(path, level string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var out io.Writer = os.Stdout
	var file *os.File

	if path != "" && path != "stdout" {
		file, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: failed to open log file %s: %w", path, err)
		}
		out = file
	}

	return &Logger{
		l:     log.New(out, "", log.LstdFlags|log.Lmicroseconds),
		level: lvl,
		file:  file,
	}, nil
}

// Close закрывает файл логов, если он был открыт
func (lg *Logger) Close() error {
	if lg.file == nil {
		return nil
	}
	return lg.file.Close()
}

func (lg *Logger) Debug(format string, v ...interface{}) {
	lg.write(LevelDebug, "DEBUG", format, v...)
}

func (lg *Logger) Info(format string, v ...interface{}) {
	lg.write(LevelInfo, "INFO", format, v...)
}

func (lg *Logger) Warn(format string, v ...interface{}) {
	lg.write(LevelWarn, "WARN", format, v...)
}

func (lg *Logger) Error(format string, v ...interface{}) {
	lg.write(LevelError, "ERROR", format, v...)
}

// Fatal логирует сообщение и завершает процесс
func (lg *Logger) Fatal(format string, v ...interface{}) {
	lg.write(LevelError, "FATAL", format, v...)
	os.Exit(1)
}

func (lg *Logger) write(lvl Level, tag, format string, v ...interface{}) {
	if lvl < lg.level {
		return
	}
	lg.l.Printf("[%s] %s", tag, fmt.Sprintf(format, v...))
}

package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// StreamLogger groups the leveled loggers of one traffic surface.
type StreamLogger struct {
	Info    zerolog.Logger
	Error   zerolog.Logger
	Trace   zerolog.Logger
	Warning zerolog.Logger
}

// AppLogger keeps REST and websocket traffic in separate rotating files
// so a chat storm does not bury API errors.
type AppLogger struct {
	Http StreamLogger
	WS   StreamLogger
}

func NewLogger() *AppLogger {
	_ = os.MkdirAll("logs", 0755)

	zerolog.TimeFieldFormat = "2006-01-02 15:04:05.000"

	console := consoleWriter()

	return &AppLogger{
		Http: newStreamLogger(console, "http"),
		WS:   newStreamLogger(console, "ws"),
	}
}

func newStreamLogger(console zerolog.ConsoleWriter, stream string) StreamLogger {
	return StreamLogger{
		Info:    newMultiLogger(console, fmt.Sprintf("logs/%s.info.log", stream)),
		Error:   newMultiLogger(console, fmt.Sprintf("logs/%s.error.log", stream)),
		Trace:   newMultiLogger(console, fmt.Sprintf("logs/%s.trace.log", stream)),
		Warning: newMultiLogger(console, fmt.Sprintf("logs/%s.warning.log", stream)),
	}
}

func newMultiLogger(console zerolog.ConsoleWriter, filepath string) zerolog.Logger {
	multi := io.MultiWriter(console, fileWriter(filepath))

	return zerolog.New(multi).With().Timestamp().Logger()
}

func consoleWriter() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "2006-01-02 15:04:05.000",
		NoColor:    false,
		FormatTimestamp: func(i interface{}) string {
			return fmt.Sprintf("[%s]", i)
		},
		FormatLevel: func(i interface{}) string {
			return fmt.Sprintf("[%s]", strings.ToUpper(i.(string)))
		},
		FormatMessage: func(i interface{}) string {
			return fmt.Sprintf("%s", i)
		},
	}
}

func fileWriter(filename string) io.Writer {
	return zerolog.ConsoleWriter{
		Out: &lumberjack.Logger{
			Filename:   filename,
			MaxSize:    5,
			MaxAge:     20,
			MaxBackups: 5,
			Compress:   true,
		},
		NoColor:    true,
		TimeFormat: "2006-01-02 15:04:05.000",
		FormatTimestamp: func(i interface{}) string {
			return fmt.Sprintf("[%s]", i)
		},
		FormatLevel: func(i interface{}) string {
			return fmt.Sprintf("[%s]", strings.ToUpper(i.(string)))
		},
		FormatMessage: func(i interface{}) string {
			return fmt.Sprintf("%s", i)
		},
		FormatFieldName: func(i interface{}) string {
			return fmt.Sprintf("%s=", i)
		},
		FormatFieldValue: func(i interface{}) string {
			return fmt.Sprintf("%v", i)
		},
	}
}

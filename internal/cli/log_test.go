package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "info at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Info("test") },
			wantLog: true,
		},
		{
			name:    "debug at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: false,
		},
		{
			name:    "debug at debug level",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			tt.logFunc(logger)

			gotLog := buf.Len() > 0
			if gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		env     string
		want    log.Level
	}{
		{"default", false, "", log.InfoLevel},
		{"verbose flag", true, "", log.DebugLevel},
		{"env warn", false, "warn", log.WarnLevel},
		{"env error", false, "error", log.ErrorLevel},
		{"flag beats env", true, "error", log.DebugLevel},
		{"bad env ignored", false, "loud", log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(envLogLevel, tt.env)
			if got := logLevel(tt.verbose); got != tt.want {
				t.Errorf("logLevel(%v) with %q = %v, want %v", tt.verbose, tt.env, got, tt.want)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))

	prog.done("test completed", "steps", 3)

	out := buf.String()
	if !bytes.Contains(buf.Bytes(), []byte("test completed")) {
		t.Errorf("output should contain message: %q", out)
	}
	if !bytes.Contains(buf.Bytes(), []byte("elapsed=")) {
		t.Errorf("output should contain elapsed time: %q", out)
	}
	if !bytes.Contains(buf.Bytes(), []byte("steps=3")) {
		t.Errorf("output should keep caller keyvals: %q", out)
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Error("loggerFromContext should return default logger when none set")
	}

	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), custom)

	if got := loggerFromContext(ctx); got != custom {
		t.Error("loggerFromContext should return the custom logger")
	}
}

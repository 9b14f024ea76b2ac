// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	tests := []struct {
		name string
		ctx  context.Context
		want *slog.Logger
	}{
		{name: "context with logger", ctx: New(context.Background(), custom), want: custom},
		{name: "context without logger", ctx: context.Background(), want: DefaultLogger},
		{name: "nil logger becomes default", ctx: New(context.Background(), nil), want: DefaultLogger},
		{name: "wrong type value", ctx: context.WithValue(context.Background(), loggerKey{}, "nope"), want: DefaultLogger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, tt.want, Logger(tt.ctx))
		})
	}
}

func TestLoggingFunctions(t *testing.T) {
	var buf bytes.Buffer

	ctx := New(context.Background(), slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	tests := []struct {
		name     string
		logFunc  func(context.Context, string, ...any)
		expected string
	}{
		{name: "debug", logFunc: Debug, expected: "DEBUG"},
		{name: "info", logFunc: Info, expected: "INFO"},
		{name: "warn", logFunc: Warn, expected: "WARN"},
		{name: "error", logFunc: Error, expected: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.logFunc(ctx, "segment parsed", "argv", "ls")

			assert.Contains(t, buf.String(), tt.expected)
			assert.Contains(t, buf.String(), "segment parsed")
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in    string
		want  slog.Level
		valid bool
	}{
		{in: "DEBUG", want: slog.LevelDebug, valid: true},
		{in: "info", want: slog.LevelInfo, valid: true},
		{in: " Warn ", want: slog.LevelWarn, valid: true},
		{in: "ERROR", want: slog.LevelError, valid: true},
		{in: "off", want: LevelOff, valid: true},
		{in: "", want: LevelOff, valid: false},
		{in: "verbose", want: LevelOff, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLevel(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.valid, ok)
		})
	}
}

func TestLogLevelFromEnv(t *testing.T) {
	t.Setenv(EnvVarName(), "DEBUG")
	assert.Equal(t, slog.LevelDebug, logLevelFromEnv())

	t.Setenv(EnvVarName(), "")
	assert.Equal(t, LevelOff, logLevelFromEnv())
}

func TestEnvVarName(t *testing.T) {
	name := EnvVarName()
	assert.True(t, strings.HasSuffix(name, "_LOG_LEVEL"))
	assert.Equal(t, strings.ToUpper(name), name)
}

func TestDefaultLoggerSilentAtLevelOff(t *testing.T) {
	orig := LevelVar.Level()
	defer LevelVar.Set(orig)

	LevelVar.Set(LevelOff)
	require.NotNil(t, DefaultLogger)
	assert.False(t, DefaultLogger.Enabled(context.Background(), slog.LevelError))

	LevelVar.Set(slog.LevelDebug)
	assert.True(t, DefaultLogger.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, JSONLogger.Enabled(context.Background(), slog.LevelInfo))
}

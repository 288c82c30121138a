package xlog

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := New().
		SetLevel(LevelDebug).
		SetFormat("json").
		SetOutput(&buf).
		Build()
	require.NoError(t, err)
	defer cleanup()

	logger.Info(context.Background(), "frame sent",
		Component("xeth"), Count(46))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "frame sent", rec["msg"])
	assert.Equal(t, "xeth", rec[KeyComponent])
	assert.Equal(t, float64(46), rec[KeyCount])
}

func TestDynamicLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := New().SetOutput(&buf).Build()
	require.NoError(t, err)
	defer cleanup()

	ctx := context.Background()
	logger.Debug(ctx, "hidden")
	assert.Empty(t, buf.String())

	logger.SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, logger.GetLevel())
	logger.Debug(ctx, "visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestDerivedLoggerSharesLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := New().SetOutput(&buf).Build()
	require.NoError(t, err)
	defer cleanup()

	child := logger.With(slog.String("conn", "eth0"))
	logger.SetLevel(LevelError)

	child.Info(context.Background(), "suppressed")
	assert.Empty(t, buf.String())
}

func TestBuilderFirstErrorWins(t *testing.T) {
	_, _, err := New().
		SetFormat("xml").
		SetLevel(LevelDebug).
		Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestBuilderSingleUse(t *testing.T) {
	b := New().SetOutput(&bytes.Buffer{})
	_, cleanup, err := b.Build()
	require.NoError(t, err)
	defer cleanup()

	_, _, err = b.Build()
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"", LevelInfo, false},
		{"trace", LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestAttrs(t *testing.T) {
	assert.Equal(t, slog.Attr{}, Err(nil))
	assert.Equal(t, "5s", Duration(5*time.Second).Value.String())
	assert.Equal(t, KeyOperation, Operation("send").Key)
	assert.Equal(t, "eth0", Interface("eth0").Value.String())
}

func TestGlobalDefault(t *testing.T) {
	t.Cleanup(ResetDefault)
	ResetDefault()

	var buf bytes.Buffer
	logger, cleanup, err := New().SetOutput(&buf).Build()
	require.NoError(t, err)
	defer cleanup()

	SetDefault(logger)
	Info(context.Background(), "via global")
	assert.Contains(t, buf.String(), "via global")

	// nil 替换被忽略
	SetDefault(nil)
	Warn(context.Background(), "still here")
	assert.Contains(t, buf.String(), "still here")
}

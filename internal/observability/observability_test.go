package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-dashboard/internal/config"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(config.LoggerConfig{Level: "warn", Format: "json"}, &buf)

	logger.Info("dropped")
	logger.Warn("kept", "k", "v")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "kept", line["msg"])
	assert.Equal(t, "sales-dashboard", line["service"])
	assert.Equal(t, "v", line["k"])
}

func TestNewLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(config.LoggerConfig{Level: "bogus", Format: "text"}, &buf)

	logger.Debug("hidden")
	logger.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "abc")
	assert.Equal(t, "abc", GetRequestID(ctx))
	assert.Empty(t, GetRequestID(context.Background()))
}

func TestSpan(t *testing.T) {
	ctx, parent := StartSpan(context.Background(), "request")
	_, child := StartSpan(ctx, "analyze")

	assert.Equal(t, parent.TraceID, child.TraceID)
	assert.Equal(t, parent.SpanID, child.ParentID)
	assert.Len(t, parent.TraceID, 32)
	assert.Len(t, parent.SpanID, 16)
	assert.Same(t, parent, GetSpan(ctx))

	child.SetTag("rows", "3")
	child.SetError(errors.New("boom"))
	child.Finish()

	assert.Equal(t, SpanStatusError, child.Status)
	assert.Equal(t, "boom", child.Error)

	var buf bytes.Buffer
	slog.New(slog.NewJSONHandler(&buf, nil)).Info("span", "span", child)
	assert.Contains(t, buf.String(), `"operation":"analyze"`)
	assert.Contains(t, buf.String(), `"rows":"3"`)
}

func TestNewLogger_ContextIDs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(config.LoggerConfig{Level: "info", Format: "json"}, &buf)

	ctx := WithRequestID(context.Background(), "req-9")
	ctx, span := StartSpan(ctx, "analyze")
	logger.InfoContext(ctx, "analysis complete")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-9", line["request_id"])
	assert.Equal(t, span.TraceID, line["trace_id"])
}

func TestSpan_SetTagOverwrites(t *testing.T) {
	_, span := StartSpan(context.Background(), "op")
	span.SetTag("rows", 1)
	span.SetTag("rows", 2)

	var buf bytes.Buffer
	slog.New(slog.NewJSONHandler(&buf, nil)).Info("span", "span", span)
	assert.Contains(t, buf.String(), `"rows":2`)
	assert.NotContains(t, buf.String(), `"rows":1`)
}

package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("catalog", slog.String("lang", "de"), slog.Int("entries", 42))
	require.Equal(t, "catalog", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())

	members := attr.Value.Group()
	require.Len(t, members, 2)
	assert.Equal(t, "lang", members[0].Key)
	assert.Equal(t, "entries", members[1].Key)
}

func TestError(t *testing.T) {
	boom := errors.New("boom")

	attr := logger.Error(boom)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, boom, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestErrors(t *testing.T) {
	first := errors.New("first")
	third := errors.New("third")

	attr := logger.Errors(first, nil, third)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())

	members := attr.Value.Group()
	require.Len(t, members, 2)
	// Keys keep the original positions so gaps stay visible.
	assert.Equal(t, "0", members[0].Key)
	assert.Equal(t, first, members[0].Value.Any())
	assert.Equal(t, "2", members[1].Key)
	assert.Equal(t, third, members[1].Value.Any())

	assert.True(t, logger.Errors(nil, nil).Equal(slog.Attr{}))
}

func TestRequestID(t *testing.T) {
	attr := logger.RequestID("req-4711")
	require.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "req-4711", attr.Value.String())

	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
}

func TestLanguage(t *testing.T) {
	attr := logger.Language("de")
	require.Equal(t, "language", attr.Key)
	assert.Equal(t, "de", attr.Value.String())

	assert.True(t, logger.Language("").Equal(slog.Attr{}))
}

func TestDuration(t *testing.T) {
	attr := logger.Duration(2 * time.Second)
	require.Equal(t, "duration", attr.Key)
	assert.Equal(t, 2*time.Second, attr.Value.Any())
}

func TestComponent(t *testing.T) {
	attr := logger.Component("httpserver")
	require.Equal(t, "component", attr.Key)
	assert.Equal(t, "httpserver", attr.Value.String())
}

func TestEvent(t *testing.T) {
	attr := logger.Event("translations_loaded")
	require.Equal(t, "event", attr.Key)
	assert.Equal(t, "translations_loaded", attr.Value.String())
}

package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/localekit/pkg/logger"
)

func TestEnvironmentPresets(t *testing.T) {
	t.Run("development logs text at debug level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithDevelopment("catalog"), logger.WithOutput(buf))

		log.Debug("msg")
		out := buf.String()
		assert.Contains(t, out, "level=DEBUG")
		assert.Contains(t, out, "service=catalog")
		assert.Contains(t, out, "env=development")
	})

	t.Run("staging logs JSON at info level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithStaging("catalog"), logger.WithOutput(buf))

		log.Debug("quiet")
		assert.Zero(t, buf.Len())

		log.Info("msg")
		entry := jsonRecord(t, buf)
		assert.Equal(t, "catalog", entry["service"])
		assert.Equal(t, "staging", entry["env"])
	})

	t.Run("production logs JSON at info level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithProduction("catalog"), logger.WithOutput(buf))

		log.Info("msg")
		entry := jsonRecord(t, buf)
		assert.Equal(t, "catalog", entry["service"])
		assert.Equal(t, "production", entry["env"])
	})

	t.Run("empty service name leaves defaults untouched", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithDevelopment(""), logger.WithOutput(buf))

		log.Info("msg")
		entry := jsonRecord(t, buf)
		assert.Equal(t, "msg", entry["msg"])
		assert.NotContains(t, entry, "service")
	})
}

func TestWithEnvironment(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want string
	}{
		{"production", "production", "production"},
		{"prod short form", "prod", "production"},
		{"staging", "staging", "staging"},
		{"stage short form", "stage", "staging"},
		{"development", "development", "development"},
		{"unknown falls back to development", "qa-17", "development"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			log := logger.New(
				logger.WithEnvironment(tt.env, "catalog"),
				logger.WithOutput(buf),
			)

			log.Info("msg")
			if tt.want == "development" {
				assert.Contains(t, buf.String(), "env=development")
				return
			}
			assert.Equal(t, tt.want, jsonRecord(t, buf)["env"])
		})
	}
}

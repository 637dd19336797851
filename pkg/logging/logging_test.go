package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retaildb/pkg/config"
)

func TestNewFormats(t *testing.T) {
	for _, format := range []string{"text", "json", "dev", "off"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := New(config.LogConfig{Level: "info", Format: format}, &buf)
			require.NoError(t, err)
			logger.Info("hello", "key", 101)
			if format == "off" {
				assert.Zero(t, buf.Len())
			} else {
				assert.Contains(t, buf.String(), "hello")
			}
		})
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.LogConfig{Level: "warn", Format: "text"}, &buf)
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New(config.LogConfig{Level: "loud", Format: "text"}, &bytes.Buffer{})
	assert.Error(t, err)

	_, err = New(config.LogConfig{Level: "info", Format: "xml"}, &bytes.Buffer{})
	assert.Error(t, err)
}

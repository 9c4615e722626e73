package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/deepdiff/logger"
)

func TestConfigure_Text(t *testing.T) {
	var buf bytes.Buffer

	log := logger.Configure(logger.Options{
		MinLevel: slog.LevelInfo,
		Output:   &buf,
	})

	log.Info("hello", "key", "value")

	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "key=value")
}

func TestConfigure_JSON(t *testing.T) {
	var buf bytes.Buffer

	log := logger.Configure(logger.Options{
		JSON:     true,
		MinLevel: slog.LevelInfo,
		Output:   &buf,
	})

	log.Info("hello", "key", "value")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "value", line["key"])
}

func TestConfigure_LevelFilter(t *testing.T) {
	var buf bytes.Buffer

	log := logger.Configure(logger.Options{
		MinLevel: slog.LevelWarn,
		Output:   &buf,
	})

	log.Debug("ignored")
	log.Info("also ignored")
	assert.Empty(t, buf.String())

	log.Warn("kept")
	assert.Contains(t, buf.String(), "msg=kept")
}

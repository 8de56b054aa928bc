package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yorkpirates/seacore/internal/config"
)

func TestSeedFromIsStable(t *testing.T) {
	assert.Equal(t, seedFrom("halifax-2022"), seedFrom("halifax-2022"))
	assert.NotEqual(t, seedFrom("halifax-2022"), seedFrom("derwent"))
}

func TestNewLoggerFormats(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		log, err := newLogger(config.LoggingConfig{Level: "debug", Format: format})
		assert.NoError(t, err, format)
		assert.NotNil(t, log)
	}
	_, err := newLogger(config.LoggingConfig{Level: "not-a-level"})
	assert.NoError(t, err, "bad level falls back to info")
}

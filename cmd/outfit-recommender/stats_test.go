package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/i474232898/outfit-recommender/internal/config"
)

func TestRequirePersistentStore(t *testing.T) {
	err := requirePersistentStore(&config.AppConfig{}, "history")
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "history needs DATA_DIR")
	}

	assert.NoError(t, requirePersistentStore(&config.AppConfig{DataDir: t.TempDir()}, "stats"))
}

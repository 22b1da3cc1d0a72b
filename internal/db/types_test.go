package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProfileArtifactIsStale(t *testing.T) {
	fresh := &ProfileArtifact{ResolvedAt: time.Now().Add(-1 * time.Hour)}
	assert.False(t, fresh.IsStale(24*time.Hour))

	stale := &ProfileArtifact{ResolvedAt: time.Now().Add(-48 * time.Hour)}
	assert.True(t, stale.IsStale(24*time.Hour))
}

func TestNullIfEmpty(t *testing.T) {
	assert.Nil(t, nullIfEmpty(""))
	if got := nullIfEmpty("x"); assert.NotNil(t, got) {
		assert.Equal(t, "x", *got)
	}
}

package pickkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	key := Key("evABC123", 4)
	assert.Equal(t, "evABC123-4", key, "Key must keep the stored composite format")
}

func TestBelongsTo(t *testing.T) {
	key := Key("evABC123", 4)
	assert.True(t, BelongsTo(key, "evABC123"))
	assert.False(t, BelongsTo(key, "evABC12"), "a shorter event id should not match without its separator")
	assert.False(t, BelongsTo(key, "otherEvent"))
}

package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFake_Steps(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	f := NewFake(start, time.Second)

	assert.Equal(t, start, f.Now())
	assert.Equal(t, start.Add(time.Second), f.Now())

	f.Advance(time.Hour)
	assert.Equal(t, start.Add(2*time.Second+time.Hour), f.Now())
}

func TestSystem_IsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, New().Now().Location())
}

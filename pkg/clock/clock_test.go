package clock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReal_SleepRespectsContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := Real{}.Sleep(ctx, time.Minute)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestReal_Sleep(t *testing.T) {
	assert.NoError(t, Real{}.Sleep(context.Background(), time.Millisecond))
	assert.NoError(t, Real{}.Sleep(context.Background(), 0))
}

func TestReal_Now(t *testing.T) {
	before := time.Now()
	now := Real{}.Now()

	assert.False(t, now.Before(before))
	assert.WithinDuration(t, time.Now(), now, time.Second)
}

package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pesokrava/storefront/internal/pkg/logger"
)

func TestRotator_NextPrevWrap(t *testing.T) {
	r := NewRotator(3, time.Minute, logger.New("test"))

	assert.Equal(t, 0, r.Current())
	assert.Equal(t, 1, r.Next())
	assert.Equal(t, 2, r.Next())
	assert.Equal(t, 0, r.Next())
	assert.Equal(t, 2, r.Prev())
	assert.Equal(t, 1, r.Prev())
	assert.Equal(t, 1, r.Current())
}

func TestRotator_Empty(t *testing.T) {
	r := NewRotator(0, time.Minute, logger.New("test"))

	assert.Equal(t, 0, r.Next())
	assert.Equal(t, 0, r.Prev())
}

func TestRotator_RunAdvancesUntilCancelled(t *testing.T) {
	r := NewRotator(3, 10*time.Millisecond, logger.New("test"))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- r.Run(ctx)
	}()

	assert.Eventually(t, func() bool { return r.Current() != 0 }, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	stopped := r.Current()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, stopped, r.Current())
}

func TestRotator_SingleSlideDoesNotTick(t *testing.T) {
	r := NewRotator(1, time.Millisecond, logger.New("test"))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.NoError(t, r.Run(ctx))
	assert.Equal(t, 0, r.Current())
}

func TestRotator_RunReturnsOnCancel(t *testing.T) {
	r := NewRotator(3, 10*time.Millisecond, logger.New("test"))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- r.Run(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pesokrava/storefront/internal/pkg/logger"
)

type flushRecorder struct {
	mu     sync.Mutex
	values map[string][]int
}

func newFlushRecorder() *flushRecorder {
	return &flushRecorder{values: make(map[string][]int)}
}

func (r *flushRecorder) flush(ctx context.Context, key string, value int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = append(r.values[key], value)
}

func (r *flushRecorder) get(key string) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.values[key]...)
}

const testWindow = 50 * time.Millisecond

func TestDebouncer_CollapsesBurst(t *testing.T) {
	rec := newFlushRecorder()
	d := NewDebouncer[string, int](testWindow, rec.flush, logger.New("test"))

	now := time.Now()
	for i := 1; i <= 5; i++ {
		assert.True(t, d.Submit("s1", now.Add(time.Duration(i)*time.Millisecond), i))
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, 1, d.Pending())

	assert.Eventually(t, func() bool { return len(rec.get("s1")) == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, []int{5}, rec.get("s1"))
	assert.Equal(t, 0, d.Pending())
}

func TestDebouncer_IgnoresStaleSubmission(t *testing.T) {
	rec := newFlushRecorder()
	d := NewDebouncer[string, int](testWindow, rec.flush, logger.New("test"))

	now := time.Now()
	assert.True(t, d.Submit("s1", now.Add(10*time.Second), 2))
	assert.False(t, d.Submit("s1", now, 1))

	assert.Eventually(t, func() bool { return len(rec.get("s1")) == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, []int{2}, rec.get("s1"))
}

func TestDebouncer_KeysAreIndependent(t *testing.T) {
	rec := newFlushRecorder()
	d := NewDebouncer[string, int](testWindow, rec.flush, logger.New("test"))

	now := time.Now()
	d.Submit("a", now, 1)
	d.Submit("b", now, 2)
	d.Submit("c", now, 3)
	assert.Equal(t, 3, d.Pending())

	assert.Eventually(t, func() bool { return d.Pending() == 0 }, time.Second, 10*time.Millisecond)
	assert.Eventually(t, func() bool {
		return len(rec.get("a")) == 1 && len(rec.get("b")) == 1 && len(rec.get("c")) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestDebouncer_ShutdownCancelsPending(t *testing.T) {
	rec := newFlushRecorder()
	d := NewDebouncer[string, int](time.Second, rec.flush, logger.New("test"))

	d.Submit("s1", time.Now(), 1)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, d.Shutdown(ctx))
	assert.Equal(t, 0, d.Pending())
	assert.False(t, d.Submit("s1", time.Now(), 2))

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, rec.get("s1"))
}

func TestDebouncer_ShutdownTimeout(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	started := make(chan struct{})
	d := NewDebouncer[string, int](10*time.Millisecond, func(ctx context.Context, key string, value int) {
		close(started)
		<-release
	}, logger.New("test"))

	d.Submit("s1", time.Now(), 1)
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := d.Shutdown(ctx)
	assert.Equal(t, context.DeadlineExceeded, err)
}

func TestDebouncer_FlushContextCancelledOnShutdown(t *testing.T) {
	started := make(chan struct{})
	cancelled := make(chan struct{})
	d := NewDebouncer[string, int](10*time.Millisecond, func(ctx context.Context, key string, value int) {
		close(started)
		<-ctx.Done()
		close(cancelled)
	}, logger.New("test"))

	d.Submit("s1", time.Now(), 1)
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, d.Shutdown(ctx))
	<-cancelled
}

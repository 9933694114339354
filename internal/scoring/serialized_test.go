package scoring

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingExplainer struct {
	active  int32
	maxSeen int32
	calls   int32
}

func (c *countingExplainer) Explain(ctx context.Context, features []float64) (map[string]float64, error) {
	n := atomic.AddInt32(&c.active, 1)
	for {
		max := atomic.LoadInt32(&c.maxSeen)
		if n <= max || atomic.CompareAndSwapInt32(&c.maxSeen, max, n) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)
	atomic.AddInt32(&c.active, -1)
	atomic.AddInt32(&c.calls, 1)
	return map[string]float64{}, nil
}

func TestSerializedExplainer_OneCallAtATime(t *testing.T) {
	inner := &countingExplainer{}
	serialized := NewSerializedExplainer(inner)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := serialized.Explain(context.Background(), nil)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(8), atomic.LoadInt32(&inner.calls))
	assert.Equal(t, int32(1), atomic.LoadInt32(&inner.maxSeen))
}

type blockingExplainer struct {
	release chan struct{}
}

func (b *blockingExplainer) Explain(ctx context.Context, features []float64) (map[string]float64, error) {
	<-b.release
	return map[string]float64{}, nil
}

func TestSerializedExplainer_ContextCancelledWhileWaiting(t *testing.T) {
	inner := &blockingExplainer{release: make(chan struct{})}
	serialized := NewSerializedExplainer(inner)

	// 占住唯一槽位
	firstDone := make(chan struct{})
	go func() {
		serialized.Explain(context.Background(), nil)
		close(firstDone)
	}()

	// 等首个调用进入 inner
	time.Sleep(10 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := serialized.Explain(ctx, nil)
	require.ErrorIs(t, err, context.Canceled)

	close(inner.release)
	<-firstDone
}

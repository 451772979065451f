package vision

import (
	"context"
	"sync"
	"testing"
	"time"

	"cleanup-estimator/internal/core/cleanup"
	"cleanup-estimator/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blockingProvider struct {
	release chan struct{}
}

func (b *blockingProvider) Analyze(ctx context.Context, _ *Request) (string, error) {
	select {
	case <-b.release:
		return `{"confidence":0.7}`, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
func (b *blockingProvider) Name() string     { return "blocking" }
func (b *blockingProvider) GetModel() string { return "m" }

func TestQueue_Submit(t *testing.T) {
	q := NewQueue(NewAnalyzer(&fakeProvider{reply: modelReply}, 100), 2, 4)
	defer q.Close()

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := q.Submit(context.Background(), Image{MimeType: "image/png"}, cleanup.DefaultPreferences())
			assert.NoError(t, err)
			if res != nil {
				assert.Equal(t, 420, res.Analysis.TotalTime)
			}
		}()
	}
	wg.Wait()

	status := q.Status()
	assert.Equal(t, 3, status.ProcessedCount)
	assert.Equal(t, 2, status.Workers)
	assert.Equal(t, 4, status.MaxQueueSize)
}

func TestQueue_Unavailable(t *testing.T) {
	q := NewQueue(NewAnalyzer(nil, 0), 1, 1)
	defer q.Close()

	_, err := q.Submit(context.Background(), Image{}, cleanup.DefaultPreferences())
	assert.ErrorIs(t, err, common.ErrVisionUnavailable)
}

func TestQueue_ContextCancelled(t *testing.T) {
	provider := &blockingProvider{release: make(chan struct{})}
	q := NewQueue(NewAnalyzer(provider, 0), 1, 1)
	defer q.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := q.Submit(ctx, Image{}, cleanup.DefaultPreferences())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

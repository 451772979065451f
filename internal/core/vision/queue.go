package vision

import (
	"context"
	"sync"
	"sync/atomic"

	"cleanup-estimator/internal/core/cleanup"
	"cleanup-estimator/internal/pkg/common"

	"go.uber.org/zap"
)

// job 隊列中的一筆照片分析
type job struct {
	ctx    context.Context
	image  Image
	prefs  cleanup.Preferences
	result chan jobResult
}

type jobResult struct {
	result *Result
	err    error
}

// QueueStatus 隊列狀態
type QueueStatus struct {
	QueueLength    int `json:"queue_length"`
	ProcessedCount int `json:"processed_count"`
	MaxQueueSize   int `json:"max_queue_size"`
	Workers        int `json:"workers"`
}

// Queue 以固定數量的 worker 執行照片分析，限制同時進行的模型請求
type Queue struct {
	analyzer  *Analyzer
	jobs      chan *job
	done      chan struct{}
	workers   int
	maxSize   int
	processed int64
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewQueue 創建隊列並啟動 worker
func NewQueue(analyzer *Analyzer, workers, maxSize int) *Queue {
	if workers <= 0 {
		workers = 1
	}
	if maxSize <= 0 {
		maxSize = workers
	}

	q := &Queue{
		analyzer: analyzer,
		jobs:     make(chan *job, maxSize),
		done:     make(chan struct{}),
		workers:  workers,
		maxSize:  maxSize,
	}
	for i := 0; i < workers; i++ {
		q.wg.Add(1)
		go q.worker(i)
	}
	return q
}

// Available 底層分析服務是否可用
func (q *Queue) Available() bool {
	return q != nil && q.analyzer.Available()
}

// Submit 將照片加入隊列並等待結果
func (q *Queue) Submit(ctx context.Context, img Image, prefs cleanup.Preferences) (*Result, error) {
	if !q.Available() {
		return nil, common.ErrVisionUnavailable
	}
	if len(q.jobs) >= q.maxSize {
		return nil, common.ErrServiceUnavailable.WithMessage("analysis queue is full, please try again later")
	}

	j := &job{ctx: ctx, image: img, prefs: prefs, result: make(chan jobResult, 1)}
	select {
	case q.jobs <- j:
		common.LogDebug("Photo analysis enqueued",
			zap.Int("queue_length", len(q.jobs)),
			zap.Int("max_queue_size", q.maxSize),
		)
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-q.done:
		return nil, common.ErrServiceUnavailable.WithMessage("analysis queue is closed")
	}

	select {
	case r := <-j.result:
		return r.result, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (q *Queue) worker(id int) {
	defer q.wg.Done()
	for {
		select {
		case <-q.done:
			return
		case j := <-q.jobs:
			if err := j.ctx.Err(); err != nil {
				j.result <- jobResult{err: err}
				continue
			}
			res, err := q.analyzer.Analyze(j.ctx, j.image, j.prefs)
			atomic.AddInt64(&q.processed, 1)
			if err != nil {
				common.LogDebug("Photo analysis failed", zap.Int("worker", id), zap.Error(err))
			}
			j.result <- jobResult{result: res, err: err}
		}
	}
}

// Status 獲取隊列狀態
func (q *Queue) Status() QueueStatus {
	return QueueStatus{
		QueueLength:    len(q.jobs),
		ProcessedCount: int(atomic.LoadInt64(&q.processed)),
		MaxQueueSize:   q.maxSize,
		Workers:        q.workers,
	}
}

// Close 停止所有 worker
func (q *Queue) Close() {
	q.closeOnce.Do(func() {
		close(q.done)
	})
	q.wg.Wait()
}

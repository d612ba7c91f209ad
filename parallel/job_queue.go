package parallel

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"go.uber.org/zap"
)

const stackTraceBufferSize = 4096

var ErrQueueClosed = errors.New("job queue is closed")

// CreateJobQueue starts poolSize workers reading from a queue holding up to
// queueSize pending jobs. A panicking job is recovered and reported through
// logger; a nil logger discards the report.
func CreateJobQueue(queueSize int, poolSize int, logger *zap.SugaredLogger) *JobQueue {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	queue := &JobQueue{
		jobsChannel: make(chan func(), queueSize),
		waitGroup:   &sync.WaitGroup{},
		logger:      logger,
	}

	for i := 1; i <= poolSize; i++ {
		go queue.worker(i)
	}
	return queue
}

type JobQueue struct {
	jobsChannel chan func()
	waitGroup   *sync.WaitGroup
	logger      *zap.SugaredLogger

	mutex  sync.RWMutex
	closed bool
}

func (queue *JobQueue) Add(function func()) error {
	if function == nil {
		return fmt.Errorf("nil function")
	}

	// held across the send so Close cannot close the channel under it
	queue.mutex.RLock()
	defer queue.mutex.RUnlock()
	if queue.closed {
		return ErrQueueClosed
	}

	queue.waitGroup.Add(1)
	queue.jobsChannel <- function
	return nil
}

func (queue *JobQueue) Wait() error {
	queue.waitGroup.Wait()
	return nil
}

// Close stops the workers once the queued jobs are done. Adding after Close
// fails with ErrQueueClosed.
func (queue *JobQueue) Close() {
	queue.mutex.Lock()
	defer queue.mutex.Unlock()
	if queue.closed {
		return
	}
	queue.closed = true
	close(queue.jobsChannel)
}

func (queue *JobQueue) worker(id int) {
	for job := range queue.jobsChannel {
		queue.run(id, job)
	}
}

func (queue *JobQueue) run(id int, job func()) {
	defer queue.waitGroup.Done()
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, stackTraceBufferSize)
			n := runtime.Stack(buf, false)
			queue.logger.Errorw("job panic recovered",
				"worker", id,
				"panic", r,
				"stack", string(buf[:n]))
		}
	}()
	job()
}

package queue

import (
	"errors"
	"log"
	"sync"
)

// ErrStopped is reported for jobs enqueued after Shutdown.
var ErrStopped = errors.New("queue: stopped")

type Job struct {
	Fn   func() error
	Errc chan error
}

// RequestQueueManager runs jobs on a fixed pool of workers fed by a
// buffered channel. EnqueueJob blocks while the buffer is full.
type RequestQueueManager struct {
	Name       string
	JobQueue   chan Job
	MaxWorkers int

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
}

func NewRequestQueueManager(name string, queueSize int, maxWorkers int) *RequestQueueManager {
	manager := &RequestQueueManager{
		Name:       name,
		JobQueue:   make(chan Job, queueSize),
		MaxWorkers: maxWorkers,
	}
	manager.startWorkers()
	return manager
}

func (rqm *RequestQueueManager) startWorkers() {
	for i := 0; i < rqm.MaxWorkers; i++ {
		rqm.wg.Add(1)
		go func(workerID int) {
			defer rqm.wg.Done()
			for job := range rqm.JobQueue {
				err := rqm.run(job.Fn)
				if job.Errc != nil {
					job.Errc <- err
				}
			}
		}(i)
	}
	log.Printf("queue %s: %d workers started", rqm.Name, rqm.MaxWorkers)
}

// run keeps a panicking job from taking its worker down.
func (rqm *RequestQueueManager) run(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("queue %s: job panicked: %v", rqm.Name, r)
			err = errors.New("queue: job panicked")
		}
	}()
	return fn()
}

func (rqm *RequestQueueManager) EnqueueJob(job Job) {
	rqm.mu.RLock()
	defer rqm.mu.RUnlock()
	if rqm.stopped {
		if job.Errc != nil {
			job.Errc <- ErrStopped
		}
		return
	}
	rqm.JobQueue <- job
}

// Submit enqueues fn without waiting for its result; a returned error is
// logged.
func (rqm *RequestQueueManager) Submit(name string, fn func() error) {
	rqm.EnqueueJob(Job{Fn: func() error {
		if err := fn(); err != nil {
			log.Printf("queue %s: %s: %v", rqm.Name, name, err)
		}
		return nil
	}})
}

func (rqm *RequestQueueManager) Depth() int {
	return len(rqm.JobQueue)
}

// Shutdown stops accepting jobs and waits for queued ones to finish. It is
// safe to call more than once.
func (rqm *RequestQueueManager) Shutdown() {
	rqm.mu.Lock()
	if rqm.stopped {
		rqm.mu.Unlock()
		return
	}
	rqm.stopped = true
	close(rqm.JobQueue)
	rqm.mu.Unlock()
	rqm.wg.Wait()
}

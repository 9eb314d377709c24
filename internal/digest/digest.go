// Package digest runs a job on a standard five-field cron schedule
// (descriptors such as @daily are accepted too).
package digest

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Job is called once per tick. Errors are logged; the schedule continues.
type Job func(ctx context.Context) error

type Scheduler struct {
	name     string
	schedule cron.Schedule
	cron     *cron.Cron
	job      Job
	timeout  time.Duration
}

// New parses spec and prepares, but does not start, the schedule.
func New(name, spec string, timeout time.Duration, job Job) (*Scheduler, error) {
	schedule, err := cronParser.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("digest: parse %q: %w", spec, err)
	}
	return &Scheduler{
		name:     name,
		schedule: schedule,
		cron:     cron.New(cron.WithParser(cronParser)),
		job:      job,
		timeout:  timeout,
	}, nil
}

// Start runs the schedule until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	s.cron.Schedule(s.schedule, cron.FuncJob(func() { s.run(ctx) }))
	s.cron.Start()
	log.Printf("digest %s: next run at %s", s.name, s.Next(time.Now()).Format(time.RFC3339))
	go func() {
		<-ctx.Done()
		<-s.cron.Stop().Done()
	}()
}

func (s *Scheduler) Next(after time.Time) time.Time {
	return s.schedule.Next(after)
}

func (s *Scheduler) run(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	if err := s.job(ctx); err != nil {
		log.Printf("digest %s: %v", s.name, err)
	}
}

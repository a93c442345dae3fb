package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
)

// Scheduler wraps a cron runner using the standard 5-field expression
// syntax (minute, hour, day-of-month, month, day-of-week). All timing
// computation lives in the cron library; we only supply callbacks.
type Scheduler struct {
	cron *cron.Cron
}

func New() *Scheduler {
	return &Scheduler{
		cron: cron.New(),
	}
}

func (s *Scheduler) AddJob(spec string, job func(context.Context)) error {
	_, err := s.cron.AddFunc(spec, func() {
		job(context.Background())
	})
	return err
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

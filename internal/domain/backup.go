package domain

import "time"

// Result is the outcome of the pipeline for a single target. A failed
// target carries its error here instead of aborting the run.
type Result struct {
	Target   string
	Dialect  string
	Database string
	Host     string
	Key      string
	Size     int64
	Duration time.Duration
	Err      error
}

func (r Result) Failed() bool {
	return r.Err != nil
}

// Summary collects the per-target results of one orchestrator pass.
type Summary struct {
	Results  []Result
	Started  time.Time
	Duration time.Duration
}

func (s Summary) Succeeded() int {
	n := 0
	for _, r := range s.Results {
		if !r.Failed() {
			n++
		}
	}
	return n
}

func (s Summary) Failed() int {
	return len(s.Results) - s.Succeeded()
}

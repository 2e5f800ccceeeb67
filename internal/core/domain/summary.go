package domain

import (
	"fmt"
	"strings"
	"time"
)

// JobStatus is the final state of a dispatched job.
type JobStatus string

// Job statuses.
const (
	JobPassed    JobStatus = "passed"
	JobFailed    JobStatus = "failed"
	JobCancelled JobStatus = "cancelled"
)

// JobOutcome records how a single job ended.
type JobOutcome struct {
	CorrelationID string        `json:"correlation_id"`
	Item          string        `json:"item"`
	Status        JobStatus     `json:"status"`
	ExitCode      int           `json:"exit_code"`
	Duration      time.Duration `json:"duration"`
	Error         string        `json:"error,omitempty"`
}

// Metrics is the machine-readable profile of one or more phases.
type Metrics struct {
	Items     int           `json:"items"`
	Jobs      int           `json:"jobs"`
	Passed    int           `json:"passed"`
	Failed    int           `json:"failed"`
	Cancelled int           `json:"cancelled"`
	Duration  time.Duration `json:"duration"`
}

// Add returns the sum of m and o.
func (m Metrics) Add(o Metrics) Metrics {
	return Metrics{
		Items:     m.Items + o.Items,
		Jobs:      m.Jobs + o.Jobs,
		Passed:    m.Passed + o.Passed,
		Failed:    m.Failed + o.Failed,
		Cancelled: m.Cancelled + o.Cancelled,
		Duration:  m.Duration + o.Duration,
	}
}

func (m Metrics) synopsis() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %s, %d passed", m.Jobs, plural(m.Jobs, "job", "jobs"), m.Passed)
	if m.Failed > 0 {
		fmt.Fprintf(&sb, ", %d failed", m.Failed)
	}
	if m.Cancelled > 0 {
		fmt.Fprintf(&sb, ", %d cancelled", m.Cancelled)
	}
	fmt.Fprintf(&sb, " in %s", m.Duration.Round(time.Millisecond))
	return sb.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// PhaseSummary aggregates the outcomes of one dispatched phase.
type PhaseSummary struct {
	Title    string       `json:"title"`
	Group    string       `json:"group"`
	Tags     []string     `json:"tags,omitempty"`
	Items    int          `json:"items"`
	Jobs     []JobOutcome `json:"jobs"`
	Halted   bool         `json:"halted,omitempty"`
	Started  time.Time    `json:"started"`
	Finished time.Time    `json:"finished"`
}

func (s PhaseSummary) count(status JobStatus) int {
	n := 0
	for _, j := range s.Jobs {
		if j.Status == status {
			n++
		}
	}
	return n
}

// Passed returns the number of jobs that succeeded.
func (s PhaseSummary) Passed() int { return s.count(JobPassed) }

// Failed returns the number of jobs that failed.
func (s PhaseSummary) Failed() int { return s.count(JobFailed) }

// Profile returns the phase metrics.
func (s PhaseSummary) Profile() Metrics {
	var d time.Duration
	if !s.Started.IsZero() && s.Finished.After(s.Started) {
		d = s.Finished.Sub(s.Started)
	}
	return Metrics{
		Items:     s.Items,
		Jobs:      len(s.Jobs),
		Passed:    s.Passed(),
		Failed:    s.Failed(),
		Cancelled: s.count(JobCancelled),
		Duration:  d,
	}
}

// Synopsis returns a one-line human-readable summary, e.g. "Fates debug: 3 jobs, 2 passed, 1 failed in 1.2s".
func (s PhaseSummary) Synopsis() string {
	out := s.Title + ": " + s.Profile().synopsis()
	if s.Halted {
		out += " (halted)"
	}
	return out
}

// RunSummary is the cumulative report across all phases of a command.
type RunSummary struct {
	Phases []PhaseSummary `json:"phases"`
}

// Record appends a completed phase.
func (r *RunSummary) Record(p PhaseSummary) {
	r.Phases = append(r.Phases, p)
}

// Profile sums the metrics of every phase.
func (r RunSummary) Profile() Metrics {
	var m Metrics
	for _, p := range r.Phases {
		m = m.Add(p.Profile())
	}
	return m
}

// Failed returns the number of failed jobs across all phases.
func (r RunSummary) Failed() int {
	return r.Profile().Failed
}

// Synopsis summarizes the whole run.
func (r RunSummary) Synopsis() string {
	if len(r.Phases) == 0 {
		return "No phases run."
	}
	return fmt.Sprintf("%d %s: %s", len(r.Phases), plural(len(r.Phases), "phase", "phases"), r.Profile().synopsis())
}

// RunReport is the persisted record of one command run.
type RunReport struct {
	ID         string         `json:"id"`
	Command    CommandKind    `json:"command"`
	Intentions []Intention    `json:"intentions"`
	Started    time.Time      `json:"started"`
	Finished   time.Time      `json:"finished"`
	Error      string         `json:"error,omitempty"`
	Phases     []PhaseSummary `json:"phases"`
}

// Summary returns the report's phases as a RunSummary.
func (r RunReport) Summary() RunSummary {
	return RunSummary{Phases: r.Phases}
}

package status

import "time"

// MsgPlan announces the items of the next phase.
type MsgPlan struct {
	Items   []string
	Deps    map[string][]string
	Targets []string
}

// MsgSpanStart is sent when a phase or job span begins.
type MsgSpanStart struct {
	SpanID    string
	ParentID  string
	Name      string
	StartTime time.Time
}

// MsgSpanLog carries job output.
type MsgSpanLog struct {
	SpanID string
	Data   []byte
}

// MsgSpanComplete is sent when a phase or job span ends.
type MsgSpanComplete struct {
	SpanID  string
	EndTime time.Time
	Err     error
}

package logs

import "time"

// LogEvent represents a single CloudWatch log event.
type LogEvent struct {
	Timestamp time.Time
	Stream    string
	Message   string
}

// Messages returns the message of each event, in order.
func Messages(events []LogEvent) []string {
	msgs := make([]string, len(events))
	for i, e := range events {
		msgs[i] = e.Message
	}
	return msgs
}

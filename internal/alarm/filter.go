// Package alarm looks up the log lines surrounding a CloudWatch alarm.
package alarm

import (
	"context"
	"fmt"
	"time"

	awslogs "tasnim.dev/aws-ops/internal/aws/logs"
)

// timeLayouts are tried in order by ParseTime. EventBridge emits RFC 3339;
// the second form carries a colon-less offset such as "+0000".
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
}

// LogSearcher finds log events matching a pattern within a time range.
type LogSearcher interface {
	FilterLogEvents(ctx context.Context, logGroup, pattern string, start, end time.Time) ([]awslogs.LogEvent, error)
}

// Query describes one search around an alarm.
type Query struct {
	LogGroup  string
	Pattern   string
	AlarmTime time.Time
	Window    time.Duration
}

// Result is the outcome of a search. Exactly one of Messages and Notice is
// set.
type Result struct {
	Messages []string `json:"messages,omitempty"`
	Notice   string   `json:"notice,omitempty"`
}

// ParseTime parses an alarm timestamp.
func ParseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised alarm time %q", s)
}

// Bounds returns the search range [alarm-window, alarm+window], truncated to
// the millisecond precision CloudWatch Logs uses.
func (q Query) Bounds() (time.Time, time.Time) {
	at := q.AlarmTime.Truncate(time.Millisecond)
	return at.Add(-q.Window), at.Add(q.Window)
}

// NoEventsNotice is returned when the search window holds no matches.
func NoEventsNotice(pattern string) string {
	return fmt.Sprintf("No log events found for pattern %q during the time window", pattern)
}

// Search runs q against s.
func Search(ctx context.Context, s LogSearcher, q Query) (Result, error) {
	if q.LogGroup == "" {
		return Result{}, fmt.Errorf("querying log events: no log group given")
	}
	start, end := q.Bounds()
	events, err := s.FilterLogEvents(ctx, q.LogGroup, q.Pattern, start, end)
	if err != nil {
		return Result{}, fmt.Errorf("querying log events: %w", err)
	}
	if len(events) == 0 {
		return Result{Notice: NoEventsNotice(q.Pattern)}, nil
	}
	return Result{Messages: awslogs.Messages(events)}, nil
}

package logs

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aws/aws-lambda-go/events"
)

// DecodeSubscription unpacks the base64, gzip-compressed payload CloudWatch
// Logs delivers to subscription targets.
func DecodeSubscription(raw events.CloudwatchLogsRawData) (events.CloudwatchLogsData, error) {
	data, err := raw.Parse()
	if err != nil {
		return events.CloudwatchLogsData{}, fmt.Errorf("decode subscription payload: %w", err)
	}
	return data, nil
}

// ReadSubscriptionEvent reads a subscription event of the form
// {"awslogs":{"data":"..."}} from r and decodes it.
func ReadSubscriptionEvent(r io.Reader) (events.CloudwatchLogsData, error) {
	var ev events.CloudwatchLogsEvent
	if err := json.NewDecoder(r).Decode(&ev); err != nil {
		return events.CloudwatchLogsData{}, fmt.Errorf("read subscription event: %w", err)
	}
	if ev.AWSLogs.Data == "" {
		return events.CloudwatchLogsData{}, fmt.Errorf("read subscription event: missing awslogs.data")
	}
	return DecodeSubscription(ev.AWSLogs)
}

// LogEventsJSON encodes the log events of data as a JSON array of
// {id, timestamp, message} objects. No events encode as [].
func LogEventsJSON(data events.CloudwatchLogsData) ([]byte, error) {
	logEvents := data.LogEvents
	if logEvents == nil {
		logEvents = []events.CloudwatchLogsLogEvent{}
	}
	b, err := json.Marshal(logEvents)
	if err != nil {
		return nil, fmt.Errorf("encode log events: %w", err)
	}
	return b, nil
}

package logs

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
)

// CloudWatchLogsAPI defines the subset of CloudWatch Logs API we use.
type CloudWatchLogsAPI interface {
	FilterLogEvents(ctx context.Context, params *cloudwatchlogs.FilterLogEventsInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.FilterLogEventsOutput, error)
}

// Client wraps the CloudWatch Logs API.
type Client struct {
	api CloudWatchLogsAPI
}

// NewClient creates a new logs client.
func NewClient(api CloudWatchLogsAPI) *Client {
	return &Client{api: api}
}

// FilterLogEvents returns every event in logGroup matching pattern between
// start and end (inclusive), following NextToken until the result set is
// exhausted.
func (c *Client) FilterLogEvents(ctx context.Context, logGroup, pattern string, start, end time.Time) ([]LogEvent, error) {
	var events []LogEvent
	var nextToken *string

	for {
		out, err := c.api.FilterLogEvents(ctx, &cloudwatchlogs.FilterLogEventsInput{
			LogGroupName:  aws.String(logGroup),
			FilterPattern: aws.String(pattern),
			StartTime:     aws.Int64(start.UnixMilli()),
			EndTime:       aws.Int64(end.UnixMilli()),
			NextToken:     nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("FilterLogEvents: %w", err)
		}

		for _, e := range out.Events {
			events = append(events, LogEvent{
				Timestamp: time.UnixMilli(aws.ToInt64(e.Timestamp)),
				Stream:    aws.ToString(e.LogStreamName),
				Message:   aws.ToString(e.Message),
			})
		}

		if out.NextToken == nil || aws.ToString(out.NextToken) == aws.ToString(nextToken) {
			break
		}
		nextToken = out.NextToken
	}

	return events, nil
}

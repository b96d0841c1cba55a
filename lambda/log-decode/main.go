// Command log-decode is a Lambda handler subscribed to a CloudWatch Logs
// group. It returns the decoded log events as a JSON response body.
package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"k8s.io/klog/v2"

	awslogs "tasnim.dev/aws-ops/internal/aws/logs"
	"tasnim.dev/aws-ops/internal/logging"
)

func handle(ctx context.Context, ev events.CloudwatchLogsEvent) (events.APIGatewayProxyResponse, error) {
	data, err := awslogs.DecodeSubscription(ev.AWSLogs)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	klog.V(1).Infof("decoded %d events from %s", len(data.LogEvents), data.LogGroup)

	body, err := awslogs.LogEventsJSON(data)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}, nil
}

func main() {
	logging.Setup(os.Getenv("DEBUG") != "", os.Stdout)
	lambda.Start(handle)
}

// Command alarm-filter is a Lambda handler that, given a CloudWatch alarm
// state change event, returns the matching log lines around the alarm time.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"k8s.io/klog/v2"

	"tasnim.dev/aws-ops/internal/alarm"
	awsclient "tasnim.dev/aws-ops/internal/aws"
	awslogs "tasnim.dev/aws-ops/internal/aws/logs"
	"tasnim.dev/aws-ops/internal/config"
	"tasnim.dev/aws-ops/internal/logging"
)

type handler struct {
	searcher alarm.LogSearcher
	cfg      *config.Config
}

func (h *handler) handle(ctx context.Context, ev events.CloudWatchEvent) (alarm.Result, error) {
	q := alarm.Query{
		LogGroup:  h.cfg.LogGroup,
		Pattern:   h.cfg.Pattern(),
		AlarmTime: ev.Time,
		Window:    h.cfg.Window(),
	}
	klog.V(1).Infof("alarm %s at %s, searching %s", ev.ID, ev.Time, q.LogGroup)
	return alarm.Search(ctx, h.searcher, q)
}

func main() {
	logging.Setup(os.Getenv("DEBUG") != "", os.Stdout)

	cfg, err := config.FromEnv(os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	awsCfg, err := awsclient.LoadConfig(context.Background(), "", cfg.DefaultRegion)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	h := &handler{
		searcher: awslogs.NewClient(cloudwatchlogs.NewFromConfig(awsCfg)),
		cfg:      cfg,
	}
	lambda.Start(h.handle)
}

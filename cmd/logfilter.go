package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"tasnim.dev/aws-ops/internal/alarm"
	awsclient "tasnim.dev/aws-ops/internal/aws"
	"tasnim.dev/aws-ops/internal/config"
	"tasnim.dev/aws-ops/internal/logging"
)

func NewLogFilterCmd() *cobra.Command {
	var profile, region string
	var alarmTime, logGroup, pattern string
	var window time.Duration
	var debug bool

	cmd := &cobra.Command{
		Use:   "log-filter",
		Short: "Show log events matching a pattern around an alarm time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(debug, cmd.OutOrStdout())

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			profile, region = cfg.Merge(profile, region)

			at, err := alarm.ParseTime(alarmTime)
			if err != nil {
				return err
			}
			q := alarm.Query{
				LogGroup:  logGroup,
				Pattern:   pattern,
				AlarmTime: at,
				Window:    window,
			}
			if q.LogGroup == "" {
				q.LogGroup = cfg.LogGroup
			}
			if q.LogGroup == "" {
				return errors.New("no log group: pass --log-group or set log_group in the config file")
			}
			if !cmd.Flags().Changed("pattern") {
				q.Pattern = cfg.Pattern()
			}
			if !cmd.Flags().Changed("window") {
				q.Window = cfg.Window()
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			client, err := awsclient.NewServiceClient(ctx, profile, region)
			if err != nil {
				return fmt.Errorf("initializing AWS client: %w", err)
			}
			return runLogFilter(ctx, client.Logs, q, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&alarmTime, "alarm-time", "", "Alarm timestamp (RFC 3339)")
	cmd.Flags().StringVarP(&logGroup, "log-group", "g", "", "Log group to search")
	cmd.Flags().StringVar(&pattern, "pattern", "JiraError", "CloudWatch Logs filter pattern")
	cmd.Flags().DurationVarP(&window, "window", "w", 5*time.Minute, "Search this long either side of the alarm")
	cmd.Flags().StringVarP(&profile, "profile", "p", "", "AWS profile to use")
	cmd.Flags().StringVarP(&region, "region", "r", "", "AWS region to use")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "Print progress and diagnostics")
	_ = cmd.MarkFlagRequired("alarm-time")

	return cmd
}

func runLogFilter(ctx context.Context, s alarm.LogSearcher, q alarm.Query, out io.Writer) error {
	start, end := q.Bounds()
	klog.V(1).Infof("searching %s for %q from %s to %s", q.LogGroup, q.Pattern, start.Format(time.RFC3339), end.Format(time.RFC3339))

	res, err := alarm.Search(ctx, s, q)
	if err != nil {
		return err
	}
	if res.Notice != "" {
		fmt.Fprintln(out, res.Notice)
		return nil
	}
	for _, m := range res.Messages {
		fmt.Fprintln(out, m)
	}
	return nil
}

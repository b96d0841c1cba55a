package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	awsclient "tasnim.dev/aws-ops/internal/aws"
	awsec2 "tasnim.dev/aws-ops/internal/aws/ec2"
	"tasnim.dev/aws-ops/internal/config"
	"tasnim.dev/aws-ops/internal/logging"
	"tasnim.dev/aws-ops/internal/report"
	"tasnim.dev/aws-ops/internal/sgcheck"
	"tasnim.dev/aws-ops/internal/ui"
)

type groupSource interface {
	awsclient.RegionLister
	ListSecurityGroupIDs(ctx context.Context) (awsec2.GroupSet, error)
	ListAttachedGroupIDs(ctx context.Context) (awsec2.GroupSet, error)
}

type sgCheckRun struct {
	groups   groupSource
	uploader reportUploader
	region   string
	check    []string
	output   string
	upload   uploadFlags
	out      io.Writer
}

func NewSGCheckCmd() *cobra.Command {
	var output string
	var debug bool
	var upload uploadFlags

	cmd := &cobra.Command{
		Use:   "sg-check PROFILE REGION SG_ID...",
		Short: "Report which security groups are attached to network interfaces",
		Example: "  aws-ops sg-check ops us-east-1 sg-0a1b2c sg-0d4e5f\n" +
			"  aws-ops sg-check ops us-east-1 sg-0a1b2c,sg-0d4e5f\n" +
			"  aws-ops sg-check ops us-east-1 \"['sg-0a1b2c', 'sg-0d4e5f']\"",
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(debug, cmd.OutOrStdout())

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			check := sgcheck.ParseGroupIDs(args[2:])
			if len(check) == 0 {
				return errors.New("no security group IDs given")
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			client, err := awsclient.NewServiceClient(ctx, args[0], args[1])
			if err != nil {
				return fmt.Errorf("initializing AWS client: %w", err)
			}

			run := &sgCheckRun{
				groups:   client.EC2,
				uploader: client.S3,
				region:   args[1],
				check:    check,
				output:   output,
				upload:   upload.resolve(cfg.ReportBucket, cfg.ReportPrefix),
				out:      cmd.OutOrStdout(),
			}
			return run.execute(ctx)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "sg-report.txt", "Report file to write")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "Print progress and diagnostics")
	cmd.Flags().StringVar(&upload.bucket, "s3-bucket", "", "Upload the report to this S3 bucket")
	cmd.Flags().StringVar(&upload.prefix, "s3-prefix", "", "Key prefix for the uploaded report")

	return cmd
}

func (r *sgCheckRun) execute(ctx context.Context) error {
	if err := awsclient.ValidateRegion(ctx, r.groups, r.region); err != nil {
		return fmt.Errorf("checking region: %w", err)
	}

	existing, err := r.groups.ListSecurityGroupIDs(ctx)
	if err != nil {
		return fmt.Errorf("listing security groups: %w", err)
	}
	klog.V(1).Infof("%d security groups in %s", len(existing), r.region)

	attached, err := r.groups.ListAttachedGroupIDs(ctx)
	if err != nil {
		return fmt.Errorf("listing network interfaces: %w", err)
	}
	klog.V(1).Infof("%d security groups attached to network interfaces", len(attached))

	usage := sgcheck.Classify(r.check, existing, attached)
	if err := report.WriteUsageFile(r.output, r.region, usage); err != nil {
		return err
	}
	ui.PrintUsageSummary(r.out, r.region, usage, r.output)

	return uploadReport(ctx, r.uploader, r.upload, r.output, r.out)
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	awsclient "tasnim.dev/aws-ops/internal/aws"
	awsiam "tasnim.dev/aws-ops/internal/aws/iam"
	awsorg "tasnim.dev/aws-ops/internal/aws/organizations"
	"tasnim.dev/aws-ops/internal/config"
	"tasnim.dev/aws-ops/internal/logging"
	"tasnim.dev/aws-ops/internal/report"
	"tasnim.dev/aws-ops/internal/trust"
	"tasnim.dev/aws-ops/internal/ui"
)

// ErrNoRoles is returned when the account has no IAM roles at all.
var ErrNoRoles = errors.New("no roles found")

type identityResolver interface {
	AccountID(ctx context.Context) (string, error)
}

type accountLister interface {
	ListAccountIDs(ctx context.Context) (awsorg.AccountSet, error)
}

type roleSource interface {
	ListRoles(ctx context.Context) ([]awsiam.IAMRole, error)
	trust.LastUsedLookup
}

type roleTrustRun struct {
	identity identityResolver
	accounts accountLister
	roles    roleSource
	uploader reportUploader
	output   string
	upload   uploadFlags
	out      io.Writer
}

func NewRoleTrustCmd() *cobra.Command {
	var output string
	var debug bool
	var upload uploadFlags

	cmd := &cobra.Command{
		Use:   "role-trust ACCOUNT_PROFILE [ORG_PROFILE]",
		Short: "Report IAM roles trusted by principals outside the account",
		Long: "Classifies each IAM role in the account by the first AWS principal in its trust policy\n" +
			"that is not the account itself: External (outside the Organization), Internal (another\n" +
			"Organization account) or Unknown (not an ARN). ORG_PROFILE must be able to list the\n" +
			"Organization's accounts.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(debug, cmd.OutOrStdout())

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			accountProfile := args[0]
			orgProfile := cfg.OrgProfile
			if len(args) == 2 {
				orgProfile = args[1]
			}
			if orgProfile == "" {
				orgProfile = accountProfile
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			account, err := awsclient.NewServiceClient(ctx, accountProfile, cfg.DefaultRegion)
			if err != nil {
				return fmt.Errorf("initializing AWS client: %w", err)
			}
			org := account
			if orgProfile != accountProfile {
				org, err = awsclient.NewServiceClient(ctx, orgProfile, cfg.DefaultRegion)
				if err != nil {
					return fmt.Errorf("initializing AWS client for %s: %w", orgProfile, err)
				}
			}

			run := &roleTrustRun{
				identity: account,
				accounts: org.Organizations,
				roles:    account.IAM,
				uploader: account.S3,
				output:   output,
				upload:   upload.resolve(cfg.ReportBucket, cfg.ReportPrefix),
				out:      cmd.OutOrStdout(),
			}
			return run.execute(ctx)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "role-trust-report.csv", "Report file to write")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "Print progress and diagnostics")
	cmd.Flags().StringVar(&upload.bucket, "s3-bucket", "", "Upload the report to this S3 bucket")
	cmd.Flags().StringVar(&upload.prefix, "s3-prefix", "", "Key prefix for the uploaded report")

	return cmd
}

func (r *roleTrustRun) execute(ctx context.Context) error {
	caller, err := r.identity.AccountID(ctx)
	if err != nil {
		return fmt.Errorf("resolving caller account: %w", err)
	}
	klog.V(1).Infof("caller account %s", caller)

	org, err := r.accounts.ListAccountIDs(ctx)
	if err != nil {
		return fmt.Errorf("listing organization accounts: %w", err)
	}
	klog.V(1).Infof("organization has %d accounts", len(org))

	if err := report.CreateTrustCSV(r.output); err != nil {
		return err
	}

	roles, err := r.roles.ListRoles(ctx)
	if err != nil {
		return fmt.Errorf("listing roles: %w", err)
	}
	if len(roles) == 0 {
		return ErrNoRoles
	}
	klog.V(1).Infof("listed %d roles", len(roles))

	trust.AttachLastUsed(ctx, roles, r.roles)
	result := trust.Classify(roles, caller, org)
	for _, c := range trust.Classifications {
		for _, e := range result.Bucket(c) {
			klog.V(1).Infof("%s: %s via %s", c, e.RoleName, e.Principal)
		}
	}

	if err := report.AppendTrustCSV(r.output, result); err != nil {
		return err
	}
	ui.PrintTrustSummary(r.out, caller, result, r.output)

	return uploadReport(ctx, r.uploader, r.upload, r.output, r.out)
}

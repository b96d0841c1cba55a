package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"tasnim.dev/aws-ops/cmd"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "aws-ops",
		Short:         "AWS account audit and log triage tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(cmd.NewRoleTrustCmd())
	rootCmd.AddCommand(cmd.NewSGCheckCmd())
	rootCmd.AddCommand(cmd.NewLogFilterCmd())
	rootCmd.AddCommand(cmd.NewLogDecodeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

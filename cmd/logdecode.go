package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	awslogs "tasnim.dev/aws-ops/internal/aws/logs"
)

func NewLogDecodeCmd() *cobra.Command {
	var messagesOnly bool

	cmd := &cobra.Command{
		Use:   "log-decode [FILE]",
		Short: "Decode a CloudWatch Logs subscription payload",
		Long: "Reads an event of the form {\"awslogs\":{\"data\":\"...\"}} from FILE, or from stdin when\n" +
			"FILE is omitted or \"-\", and prints its log events as JSON.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening payload: %w", err)
				}
				defer f.Close()
				in = f
			}
			return runLogDecode(in, cmd.OutOrStdout(), messagesOnly)
		},
	}

	cmd.Flags().BoolVarP(&messagesOnly, "messages", "m", false, "Print only the message of each event")

	return cmd
}

func runLogDecode(in io.Reader, out io.Writer, messagesOnly bool) error {
	data, err := awslogs.ReadSubscriptionEvent(in)
	if err != nil {
		return err
	}

	if messagesOnly {
		for _, e := range data.LogEvents {
			fmt.Fprintln(out, e.Message)
		}
		return nil
	}

	b, err := awslogs.LogEventsJSON(data)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, string(b))
	return nil
}

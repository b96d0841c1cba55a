package report

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"tasnim.dev/aws-ops/internal/sgcheck"
)

const (
	nonexistentHeading = "The following security groups do not exist:"
	inUseHeading       = "The following security groups are in use:"
	unusedHeading      = "The following security groups are not in use:"
)

// WriteUsageFile truncates path and writes the security group usage report.
func WriteUsageFile(path, region string, u sgcheck.Usage) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	defer f.Close()

	if err := WriteUsage(f, region, u); err != nil {
		return err
	}
	return f.Close()
}

// WriteUsage writes the report body: a header naming the region followed by
// one section per non-empty class, one group ID per line.
func WriteUsage(out io.Writer, region string, u sgcheck.Usage) error {
	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "Security Group Usage Report\nRegion: %s\n", region)

	sections := []struct {
		heading string
		ids     []string
	}{
		{nonexistentHeading, u.Nonexistent},
		{inUseHeading, u.InUse},
		{unusedHeading, u.Unused},
	}
	for _, s := range sections {
		if len(s.ids) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s\n", s.heading)
		for _, id := range s.ids {
			fmt.Fprintln(w, id)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

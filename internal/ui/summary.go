package ui

import (
	"fmt"
	"io"
	"strconv"

	"tasnim.dev/aws-ops/internal/sgcheck"
	"tasnim.dev/aws-ops/internal/trust"
)

func countLine(w io.Writer, class string, n int) {
	fmt.Fprintf(w, "  %s  %s\n", CountStyle.Render(strconv.Itoa(n)), RenderClass(class))
}

// PrintTrustSummary prints the per-bucket role counts and where the report
// was written.
func PrintTrustSummary(w io.Writer, account string, r *trust.Report, path string) {
	fmt.Fprintln(w, TitleStyle.Render("Role trust report for "+account))
	for _, c := range trust.Classifications {
		countLine(w, string(c), len(r.Bucket(c)))
	}
	fmt.Fprintln(w, MutedStyle.Render("Report written to "+path))
}

// PrintUsageSummary prints the security group counts and where the report
// was written. Nonexistent groups get a hint about spelling and scope.
func PrintUsageSummary(w io.Writer, region string, u sgcheck.Usage, path string) {
	fmt.Fprintln(w, TitleStyle.Render("Security group usage in "+region))
	countLine(w, "in use", len(u.InUse))
	countLine(w, "unused", len(u.Unused))
	if len(u.Nonexistent) > 0 {
		countLine(w, "nonexistent", len(u.Nonexistent))
		fmt.Fprintln(w, WarningStyle.Render("Check that these security groups are spelled correctly and that you are looking in the correct account or region."))
	}
	fmt.Fprintln(w, MutedStyle.Render("Report written to "+path))
}

// PrintUploaded confirms a report upload.
func PrintUploaded(w io.Writer, location string) {
	fmt.Fprintln(w, SuccessStyle.Render("Uploaded "+location))
}

// PrintWarning prints a non-fatal problem.
func PrintWarning(w io.Writer, msg string) {
	fmt.Fprintln(w, WarningStyle.Render(msg))
}

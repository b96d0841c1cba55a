// Package report writes the flat report files produced by the commands.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"k8s.io/klog/v2"

	"tasnim.dev/aws-ops/internal/trust"
)

// TrustHeader is the first row of the role trust CSV.
var TrustHeader = []string{"Type", "Role Name", "Creation Date", "Last Used"}

// CreateTrustCSV truncates path and writes the header row.
func CreateTrustCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(TrustHeader); err != nil {
		return fmt.Errorf("writing report header: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("writing report header: %w", err)
	}
	return f.Close()
}

// AppendTrustCSV appends the rows of r to the file at path, External first,
// then Internal, then Unknown.
func AppendTrustCSV(path string, r *trust.Report) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening report: %w", err)
	}
	defer f.Close()

	if err := WriteTrustRows(f, r); err != nil {
		return err
	}
	return f.Close()
}

// WriteTrustRows writes one CSV row per classified role. Empty buckets write
// nothing.
func WriteTrustRows(out io.Writer, r *trust.Report) error {
	w := csv.NewWriter(out)
	for _, c := range trust.Classifications {
		entries := r.Bucket(c)
		if len(entries) == 0 {
			klog.V(1).Infof("no %s roles to report", c)
			continue
		}
		for _, e := range entries {
			if err := w.Write([]string{string(c), e.RoleName, e.CreationDate, e.LastUsed}); err != nil {
				return fmt.Errorf("writing %s rows: %w", c, err)
			}
		}
		klog.V(1).Infof("wrote %d %s roles", len(entries), c)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("writing report rows: %w", err)
	}
	return nil
}

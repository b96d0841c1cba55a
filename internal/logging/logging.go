// Package logging configures klog for the command line and Lambda entry
// points.
package logging

import (
	"flag"
	"io"

	"k8s.io/klog/v2"
)

// Setup routes klog output to w without headers. With debug set, V(1)
// progress lines are written too; without it all klog output is dropped.
func Setup(debug bool, w io.Writer) {
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)

	verbosity := "0"
	if debug {
		verbosity = "1"
	} else {
		w = io.Discard
	}

	for name, value := range map[string]string{
		"logtostderr":     "false",
		"alsologtostderr": "false",
		"skip_headers":    "true",
		"one_output":      "true",
		"v":               verbosity,
	} {
		_ = fs.Set(name, value)
	}
	klog.SetOutput(w)
}

// Command seismo computes ground-motion intensity measures for acceleration
// records.
//
// Usage:
//
//	seismo analyze [flags] --input records.json
//	seismo periods
//
// Records are read as JSON or YAML:
//
//	{"records": [{"id": "st01", "direction": "N", "sample_rate": 100, "acceleration": [...]}]}
//
// A record may carry explicit "time" stamps instead of "sample_rate".
// Results are written to stdout; logs go to stderr.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

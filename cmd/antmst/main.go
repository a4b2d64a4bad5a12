// Command antmst computes the MST of a weighted graph description and
// approximates it with a single-ant colony optimisation.
package main

import (
	"context"
	"os"
	"os/signal"
)

var version = "dev"

func main() {
	// trap Ctrl+C and cancel the run between tours
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(ctx, version).Execute(); err != nil {
		stop()
		os.Exit(1)
	}
}

// Command lvmc estimates π by Monte Carlo sampling of the unit square.
//
// Usage:
//
//	lvmc estimate --samples 1000000 --seed 7 --format json
//	lvmc converge --sizes 100,1000,10000 --trials 20 --out study.csv
//	lvmc history --db runs.db
//	lvmc serve --addr :8080 --db runs.db
//	lvmc drill fizzbuzz 15
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

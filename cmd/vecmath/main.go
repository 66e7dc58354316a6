// Command vecmath evaluates vector algebra from the command line.
//
//	vecmath dot 1,2,3 4,5,6
//	vecmath cross 3,4,1 1,9,10
//	vecmath norm --kind linf -- -5,4,2
//	vecmath random -n 8 --out v.bin --compression zstd
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hupe1980/vecmath/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}

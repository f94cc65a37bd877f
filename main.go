// Command sentinel-diagram renders the Sentinel architecture diagram to
// docs/sentinel_architecture.pdf and docs/sentinel_architecture.png.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ankek/sentinel-diagram/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	root := cli.New(os.Stderr, cli.LogInfo).RootCommand(version)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

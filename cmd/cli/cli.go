package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/kcaldas/console/pkg/version"
)

// Execute runs the CLI with all commands
func Execute() {
	RootCmd.Version = version.GetVersion()
	RootCmd.SetVersionTemplate(version.GetInfo().String() + "\n")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := RootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

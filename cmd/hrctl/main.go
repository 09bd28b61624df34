package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-payroll/internal/bootstrap"
	"go-payroll/internal/config"

	"github.com/spf13/cobra"
)

func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "hrctl",
		Short:         "Administrative commands for the payroll backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newMigrateCmd(cfg))
	root.AddCommand(newSalaryCmd(cfg))
	return root
}

func main() {
	cfg, logger, err := bootstrap.Setup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(cfg).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

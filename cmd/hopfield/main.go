package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/drakos74/hopfield/internal/storage"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hopfield",
		Short: "Hebbian associative memory for 16x16 bitmaps",
		Long: `hopfield trains hebbian weight matrices from a directory of 16x16 plain
bitmaps (.pbm) and generates corrupted probes (pixel flips or crops) to test recall.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Config file (.json or .yaml), defaults to $HOPFIELD_CONFIG")
	rootCmd.PersistentFlags().String("env", ".env", "Environment file to load if present")
	rootCmd.PersistentFlags().String("label", storage.DefaultLabel, "Storage label of the weight matrix")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")

	rootCmd.AddCommand(
		newVersionCmd(),
		newTrainCmd(),
		newCorruptCmd(),
		newInspectCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return printJSON(cmd, map[string]string{"version": version})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "hopfield version %s\n", version)
			return nil
		},
	}
}

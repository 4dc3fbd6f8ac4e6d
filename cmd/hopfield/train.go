package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTrainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a weight matrix from a directory of patterns",
		Long: `Train a hebbian weight matrix from all .pbm files of a directory and store it
under the given label. Training always rebuilds the matrix from the full dataset.

Examples:
  hopfield train --dataset ./dataset
  hopfield train --dataset ./digits --label digits`,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := e.close(); cerr != nil && err == nil {
					err = cerr
				}
			}()

			dataset := e.cfg.Dataset
			if cmd.Flags().Changed("dataset") {
				dataset, _ = cmd.Flags().GetString("dataset")
			}

			record, err := e.memory.Learn(cmd.Context(), key(cmd), dataset)
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return printJSON(cmd, record.Run)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "run:      %s\n", record.ID)
			fmt.Fprintf(out, "label:    %s\n", record.Label)
			fmt.Fprintf(out, "patterns: %d\n", record.Patterns)
			fmt.Fprintf(out, "weights:  %s\n", record.Summary)
			return nil
		},
	}

	cmd.Flags().String("dataset", "", "Directory of .pbm patterns (defaults to the config dataset)")

	return cmd
}

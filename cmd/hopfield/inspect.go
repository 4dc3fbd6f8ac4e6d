package main

import (
	"fmt"

	"github.com/drakos74/hopfield/internal/math/ml"
	"github.com/spf13/cobra"
)

type inspection struct {
	ID        string     `json:"id"`
	Label     string     `json:"label"`
	Patterns  int        `json:"patterns"`
	Sources   []string   `json:"sources"`
	Summary   ml.Summary `json:"summary"`
	Symmetric bool       `json:"symmetric"`
	ZeroDiag  bool       `json:"zero_diagonal"`
}

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show a stored weight matrix",
		Long: `Load the weight matrix stored under the label and print its statistics and
structural checks. With --history all training runs of the label are listed.`,
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

			jsonOut, _ := cmd.Flags().GetBool("json")
			out := cmd.OutOrStdout()

			if h, _ := cmd.Flags().GetBool("history"); h {
				runs, err := e.memory.History(key(cmd))
				if err != nil {
					return err
				}
				if jsonOut {
					return printJSON(cmd, runs)
				}
				for _, r := range runs {
					fmt.Fprintf(out, "%s  %s  patterns=%d  %s\n", r.Time.Format("2006-01-02 15:04:05"), r.ID, r.Patterns, r.Summary)
				}
				return nil
			}

			record, err := e.memory.Recall(cmd.Context(), key(cmd))
			if err != nil {
				return err
			}
			i := inspection{
				ID:        record.ID,
				Label:     record.Label,
				Patterns:  record.Patterns,
				Sources:   record.Sources,
				Summary:   ml.Summarize(record.Weights),
				Symmetric: record.Weights.IsSymmetric(),
				ZeroDiag:  record.Weights.HasZeroDiagonal(),
			}
			if jsonOut {
				return printJSON(cmd, i)
			}
			fmt.Fprintf(out, "run:       %s\n", i.ID)
			fmt.Fprintf(out, "label:     %s\n", i.Label)
			fmt.Fprintf(out, "patterns:  %d %v\n", i.Patterns, i.Sources)
			fmt.Fprintf(out, "weights:   %s\n", i.Summary)
			fmt.Fprintf(out, "symmetric: %v\n", i.Symmetric)
			fmt.Fprintf(out, "zero diag: %v\n", i.ZeroDiag)
			return nil
		},
	}

	cmd.Flags().Bool("history", false, "List all training runs of the label")

	return cmd
}

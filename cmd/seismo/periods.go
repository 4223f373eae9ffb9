package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-seismic/measure/response"
)

func newPeriodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "periods",
		Short: "Print the default response-spectrum period grid in seconds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, p := range response.DefaultPeriods() {
				if _, err := fmt.Fprintf(w, "%.2f\n", p); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

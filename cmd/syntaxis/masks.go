package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ellinika/syntaxis/internal/adapter/sqlite"
)

var masksCmd = &cobra.Command{
	Use:   "masks",
	Short: "Recompute feature masks from stored forms",
	Long: `Masks rebuilds every word's feature masks from its stored surface forms.
Run it after editing forms directly in the database; matching relies on
the masks, not the forms themselves.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := sqlite.Open(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		changed, err := store.RecomputeAllMasks(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("recomputed masks, %d word(s) changed\n", changed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(masksCmd)
}

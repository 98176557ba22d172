package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ellinika/syntaxis/internal/adapter/sqlite"
)

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Print the number of words in the lexicon",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := sqlite.Open(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := store.Count(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println(n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(countCmd)
}

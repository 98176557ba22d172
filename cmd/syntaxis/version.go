package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ellinika/syntaxis/internal/app"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of syntaxis",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("syntaxis %s\n", app.BuildVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

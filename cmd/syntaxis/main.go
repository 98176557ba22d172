// Package main is the entry point for the syntaxis CLI, a local
// command-line surface over an SQLite lexicon: generate fragments from
// templates, recompute word feature masks, inspect the store.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

// rootCmd is the base command for the syntaxis CLI.
var rootCmd = &cobra.Command{
	Use:   "syntaxis",
	Short: "Greek sentence fragment generator",
	Long: `syntaxis generates grammatically coherent Modern Greek sentence
fragments from feature templates, drawing words from a local SQLite lexicon.

Templates name a part of speech per slot and constrain it with grammatical
features: "[article:nom:masc:sg] [noun:nom:masc:sg]". Wildcards such as
*gender* are drawn at random; a seed makes the draw reproducible.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "./lexicon.db", "path to the SQLite lexicon database")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

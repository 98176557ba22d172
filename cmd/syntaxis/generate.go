package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ellinika/syntaxis/internal/adapter/sqlite"
	"github.com/ellinika/syntaxis/internal/config"
	"github.com/ellinika/syntaxis/internal/generator"
	"github.com/ellinika/syntaxis/internal/lexicon"
	"github.com/ellinika/syntaxis/internal/service/generate"
)

var generateCmd = &cobra.Command{
	Use:   "generate <template>",
	Short: "Generate a fragment from a template",
	Long: `Generate draws words from the lexicon to fill the template's slots and
prints the resulting fragment. With --seed the wildcard draws are
reproducible; without it a random seed is chosen and printed so the run
can be replayed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, _ := cmd.Flags().GetUint64("seed")
		retries, _ := cmd.Flags().GetInt("retries")
		asJSON, _ := cmd.Flags().GetBool("json")

		store, err := sqlite.Open(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		svc := generate.NewService(logger, generator.New(lexicon.NewEngine(store)), config.GenerationConfig{
			MaxRetries: retries,
		})

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		input := generate.Input{Template: args[0]}
		if cmd.Flags().Changed("seed") {
			input.Seed = &seed
		}

		out, err := svc.Generate(ctx, input)
		if err != nil {
			return err
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		fmt.Println(out.Fragment)
		for _, w := range out.Words {
			line := fmt.Sprintf("  %-12s %s", w.POS, strings.Join(w.Surface, " / "))
			if len(w.Translations) > 0 {
				line += "  (" + strings.Join(w.Translations, ", ") + ")"
			}
			fmt.Println(line)
		}
		for _, warn := range out.Warnings {
			fmt.Fprintln(os.Stderr, "warning:", warn.String())
		}
		fmt.Printf("seed: %d\n", out.Seed)
		return nil
	},
}

func init() {
	generateCmd.Flags().Uint64("seed", 0, "seed for reproducible wildcard draws")
	generateCmd.Flags().Int("retries", 3, "wildcard re-draw attempts when no word matches")
	generateCmd.Flags().Bool("json", false, "print the full generation result as JSON")

	rootCmd.AddCommand(generateCmd)
}

package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verdantlab/lsys/pkg/pipeline"
	"github.com/verdantlab/lsys/pkg/system"
)

// playCommand creates the interactive generation browser command.
func (c *CLI) playCommand() *cobra.Command {
	var (
		noCache bool
	)
	opts := pipeline.Options{Iterations: defaultIterations}

	cmd := &cobra.Command{
		Use:   "play [system]",
		Short: "Step through a derivation generation by generation",
		Long: `Step through a derivation generation by generation.

The play command derives a system and opens an interactive viewer where
the arrow keys move between generations, from the axiom to the final
string. Useful for watching how a rewriting rule unfolds.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.System = args[0]
			if !cmd.Flags().Changed("seed") {
				if sys := system.Find(opts.System); sys != nil && sys.Random() {
					opts.Seed = uint64(time.Now().UnixNano())
				}
			}
			return c.runPlay(cmd.Context(), opts, noCache)
		},
	}

	cmd.Flags().UintVarP(&opts.Iterations, "iterations", "n", defaultIterations, "number of rewrite iterations")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "randomness seed for stochastic systems")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runPlay derives the system and hands the result to the TUI.
func (c *CLI) runPlay(ctx context.Context, opts pipeline.Options, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Cache.Close()

	result, err := runner.Derive(ctx, opts)
	if err != nil {
		return err
	}

	model := NewPlayModel(result)
	if _, err := tea.NewProgram(model, tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}

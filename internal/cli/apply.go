package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ironsheep/pixelgrid-mcp/internal/picture"
	"github.com/ironsheep/pixelgrid-mcp/internal/recipe"
)

// applyOpts holds the command-line flags for the apply command.
type applyOpts struct {
	recipe string // recipe file
	output string // overrides the recipe's output
	dryRun bool   // validate only
}

func newApplyCmd() *cobra.Command {
	var opts applyOpts

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Run a TOML recipe and write the resulting image",
		Example: `  pixelgrid-mcp apply --recipe temple.toml
  pixelgrid-mcp apply -r collage.toml -o collage.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.recipe, "recipe", "r", "", "recipe file (TOML)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output image, overrides the recipe")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "validate the recipe without running it")
	_ = cmd.MarkFlagRequired("recipe")

	return cmd
}

func runApply(cmd *cobra.Command, opts applyOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	r, err := recipe.Load(opts.recipe)
	if err != nil {
		return err
	}
	if opts.output != "" {
		r.Output = opts.output
	}
	if opts.dryRun {
		logger.Info("Recipe is valid", "recipe", opts.recipe, "layers", len(r.Layers), "steps", len(r.Steps))
		return nil
	}
	if r.Output == "" {
		return fmt.Errorf("recipe %s has no output; pass --output", opts.recipe)
	}

	prog := newProgress(logger)
	res, err := r.Run(ctx, picture.NewCache(), logger)
	if err != nil {
		return err
	}
	for _, s := range res.Steps {
		if s.Stats != nil {
			logger.Info("Region stats", "region", s.Stats.Region, "pixels", s.Stats.Pixels,
				"red", s.Stats.Red, "green", s.Stats.Green, "blue", s.Stats.Blue)
		}
	}

	if err := res.Picture.Save(r.Output); err != nil {
		return err
	}
	prog.done("Wrote "+r.Output, "width", res.Width, "height", res.Height, "steps", len(res.Steps))
	return nil
}

func newOpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the operations a recipe step may name",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(recipe.Ops(), "\n"))
		},
	}
}

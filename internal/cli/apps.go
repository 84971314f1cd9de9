package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/squashgraph/pkg/source/django"
)

// appsCommand lists the apps the graph command would load.
func (c *CLI) appsCommand() *cobra.Command {
	var root, config string

	cmd := &cobra.Command{
		Use:   "apps",
		Short: "List Django apps and their migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(config)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("root") && cfg.Root != "" {
				root = cfg.Root
			}
			return c.runApps(cmd.Context(), cfg, root)
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "project root searched for apps")
	cmd.Flags().StringVarP(&config, "config", "c", "", "config file (default ./"+configFileName+")")
	return cmd
}

func (c *CLI) runApps(ctx context.Context, cfg *Config, root string) error {
	logger := loggerFromContext(ctx)

	apps, err := cfg.resolveApps(root)
	if err != nil {
		return err
	}
	if len(apps) == 0 {
		printError("no apps with migrations below %s", root)
		return nil
	}

	loader := django.NewLoader(logger)
	var total, squashes int
	for _, app := range apps {
		records, err := loader.Load(ctx, app)
		if err != nil {
			return err
		}
		var n int
		for _, r := range records {
			if r.IsSquash() {
				n++
			}
		}
		total += len(records)
		squashes += n

		value := fmt.Sprintf("%d migrations", len(records))
		if n > 0 {
			value += fmt.Sprintf(", %d squashed", n)
		}
		printKeyValue(app.Label, value)
	}
	fmt.Fprintln(stdout, StyleDim.Render(fmt.Sprintf("  %d apps · %d migrations · %d squashing", len(apps), total, squashes)))
	return nil
}

package cli

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/runoshun/tasklist/internal/app"
	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/usecase"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	var initFlag, force bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialize configuration",
		Long: `Show configuration file locations and the effective configuration.

With --init, write a commented template to ./.tasklist.toml.
Use --force to overwrite an existing file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil {
				return errNoContainer
			}
			w := cmd.OutOrStdout()

			if initFlag {
				out, err := c.InitConfigUseCase().Execute(cmd.Context(), usecase.InitConfigInput{
					Config: domain.NewDefaultConfig(),
					Force:  force,
				})
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(w, "Created config: %s\n", out.Path)
				return nil
			}

			out, err := c.ShowConfigUseCase().Execute(cmd.Context(), usecase.ShowConfigInput{})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(w, "[Loaded from]")
			for _, info := range []domain.ConfigInfo{out.GlobalConfig, out.ProjectConfig} {
				if info.Exists {
					_, _ = fmt.Fprintf(w, "- %s\n", info.Path)
				} else {
					_, _ = fmt.Fprintf(w, "- %s (not found)\n", info.Path)
				}
			}
			_, _ = fmt.Fprintln(w)

			_, _ = fmt.Fprintln(w, "[Effective Config]")
			return formatEffectiveConfig(w, out.Effective)
		},
	}

	cmd.Flags().BoolVar(&initFlag, "init", false, "Write a config template to ./.tasklist.toml")
	cmd.Flags().BoolVar(&force, "force", false, "With --init, overwrite an existing file")

	return cmd
}

// formatEffectiveConfig writes the config in TOML format.
func formatEffectiveConfig(w io.Writer, cfg *domain.Config) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(false)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

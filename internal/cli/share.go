package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/tasklist/internal/app"
	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/usecase"
)

// newExportCommand creates the export command.
func newExportCommand(c *app.Container, opts *globalOptions) *cobra.Command {
	var withURL, copyOut bool
	var baseURL string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print a share code for the whole list",
		Long: `Print a URL-safe share code containing every task (the filter is ignored).

With --url the code is appended to the share base URL as ?list=<code>. The base
URL comes from [share] base_url in the config or --base-url.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := loadBoard(cmd, c, opts)
			if err != nil {
				return err
			}

			out, err := c.ExportListUseCase().Execute(cmd.Context(), usecase.ExportListInput{
				Board:   loaded.Board,
				BaseURL: baseURL,
				WithURL: withURL || baseURL != "",
				Copy:    copyOut,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out.URL != "" {
				_, _ = fmt.Fprintln(w, out.URL)
			} else {
				_, _ = fmt.Fprintln(w, out.Token)
			}
			if out.Copied {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withURL, "url", false, "Print a share URL instead of the bare code")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Share base URL (overrides [share] base_url; implies --url)")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "Also copy the result to the clipboard")

	return cmd
}

// newImportCommand creates the import command.
func newImportCommand(c *app.Container, opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <code|url>",
		Short: "Replace the list with a shared one",
		Long: `Replace the whole list with the tasks in a share code.

The argument is either the bare code or a share URL carrying ?list=<code>.
If the code cannot be decoded or validated, the list is left unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadBoard(cmd, c, opts)
			if err != nil {
				return err
			}

			out, err := c.ImportListUseCase().Execute(cmd.Context(), usecase.ImportListInput{
				Board: loaded.Board,
				Input: args[0],
			})
			if err != nil {
				if class := domain.FailureClass(err); class != "" {
					return fmt.Errorf("import failed (%s): %w", class, err)
				}
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d tasks\n", out.Count)
			return nil
		},
	}

	return cmd
}

// errNoContainer is returned by commands that need configuration but run without it.
var errNoContainer = errors.New("tasklist is not initialized")

// Package cli provides the command-line interface for tasklist.
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/runoshun/tasklist/internal/app"
	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/tui"
	"github.com/runoshun/tasklist/internal/usecase"
)

// Command group IDs.
const (
	groupTask  = "task"
	groupShare = "share"
	groupSetup = "setup"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// globalOptions holds flags shared by every command.
type globalOptions struct {
	shareInput string // --list: share code or URL imported at startup
}

// NewRootCommand creates the root command for tasklist.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "tasklist",
		Short: "A small task list with shareable links",
		Long: `tasklist keeps a single ordered list of tasks.

Add, complete and delete tasks from the command line or the interactive TUI
(run without arguments). The whole list can be shared as a URL-safe code and
imported elsewhere with "tasklist import" or the --list flag.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, c, opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.shareInput, "list", "",
		"Share code or share URL to import at startup (replaces the list)")

	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Commands:"},
		&cobra.Group{ID: groupShare, Title: "Sharing:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	addCmd := newAddCommand(c, opts)
	addCmd.GroupID = groupTask

	listCmd := newListCommand(c, opts)
	listCmd.GroupID = groupTask

	doneCmd := newDoneCommand(c, opts)
	doneCmd.GroupID = groupTask

	rmCmd := newRmCommand(c, opts)
	rmCmd.GroupID = groupTask

	tuiCmd := newTUICommand(c, opts)
	tuiCmd.GroupID = groupTask

	exportCmd := newExportCommand(c, opts)
	exportCmd.GroupID = groupShare

	importCmd := newImportCommand(c, opts)
	importCmd.GroupID = groupShare

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		addCmd,
		listCmd,
		doneCmd,
		rmCmd,
		tuiCmd,
		exportCmd,
		importCmd,
		configCmd,
	)

	return root
}

// loadBoard loads the session state, applying --list if given.
// A failed startup import is reported on stderr and the stored list is used.
func loadBoard(cmd *cobra.Command, c *app.Container, opts *globalOptions) (*usecase.LoadBoardOutput, error) {
	if c == nil {
		return nil, errNoContainer
	}
	out, err := c.LoadBoardUseCase().Execute(cmd.Context(), usecase.LoadBoardInput{
		ShareInput: opts.shareInput,
	})
	if err != nil {
		return nil, err
	}
	if out.ImportErr != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Import failed (%s): %v\n", domain.FailureClass(out.ImportErr), out.ImportErr)
	} else if opts.shareInput != "" {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Imported %d tasks from shared list\n", out.Imported)
	}
	return out, nil
}

func runTUI(cmd *cobra.Command, c *app.Container, opts *globalOptions) error {
	loaded, err := loadBoard(cmd, c, opts)
	if err != nil {
		return err
	}
	return launchTUIFunc(c, loaded.Board, loaded.ImportErr)
}

// launchTUI runs the interactive TUI on the alternate screen.
func launchTUI(c *app.Container, board *domain.Board, startupErr error) error {
	model := tui.New(c, board, startupErr)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// newTUICommand creates the tui command for launching the interactive TUI.
// Same as running tasklist without arguments.
func newTUICommand(c *app.Container, opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive TUI",
		Long:  `Launch the interactive terminal user interface for managing tasks.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, c, opts)
		},
	}
}

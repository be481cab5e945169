package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runoshun/tasklist/internal/app"
	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/usecase"
)

// newAddCommand creates the add command.
func newAddCommand(c *app.Container, opts *globalOptions) *cobra.Command {
	var fromFile string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "add [text...]",
		Short: "Add a task",
		Long: `Add a task to the end of the list.

All arguments are joined with spaces. Blank text is ignored.

Use --from to add several tasks from a YAML file. The file is a list of
strings or {text, completed} mappings; nothing is added if any entry is invalid.`,
		Example: `  tasklist add Buy milk
  tasklist add --from tasks.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadBoard(cmd, c, opts)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			if fromFile != "" {
				if len(args) > 0 {
					return errors.New("cannot combine --from with task text")
				}
				return addFromFile(cmd, c, loaded.Board, fromFile, dryRun)
			}

			out, err := c.AddTaskUseCase().Execute(cmd.Context(), usecase.AddTaskInput{
				Board: loaded.Board,
				Text:  strings.Join(args, " "),
			})
			if errors.Is(err, domain.ErrEmptyInput) {
				return nil
			}
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(w, "Added task #%d: %s\n", out.Task.ID, out.Task.Text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&fromFile, "from", "f", "", "Add tasks from a YAML file (\"-\" for stdin)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "With --from, validate and print without adding")

	return cmd
}

func addFromFile(cmd *cobra.Command, c *app.Container, board *domain.Board, path string, dryRun bool) error {
	var content []byte
	var err error
	if path == "-" {
		content, err = io.ReadAll(cmd.InOrStdin())
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("read task file: %w", err)
	}

	out, err := c.AddTasksFromFileUseCase().Execute(cmd.Context(), usecase.AddTasksFromFileInput{
		Board:   board,
		Content: string(content),
		DryRun:  dryRun,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if dryRun {
		_, _ = fmt.Fprintf(w, "Would add %d tasks:\n", len(out.Tasks))
		for _, t := range out.Tasks {
			_, _ = fmt.Fprintf(w, "  %s %s\n", checkbox(t.Completed), t.Text)
		}
		return nil
	}
	for _, t := range out.Tasks {
		_, _ = fmt.Fprintf(w, "Added task #%d: %s\n", t.ID, t.Text)
	}
	return nil
}

// newListCommand creates the list command.
func newListCommand(c *app.Container, opts *globalOptions) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Long: `List tasks in insertion order.

Each line shows the display number, the stable task id, the completion mark,
the text, the date it was added and its age. Display numbers depend on the
filter; ids never change.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := loadBoard(cmd, c, opts)
			if err != nil {
				return err
			}
			if _, err := c.SetFilterUseCase().Execute(cmd.Context(), usecase.SetFilterInput{
				Board: loaded.Board,
				Mode:  filter,
			}); err != nil {
				return err
			}

			out, err := c.ListVisibleUseCase().Execute(cmd.Context(), usecase.ListVisibleInput{Board: loaded.Board})
			if err != nil {
				return err
			}
			printTaskList(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "all", "Filter: all, active or completed")

	return cmd
}

// printTaskList writes the visible rows and a summary line.
func printTaskList(w io.Writer, out *usecase.ListVisibleOutput) {
	if len(out.Tasks) == 0 {
		_, _ = fmt.Fprintln(w, "No tasks.")
	}
	for _, t := range out.Tasks {
		_, _ = fmt.Fprintf(w, "[%d] #%d %s %s (Added: %s) — %s\n",
			t.DisplayIndex,
			t.ID,
			checkbox(t.Completed),
			t.Text,
			displayDate(t.CreatedDate),
			t.AgeLabel,
		)
	}
	_, _ = fmt.Fprintf(w, "\n%d active, %d completed (filter: %s)\n", out.Active, out.Completed, out.Filter)
}

func checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

func displayDate(date string) string {
	if date == "" {
		return "unknown"
	}
	return date
}

// targetFlags selects tasks either by id arguments or by display number.
type targetFlags struct {
	filter string
	nth    int
}

func (f *targetFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.nth, "nth", 0, "Select the n-th task as numbered by 'list --filter'")
	cmd.Flags().StringVar(&f.filter, "filter", "all", "Filter used to number tasks for --nth")
}

// resolveTargets turns id arguments or --nth into stable task ids.
func resolveTargets(cmd *cobra.Command, c *app.Container, board *domain.Board, args []string, f targetFlags) ([]domain.TaskID, error) {
	if f.nth != 0 {
		if len(args) > 0 {
			return nil, errors.New("cannot combine --nth with task ids")
		}
		if _, err := c.SetFilterUseCase().Execute(cmd.Context(), usecase.SetFilterInput{
			Board: board,
			Mode:  f.filter,
		}); err != nil {
			return nil, err
		}
		id, ok := board.ResolveDisplayIndex(f.nth, c.Clock.Now())
		if !ok {
			return nil, fmt.Errorf("no task number %d in %s view", f.nth, board.Filter)
		}
		return []domain.TaskID{id}, nil
	}

	if len(args) == 0 {
		return nil, errors.New("task id or --nth is required")
	}
	ids := make([]domain.TaskID, 0, len(args))
	for _, arg := range args {
		id, err := parseTaskID(arg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseTaskID parses "3" or "#3".
func parseTaskID(s string) (domain.TaskID, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(s, "#"))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid task id %q", s)
	}
	return domain.TaskID(n), nil
}

// newDoneCommand creates the done command.
func newDoneCommand(c *app.Container, opts *globalOptions) *cobra.Command {
	var targets targetFlags

	cmd := &cobra.Command{
		Use:     "done [id...]",
		Aliases: []string{"toggle"},
		Short:   "Toggle task completion",
		Long: `Toggle the completion flag of tasks.

Tasks are selected by stable id, or with --nth by their number in
'tasklist list --filter <mode>'.`,
		Example: `  tasklist done 3
  tasklist done --nth 1 --filter active`,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadBoard(cmd, c, opts)
			if err != nil {
				return err
			}
			ids, err := resolveTargets(cmd, c, loaded.Board, args, targets)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			uc := c.ToggleTaskUseCase()
			for _, id := range ids {
				out, err := uc.Execute(cmd.Context(), usecase.ToggleTaskInput{Board: loaded.Board, ID: id})
				if err != nil {
					return err
				}
				if !out.Found {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "No task #%d\n", id)
					continue
				}
				state := "active"
				if out.Task.Completed {
					state = "completed"
				}
				_, _ = fmt.Fprintf(w, "Task #%d marked %s: %s\n", out.Task.ID, state, out.Task.Text)
			}
			return nil
		},
	}
	targets.register(cmd)

	return cmd
}

// newRmCommand creates the rm command.
func newRmCommand(c *app.Container, opts *globalOptions) *cobra.Command {
	var targets targetFlags

	cmd := &cobra.Command{
		Use:     "rm [id...]",
		Aliases: []string{"delete"},
		Short:   "Delete tasks",
		Long: `Delete tasks from the list.

Tasks are selected by stable id, or with --nth by their number in
'tasklist list --filter <mode>'.`,
		Example: `  tasklist rm 3 4
  tasklist rm --nth 2 --filter completed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadBoard(cmd, c, opts)
			if err != nil {
				return err
			}
			ids, err := resolveTargets(cmd, c, loaded.Board, args, targets)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			uc := c.DeleteTaskUseCase()
			for _, id := range ids {
				out, err := uc.Execute(cmd.Context(), usecase.DeleteTaskInput{Board: loaded.Board, ID: id})
				if err != nil {
					return err
				}
				if !out.Found {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "No task #%d\n", id)
					continue
				}
				_, _ = fmt.Fprintf(w, "Deleted task #%d: %s\n", out.Task.ID, out.Task.Text)
			}
			return nil
		},
	}
	targets.register(cmd)

	return cmd
}

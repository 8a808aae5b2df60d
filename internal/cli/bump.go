package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/distrowave/distrowave/pkg/collection"
	"github.com/distrowave/distrowave/pkg/errors"
)

// bumpCommand creates the bump command.
func (c *CLI) bumpCommand() *cobra.Command {
	var (
		dir string
		yes bool
	)

	cmd := &cobra.Command{
		Use:   "bump <library> <from> <to>",
		Short: "Rewrite a library's version pin across all collection files",
		Long: `Finds every collection file in the directory that pins <library> to
<from> and rewrites the pin to <to>. Shows the resulting diffs and asks
for confirmation before touching any file.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			library, from, to := args[0], args[1], args[2]
			if err := errors.ValidateTargetName(library); err != nil {
				return err
			}
			if from == to {
				return errors.New(errors.ErrCodeInvalidInput, "from and to versions are identical")
			}

			changes, err := collection.PlanRewrite(dir, library, from, to)
			if err != nil {
				return err
			}
			if len(changes) == 0 {
				printInfo("no file pins %s at %s", library, from)
				return nil
			}

			for _, change := range changes {
				diff, err := change.UnifiedDiff()
				if err != nil {
					return err
				}
				for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
					printDiffLine(line)
				}
				printNewline()
			}

			if !yes {
				ok, err := confirm(fmt.Sprintf("Rewrite %d file(s)?", len(changes)))
				if err != nil {
					return errors.Wrap(errors.ErrCodeInternal, err, "confirmation prompt")
				}
				if !ok {
					printInfo("aborted, no files changed")
					return nil
				}
			}

			if err := collection.Apply(changes); err != nil {
				return err
			}
			for _, change := range changes {
				printFile(change.Path)
			}
			printSuccess("bumped %s from %s to %s in %d file(s)", library, from, to, len(changes))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "directory holding the collection files")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "apply without asking for confirmation")

	return cmd
}

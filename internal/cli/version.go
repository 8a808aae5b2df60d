package cli

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/distrowave/distrowave/pkg/collection"
	"github.com/distrowave/distrowave/pkg/errors"
)

// versionCommand creates the version command.
func (c *CLI) versionCommand() *cobra.Command {
	var files []string

	cmd := &cobra.Command{
		Use:   "version -c <collection.yaml> <package>...",
		Short: "Extract package versions from collection files",
		Long: `Looks up the pinned version of each package in each given collection file
and prints the distinct versions found. A pin of "main" resolves to the
collection that carries the main line of the package.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(files) == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "at least one -c collection file is required")
			}

			// A package may only exist in some of the given collections;
			// collections that lack it are skipped. Only an empty union of
			// results is an error, except in the single-file single-package
			// case where the miss is reported against that file directly.
			single := len(files) == 1 && len(args) == 1

			seen := make(map[string]struct{})
			var versions []string
			for _, file := range files {
				doc, err := collection.Load(file)
				if err != nil {
					return err
				}
				root := filepath.Dir(file)
				for _, pkg := range args {
					v, ok := collection.PackageVersion(doc, pkg, root)
					if !ok {
						if single {
							return errors.New(errors.ErrCodePackageNotFound,
								"package %s not found in %s (available: %s)",
								pkg, file, strings.Join(doc.PackageNames(), " "))
						}
						continue
					}
					if _, dup := seen[v]; !dup {
						seen[v] = struct{}{}
						versions = append(versions, v)
					}
				}
			}
			if len(versions) == 0 {
				return errors.New(errors.ErrCodePackageNotFound,
					"no version found for %s in any given collection",
					strings.Join(args, " "))
			}

			sort.Strings(versions)
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(versions, " "))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&files, "collection", "c", nil, "collection file to read (repeatable)")

	return cmd
}

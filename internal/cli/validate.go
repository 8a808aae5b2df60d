package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/distrowave/distrowave/pkg/collection"
	"github.com/distrowave/distrowave/pkg/errors"
	"github.com/distrowave/distrowave/pkg/gitcli"
)

// validateCommand creates the validate command.
func (c *CLI) validateCommand() *cobra.Command {
	var (
		dir     string
		remote  string
		branch  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check changed version references against existing remote branches",
		Long: `Diffs the working tree of a metadata checkout against a base branch and,
for every collection entry touched by the diff, verifies that the pinned
version exists as a branch on the entry's repository.

Failures are reported as GitHub workflow annotations so the command can
run directly in CI.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			git := c.newGit(ctx, noCache)

			useRemote := remote
			url, err := git.RemoteURL(ctx, dir, useRemote)
			if err != nil {
				return err
			}
			if url == "" {
				printWarning("remote %q not configured, falling back to origin", useRemote)
				useRemote = "origin"
				url, err = git.RemoteURL(ctx, dir, useRemote)
				if err != nil {
					return err
				}
			}
			if url != "" && !sameRepo(url, c.Config.Repo) {
				return errors.New(errors.ErrCodeGitRemote,
					"remote %s points at %s, expected %s", useRemote, url, c.Config.Repo)
			}

			diff, err := git.Diff(ctx, dir, useRemote+"/"+branch)
			if err != nil {
				return err
			}
			changed, err := gitcli.ChangedLines(diff)
			if err != nil {
				return err
			}

			var failures int
			for path, lines := range changed {
				if !strings.HasSuffix(path, ".yaml") || strings.HasPrefix(path, ".github/") {
					continue
				}
				entries, err := collection.Entries(filepath.Join(dir, path))
				if err != nil {
					printWarning("skipping %s: %v", path, err)
					continue
				}
				for _, entry := range collection.Touched(entries, lines) {
					if entry.Version == "" || entry.URL == "" {
						continue
					}
					ok, err := git.BranchExists(ctx, entry.URL, entry.Version)
					if err != nil {
						return err
					}
					if ok {
						logger.Debugf("%s: %s@%s ok", path, entry.Name, entry.Version)
						continue
					}
					failures++
					fmt.Printf("::error file=%s,line=%d,title=Invalid Repo::branch %s does not exist in %s\n",
						path, entry.Line, entry.Version, entry.URL)
				}
			}

			if failures > 0 {
				return errors.New(errors.ErrCodeInvalidInput, "%d invalid reference(s) found", failures)
			}
			printSuccess("all changed references point at existing branches")
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "metadata checkout to validate")
	cmd.Flags().StringVar(&remote, "remote", "upstream", "git remote holding the base branch")
	cmd.Flags().StringVar(&branch, "branch", "master", "base branch to diff against")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the remote branch-list cache")

	return cmd
}

// sameRepo compares two repository URLs ignoring a trailing .git suffix.
func sameRepo(a, b string) bool {
	trim := func(u string) string {
		return strings.TrimSuffix(strings.TrimSuffix(u, "/"), ".git")
	}
	return trim(a) == trim(b)
}

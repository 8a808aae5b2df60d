package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/distrowave/distrowave/pkg/collection"
	"github.com/distrowave/distrowave/pkg/dag"
	"github.com/distrowave/distrowave/pkg/errors"
	"github.com/distrowave/distrowave/pkg/gitcli"
	"github.com/distrowave/distrowave/pkg/render"
)

// wavesCommand creates the waves command.
func (c *CLI) wavesCommand() *cobra.Command {
	var (
		repo    string
		source  string
		dotPath string
		svgPath string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   `waves "<target>[;<target>...]"`,
		Short: "Compute topologically ordered merge waves for downstream bumps",
		Long: `Clones the distro metadata repository, finds every collection that depends
on the given targets, extends the set one hop to their direct dependants,
and prints the packages grouped into merge waves. Packages in a higher
wave must be merged before packages in a lower one.

Multiple targets are separated by semicolons:

  distrowave waves "gz-math8;gz-utils3"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			prog := newProgress(logger)

			targets, err := parseTargets(args[0])
			if err != nil {
				return err
			}

			dir := source
			if dir == "" {
				ws, err := gitcli.Workspace()
				if err != nil {
					return errors.Wrap(errors.ErrCodeInternal, err, "create workspace")
				}
				defer os.RemoveAll(ws)

				spin := newSpinner(ctx, fmt.Sprintf("cloning %s", repo))
				spin.Start()
				git := c.newGit(ctx, noCache)
				if err := git.Clone(ctx, repo, ws); err != nil {
					spin.StopWithError(fmt.Sprintf("clone failed: %s", errors.UserMessage(err)))
					return err
				}
				spin.Stop()
				prog.step("cloned metadata repo", "url", repo)
				dir = ws
			}

			ix, err := collection.LoadLatest(dir, logger.Warnf)
			if err != nil {
				return err
			}
			prog.step("loaded collections", "count", len(ix))

			perTarget := ix.Dependants(targets)
			printHeading("Dependants per target")
			for _, target := range sortedKeys(perTarget) {
				deps := perTarget[target]
				if len(deps) == 0 {
					printDetail("%s: none", target)
					continue
				}
				printDetail("%s: %s", target, strings.Join(deps, " "))
			}
			printNewline()

			seed := collection.Seed(perTarget)
			edges := ix.ExtendOneHop(seed)

			printHeading("Explicit dependants")
			for _, dep := range sortedKeys(edges) {
				libs := edges[dep]
				if len(libs) == 0 {
					printDetail("%s: none", dep)
					continue
				}
				printDetail("%s: %s", dep, strings.Join(libs, " "))
			}
			printNewline()

			graph := dag.FromDependants(edges)
			prog.step("built graph", "nodes", graph.NodeCount(), "edges", graph.EdgeCount())

			levels, err := dag.Levels(graph)
			if err != nil {
				return err
			}
			if len(levels) == 0 {
				return errors.New(errors.ErrCodeEmptyGraph,
					"no topological tree generatable: either your targets have no dependants or the metadata repo was not cloned properly")
			}

			printHeading("Merge waves")
			for _, wave := range dag.Waves(levels) {
				printWave(wave.Level, wave.Packages)
			}

			if dotPath != "" || svgPath != "" {
				dot := render.ToDOT(graph, levels)
				if dotPath != "" {
					if err := os.WriteFile(dotPath, []byte(dot), 0o644); err != nil {
						return errors.Wrap(errors.ErrCodeInternal, err, "write %s", dotPath)
					}
					printFile(dotPath)
				}
				if svgPath != "" {
					svg, err := render.RenderSVG(dot)
					if err != nil {
						return err
					}
					if err := os.WriteFile(svgPath, svg, 0o644); err != nil {
						return errors.Wrap(errors.ErrCodeInternal, err, "write %s", svgPath)
					}
					printFile(svgPath)
				}
			}

			prog.done("waves computed")
			return nil
		},
	}

	cmd.Flags().StringVar(&repo, "repo", c.Config.Repo, "distro metadata repository to clone")
	cmd.Flags().StringVar(&source, "source", "", "use a local metadata checkout instead of cloning")
	cmd.Flags().StringVar(&dotPath, "dot", "", "write the dependant graph as Graphviz DOT to this file")
	cmd.Flags().StringVar(&svgPath, "svg", "", "render the dependant graph as SVG to this file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the remote branch-list cache")

	return cmd
}

// parseTargets splits a semicolon-separated target list and validates
// every name.
func parseTargets(arg string) ([]string, error) {
	var targets []string
	for _, part := range strings.Split(arg, ";") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		if err := errors.ValidateTargetName(name); err != nil {
			return nil, err
		}
		targets = append(targets, name)
	}
	if len(targets) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no targets given")
	}
	return targets, nil
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

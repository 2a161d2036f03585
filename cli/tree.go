package cli

import (
	"fmt"
	"log"

	"github.com/javanhut/lineage/internal/colors"
	"github.com/javanhut/lineage/internal/edgefile"
	"github.com/javanhut/lineage/internal/fingerprint"
	"github.com/javanhut/lineage/internal/forest"
	"github.com/spf13/cobra"
)

func treeStyle() forest.Style {
	return forest.Style{
		Root:   colors.Root,
		Name:   colors.Member,
		Branch: colors.Branch,
	}
}

func newShowCmd(opts *options) *cobra.Command {
	var digest bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Draw every tree in the forest",
		Long: `Draw every tree, roots in alphabetical order and children in the order
they were added. Separate trees are divided by a blank line.

Examples:
  lineage show -f family.txt
  lineage show -e "Grandpa->Dad" -e "Dad->You" --digest`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := opts.loadForest(cmd)
			if err != nil {
				return err
			}

			if opts.verbose {
				log.Printf("Forest has %d members (%s)", f.Len(), fingerprint.Of(f).Short())
			}

			out := cmd.OutOrStdout()
			if len(f.Roots()) == 0 {
				fmt.Fprintln(out, colors.Gray("No members added yet."))
				return nil
			}

			fmt.Fprint(out, f.RenderStyled(treeStyle()))
			if digest || (opts.cfg != nil && opts.cfg.Display.Digest) {
				fmt.Fprintf(out, "\n%s %s\n", colors.Dim("digest:"), fingerprint.Of(f))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&digest, "digest", false, "Print the BLAKE3 digest of the forest structure")
	return cmd
}

func newChildrenCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "children NAME",
		Short: "List the direct children of a member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := opts.loadForest(cmd)
			if err != nil {
				return err
			}
			opts.warnUnknown(f, args[0])
			printNames(cmd.OutOrStdout(), f.ChildrenOf(args[0]))
			return nil
		},
	}
}

func newAncestorsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ancestors NAME",
		Short: "List ancestors from parent up to root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := opts.loadForest(cmd)
			if err != nil {
				return err
			}
			opts.warnUnknown(f, args[0])
			ancestors := f.AncestorsOf(args[0])
			if len(ancestors) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), colors.Gray(args[0]+" has no ancestors recorded."))
				return nil
			}
			printNames(cmd.OutOrStdout(), ancestors)
			return nil
		},
	}
}

func newRootsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "roots",
		Short: "List members without a parent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := opts.loadForest(cmd)
			if err != nil {
				return err
			}
			printNames(cmd.OutOrStdout(), f.Roots())
			return nil
		},
	}
}

func newExportCmd(opts *options) *cobra.Command {
	var (
		output   string
		compress bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the forest as a normalized edge file",
		Long: `Write every edge reachable from a root, roots in alphabetical order and
children in stored order. Loading the result rebuilds the same forest.

Examples:
  lineage export -f a.txt -f b.txt -o merged.txt
  lineage export -f family.txt -o family.txt.zst --compress`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := opts.loadForest(cmd)
			if err != nil {
				return err
			}

			edges := f.Edges()
			if output == "-" {
				return edgefile.Write(cmd.OutOrStdout(), edges, compress)
			}
			if err := edgefile.WriteFile(output, edges, compress); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %d edges to %s\n",
				colors.Green("Wrote"), len(edges), colors.Bold(output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "-", "Destination file (- for stdout)")
	cmd.Flags().BoolVar(&compress, "compress", false, "Compress output with zstd")
	return cmd
}

package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/javanhut/lineage/internal/colors"
	"github.com/javanhut/lineage/internal/config"
	"github.com/javanhut/lineage/internal/edgefile"
	"github.com/javanhut/lineage/internal/forest"
	"github.com/spf13/cobra"
)

// options holds the flags shared by every command.
type options struct {
	files   []string
	edges   []string
	noColor bool
	verbose bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "lineage",
		Short: "Lineage draws and queries family trees",
		Long: `Lineage builds a forest of named members from parent -> child edges and
lets you draw it, list children, and trace ancestors.

Edges come from files (one "parent -> child" per line, or a bare name for
a member on its own, optionally zstd-compressed) and from --edge flags,
applied in that order. A later edge for an existing child moves it under
the new parent.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringArrayVarP(&opts.files, "file", "f", nil, "Edge file to load (repeatable, - for stdin)")
	flags.StringArrayVarP(&opts.edges, "edge", "e", nil, `Edge to insert, as "parent->child" (repeatable)`)
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log loading progress to stderr")

	rootCmd.AddCommand(
		newShowCmd(opts),
		newChildrenCmd(opts),
		newAncestorsCmd(opts),
		newRootsCmd(opts),
		newExportCmd(opts),
		newConfigCmd(),
	)
	return rootCmd
}

// Execute runs the lineage command tree and exits with status 1 on error.
func Execute() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		reportError(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", colors.ErrorText("Error:"), err)
}

func (o *options) setup(cmd *cobra.Command) error {
	log.SetFlags(0)
	log.SetOutput(cmd.ErrOrStderr())

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	o.cfg = cfg

	if o.noColor || !cfg.Display.Color {
		colors.SetColorEnabled(false)
	}
	return nil
}

// loadForest builds a forest from the configured input file, then --file
// arguments, then --edge flags.
func (o *options) loadForest(cmd *cobra.Command) (*forest.Forest, error) {
	f := forest.New()

	files := o.files
	if len(files) == 0 && o.cfg != nil && o.cfg.Input.File != "" {
		files = []string{o.cfg.Input.File}
		if o.verbose {
			log.Printf("Using input.file from config: %s", o.cfg.Input.File)
		}
	}

	for _, path := range files {
		var (
			n   int
			err error
		)
		if path == "-" {
			n, err = edgefile.Load(f, cmd.InOrStdin())
		} else {
			n, err = edgefile.LoadFile(f, path)
		}
		if err != nil {
			return nil, err
		}
		if o.verbose {
			log.Printf("Loaded %d edges from %s", n, path)
		}
	}

	for _, raw := range o.edges {
		e, err := edgefile.ParseEdge(raw)
		if err != nil {
			return nil, fmt.Errorf("--edge: %w", err)
		}
		if err := f.Insert(e.Parent, e.Child); err != nil {
			return nil, fmt.Errorf("--edge: %w", err)
		}
	}
	if o.verbose && len(o.edges) > 0 {
		log.Printf("Applied %d edges from flags", len(o.edges))
	}

	return f, nil
}

// warnUnknown logs when a queried name was never inserted.
func (o *options) warnUnknown(f *forest.Forest, name string) {
	if o.verbose && !f.Has(name) {
		log.Printf("%s %q is not a member", colors.WarningText("Warning:"), name)
	}
}

func printNames(w io.Writer, names []string) {
	for _, name := range names {
		fmt.Fprintln(w, name)
	}
}

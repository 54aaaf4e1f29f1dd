package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tsawler/xpsdoc"
	"github.com/tsawler/xpsdoc/render"
)

type rootOptions struct {
	verbosity   int
	format      string
	tree        bool
	outline     bool
	caseFolding bool
	noThumbnail bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "xpsdump FILE",
		Short: "Inspect XPS and OpenXPS documents",
		Long: `xpsdump loads an XPS or OpenXPS package and prints what it contains:
document and page counts, render tree statistics, and optionally the
render tree of the first page and the document outline.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(cmd, args[0], opts)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			}
			return err
		},
	}

	cmd.Flags().CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, json, yaml or toml")
	cmd.Flags().BoolVar(&opts.tree, "tree", false, "Dump the render tree of the first page")
	cmd.Flags().BoolVar(&opts.outline, "outline", false, "Print the outline of each document")
	cmd.Flags().BoolVar(&opts.caseFolding, "case-folding", false, "Match part names case-insensitively")
	cmd.Flags().BoolVar(&opts.noThumbnail, "no-thumbnail", false, "Skip reading the package thumbnail")

	return cmd
}

func run(cmd *cobra.Command, file string, opts *rootOptions) error {
	color := isTerminal(os.Stdout) && opts.format == "text"
	if !color {
		pterm.DisableColor()
	}
	logger := setupLogger(cmd.ErrOrStderr(), opts.verbosity, isTerminal(os.Stderr))

	loadOpts := []xpsdoc.Option{xpsdoc.WithLogger(logger)}
	if opts.caseFolding {
		loadOpts = append(loadOpts, xpsdoc.WithCaseFolding())
	}
	if opts.noThumbnail {
		loadOpts = append(loadOpts, xpsdoc.WithoutThumbnail())
	}

	pkg, err := xpsdoc.Open(file, loadOpts...)
	if err != nil {
		return err
	}
	log.Info().Str("file", file).Int("documents", pkg.DocumentCount()).Int("pages", pkg.PageCount()).Msg("Package loaded")

	s, err := summarize(file, pkg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := writeSummary(out, s, opts.format); err != nil {
		return err
	}

	if opts.tree {
		docs := pkg.Documents()
		if len(docs) > 0 && docs[0].PageCount() > 0 {
			fmt.Fprintln(out)
			if err := docs[0].GetPage(1).Render(render.NewDumper(out)); err != nil {
				return err
			}
		}
	}

	if opts.outline {
		for i, doc := range pkg.Documents() {
			tree, err := outlineTree(doc.Outline)
			if err != nil {
				return err
			}
			if tree == "" {
				continue
			}
			fmt.Fprintf(out, "\nOutline of document %d:\n%s", i+1, tree)
		}
	}

	return nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

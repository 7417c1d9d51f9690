package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/windmill-labs/windmill-homepage/internal/content"
	"github.com/windmill-labs/windmill-homepage/internal/export"
	"github.com/windmill-labs/windmill-homepage/internal/site"
	"github.com/windmill-labs/windmill-homepage/pkg/logging"
)

func newRenderCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the homepage to a static file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := content.Load(a.cfg.ContentFile)
			if err != nil {
				return err
			}

			if output == "-" {
				snap, err := site.New(site.PageConfig(a.cfg.BaseURL), nil).Build(cmd.Context(), cat)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(snap.HTML)
				return err
			}

			snap, err := export.WriteHomepage(cmd.Context(), output, site.New(site.PageConfig(a.cfg.BaseURL), nil), cat)
			if err != nil {
				return err
			}
			a.logger.Info("homepage written",
				logging.String("path", output),
				logging.Int("bytes", len(snap.HTML)),
				logging.Int("features", snap.Features),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "index.html", `output file, "-" for stdout`)
	return cmd
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a feature catalog without serving it",
		Long: `Load the catalog and run a dry render pass. The command fails on unknown
keys, missing names or descriptions, unknown icons or formats, and duplicate
feature names.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.ContentFile
			if len(args) == 1 {
				path = args[0]
			}

			cat, err := content.Load(path)
			if err != nil {
				return err
			}
			if err := cat.Validate(); err != nil {
				return err
			}

			name := path
			if name == "" {
				name = "built-in catalog"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d features OK\n", name, len(cat.Features))
			return err
		},
	}
}

package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/yosssi/gohtml"

	"github.com/Zachkp/portfolio/internal/page"
	"github.com/Zachkp/portfolio/internal/session"
	"github.com/Zachkp/portfolio/internal/theme"
)

type exportFlags struct {
	out  string
	dark bool
}

func newExportCmd(root *rootFlags) *cobra.Command {
	flags := &exportFlags{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the page as a static HTML file",
		Long: "Render the portfolio without any htmx wiring. Every section is shown\n" +
			"revealed and the contact form is inert.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := setup(root)
			if err != nil {
				return err
			}
			opts, err := sessionOptions(cfg)
			if err != nil {
				return err
			}
			if flags.dark {
				opts.Theme = theme.Dark
			}

			html, err := exportPage(opts)
			if err != nil {
				return err
			}
			if flags.out == "" || flags.out == "-" {
				_, err = cmd.OutOrStdout().Write(html)
				return err
			}
			if err := os.WriteFile(flags.out, html, 0o644); err != nil {
				return errors.Wrapf(err, "writing %s", flags.out)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", flags.out, len(html))
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&flags.dark, "dark", false, "Render with the dark theme")

	return cmd
}

// exportPage renders a static snapshot of a fresh view.
func exportPage(opts session.Options) ([]byte, error) {
	tmpl, err := page.Templates()
	if err != nil {
		return nil, err
	}

	p := page.Assembler{}.Assemble(session.NewView("static", opts, false))
	p.Static = true

	var buf bytes.Buffer
	if err := page.Render(&buf, tmpl, p); err != nil {
		return nil, err
	}
	return gohtml.FormatBytes(buf.Bytes()), nil
}

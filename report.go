package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"transecta/export"
	"transecta/render"
	"transecta/transect"
)

type reportFlags struct {
	format     string
	normalized bool
	out        string
	site       string
}

func (c *cli) reportCmd() *cobra.Command {
	var f reportFlags
	cmd := &cobra.Command{
		Use:   "report [file.csv]",
		Short: "Summarise a CSV of intervals",
		Long: `Reads intervals from a CSV export (or standard input when no file or
"-" is given), validates every row and prints the coverage summary.

Rows that fail validation are reported on standard error and skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReport(cmd, args, f)
		},
	}
	cmd.Flags().StringVarP(&f.format, "format", "f", "text", fmt.Sprintf("output format %v", export.Formats()))
	cmd.Flags().BoolVarP(&f.normalized, "normalized", "n", false, "list inferred bare ground with the intervals")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "write to a file instead of standard output")
	cmd.Flags().StringVar(&f.site, "site", "", "site name for the report header")
	return cmd
}

func (c *cli) runReport(cmd *cobra.Command, args []string, f reportFlags) error {
	session := c.newSession(c.newCatalog())
	session.Site.Name = f.site

	if err := c.importInto(session, cmd.InOrStdin(), cmd.ErrOrStderr(), args); err != nil {
		return err
	}

	doc := render.Document{
		Site:       session.Site,
		SessionID:  session.ID,
		Report:     session.Report(),
		Normalized: f.normalized,
	}
	if f.out != "" {
		if err := export.WriteFile(f.out, f.format, doc); err != nil {
			return err
		}
		c.logger.Info("report written", zap.String("path", f.out), zap.String("format", f.format))
		return nil
	}
	return export.Write(f.format, cmd.OutOrStdout(), doc)
}

// importInto records the CSV named by args[0], or stdin, into session.
// Rejected rows are listed on errOut.
func (c *cli) importInto(session *transect.Session, in io.Reader, errOut io.Writer, args []string) error {
	source := "stdin"
	var (
		recorded int
		rejected []export.RowError
		err      error
	)
	if len(args) == 0 || args[0] == "-" {
		recorded, rejected, err = export.ReadIntervals(in, session)
	} else {
		source = args[0]
		recorded, rejected, err = export.ReadFile(source, session)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}

	for _, r := range rejected {
		fmt.Fprintf(errOut, "%s: skipped %v\n", source, r)
	}
	c.logger.Info("intervals imported",
		zap.String("source", source),
		zap.Int("recorded", recorded),
		zap.Int("rejected", len(rejected)))
	return nil
}

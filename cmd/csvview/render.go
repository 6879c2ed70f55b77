package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-csvviewer"
	"github.com/domonda/go-csvviewer/csvtable"
	"github.com/domonda/go-csvviewer/htmltable"
	"github.com/domonda/go-csvviewer/internal/tablefile"
)

type renderFlags struct {
	delimiter string
	detect    bool
	format    string
	document  bool
	title     string
}

func newRenderCmd() *cobra.Command {
	var flags renderFlags
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a CSV or TSV file as HTML table",
		Long: `Render loads FILE and writes it to stdout as HTML table
or re-encoded with another delimiter.
At most 1000 rows are rendered, a notice is logged for longer tables.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("delimiter") && flags.delimiter == "" {
				return fmt.Errorf("delimiter must not be empty")
			}
			return renderFile(cmd.Context(), cmd.OutOrStdout(), fs.File(args[0]), &flags)
		},
	}
	cmd.Flags().StringVarP(&flags.delimiter, "delimiter", "d", "", "Field delimiter (default: derived from the file extension)")
	cmd.Flags().BoolVar(&flags.detect, "detect", false, "Detect the delimiter from the file content")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "html", "Output format (html, csv, tsv)")
	cmd.Flags().BoolVar(&flags.document, "document", false, "Wrap the HTML table in a complete document")
	cmd.Flags().StringVar(&flags.title, "title", "", "HTML document title (default: file name)")
	return cmd
}

func renderFile(ctx context.Context, out io.Writer, file fs.FileReader, flags *renderFlags) error {
	var outDelimiter string
	switch flags.format {
	case "html":
	case "csv":
		outDelimiter = ","
	case "tsv":
		outDelimiter = "\t"
	default:
		return fmt.Errorf("unsupported output format %q", flags.format)
	}

	model, err := tablefile.Load(ctx, file, tablefile.Options{Detect: flags.detect})
	if err != nil {
		return err
	}
	view := csvviewer.NewTableView(model)
	defer view.Dispose()

	log := slog.Default().With("file", file.Name())
	model.SetLogger(log)
	model.StateChanged().Connect(func(struct{}) {
		log.Debug("table state changed", "delimiter", model.Delimiter())
	})
	model.Overflow().Connect(func(notice csvviewer.OverflowNotice) {
		log.Warn(notice.String(), "available", notice.Available, "maximum", notice.Maximum)
	})
	if flags.delimiter != "" {
		model.SetDelimiter(flags.delimiter)
	}

	if outDelimiter != "" {
		parsed, err := model.Parse()
		if err != nil {
			return err
		}
		return csvtable.NewWriter().
			WithDelimiter(outDelimiter).
			WithNewLine("\n").
			WriteRows(ctx, out, parsed.Records())
	}

	title := flags.title
	if title == "" {
		title = file.Name()
	}
	err = htmltable.NewWriter().
		WithDocument(flags.document).
		WithTitle(title).
		WriteView(ctx, out, view)
	if err != nil {
		return err
	}
	if !flags.document {
		_, err = io.WriteString(out, "\n")
	}
	return err
}

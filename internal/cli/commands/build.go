package commands

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	_ "modernc.org/sqlite"

	"github.com/tabwright/tabwright/internal/cli/config"
	"github.com/tabwright/tabwright/pkg/dataset"
	"github.com/tabwright/tabwright/pkg/formula"
	"github.com/tabwright/tabwright/pkg/render"
	"github.com/tabwright/tabwright/pkg/summary"
)

var titleStyle = lipgloss.NewStyle().Bold(true)

// NewBuildCommand creates the build command.
func NewBuildCommand() *cobra.Command {
	var (
		formulaSrc string
		dbPath     string
		fromTable  string
		query      string
		title      string
	)

	cmd := &cobra.Command{
		Use:   "build [data.csv]",
		Short: "Compile a table formula against a dataset",
		Long: `Compile a table formula against a dataset and render the result.

The dataset comes from a CSV file (with an optional <name>.meta.yaml
sidecar carrying column labels and units) or from a SQLite database
via --db with --from or --query.

Examples:
  tabwright build trial.csv --formula "sex ~ age + weight"
  tabwright build --db trial.db --from patients --formula "drug ~ stage + bili"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetCurrentConfig()

			if formulaSrc == "" {
				return fmt.Errorf("--formula is required")
			}
			f, err := formula.Parse(formulaSrc)
			if err != nil {
				return err
			}

			var d *dataset.Dataset
			switch {
			case dbPath != "":
				d, err = loadFromDB(cmd.Context(), dbPath, fromTable, query)
			case len(args) == 1:
				d, err = dataset.ReadCSVFile(args[0])
			default:
				return fmt.Errorf("provide a CSV file argument or --db")
			}
			if err != nil {
				return err
			}
			slog.Debug("dataset loaded", "columns", len(d.Names()), "rows", d.Len())

			compiler := summary.NewCompiler(summary.Options{
				Digits:  cfg.Digits,
				Missing: cfg.Missing,
			}, slog.Default())
			tbl, err := compiler.Compile(f, d)
			if err != nil {
				return err
			}

			format, err := render.ParseFormat(cfg.Output)
			if err != nil {
				return err
			}

			opts := render.Options{
				Missing:  cfg.Missing,
				MaxWidth: cfg.MaxWidth,
				Title:    title,
			}
			w := cmd.OutOrStdout()
			if format == render.FormatText {
				if opts.MaxWidth == 0 {
					if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
						if tw, _, err := term.GetSize(fd); err == nil {
							opts.MaxWidth = tw
						}
					}
				}
				if title != "" {
					_, _ = fmt.Fprintln(w, titleStyle.Render(title))
					opts.Title = ""
				}
			}

			return render.Render(w, tbl, format, opts)
		},
	}

	cmd.Flags().StringVarP(&formulaSrc, "formula", "f", "", "Table formula, e.g. \"sex ~ age + weight\"")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database to read instead of CSV")
	cmd.Flags().StringVar(&fromTable, "from", "", "Table or view to read from the database")
	cmd.Flags().StringVar(&query, "query", "", "SQL query to read from the database")
	cmd.Flags().StringVar(&title, "title", "", "Title rendered above the table")
	_ = cmd.MarkFlagRequired("formula")

	return cmd
}

// loadFromDB reads a dataset from a SQLite file, either a whole table
// or an arbitrary query.
func loadFromDB(ctx context.Context, path, from, query string) (*dataset.Dataset, error) {
	if query == "" {
		if from == "" {
			return nil, fmt.Errorf("--db requires --from or --query")
		}
		query = fmt.Sprintf("SELECT * FROM %q", from)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return dataset.FromRows(rows)
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vegasq/tallycat/config"
	"github.com/vegasq/tallycat/count"
	"github.com/vegasq/tallycat/frame"
	"github.com/vegasq/tallycat/output"
	"github.com/vegasq/tallycat/reader"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options holds the parsed command line.
type options struct {
	cfg     config.Config
	schema  bool
	verbose bool
	path    string
}

func usage(fs *flag.FlagSet, w io.Writer) func() {
	return func() {
		fmt.Fprintf(w, "Usage: tallycat [options] <file>\n\n")
		fmt.Fprintf(w, "Count matching cells per row or per column of a data file.\n")
		fmt.Fprintf(w, "Supported inputs: .parquet, .arrow, .arrows, .csv, .jsonl (glob patterns allowed).\n\n")
		fmt.Fprintf(w, "IMPORTANT: All flags must come BEFORE file arguments.\n\n")
		fmt.Fprintf(w, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(w, "\nCount targets: NA, NULL, Inf, TRUE/FALSE, a number, or any other text.\n")
		fmt.Fprintf(w, "Selections: a,b (names), a:c (range), -a,-b (all but), #0,#2 (positions).\n")
		fmt.Fprintf(w, "\nExamples:\n")
		fmt.Fprintf(w, "  tallycat data.parquet\n")
		fmt.Fprintf(w, "  tallycat -count 1 -append=false data.csv\n")
		fmt.Fprintf(w, "  tallycat -mode col -count NA -select c1:c3 -f table data.arrow\n")
		fmt.Fprintf(w, "  tallycat -config tallycat.yaml \"data/*.parquet\"\n")
		fmt.Fprintf(w, "  tallycat --schema data.parquet\n")
	}
}

// parseArgs parses the command line on top of the configuration file, if
// one is given. Flags set explicitly override file values.
func parseArgs(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("tallycat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = usage(fs, stderr)

	def := config.Default()
	var flags config.Config
	configPath := fs.String("config", "", "YAML file with default settings")
	fs.StringVar(&flags.Mode, "mode", def.Mode, "Count per row or per column: row, col")
	fs.StringVar(&flags.Count, "count", def.Count, "Count target (e.g. NA, Inf, NULL, 1, yes)")
	fs.StringVar(&flags.Select, "select", def.Select, "Columns to count over (default all)")
	fs.StringVar(&flags.Name, "name", def.Name, "Name of the row count column")
	fs.BoolVar(&flags.Append, "append", def.Append, "Append counts to the original data")
	fs.IntVar(&flags.Workers, "workers", def.Workers, "Number of partitions counted concurrently")
	fs.StringVar(&flags.Format, "f", def.Format, "Output format: "+strings.Join(output.Formats, ", "))
	fs.IntVar(&flags.Limit, "limit", def.Limit, "Limit number of data rows written (0 = unlimited); column counts are always written")
	schema := fs.Bool("schema", false, "Show schema information instead of counts")
	verbose := fs.Bool("v", false, "Log progress to stderr")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := def
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return nil, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			cfg.Mode = flags.Mode
		case "count":
			cfg.Count = flags.Count
		case "select":
			cfg.Select = flags.Select
		case "name":
			cfg.Name = flags.Name
		case "append":
			cfg.Append = flags.Append
		case "workers":
			cfg.Workers = flags.Workers
		case "f":
			cfg.Format = flags.Format
		case "limit":
			cfg.Limit = flags.Limit
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return nil, errors.New("missing data file argument")
	}

	return &options{
		cfg:     cfg,
		schema:  *schema,
		verbose: *verbose,
		path:    fs.Arg(0),
	}, nil
}

func newLogger(verbose bool, w io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zap.DebugLevel,
	)
	return zap.New(core)
}

// run executes tallycat and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	logger := newLogger(opts.verbose, stderr)
	defer func() { _ = logger.Sync() }()

	formatter, err := output.New(opts.cfg.Format, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintf(stderr, "Supported formats: %s\n", strings.Join(output.Formats, ", "))
		return 1
	}

	if opts.schema {
		return runSchema(opts.path, formatter, logger, stderr)
	}
	return runCount(opts, formatter, logger, stderr)
}

func runCount(opts *options, formatter output.Formatter, logger *zap.Logger, stderr io.Writer) int {
	f, err := reader.ReadMultipleFiles(opts.path)
	if err != nil {
		reportReadError(stderr, opts.path, err)
		return 1
	}
	logger.Debug("loaded data",
		zap.String("path", opts.path),
		zap.Int("rows", f.NumRows()),
		zap.Int("columns", f.NumCols()),
	)

	countOpts, err := opts.cfg.Options()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	logger.Debug("counting",
		zap.String("mode", opts.cfg.Mode),
		zap.Stringer("target", countOpts.Target),
		zap.Stringer("select", countOpts.Select),
		zap.Bool("append", countOpts.Append),
		zap.Int("workers", countOpts.Workers),
	)

	var result *frame.Frame
	if opts.cfg.Mode == config.ModeCol {
		result, err = colCount(f, countOpts, opts.cfg.Limit)
	} else {
		result, err = count.RowCount(f, countOpts)
		if err == nil && opts.cfg.Limit > 0 {
			result = result.Head(opts.cfg.Limit)
		}
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, frame.ErrUnknownColumn) {
			fmt.Fprintf(stderr, "\nAvailable columns: %s\n", strings.Join(f.Names(), ", "))
		}
		return 1
	}
	logger.Debug("writing result",
		zap.String("format", opts.cfg.Format),
		zap.Int("rows", result.NumRows()),
	)

	if err := formatter.Format(result); err != nil {
		fmt.Fprintf(stderr, "Error formatting output: %v\n", err)
		return 1
	}
	return 0
}

// colCount counts per column. The limit applies to the echoed data rows
// only; the count row is always written last.
func colCount(f *frame.Frame, opts count.Options, limit int) (*frame.Frame, error) {
	appendRow := opts.Append
	opts.Append = false

	counts, err := count.ColCount(f, opts)
	if err != nil {
		return nil, err
	}
	if !appendRow {
		return counts, nil
	}

	data := f
	if limit > 0 {
		data = f.Head(limit)
	}
	result, err := data.BindRows(counts)
	if err != nil {
		return nil, fmt.Errorf("column count: append: %w", err)
	}
	return result, nil
}

// runSchema writes the schema of the file, or of the first file matched
// by a glob pattern.
func runSchema(pattern string, formatter output.Formatter, logger *zap.Logger, stderr io.Writer) int {
	path := pattern
	if strings.ContainsAny(pattern, "*?[]") {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			fmt.Fprintf(stderr, "Error: invalid glob pattern: %v\n", err)
			return 1
		}
		if len(matches) == 0 {
			fmt.Fprintf(stderr, "Error: no files match pattern: %s\n", pattern)
			return 1
		}
		path = matches[0]
		if len(matches) > 1 {
			fmt.Fprintf(stderr, "# Showing schema from: %s (%d files matched)\n", path, len(matches))
		}
	}

	infos, err := reader.ExtractSchemaInfo(path)
	if err != nil {
		reportReadError(stderr, path, err)
		return 1
	}
	logger.Debug("extracted schema", zap.String("path", path), zap.Int("columns", len(infos)))

	cols := [][]any{
		make([]any, len(infos)),
		make([]any, len(infos)),
		make([]any, len(infos)),
		make([]any, len(infos)),
		make([]any, len(infos)),
	}
	for i, info := range infos {
		cols[0][i] = info.Name
		cols[1][i] = info.Type
		cols[2][i] = info.SourceType
		cols[3][i] = info.Rows
		cols[4][i] = info.Missing
	}
	schema, err := frame.New([]string{"name", "type", "source_type", "rows", "missing"}, cols)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if err := formatter.Format(schema); err != nil {
		fmt.Fprintf(stderr, "Error formatting output: %v\n", err)
		return 1
	}
	return 0
}

func reportReadError(stderr io.Writer, path string, err error) {
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(stderr, "Error: file '%s' not found\n", path)
		fmt.Fprintf(stderr, "Please check the file path and try again.\n")
		return
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
}

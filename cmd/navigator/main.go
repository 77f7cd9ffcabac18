package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/honeycarbs/career-navigator/internal/batch"
	"github.com/honeycarbs/career-navigator/internal/config"
	"github.com/honeycarbs/career-navigator/internal/mcp"
	"github.com/honeycarbs/career-navigator/internal/report"
	"github.com/honeycarbs/career-navigator/internal/repository"
	"github.com/honeycarbs/career-navigator/internal/storage/sqlstore"
	"github.com/honeycarbs/career-navigator/pkg/logging"
)

const usage = `usage:
  navigator ingest (-names "A, B" | -ids 1740,3529 | -ids-file employers.txt | -predefined)
  navigator report [companies|vacancies|average|above-average|search -keyword K]
  navigator migrate`

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, usage)
		return 2
	}
	switch args[0] {
	case "-h", "-help", "--help", "help":
		fmt.Fprintln(stdout, usage)
		return 0
	case "ingest", "report", "migrate":
	default:
		fmt.Fprintf(stderr, "unknown command %q\n%s\n", args[0], usage)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return 1
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = logger.Sync() }()

	switch args[0] {
	case "ingest":
		err = runIngest(ctx, cfg, logger, args[1:])
	case "report":
		err = runReport(ctx, cfg, logger, args[1:], stdout)
	default:
		err = runMigrate(ctx, cfg, logger)
	}

	var uerr usageError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &uerr):
		fmt.Fprintf(stderr, "%v\n%s\n", err, usage)
		return 2
	default:
		logger.Error("navigator: command failed", "command", args[0], "err", err)
		fmt.Fprintf(stderr, "%s: %v\n", args[0], err)
		return 1
	}
}

type usageError struct {
	msg string
}

func (e usageError) Error() string {
	return e.msg
}

func runIngest(ctx context.Context, cfg config.Config, logger *logging.Logger, args []string) error {
	fs := flag.NewFlagSet("ingest", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	names := fs.String("names", "", "comma-separated employer names")
	ids := fs.String("ids", "", "comma-separated employer ids")
	idsFile := fs.String("ids-file", "", "file with one employer id per line")
	predefined := fs.Bool("predefined", false, "ingest the predefined employer list")
	if err := fs.Parse(args); err != nil {
		return usageError{msg: err.Error()}
	}

	modes := 0
	for _, set := range []bool{*names != "", *ids != "", *idsFile != "", *predefined} {
		if set {
			modes++
		}
	}
	if modes != 1 {
		return usageError{msg: "ingest: exactly one of -names, -ids, -ids-file or -predefined is required"}
	}

	// The store is opened by the run itself, after the job board ping.
	res, cleanup, err := mcp.InitializeResources(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	defer cleanup()

	switch {
	case *names != "":
		return res.Ingest.LoadByNames(ctx, batch.SplitList(*names))
	case *ids != "":
		return res.Ingest.LoadByIDs(ctx, batch.SplitList(*ids))
	case *idsFile != "":
		list, found, err := batch.LoadEmployerIDs(*idsFile, nil)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("ids file %s not found", *idsFile)
		}
		return res.Ingest.LoadByIDs(ctx, list)
	default:
		return res.Ingest.LoadByIDs(ctx, res.Predefined)
	}
}

func runReport(ctx context.Context, cfg config.Config, logger *logging.Logger, args []string, stdout io.Writer) error {
	view := "all"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		view, args = args[0], args[1:]
	}

	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	keyword := fs.String("keyword", "", "title substring for the search view")
	if err := fs.Parse(args); err != nil {
		return usageError{msg: err.Error()}
	}
	if view == "search" && *keyword == "" && fs.NArg() > 0 {
		*keyword = strings.Join(fs.Args(), " ")
	}
	if *keyword != "" && view == "all" {
		view = "search"
	}

	db, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	p := report.Printer{W: stdout}
	return repository.WithSession(ctx, db, func(s repository.Session) error {
		return printView(ctx, p, s, view, *keyword)
	})
}

func printView(ctx context.Context, p report.Printer, s repository.ReportRepository, view, keyword string) error {
	switch view {
	case "companies":
		return p.Companies(s.CompaniesWithVacancyCounts(ctx))
	case "average":
		return p.Average(s.AverageSalary(ctx))
	case "vacancies":
		return p.Listings("All vacancies", s.AllVacancies(ctx))
	case "above-average":
		return p.Listings("Vacancies above average salary", s.VacanciesAboveAverage(ctx))
	case "search":
		if strings.TrimSpace(keyword) == "" {
			return usageError{msg: "report search: -keyword is required"}
		}
		return p.Listings(fmt.Sprintf("Vacancies matching %q", keyword), s.VacanciesByKeyword(ctx, keyword))
	case "all":
		if err := p.Companies(s.CompaniesWithVacancyCounts(ctx)); err != nil {
			return err
		}
		if err := p.Average(s.AverageSalary(ctx)); err != nil {
			return err
		}
		return p.Listings("Vacancies above average salary", s.VacanciesAboveAverage(ctx))
	default:
		return usageError{msg: fmt.Sprintf("report: unknown view %q", view)}
	}
}

func runMigrate(ctx context.Context, cfg config.Config, logger *logging.Logger) error {
	db, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.Migrate(ctx); err != nil {
		return err
	}
	logger.Info("schema is up to date", "driver", db.Driver())
	return nil
}

func openStore(ctx context.Context, cfg config.Config, logger *logging.Logger) (*sqlstore.DB, error) {
	db, err := sqlstore.Open(ctx, sqlstore.Config{Driver: cfg.Database.Driver, DSN: cfg.Database.URL}, logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrSessionUnavailable, err)
	}
	return db, nil
}

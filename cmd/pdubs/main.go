// Command pdubs converts a transcription of the Parker & Dubberstein
// Babylonian chronology table into dated month records.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/babcal/core/cas"
	"github.com/FocuswithJustin/babcal/core/errors"
	"github.com/FocuswithJustin/babcal/core/julian"
	"github.com/FocuswithJustin/babcal/core/newmoon"
	"github.com/FocuswithJustin/babcal/core/sqlite"
	"github.com/FocuswithJustin/babcal/core/table"
	"github.com/FocuswithJustin/babcal/internal/archive"
	"github.com/FocuswithJustin/babcal/internal/config"
	"github.com/FocuswithJustin/babcal/internal/logging"
	"github.com/FocuswithJustin/babcal/internal/output"
	"github.com/FocuswithJustin/babcal/internal/validation"
)

const version = "0.1.0"

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// CLI defines the command-line interface for pdubs.
var CLI struct {
	Config string `name:"config" short:"c" help:"YAML config file" type:"path" env:"PDUBS_CONFIG"`

	Parse   ParseCmd   `cmd:"" default:"withargs" help:"Parse a table transcription into month records"`
	JDN     JDNCmd     `cmd:"" name:"jdn" help:"Convert a Julian calendar date to a Julian Day Number"`
	Date    DateCmd    `cmd:"" help:"Convert a Julian Day Number to a Julian calendar date"`
	Nearest NearestCmd `cmd:"" help:"Find the new moon nearest to a Julian Day Number"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// ParseCmd parses a table transcription.
type ParseCmd struct {
	Input string `arg:"" optional:"" default:"-" help:"Table transcription (plain, .gz or .xz; - for stdin)"`

	NewMoons  string `name:"new-moons" short:"m" help:"New-moon reference table"`
	Format    string `name:"format" short:"f" help:"Output format: tsv, jsonl or sqlite"`
	Out       string `name:"out" short:"o" help:"Output file for tsv/jsonl (- for stdout; .gz and .xz compress)"`
	Database  string `name:"database" help:"SQLite database for the sqlite format"`
	Era       string `name:"era" help:"Era of the initial year (BCE or CE)"`
	Year      int    `name:"year" help:"Initial era-relative year"`
	LastJDN   int    `name:"last-jdn" help:"JDN of the month before the first table line"`
	LogLevel  string `name:"log-level" help:"debug, info, warn or error"`
	LogFormat string `name:"log-format" help:"text or json"`
}

// apply overrides cfg with any flags that were set.
func (c *ParseCmd) apply(cfg *config.Config) error {
	if c.NewMoons != "" {
		cfg.NewMoons = c.NewMoons
	}
	if c.Format != "" {
		cfg.Output.Format = c.Format
	}
	if c.Out != "" {
		cfg.Output.Path = c.Out
	}
	if c.Database != "" {
		cfg.Output.Database = c.Database
	}
	if c.Era != "" {
		era, err := julian.ParseEra(c.Era)
		if err != nil {
			return err
		}
		cfg.Initial.Era = era
	}
	if c.Year != 0 {
		cfg.Initial.Year = c.Year
	}
	if c.LastJDN != 0 {
		cfg.Initial.LastJDN = c.LastJDN
	}
	if c.LogLevel != "" {
		cfg.Logging.Level = c.LogLevel
	}
	if c.LogFormat != "" {
		cfg.Logging.Format = c.LogFormat
	}
	return nil
}

func (c *ParseCmd) Run() error {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return err
	}
	if err := c.apply(cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := logging.ParseLevel(cfg.Logging.Level)
	logFormat, _ := logging.ParseFormat(cfg.Logging.Format)
	logging.InitLoggerTo(stderr, level, logFormat)

	if err := validation.ValidateInputPath(c.Input); err != nil {
		return fmt.Errorf("invalid input path: %w", err)
	}
	if err := validation.ValidateInputPath(cfg.NewMoons); err != nil {
		return fmt.Errorf("invalid new-moon table path: %w", err)
	}
	if err := validation.ValidateOutputPath(cfg.Output.Path); err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	moons, err := newmoon.LoadFile(cfg.NewMoons)
	if err != nil {
		return err
	}
	refHash, err := cas.HashFile(cfg.NewMoons)
	if err != nil {
		return err
	}

	run := output.NewRun(cfg.State())
	run.Reference = refHash
	run.ReferenceSource = moons.Source()
	ctx := logging.WithRunID(context.Background(), run.ID)

	in, err := archive.Open(c.Input)
	if err != nil {
		return err
	}
	defer in.Close()
	src, inHash := cas.TeeReader(in)

	format, _ := output.ParseFormat(cfg.Output.Format)
	dst, err := openOutput(format, cfg.Output.Path)
	if err != nil {
		return err
	}
	defer dst.Close()

	w, err := output.New(ctx, format, dst, cfg.Output.Database)
	if err != nil {
		return err
	}
	if s, ok := w.(*output.SQLiteWriter); ok {
		s.SetRunID(run.ID)
	}

	logging.RunStarted(ctx, c.Input, cfg.NewMoons, moons.Len(), "format", string(format))

	scanner := &table.Scanner{
		Moons: moons,
		OnHeading: func(n int, text string) {
			logging.HeadingSkipped(ctx, n, text)
		},
	}
	res, scanErr := scanner.Scan(ctx, src, cfg.State(), w.Write)

	run.FinishedAt = time.Now().UTC()
	run.Input = inHash.Sum()
	run.Final = res.State
	run.Lines, run.Headings, run.Months = res.Lines, res.Headings, res.Months
	if scanErr != nil {
		run.Error = scanErr.Error()
	}

	if rec, ok := w.(output.RunRecorder); ok {
		if err := rec.RecordRun(ctx, run); err != nil && scanErr == nil {
			scanErr = err
		}
	}
	if err := w.Close(); err != nil && scanErr == nil {
		scanErr = err
	}
	if err := dst.Close(); err != nil && scanErr == nil {
		scanErr = err
	}

	if scanErr != nil {
		var le *errors.LineError
		if errors.As(scanErr, &le) {
			logging.ParseFailure(ctx, le.Number, le.Text, le.Err)
		}
		return scanErr
	}

	logging.RunFinished(ctx, res.Lines, res.Headings, res.Months, run.FinishedAt.Sub(run.StartedAt),
		"input_sha256", run.Input.SHA256, "input_blake3", run.Input.BLAKE3)
	return nil
}

// openOutput returns the destination for stream formats. The sqlite format
// writes to its own database and gets a discarding writer.
func openOutput(format output.Format, path string) (*archive.Writer, error) {
	if format == output.FormatSQLite {
		return archive.NewWriter(io.Discard, archive.None)
	}
	if path == "" || path == archive.Stdio {
		return archive.NewWriter(stdout, archive.None)
	}
	return archive.Create(path, true)
}

// JDNCmd converts a Julian calendar date to a JDN.
type JDNCmd struct {
	Year  int    `arg:"" help:"Year (astronomical unless --era is given)"`
	Month int    `arg:"" help:"Month (1-12)"`
	Day   int    `arg:"" help:"Day of month"`
	Era   string `name:"era" help:"Treat the year as era-relative (BCE or CE)"`
}

func (c *JDNCmd) Run() error {
	if c.Month < 1 || c.Month > 12 {
		return errors.NewValidation("month", fmt.Sprintf("month %d out of range", c.Month))
	}
	year := c.Year
	if c.Era != "" {
		era, err := julian.ParseEra(c.Era)
		if err != nil {
			return err
		}
		if c.Year < 1 {
			return errors.NewValidation("year", fmt.Sprintf("era-relative year %d must be at least 1", c.Year))
		}
		year = julian.Astronomical(era, c.Year)
	}
	fmt.Fprintln(stdout, julian.ToJDN(year, c.Month, c.Day))
	return nil
}

// DateCmd converts a JDN to a Julian calendar date.
type DateCmd struct {
	JDN int `arg:"" help:"Julian Day Number"`
}

func (c *DateCmd) Run() error {
	y, m, d := julian.FromJDN(c.JDN)
	era, year := julian.FromAstronomical(y)
	fmt.Fprintf(stdout, "%d-%02d-%02d\t%d %s\n", y, m, d, year, era)
	return nil
}

// NearestCmd looks up the nearest new moon.
type NearestCmd struct {
	JDN      int    `arg:"" help:"Julian Day Number"`
	NewMoons string `name:"new-moons" short:"m" help:"New-moon reference table"`
}

func (c *NearestCmd) Run() error {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return err
	}
	if c.NewMoons != "" {
		cfg.NewMoons = c.NewMoons
	}

	moons, err := newmoon.LoadFile(cfg.NewMoons)
	if err != nil {
		return err
	}
	diff, nearest, err := moons.Nearest(c.JDN)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s\t%s", output.FormatFloat(nearest), output.FormatFloat(diff))
	if diff > newmoon.MaxDiff || diff < -newmoon.MaxDiff {
		fmt.Fprint(stdout, "\toutside tolerance")
	}
	fmt.Fprintln(stdout)
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	info := sqlite.GetInfo()
	fmt.Fprintf(stdout, "pdubs version %s\n", version)
	fmt.Fprintf(stdout, "  sqlite driver: %s (%s)\n", info.Package, info.DriverType)
	return nil
}

// reportLineError writes the offending line and the reason to w.
// It reports whether err carried a line.
func reportLineError(w io.Writer, err error) bool {
	var le *errors.LineError
	if !errors.As(err, &le) {
		return false
	}
	fmt.Fprintln(w, le.Text)
	fmt.Fprintln(w, le.Err)
	return true
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("pdubs"),
		kong.Description("Parker & Dubberstein Babylonian chronology table parser"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run(ctx)
	if reportLineError(stderr, err) {
		os.Exit(1)
	}
	ctx.FatalIfErrorf(err)
}

package cmd

import (
	"datefinder/clock"
	"datefinder/config"
	"datefinder/finder"
	"datefinder/log"
	"datefinder/oops"
	"datefinder/textsource"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var Extract *cobra.Command

type extractFlags struct {
	ConfigPath string
	Locale     string
	MinYear    int
	MaxYear    int
	Kind       string
	XPath      string
	Format     string
	Now        string
	Verbose    bool
}

func init() {
	var flags extractFlags
	Extract = &cobra.Command{
		Use:   "extract [file]",
		Short: "Print the dates found in a text, HTML or feed document",
		Long:  "Print the dates found in a document. Reads stdin when the file is omitted or \"-\".",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return runExtract(cmd, path, flags)
		},
	}

	f := Extract.Flags()
	f.StringVar(&flags.ConfigPath, "config", "", "YAML config file")
	f.StringVar(&flags.Locale, "locale", "", "locale of the text, e.g. en-US or fr")
	f.IntVar(&flags.MinYear, "min-year", config.DefaultMinYear, "earliest accepted year")
	f.IntVar(&flags.MaxYear, "max-year", config.DefaultMaxYear, "latest accepted year")
	f.StringVar(&flags.Kind, "kind", string(textsource.KindAuto), "input kind: text, html, feed or auto")
	f.StringVar(&flags.XPath, "xpath", "", "only read the nodes matching this xpath")
	f.StringVar(&flags.Format, "format", string(config.FormatText), "output format: text or json")
	f.StringVar(&flags.Now, "now", "", "pretend the current date is this (yyyy-mm-dd or RFC 3339)")
	f.BoolVarP(&flags.Verbose, "verbose", "v", false, "log every candidate the finder considers")
}

func runExtract(cmd *cobra.Command, path string, flags extractFlags) error {
	cfg, err := commandConfig(flags.ConfigPath)
	if err != nil {
		return err
	}
	changed := cmd.Flags().Changed
	if changed("locale") {
		cfg.Locale = flags.Locale
	}
	if changed("min-year") {
		cfg.MinYear = flags.MinYear
	}
	if changed("max-year") {
		cfg.MaxYear = flags.MaxYear
	}
	if changed("format") {
		cfg.Format = config.Format(flags.Format)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	kind, err := textsource.ParseKind(flags.Kind)
	if err != nil {
		return err
	}

	if flags.Now != "" {
		now, err := parseNow(flags.Now)
		if err != nil {
			return err
		}
		clock.MustSetUTCNowOverride(now)
	}

	var logger finder.Logger
	if flags.Verbose {
		logger = &finder.ZeroLogger{Logger: &log.TaskLogger{TaskName: "extract"}}
	}

	in := cmd.InOrStdin()
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return oops.Wrap(err)
		}
		defer file.Close()
		in = file
	}

	return extract(in, cmd.OutOrStdout(), extractOptions{
		Finder: cfg.FinderOptions(clock.System, logger),
		Kind:   kind,
		XPath:  flags.XPath,
		Format: cfg.Format,
	})
}

type extractOptions struct {
	Finder finder.Options
	Kind   textsource.Kind
	XPath  string
	Format config.Format
}

func extract(in io.Reader, out io.Writer, opts extractOptions) error {
	engine, err := finder.New(opts.Finder)
	if err != nil {
		return err
	}
	text, err := textsource.Read(in, opts.Kind, opts.XPath)
	if err != nil {
		return err
	}
	return writeResults(out, opts.Format, engine.ExtractDates(text))
}

func writeResults(w io.Writer, format config.Format, results []finder.Result) error {
	switch format {
	case config.FormatJSON:
		bytes, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return oops.Wrap(err)
		}
		bytes = append(bytes, '\n')
		if _, err := w.Write(bytes); err != nil {
			return oops.Wrap(err)
		}
	default:
		for _, result := range results {
			_, err := fmt.Fprintf(
				w, "%s | day was set %t | year was set %t\n", result.Date, result.IsDaySet, result.IsYearSet,
			)
			if err != nil {
				return oops.Wrap(err)
			}
		}
	}
	return nil
}

func parseNow(value string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, oops.Newf("--now: expected yyyy-mm-dd or RFC 3339, got %q", value)
	}
	return t.UTC(), nil
}

// commandConfig is config.Cfg unless a --config file was given
func commandConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Cfg, nil
	}
	return config.Load(path)
}

package runner

import (
	"bufio"
	"os"
	"strings"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	"github.com/projectdiscovery/inspector"
	fileutil "github.com/projectdiscovery/utils/file"
)

type Options struct {
	Inputs           goflags.StringSlice // Documents or folders to inspect
	Mapping          string              // Mapping rules file
	Output           string
	Format           string
	Header           bool
	Dedupe           bool
	Config           string
	InspectorConfig  string
	Locale           string
	LegacyIdeographs bool
	StrictRules      bool
	Workers          int
	Verbose          bool
	Silent           bool
}

func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Punctuation and token consistency auditor for bilingual translation documents.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringSliceVarP(&opts.Inputs, "input", "i", nil, "documents or folders to inspect (stdin, comma-separated, file)", goflags.FileCommaSeparatedStringSliceOptions),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output file or folder to write the report to (folder writes result.xlsx)"),
		flagSet.StringVarP(&opts.Format, "format", "f", "", "report format (xlsx, csv, jsonl) (default inferred from output)"),
		flagSet.BoolVar(&opts.Header, "header", true, "write a header row in tabular reports"),
		flagSet.BoolVarP(&opts.Dedupe, "dedupe", "dd", false, "drop identical report rows across documents"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display inspector version"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", `inspector cli config file (default '$HOME/.config/inspector/config.yaml')`),
		flagSet.StringVar(&opts.InspectorConfig, "ic", "", `inspector config file (default '$HOME/.config/inspector/inspector.yaml')`),
		flagSet.StringVarP(&opts.Locale, "locale", "l", "", "message locale (en, zh)"),
		flagSet.BoolVarP(&opts.LegacyIdeographs, "legacy-ideographs", "li", false, "stop the ideograph range at U+9FBB like legacy tools"),
	)

	flagSet.CreateGroup("rules", "Rules",
		flagSet.StringVarP(&opts.Mapping, "mapping", "m", "", "tab separated mapping rules file (source<TAB>target regex per line)"),
		flagSet.BoolVarP(&opts.StrictRules, "strict-rules", "sr", false, "abort when the mapping file has invalid lines"),
	)

	flagSet.CreateGroup("performance", "Performance",
		flagSet.IntVarP(&opts.Workers, "workers", "w", 0, "number of documents inspected concurrently (default number of CPUs)"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Config != "" {
		if err := flagSet.MergeConfigFile(opts.Config); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	// read document paths from stdin
	if fileutil.HasStdin() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if path := strings.TrimSpace(scanner.Text()); path != "" {
				opts.Inputs = append(opts.Inputs, path)
			}
		}
		if err := scanner.Err(); err != nil {
			gologger.Error().Msgf("failed to read input from stdin got %v", err)
		}
	}

	if len(opts.Inputs) == 0 {
		opts.Inputs = goflags.StringSlice{"."}
	}
	return opts
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}

// apply copies the command line overrides onto cfg
func (o *Options) apply(cfg *fileConfig) {
	if o.Locale != "" {
		cfg.Locale = o.Locale
	}
	if o.LegacyIdeographs {
		cfg.Ideograph.Low = inspector.IdeographLow
		cfg.Ideograph.High = inspector.LegacyIdeographHigh
	}
}

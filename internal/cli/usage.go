package cli

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/AndreyAkinshin/fuzzcollect/internal/config"
	"github.com/AndreyAkinshin/fuzzcollect/internal/output"
	"github.com/AndreyAkinshin/fuzzcollect/internal/report"
)

// Help layout widths.
const (
	helpFlagWidth   = 18
	helpEnvVarWidth = 20
)

var modeDescriptions = map[report.Mode]string{
	report.ModeDiv: "divergence report",
	report.ModeSum: "summary of test counts",
	report.ModeAll: "complete stdout of every shard",
}

func printUsage(w *output.Writer) {
	w.HelpTitle("fuzzcollect - collect results of a sharded make_a_fuzz run")

	w.HelpSection("Usage:")
	w.HelpUsage("fuzzcollect --type <mode> [options] <run-uri>")

	w.HelpSection("Description:")
	w.Println("  Fetches the listing page of a fuzz run, follows the raw log link of every")
	w.Println("  shard and prints divergences, a running summary, or the complete output.")

	w.HelpSection("Modes:")
	titleCase := cases.Title(language.English)
	for _, m := range report.Modes() {
		w.HelpFlag(string(m), titleCase.String(modeDescriptions[m]), helpFlagWidth)
	}

	w.HelpSection("Options:")
	w.HelpFlag("--type <mode>", "Select output type (required)", helpFlagWidth)
	w.HelpFlag("--config <file>", "Read settings from a YAML file", helpFlagWidth)
	w.HelpFlag("-q, --quiet", "Suppress progress on stderr", helpFlagWidth)
	w.HelpFlag("-v, --verbose", "Log fetches to stderr", helpFlagWidth)
	w.HelpFlag("-h, --help", "Show this help", helpFlagWidth)
	w.HelpFlag("--version", "Show version", helpFlagWidth)

	w.HelpSection("Environment:")
	w.HelpEnvVar(config.EnvVar, "Config file used when --config is not given", helpEnvVarWidth)

	w.HelpSection("Examples:")
	run := "https://ci.chromium.org/p/dart/builders/ci.sandbox/fuzz-linux/303"
	w.HelpExample(fmt.Sprintf("fuzzcollect --type sum %s", run), "Summarize all shards of run 303")
	w.HelpExample(fmt.Sprintf("fuzzcollect --type div %s", run), "Print divergences only")
	w.Println("")
}

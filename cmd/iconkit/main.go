package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/SH20RAJ/icons"
	"github.com/SH20RAJ/icons/utils"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const HelpBanner = `
┬┌─┐┌─┐┌┐┌┬┌─┬┌┬┐
││  │ ││││├┴┐│ │
┴└─┘└─┘┘└┘┴ ┴┴ ┴

SVG icon set build helpers.
    Version: %s

Usage: iconkit <command> [flags]

Commands:
    preview     build the preview sheet of an icon directory
    optimize    optimize an SVG icon source
    path        optimize SVG path data
    list        list the icons of a directory
    aliases     resolve the aliases of an icon directory
    changelog   print the changelog of a release

Run 'iconkit <command> -h' for the flags of a command.

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

// traceKeys are the tracers configured by -trace.
var traceKeys = []string{"icons.build", "icons.svg", "icons.raster"}

var commands = map[string]func(args []string, cfg icons.Env) error{
	"preview":   runPreview,
	"optimize":  runOptimize,
	"path":      runPath,
	"list":      runList,
	"aliases":   runAliases,
	"changelog": runChangelog,
}

func main() {
	log.SetFlags(0)

	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := setupTracing(*tlevel); err != nil {
		log.Fatalf(utils.DecorateText("Error configuring tracing: %v", utils.ErrorMessage), err)
	}
	initDisplay()

	if flag.NArg() == 0 {
		flag.Usage()
		log.Fatal(utils.DecorateText("\nPlease provide a command!", utils.ErrorMessage))
	}
	run, ok := commands[flag.Arg(0)]
	if !ok {
		flag.Usage()
		log.Fatalf(utils.DecorateText("\nUnknown command: %s", utils.ErrorMessage), flag.Arg(0))
	}

	cfg, err := icons.ReadEnv()
	if err != nil {
		log.Fatalf(
			utils.DecorateText("Failed to read the environment: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}
	if err := run(flag.Args()[1:], cfg); err != nil {
		log.Fatalf(
			utils.DecorateText("\nError running %s: %s", utils.ErrorMessage),
			flag.Arg(0),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
		)
	}
}

// setupTracing routes the library tracers to the standard logger.
func setupTracing(level string) error {
	var setLevel func(tracing.Trace)
	switch level = cases.Title(language.Und).String(level); level {
	case "Debug":
		setLevel = func(t tracing.Trace) { t.SetTraceLevel(tracing.LevelDebug) }
	case "Info":
		setLevel = func(t tracing.Trace) { t.SetTraceLevel(tracing.LevelInfo) }
	case "Error":
		setLevel = func(t tracing.Trace) { t.SetTraceLevel(tracing.LevelError) }
	default:
		return fmt.Errorf("invalid trace level: %s", level)
	}

	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = level
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	for _, key := range traceKeys {
		setLevel(tracing.Select(key))
	}
	return nil
}

// We use pterm for the tables of the list commands.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " ICONS ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/SH20RAJ/icons"
	"github.com/SH20RAJ/icons/raster"
	"github.com/SH20RAJ/icons/svgo"
	"github.com/SH20RAJ/icons/svgpath"
	"github.com/SH20RAJ/icons/utils"
	"github.com/pterm/pterm"
	"golang.org/x/term"
)

func runPreview(args []string, cfg icons.Env) error {
	fl := flag.NewFlagSet("preview", flag.ExitOnError)
	def := icons.DefaultPreviewOptions()
	var (
		source      = fl.String("in", cfg.SrcDir, "Source directory or icon file")
		destination = fl.String("out", "icons.svg", "Destination file, - for stdout")
		optsFile    = fl.String("options", icons.CompileOptionsFile, "Compile options file")
		categories  = fl.String("categories", "categories", "Directory of the icon categories")
		limit       = fl.Int("limit", cfg.Limit, "Maximum number of icons, 0 for all")
		columns     = fl.Int("cols", def.Columns, "Icons per row")
		padding     = fl.Int("padding", def.PaddingOuter, "Outer padding")
		color       = fl.String("color", def.Color, "Icon color")
		background  = fl.String("bg", def.Background, "Background color")
		stroke      = fl.Float64("stroke", def.Stroke, "Stroke width")
		png         = fl.Bool("png", def.PNG, "Rasterize the preview to PNG")
		retina      = fl.Bool("retina", def.Retina, "Add a 4x PNG rasterization")
	)
	if err := fl.Parse(args); err != nil {
		return err
	}

	compile, err := icons.ReadCompileOptions(*optsFile, icons.CompileSources{CategoriesDir: *categories})
	if err != nil {
		return err
	}

	op := &icons.Ops{
		Src:      *source,
		Dst:      *destination,
		PipeName: pipeName,
		Limit:    *limit,
		Compile:  compile,
		Preview: icons.PreviewOptions{
			Columns:      *columns,
			PaddingOuter: *padding,
			Color:        *color,
			Background:   *background,
			PNG:          *png,
			Stroke:       *stroke,
			Retina:       *retina,
		},
	}

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ ICONS", utils.StatusMessage),
		utils.DecorateText("is rasterizing the preview...", utils.DefaultMessage))
	r := &spinnerRasterizer{
		conv:    raster.NewConverter(cfg.Converter),
		spinner: utils.NewSpinner(spinnerText, time.Millisecond*200, true),
	}

	// Capture CTRL-C signal and restore the cursor visibility back.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		r.spinner.RestoreCursor()
		os.Exit(1)
	}()

	now := time.Now()
	res, err := op.Execute(r)
	for _, f := range res.Written {
		printSaved(f)
	}
	if err != nil {
		return err
	}
	if op.Dst != pipeName {
		fmt.Fprintf(os.Stderr, "\n%d icons on %d rows\n", len(res.Files), res.Grid.Rows)
	}
	fmt.Fprintf(os.Stderr, "Execution time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
	return nil
}

// spinnerRasterizer shows the progress indicator while the converter runs.
type spinnerRasterizer struct {
	conv    *raster.Converter
	spinner *utils.Spinner
}

func (s *spinnerRasterizer) Screenshot(svgPath string, retina bool) ([]string, error) {
	s.spinner.Start()
	files, err := s.conv.Screenshot(svgPath, retina)
	if err != nil {
		s.spinner.StopMsg = fmt.Sprintf("%s %s\n",
			utils.DecorateText("⚡ ICONS", utils.StatusMessage),
			utils.DecorateText("rasterizing the preview failed ✘", utils.ErrorMessage))
	} else {
		s.spinner.StopMsg = fmt.Sprintf("%s %s\n",
			utils.DecorateText("⚡ ICONS", utils.StatusMessage),
			utils.DecorateText("is rasterizing the preview... ✔", utils.DefaultMessage))
	}
	s.spinner.Stop()
	return files, err
}

// printSaved displays a generated file, with its pixel size for PNG files.
func printSaved(fname string) {
	size := ""
	if filepath.Ext(fname) == ".png" {
		if p, err := raster.Inspect(fname); err == nil {
			size = fmt.Sprintf(" (%dx%d)", p.X, p.Y)
		}
	}
	fmt.Fprintf(os.Stderr, "The file has been saved as: %s%s %s\n",
		utils.DecorateText(filepath.Base(fname), utils.SuccessMessage),
		size,
		utils.DefaultColor,
	)
}

func runOptimize(args []string, _ icons.Env) error {
	fl := flag.NewFlagSet("optimize", flag.ExitOnError)
	var (
		source      = fl.String("in", pipeName, "Source icon file, - for stdin")
		destination = fl.String("out", pipeName, "Destination file, - for stdout")
		verify      = fl.Bool("verify", false, "Keep path data whose optimized form renders differently")
		tolerance   = fl.Uint("tolerance", 8, "Alpha difference ignored by -verify")
	)
	if err := fl.Parse(args); err != nil {
		return err
	}

	src, err := readSource(*source)
	if err != nil {
		return err
	}
	var opts []svgo.Option
	if *verify {
		opts = append(opts, svgo.WithPathVerification(uint8(utils.Min(*tolerance, 255))))
	}
	out, err := svgo.OptimizeIcon(src, opts...)
	if err != nil {
		return err
	}
	return writeDestination(*destination, out+"\n")
}

func runPath(args []string, _ icons.Env) error {
	fl := flag.NewFlagSet("path", flag.ExitOnError)
	if err := fl.Parse(args); err != nil {
		return err
	}
	if fl.NArg() == 0 {
		return errors.New("please provide the path data to optimize")
	}
	for _, d := range fl.Args() {
		out, err := svgpath.Optimize(d)
		if err != nil {
			return err
		}
		fmt.Println(out)
	}
	return nil
}

func runList(args []string, cfg icons.Env) error {
	fl := flag.NewFlagSet("list", flag.ExitOnError)
	var (
		source = fl.String("in", filepath.Join(cfg.SrcDir, "outline"), "Source directory")
		limit  = fl.Int("limit", cfg.Limit, "Maximum number of icons, 0 for all")
	)
	if err := fl.Parse(args); err != nil {
		return err
	}

	list, err := icons.LoadIcons(*source, icons.LoadOptions{Limit: *limit})
	if err != nil {
		return err
	}
	data := [][]string{{"Name", "Identifier", "Source"}}
	for _, icon := range list {
		data = append(data, []string{icon.Name, icon.PascalName, icon.Path})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("%d icons\n", len(list))
	return nil
}

func runAliases(args []string, cfg icons.Env) error {
	fl := flag.NewFlagSet("aliases", flag.ExitOnError)
	var (
		source  = fl.String("in", filepath.Join(cfg.SrcDir, "outline"), "Source directory")
		aliases = fl.String("aliases", "aliases.json", "Alias file")
		policy  = fl.String("policy", icons.AliasWarn.String(), "Unmatched aliases [drop|warn|strict]")
	)
	if err := fl.Parse(args); err != nil {
		return err
	}
	p, err := icons.ParseAliasPolicy(*policy)
	if err != nil {
		return err
	}

	list, err := icons.LoadIcons(*source, icons.LoadOptions{Limit: cfg.Limit})
	if err != nil {
		return err
	}
	resolved, err := icons.ReadAliases(*aliases, list, p)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(resolved))
	for alias := range resolved {
		names = append(names, alias)
	}
	slices.Sort(names)

	data := [][]string{{"Alias", "Icon"}}
	for _, alias := range names {
		data = append(data, []string{alias, resolved[alias]})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("%d aliases\n", len(resolved))
	return nil
}

func runChangelog(args []string, _ icons.Env) error {
	fl := flag.NewFlagSet("changelog", flag.ExitOnError)
	var (
		added    = fl.String("new", "", "Comma separated new icons")
		modified = fl.String("modified", "", "Comma separated fixed icons")
		renamed  = fl.String("renamed", "", "Comma separated old:new renames")
		pretty   = fl.Bool("pretty", false, "Itemized markdown output")
	)
	if err := fl.Parse(args); err != nil {
		return err
	}

	c := icons.Changelog{
		New:      splitList(*added),
		Modified: splitList(*modified),
	}
	for _, pair := range splitList(*renamed) {
		from, to, ok := strings.Cut(pair, ":")
		if !ok {
			return fmt.Errorf("rename %q is not of the form old:new", pair)
		}
		c.Renamed = append(c.Renamed, icons.Rename{From: from, To: to})
	}
	mode := icons.Compact
	if *pretty {
		mode = icons.Itemized
	}
	return icons.PrintChangelog(os.Stdout, c, mode)
}

func splitList(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// readSource reads the named file, or stdin for the pipe name.
func readSource(in string) (string, error) {
	if in == pipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return "", errors.New("`-` should be used with a pipe for stdin")
		}
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(in)
	if err != nil {
		return "", fmt.Errorf("unable to open the source file: %v", err)
	}
	return string(b), nil
}

// writeDestination writes s to the named file, or stdout for the pipe name.
func writeDestination(out, s string) error {
	if out == pipeName {
		_, err := io.WriteString(os.Stdout, s)
		return err
	}
	if err := os.WriteFile(out, []byte(s), 0644); err != nil {
		return fmt.Errorf("unable to create the destination file: %v", err)
	}
	printSaved(out)
	return nil
}

package icons

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/term"
)

// Ops describes a preview build over a source tree.
type Ops struct {
	// Src is a directory, walked recursively, or a single icon file.
	Src string
	// Dst is the preview file, or PipeName to stream the SVG to stdout.
	Dst, PipeName string
	// Limit caps the number of icons placed on the sheet when > 0.
	Limit   int
	Compile CompileOptions
	Preview PreviewOptions
}

// Result holds the relevant information about a finished preview build.
type Result struct {
	// Files are the icon sources placed on the sheet, in order.
	Files []string
	// Written are the generated files. Empty when streaming to stdout.
	Written []string
	Grid    Grid
}

// Execute collects the icon sources and builds the preview sheet. Icons are
// processed one after the other; the rasterizer r is only used for file
// destinations. Dst streams to stdout only when it equals a non-empty PipeName.
func (op *Ops) Execute(r Rasterizer) (Result, error) {
	if op.Dst == "" {
		return Result{}, fsError("write preview", op.Dst, errors.New("no destination"))
	}
	files, err := op.collect()
	if err != nil {
		return Result{}, err
	}
	res := Result{Files: files}

	if op.PipeName != "" && op.Dst == op.PipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return res, errors.New("`-` should be used with a pipe for stdout")
		}
		res.Grid, err = RenderPreview(os.Stdout, files, op.Preview)
		return res, err
	}

	if dir := filepath.Dir(op.Dst); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return res, fsError("create destination directory", dir, err)
		}
	}
	res.Written, err = BuildPreview(files, op.Dst, op.Preview, r)
	res.Grid = Layout(len(files), op.Preview)
	for i, f := range files {
		res.Grid.Entries[i].SymbolID = SymbolID(f)
	}
	return res, err
}

// collect returns the icon sources selected by the compile options.
func (op *Ops) collect() ([]string, error) {
	info, err := os.Stat(op.Src)
	if err != nil {
		return nil, fsError("read source", op.Src, err)
	}

	var paths []string
	switch mode := info.Mode(); {
	case mode.IsDir():
		paths, err = walkDir(op.Src, ".svg")
		if err != nil {
			return nil, fsError("walk", op.Src, err)
		}
	case mode.IsRegular():
		paths = []string{op.Src}
	default:
		return nil, fsError("read source", op.Src, errors.New("not a regular file or directory"))
	}

	var files []string
	for _, p := range paths {
		if op.Compile.Includes(IconName(p)) {
			files = append(files, p)
		}
	}
	if op.Limit > 0 && len(files) > op.Limit {
		files = files[:op.Limit]
	}
	if len(files) == 0 {
		return nil, fsError("collect icons in", op.Src, errors.New("no icons found"))
	}
	return files, nil
}

// walkDir walks the src directory tree in lexical order and returns the path
// of each regular file with the ext extension.
func walkDir(src, ext string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && filepath.Ext(d.Name()) == ext {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}

package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/SH20RAJ/icons/utils"
	"github.com/disintegration/imaging"
)

// DefaultBin is the raster converter looked up on PATH when none is configured.
const DefaultBin = "rsvg-convert"

// ErrExternalTool matches every ToolError with errors.Is.
var ErrExternalTool = errors.New("external tool error")

// ToolError reports a failed invocation of the raster converter.
type ToolError struct {
	Cmd    string
	Args   []string
	Stderr string
	Err    error
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("%s %s: %v", e.Cmd, strings.Join(e.Args, " "), e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *ToolError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrExternalTool) hold for any ToolError.
func (e *ToolError) Is(target error) bool { return target == ErrExternalTool }

// Converter renders SVG files to PNG through an external command line tool
// taking "-x <scale> -y <scale> <input.svg>" and writing the PNG to stdout.
//
// The invocation blocks until the converter exits; there is no timeout.
type Converter struct {
	Bin string
}

// NewConverter returns a converter running bin, or DefaultBin when bin is empty.
func NewConverter(bin string) *Converter {
	if bin == "" {
		bin = DefaultBin
	}
	return &Converter{Bin: bin}
}

// Convert renders src at the given scale into dst.
// A failed run leaves whatever the converter wrote in dst.
func (c *Converter) Convert(src, dst string, scale int) error {
	s := strconv.Itoa(scale)
	args := []string{"-x", s, "-y", s, src}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}
	defer func() {
		if err := out.Close(); err != nil {
			tracer().Errorf("could not close %s: %v", dst, err)
		}
	}()

	var stderr bytes.Buffer
	cmd := exec.Command(c.Bin, args...)
	cmd.Stdout = out
	cmd.Stderr = &stderr

	tracer().Debugf("running %s %s > %s", c.Bin, strings.Join(args, " "), dst)
	if err := cmd.Run(); err != nil {
		return &ToolError{Cmd: c.Bin, Args: args, Stderr: stderr.String(), Err: err}
	}
	return nil
}

// Screenshot renders svgPath next to itself: "<name>.png" at 2x and, when
// retina is set, "<name>@2x.png" at 4x. It returns the written files.
func (c *Converter) Screenshot(svgPath string, retina bool) ([]string, error) {
	base := strings.TrimSuffix(svgPath, ".svg")
	targets := []struct {
		path  string
		scale int
	}{
		{base + ".png", 2},
	}
	if retina {
		targets = append(targets, struct {
			path  string
			scale int
		}{base + "@2x.png", 4})
	}

	var written []string
	for _, t := range targets {
		if err := c.Convert(svgPath, t.path, t.scale); err != nil {
			return written, err
		}
		written = append(written, t.path)
	}
	return written, nil
}

// Inspect checks that path holds a PNG image and returns its pixel size.
func Inspect(path string) (image.Point, error) {
	ctype, err := utils.DetectContentType(path)
	if err != nil {
		return image.Point{}, err
	}
	if ctype != "image/png" {
		return image.Point{}, fmt.Errorf("%s is not a PNG image: %s", path, ctype)
	}
	img, err := imaging.Open(path)
	if err != nil {
		return image.Point{}, fmt.Errorf("could not decode %s: %w", path, err)
	}
	return img.Bounds().Size(), nil
}

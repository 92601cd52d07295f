package icons

import (
	"errors"
	"strings"

	"github.com/SH20RAJ/icons/raster"
)

// Error kinds. Every error returned by this package matches one of them
// with errors.Is.
var (
	// ErrConfiguration reports a configuration file or variable of the wrong shape.
	ErrConfiguration = errors.New("configuration error")
	// ErrFilesystem reports a missing or unreadable file or directory.
	ErrFilesystem = errors.New("filesystem error")
	// ErrParse reports a malformed SVG or JSON source.
	ErrParse = errors.New("parse error")
	// ErrExternalTool reports a failed run of the raster converter.
	ErrExternalTool = raster.ErrExternalTool
)

// ExternalToolError carries the command line and stderr of a failed converter run.
type ExternalToolError = raster.ToolError

// Error describes a failed operation on a file.
type Error struct {
	Kind error
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.Path != "" {
		b.WriteByte(' ')
		b.WriteString(e.Path)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the kind of e.
func (e *Error) Is(target error) bool { return target == e.Kind }

func configError(op string, err error) error {
	return &Error{Kind: ErrConfiguration, Op: op, Err: err}
}

func fsError(op, path string, err error) error {
	return &Error{Kind: ErrFilesystem, Op: op, Path: path, Err: err}
}

func parseError(op, path string, err error) error {
	return &Error{Kind: ErrParse, Op: op, Path: path, Err: err}
}

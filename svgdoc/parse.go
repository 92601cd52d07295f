package svgdoc

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ParseError reports malformed markup.
type ParseError struct {
	Line int
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("svgdoc: line %d: %s", e.Line, e.Msg)
	}
	return "svgdoc: " + e.Msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads a document and returns its root element. Comments are kept as
// CommentNode children, whitespace-only text is dropped, processing
// instructions and directives are skipped.
func Parse(src string) (*Node, error) {
	dec := xml.NewDecoder(strings.NewReader(src))
	dec.Strict = true

	var (
		root  *Node
		stack []*Node
	)
	for {
		// RawToken keeps namespace prefixes untouched; tag balance is checked
		// against our own stack.
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			line, _ := dec.InputPos()
			return nil, &ParseError{Line: line, Msg: err.Error(), Err: err}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Type: ElementNode, Name: qualified(t.Name)}
			for _, a := range t.Attr {
				n.Attrs = append(n.Attrs, Attr{Name: qualified(a.Name), Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, parseErrorf(dec, "multiple root elements")
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			name := qualified(t.Name)
			if len(stack) == 0 || stack[len(stack)-1].Name != name {
				return nil, parseErrorf(dec, "unexpected closing tag </%s>", name)
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			text := string(t)
			if len(stack) == 0 {
				if strings.TrimSpace(text) != "" {
					return nil, parseErrorf(dec, "text outside of the root element")
				}
				continue
			}
			if strings.TrimSpace(text) == "" {
				continue
			}
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, &Node{Type: TextNode, Value: text})
		case xml.Comment:
			if len(stack) == 0 {
				continue
			}
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, &Node{Type: CommentNode, Value: string(t)})
		}
	}

	if len(stack) > 0 {
		return nil, parseErrorf(dec, "unclosed element <%s>", stack[len(stack)-1].Name)
	}
	if root == nil {
		return nil, &ParseError{Msg: "no root element"}
	}
	return root, nil
}

func parseErrorf(dec *xml.Decoder, format string, args ...any) error {
	line, _ := dec.InputPos()
	return &ParseError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

func qualified(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

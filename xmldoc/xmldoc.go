package xmldoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
)

// ErrNoRoot is returned when a document has no root element.
var ErrNoRoot = errors.New("document has no root element")

// Options control Write.
type Options struct {
	// Indent is the number of spaces per nesting level; zero writes the
	// element on a single line.
	Indent int
	// Declaration writes an <?xml version="1.0" encoding="UTF-8"?> header.
	Declaration bool
}

// Parse reads a whole document and returns its root element.
func Parse(r io.Reader) (*etree.Element, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, ErrNoRoot
	}

	return root, nil
}

// ParseString is Parse for a string.
func ParseString(s string) (*etree.Element, error) {
	return Parse(strings.NewReader(s))
}

// ParseBytes is Parse for a byte slice.
func ParseBytes(b []byte) (*etree.Element, error) {
	return Parse(bytes.NewReader(b))
}

// ScrubNamespace removes namespace prefixes and {uri} qualifiers from the tag
// of el and of all its descendants. Attributes are left untouched.
func ScrubNamespace(el *etree.Element) {
	if el == nil {
		return
	}

	el.Space = ""
	if i := strings.LastIndexByte(el.Tag, '}'); strings.HasPrefix(el.Tag, "{") && i > 0 {
		el.Tag = el.Tag[i+1:]
	}

	for _, child := range el.ChildElements() {
		ScrubNamespace(child)
	}
}

// Write writes el to w. The element is copied, so it keeps its parent.
func Write(w io.Writer, el *etree.Element, opts Options) error {
	if el == nil {
		return ErrNoRoot
	}

	doc := etree.NewDocument()
	if opts.Declaration {
		doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	}

	doc.SetRoot(el.Copy())

	if opts.Indent > 0 {
		doc.Indent(opts.Indent)
	}

	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write XML: %w", err)
	}

	return nil
}

// String renders el with opts.
func String(el *etree.Element, opts Options) (string, error) {
	var b strings.Builder
	if err := Write(&b, el, opts); err != nil {
		return "", err
	}

	return b.String(), nil
}

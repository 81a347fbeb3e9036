package markup

import (
	"github.com/k3a/html2text"
)

// Document pairs a piece of marked-up text with its rendered HTML. The zero
// value is an empty document backed by the package registry; use
// [Registry.NewDocument] to bind one to a custom registry.
//
// A Document is a plain value holder: [Document.Format] overwrites both texts
// on every call and nothing else mutates them. Converters are shared and safe
// to reuse; an individual Document is not meant to be written from multiple
// goroutines.
type Document struct {
	raw      string
	rendered string
	reg      *Registry
}

func (d *Document) registry() *Registry {
	if d.reg != nil {
		return d.reg
	}
	return defaultRegistry
}

// Format stores text as the document's raw content and renders it as lang.
// The language name is matched per [ParseLang]; an unknown or empty name, an
// empty converter slot, and a converter failure all leave the rendered content
// equal to text. Format never fails and returns the document for chaining:
//
//	html := markup.New().Format(src, "markdown").Formatted()
func (d *Document) Format(text, lang string) *Document {
	d.raw = text
	d.rendered = d.registry().Convert(lang, text)
	return d
}

// Formatted returns the rendered HTML stored by the last [Document.Format]
// call.
func (d *Document) Formatted() string { return d.rendered }

// Unformatted returns the raw text stored by the last [Document.Format] call.
func (d *Document) Unformatted() string { return d.raw }

// String returns the rendered HTML, so a Document prints as its formatted
// content.
func (d *Document) String() string { return d.rendered }

// Plain returns the rendered content reduced to plain text: tags stripped,
// entities decoded.
func (d *Document) Plain() string {
	return html2text.HTML2Text(d.rendered)
}

// Truncate shortens the rendered HTML to a character budget, keeping tag
// structure intact and cutting at word boundaries. The budget is given by
// spec:
//
//   - "240c" caps the text content at 240 characters ("c" may be upper case);
//   - "50%" caps it at half the rendered string's character length;
//   - anything else, including the empty string, uses the registry default
//     (250 characters unless changed via [Options]).
//
// A non-empty ellipsis replaces the default marker appended at the cut point.
// When no truncator is registered, Truncate returns [Document.Formatted]
// unchanged.
func (d *Document) Truncate(spec, ellipsis string) string {
	t, defChars, defEllipsis := d.registry().truncation()
	if t == nil {
		return d.rendered
	}
	chars := parseLengthSpec(spec, graphemeCount(d.rendered), defChars)
	if ellipsis == "" {
		ellipsis = defEllipsis
	}
	return t.Truncate(d.rendered, chars, ellipsis)
}

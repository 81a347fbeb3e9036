package markup

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnknownLang    = errors.New("unknown markup language")
	ErrInvalidOptions = errors.New("invalid options")
)

// Lang identifies a markup language.
type Lang string

const (
	Textile  Lang = "textile"
	Markdown Lang = "markdown"
	BBCode   Lang = "bbcode"
)

var langs = []Lang{Textile, Markdown, BBCode}

// String returns the language name.
func (l Lang) String() string { return string(l) }

// Langs returns all markup language names the package knows about. A name
// being known does not imply a converter is wired for it; see [Supports].
func Langs() []Lang {
	out := make([]Lang, len(langs))
	copy(out, langs)
	return out
}

// ParseLang parses a markup-language name. Matching is case-insensitive and
// accepts any name that starts with a known language, so "Markdown" and
// "markdown-extra" both parse as [Markdown]. The loose prefix rule is
// long-standing dispatch behavior that callers rely on; [Supports] is the
// strict counterpart.
func ParseLang(s string) (Lang, error) {
	name := strings.ToLower(s)
	for _, l := range langs {
		if strings.HasPrefix(name, string(l)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLang, s)
}

// defaultRegistry holds the converters probed at package load. It backs every
// Document not bound to an explicit [Registry].
var defaultRegistry = NewRegistry()

// New returns an empty Document backed by the package registry.
func New() *Document {
	return defaultRegistry.NewDocument()
}

// Convert renders text written in the named markup language using the package
// registry. See [Registry.Convert] for the dispatch rules.
func Convert(name, text string) string {
	return defaultRegistry.Convert(name, text)
}

// Supports reports whether the package registry has a converter wired for the
// named markup language. See [Registry.Supports].
func Supports(name string) bool {
	return defaultRegistry.Supports(name)
}

// Register wires a converter for lang in the package registry. A nil
// converter clears the slot, after which text in lang passes through
// unformatted.
func Register(lang Lang, c Converter) {
	defaultRegistry.Register(lang, c)
}

// RegisterTruncator replaces the HTML truncator in the package registry. A
// nil truncator disables truncation; [Document.Truncate] then returns the
// rendered text unchanged.
func RegisterTruncator(t Truncator) {
	defaultRegistry.RegisterTruncator(t)
}

// SetOptions applies opts to the package registry. See [Registry.SetOptions].
func SetOptions(opts *Options) {
	defaultRegistry.SetOptions(opts)
}

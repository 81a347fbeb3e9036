package markup

import (
	"strings"
	"sync"
)

// Converter renders text written in one markup language to HTML.
// Implementations must be safe for concurrent use: one shared instance serves
// every Document built from the same registry. By convention a converter trims
// surrounding whitespace from its output.
type Converter interface {
	Convert(text string) (string, error)
}

// ConverterFunc adapts a plain function to the [Converter] interface.
type ConverterFunc func(text string) (string, error)

// Convert calls f.
func (f ConverterFunc) Convert(text string) (string, error) { return f(text) }

// Truncator shortens rendered HTML to a character budget without breaking tag
// structure, appending ellipsis at the cut point when content was dropped.
// Budgets count characters of text content; markup is free.
type Truncator interface {
	Truncate(html string, chars int, ellipsis string) string
}

// Truncation defaults applied by [NewRegistry] and restored by
// [Registry.SetOptions] for zero-valued fields.
const (
	defaultTruncateChars = 250
	defaultEllipsis      = "…"
)

// Registry holds the converter wired for each markup language plus the HTML
// truncator and truncation defaults. It is the package's capability state: a
// language with an empty slot passes through unformatted, and [Supports]
// reports it as unsupported.
//
// A Registry is built once, typically at process start; [NewRegistry] probes
// the built-in converters. Registration is guarded by a lock so setup code and
// tests can swap slots, but the intended lifecycle is build, register extras,
// then treat as read-only.
type Registry struct {
	mu            sync.RWMutex
	converters    map[Lang]Converter
	truncator     Truncator
	truncateChars int
	ellipsis      string
}

// NewRegistry builds a registry holding every built-in converter that could be
// constructed: Markdown (goldmark), BBCode (frustra/bbcode with script
// stripping), and the built-in HTML truncator. Textile ships without a
// converter; wire one with [Registry.Register] or textile input passes
// through.
func NewRegistry() *Registry {
	r := &Registry{
		converters:    make(map[Lang]Converter, len(langs)),
		truncator:     newHTMLTruncator(),
		truncateChars: defaultTruncateChars,
		ellipsis:      defaultEllipsis,
	}
	for _, l := range langs {
		if c := newBuiltinConverter(l); c != nil {
			r.converters[l] = c
		}
	}
	return r
}

// newBuiltinConverter constructs the stock converter for l, or nil when none
// is available.
func newBuiltinConverter(l Lang) Converter {
	switch l {
	case Markdown:
		return newMarkdownConverter()
	case BBCode:
		return newBBCodeConverter()
	case Textile:
		return newTextileConverter()
	default:
		return nil
	}
}

// Register wires c as the converter for lang. A nil c clears the slot, after
// which text in lang passes through unformatted.
func (r *Registry) Register(lang Lang, c Converter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c == nil {
		delete(r.converters, lang)
		return
	}
	r.converters[lang] = c
}

// RegisterTruncator replaces the HTML truncator. A nil t disables truncation;
// [Document.Truncate] then returns the rendered text unchanged.
func (r *Registry) RegisterTruncator(t Truncator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.truncator = t
}

// Converter returns the converter wired for lang.
func (r *Registry) Converter(lang Lang) (Converter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.converters[lang]
	return c, ok
}

// Supports reports whether a converter is wired for the named markup
// language. Unlike [ParseLang] the name must match exactly, though still
// case-insensitively: Supports("Textile") consults the textile slot,
// Supports("textilex") is false.
func (r *Registry) Supports(name string) bool {
	l := Lang(strings.ToLower(name))
	switch l {
	case Textile, Markdown, BBCode:
	default:
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.converters[l]
	return ok
}

// Convert renders text written in the named markup language. Dispatch never
// fails: an unknown name, an empty converter slot, and a converter error all
// yield text unchanged. The name is matched per [ParseLang].
func (r *Registry) Convert(name, text string) string {
	lang, err := ParseLang(name)
	if err != nil {
		return text
	}
	c, ok := r.Converter(lang)
	if !ok {
		return text
	}
	out, err := c.Convert(text)
	if err != nil {
		return text
	}
	return out
}

// NewDocument returns an empty Document backed by r.
func (r *Registry) NewDocument() *Document {
	return &Document{reg: r}
}

// SetOptions applies opts to the registry. Nil opts or zero-valued fields
// restore the built-in defaults. Converter configuration is fixed when the
// registry is built and is not affected.
func (r *Registry) SetOptions(opts *Options) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.truncateChars = defaultTruncateChars
	r.ellipsis = defaultEllipsis
	if opts == nil {
		return
	}
	if opts.TruncateChars > 0 {
		r.truncateChars = opts.TruncateChars
	}
	if opts.Ellipsis != "" {
		r.ellipsis = opts.Ellipsis
	}
}

// truncation returns the truncator and truncation defaults as one snapshot.
func (r *Registry) truncation() (t Truncator, chars int, ellipsis string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.truncator, r.truncateChars, r.ellipsis
}

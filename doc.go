// Package markup renders text written in lightweight markup languages to
// HTML.
//
// Supported languages are Textile, Markdown, and BBCode. The central entry
// point is [Document]: call [Document.Format] with raw text and a language
// name, then read the result with [Document.Formatted] (the original text
// stays available via [Document.Unformatted]):
//
//	doc := markup.New().Format("**hi**", "markdown")
//	html := doc.Formatted()   // "<p><strong>hi</strong></p>"
//	src := doc.Unformatted()  // "**hi**"
//
// Formatting is total: it never fails and never returns an error. An unknown
// language name, a language without a converter, or a converter failure all
// leave the rendered text equal to the input. Code that embeds user content
// can therefore call Format unconditionally and always get a usable string.
//
// # Languages and converters
//
// Each language is a slot in a [Registry]. [NewRegistry] — and the package
// registry built at load time — probes the built-in converters:
//
//   - [Markdown] — goldmark with GitHub Flavored Markdown extensions.
//   - [BBCode] — frustra/bbcode with script stripping and <br> linebreaks.
//   - [Textile] — no built-in converter; wire one with [Register].
//
// A [Converter] is one method, Convert(text) (string, error); use
// [ConverterFunc] to adapt a function. Registering nil clears a slot, after
// which that language passes through unformatted. [Supports] reports slot
// state by exact, case-insensitive name:
//
//	markup.Supports("markdown") // true
//	markup.Supports("textile")  // false until one is registered
//
// Language names given to Format are matched more loosely: case-insensitive
// and by prefix, so "Markdown" and "markdown-extra" both dispatch to the
// Markdown slot. See [ParseLang].
//
// # Truncation
//
// [Document.Truncate] shortens rendered HTML to a character budget without
// breaking tag structure, cutting at word boundaries and appending an
// ellipsis marker at the cut point:
//
//	doc.Truncate("30c", "")  // at most 30 text characters
//	doc.Truncate("50%", "")  // half the rendered length
//	doc.Truncate("", "")     // default budget (250 characters)
//
// Budgets count user-perceived characters (grapheme clusters) of text
// content; tags are free. The built-in truncator can be replaced or disabled
// through [RegisterTruncator].
//
// # Plain text
//
// [Document.Plain] strips the rendered HTML to plain text (tags removed,
// entities decoded), which suits excerpts and meta descriptions.
//
// # Options
//
// Truncation defaults are configurable, typically from application YAML via
// [ParseOptions] and [SetOptions]:
//
//	opts, err := markup.ParseOptions(data)
//	if err != nil { ... }
//	markup.SetOptions(opts)
//
// # Errors
//
// Document operations never return errors. The package exports sentinels for
// its parsing edges:
//
//   - [ErrUnknownLang] — [ParseLang] given an unrecognized language name
//   - [ErrInvalidOptions] — [ParseOptions] given malformed YAML or a negative
//     budget
package markup

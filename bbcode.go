package markup

import (
	"strings"

	"github.com/frustra/bbcode"
)

// bbcodeConverter compiles BBCode through a shared frustra/bbcode compiler.
// The compiler HTML-escapes text content and converts linebreaks to <br>
// tags. Compiled output is additionally run through stripScripts so that
// markup like [url=javascript:...] or raw fragments surviving odd tag nesting
// cannot carry executable content.
type bbcodeConverter struct {
	compiler     bbcode.Compiler
	stripScripts bool
}

func newBBCodeConverter() Converter {
	return &bbcodeConverter{
		// Auto-close dangling tags, ignore unmatched closers: forum input is
		// rarely well formed and the facade must always produce output.
		compiler:     bbcode.NewCompiler(true, true),
		stripScripts: true,
	}
}

func (c *bbcodeConverter) Convert(text string) (string, error) {
	out := c.compiler.Compile(text)
	if c.stripScripts {
		out = stripScripts(out)
	}
	return strings.TrimSpace(out), nil
}

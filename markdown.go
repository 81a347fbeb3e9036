package markup

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdownConverter renders Markdown through a shared goldmark instance. GFM
// covers the table, strikethrough, autolink, and task-list syntax users paste
// from GitHub-flavored sources; plain CommonMark input is unaffected.
type markdownConverter struct {
	md goldmark.Markdown
}

func newMarkdownConverter() Converter {
	return &markdownConverter{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

func (c *markdownConverter) Convert(text string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(text), &buf); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

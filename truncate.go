package markup

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/clipperhouse/uax29/v2/words"
	"golang.org/x/net/html"
)

// lengthSpec matches the accepted truncation budgets: "240c" for a character
// count, "50%" for a share of the rendered length.
var lengthSpec = regexp.MustCompile(`(?i)^(\d+)(c|%)$`)

// parseLengthSpec resolves a length spec against total, the rendered text's
// character length. Anything that does not parse — including the empty
// string — falls back to the default budget.
func parseLengthSpec(spec string, total, fallback int) int {
	m := lengthSpec.FindStringSubmatch(strings.TrimSpace(spec))
	if m == nil {
		return fallback
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		// Digit run too long for an int.
		return fallback
	}
	if m[2] == "%" {
		return total * n / 100
	}
	return n
}

// graphemeCount returns the number of user-perceived characters in s.
func graphemeCount(s string) int {
	g := graphemes.FromString(s)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// htmlTruncator is the built-in [Truncator]. It parses the fragment, keeps
// whole words until the character budget is spent, appends the ellipsis
// inside the innermost open element, drops the rest, and re-renders — so tags
// never end up unbalanced. The budget counts grapheme clusters of text
// content only; markup is free. Input that fits its budget is returned
// byte-for-byte unchanged.
type htmlTruncator struct{}

func newHTMLTruncator() Truncator { return htmlTruncator{} }

func (htmlTruncator) Truncate(fragment string, chars int, ellipsis string) string {
	if chars < 0 {
		chars = 0
	}
	body, ok := parseBody(fragment)
	if !ok {
		return truncateText(fragment, chars, ellipsis)
	}
	w := &truncWalker{remaining: chars}
	w.walkAll(body)
	if !w.done {
		return fragment
	}
	w.placeEllipsis(ellipsis)
	var b strings.Builder
	for _, n := range w.kept {
		_ = html.Render(&b, n)
	}
	return b.String()
}

// truncWalker clones a node tree until the character budget runs out.
type truncWalker struct {
	remaining int
	done      bool
	lastText  *html.Node // most recent text node in the clone
	kept      []*html.Node
}

func (w *truncWalker) walkAll(body *html.Node) {
	for c := body.FirstChild; c != nil && !w.done; c = c.NextSibling {
		if n := w.walk(c); n != nil {
			w.kept = append(w.kept, n)
		}
	}
}

func (w *truncWalker) walk(n *html.Node) *html.Node {
	if w.done {
		return nil
	}
	switch n.Type {
	case html.TextNode:
		return w.walkText(n)
	case html.ElementNode:
		clone := &html.Node{Type: html.ElementNode, Data: n.Data, Namespace: n.Namespace}
		clone.Attr = append(clone.Attr, n.Attr...)
		for c := n.FirstChild; c != nil && !w.done; c = c.NextSibling {
			if child := w.walk(c); child != nil {
				clone.AppendChild(child)
			}
		}
		if w.done && clone.FirstChild == nil && n.FirstChild != nil {
			// None of the element's content fit; drop the empty shell.
			return nil
		}
		return clone
	default:
		clone := &html.Node{Type: n.Type, Data: n.Data, Namespace: n.Namespace}
		for c := n.FirstChild; c != nil && !w.done; c = c.NextSibling {
			if child := w.walk(c); child != nil {
				clone.AppendChild(child)
			}
		}
		return clone
	}
}

func (w *truncWalker) walkText(n *html.Node) *html.Node {
	count := graphemeCount(n.Data)
	if count <= w.remaining {
		w.remaining -= count
		clone := &html.Node{Type: html.TextNode, Data: n.Data}
		w.lastText = clone
		return clone
	}
	cut := cutWords(n.Data, w.remaining)
	if cut == "" && w.lastText == nil {
		// Nothing kept anywhere yet and the first word alone is over budget:
		// cut it hard so the character guarantee holds.
		cut = strings.TrimRight(cutGraphemes(n.Data, w.remaining), " \t\r\n")
	}
	w.remaining = 0
	w.done = true
	if cut == "" {
		return nil
	}
	clone := &html.Node{Type: html.TextNode, Data: cut}
	w.lastText = clone
	return clone
}

// placeEllipsis appends the marker at the truncation point: inside the
// element holding the last kept text, or on its own when nothing fit.
func (w *truncWalker) placeEllipsis(ellipsis string) {
	if w.lastText != nil {
		w.lastText.Data = strings.TrimRight(w.lastText.Data, " \t\r\n") + ellipsis
		return
	}
	w.kept = append(w.kept, &html.Node{Type: html.TextNode, Data: ellipsis})
}

// cutWords returns the longest prefix of s made of whole words whose
// character count fits the budget, with trailing whitespace removed. The
// empty string means no whole word fits.
func cutWords(s string, budget int) string {
	if budget <= 0 {
		return ""
	}
	var b strings.Builder
	used := 0
	tokens := words.FromString(s)
	for tokens.Next() {
		tok := tokens.Value()
		n := graphemeCount(tok)
		if used+n > budget {
			break
		}
		b.WriteString(tok)
		used += n
	}
	cut := strings.TrimRight(b.String(), " \t\r\n")
	if strings.TrimSpace(cut) == "" {
		return ""
	}
	return cut
}

// cutGraphemes returns the first budget grapheme clusters of s.
func cutGraphemes(s string, budget int) string {
	if budget <= 0 {
		return ""
	}
	end := 0
	n := 0
	g := graphemes.FromString(s)
	for g.Next() {
		end += len(g.Value())
		n++
		if n == budget {
			break
		}
	}
	return s[:end]
}

// truncateText is the plain-text fallback used when a fragment cannot be
// parsed as HTML.
func truncateText(s string, chars int, ellipsis string) string {
	if graphemeCount(s) <= chars {
		return s
	}
	return cutWords(s, chars) + ellipsis
}

package markup

import (
	"strings"

	"golang.org/x/net/html"
)

// stripScripts removes <script> elements, event-handler attributes, and
// javascript: URLs from an HTML fragment. The fragment is parsed and
// re-rendered, so output is always well formed; if parsing fails the input is
// returned unchanged rather than failing the caller.
func stripScripts(fragment string) string {
	body, ok := parseBody(fragment)
	if !ok {
		return fragment
	}
	var b strings.Builder
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if clean := stripNode(c); clean != nil {
			_ = html.Render(&b, clean)
		}
	}
	return b.String()
}

// parseBody parses an HTML fragment and returns the body node holding its
// content.
func parseBody(fragment string) (*html.Node, bool) {
	doc, err := html.Parse(strings.NewReader("<html><body>" + fragment + "</body></html>"))
	if err != nil {
		return nil, false
	}
	body := findElement(doc, "body")
	if body == nil {
		return nil, false
	}
	return body, true
}

func findElement(n *html.Node, name string) *html.Node {
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, name) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, name); found != nil {
			return found
		}
	}
	return nil
}

// stripNode returns a detached copy of n with script content removed, or nil
// when the node itself is dropped.
func stripNode(n *html.Node) *html.Node {
	switch n.Type {
	case html.TextNode:
		return &html.Node{Type: html.TextNode, Data: n.Data}
	case html.ElementNode:
		if strings.EqualFold(n.Data, "script") {
			return nil
		}
		clone := &html.Node{Type: html.ElementNode, Data: n.Data, Namespace: n.Namespace}
		for _, a := range n.Attr {
			key := strings.ToLower(a.Key)
			if strings.HasPrefix(key, "on") {
				continue
			}
			if isURLAttr(key) && strings.HasPrefix(strings.TrimSpace(strings.ToLower(a.Val)), "javascript:") {
				continue
			}
			clone.Attr = append(clone.Attr, a)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := stripNode(c); child != nil {
				clone.AppendChild(child)
			}
		}
		return clone
	default:
		clone := &html.Node{Type: n.Type, Data: n.Data, Namespace: n.Namespace}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := stripNode(c); child != nil {
				clone.AppendChild(child)
			}
		}
		return clone
	}
}

func isURLAttr(key string) bool {
	switch key {
	case "href", "src", "poster", "cite", "action", "formaction", "data":
		return true
	default:
		return false
	}
}

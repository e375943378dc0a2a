package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

var linkParser = goldmark.New(goldmark.WithExtensions(extension.Linkify, extension.Strikethrough, extension.Table))

// ExtractLinks returns the links of source in document order. Repeated
// destinations are reported once, keeping the first label.
func ExtractLinks(source string) []Link {
	if strings.TrimSpace(source) == "" {
		return nil
	}
	src := []byte(source)
	root := linkParser.Parser().Parse(text.NewReader(src))

	var links []Link
	seen := make(map[string]struct{})
	add := func(label, url string) {
		url = strings.TrimSpace(url)
		if url == "" {
			return
		}
		if _, dup := seen[url]; dup {
			return
		}
		seen[url] = struct{}{}
		label = strings.TrimSpace(label)
		if label == "" {
			label = url
		}
		links = append(links, Link{Text: label, URL: url})
	}

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Link:
			add(nodeText(node, src), string(node.Destination))
			return ast.WalkSkipChildren, nil
		case *ast.AutoLink:
			add(string(node.Label(src)), string(node.URL(src)))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return links
}

func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch child := c.(type) {
		case *ast.Text:
			b.Write(child.Segment.Value(src))
			if child.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(child.Value)
		default:
			b.WriteString(nodeText(child, src))
		}
	}
	return b.String()
}

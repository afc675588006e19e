package page

import (
	"net/url"
	"strings"

	nethtml "golang.org/x/net/html"
)

type walkItem struct {
	node  *nethtml.Node
	close bool
}

// Flatten walks the tree under root in document order and returns the link
// table together with the line records that reference it. Anchors are
// captured as a single labelled unit and never walked further. Block
// elements are followed by one empty line.
func Flatten(root *nethtml.Node, base *url.URL) (Links, []Line) {
	var links Links
	var lines []Line
	if root == nil {
		return links, lines
	}

	stack := []walkItem{{node: root}}
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := item.node

		if item.close {
			if isBlockTag(node.Data) {
				lines = append(lines, PlainLine(""))
			}
			continue
		}

		switch node.Type {
		case nethtml.TextNode:
			if text := strings.TrimSpace(node.Data); text != "" {
				lines = append(lines, PlainLine(text))
			}
		case nethtml.ElementNode:
			if strings.EqualFold(node.Data, "a") {
				href, ok := nodeAttr(node, "href")
				if !ok {
					continue
				}
				label := strings.TrimSpace(strings.Join(textContent(node), " "))
				if label == "" {
					continue
				}
				lines = append(lines, links.add(ResolveLink(base, href), label))
				continue
			}
			stack = append(stack, walkItem{node: node, close: true})
			stack = pushChildren(stack, node)
		case nethtml.DocumentNode:
			stack = pushChildren(stack, node)
		}
	}
	return links, lines
}

// pushChildren pushes in reverse so the first child is popped first.
func pushChildren(stack []walkItem, node *nethtml.Node) []walkItem {
	for child := node.LastChild; child != nil; child = child.PrevSibling {
		stack = append(stack, walkItem{node: child})
	}
	return stack
}

func textContent(node *nethtml.Node) []string {
	var parts []string
	stack := []*nethtml.Node{node}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.Type == nethtml.TextNode {
			parts = append(parts, n.Data)
			continue
		}
		for child := n.LastChild; child != nil; child = child.PrevSibling {
			stack = append(stack, child)
		}
	}
	return parts
}

func nodeAttr(node *nethtml.Node, name string) (string, bool) {
	for _, attr := range node.Attr {
		if attr.Namespace == "" && strings.EqualFold(attr.Key, name) {
			return attr.Val, true
		}
	}
	return "", false
}

func isBlockTag(tag string) bool {
	switch strings.ToLower(tag) {
	case "p", "div", "br", "li", "ul", "ol", "section", "article":
		return true
	default:
		return false
	}
}

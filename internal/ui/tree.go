package ui

import (
	"fmt"
	"strings"

	"github.com/dastanaron/arc-bookmarks/internal/models"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// FilterNodes keeps bookmarks whose title or URL contains query and the
// folders leading to them. A folder whose own title matches is kept whole.
func FilterNodes(nodes []models.Node, query string) []models.Node {
	if query == "" {
		return nodes
	}
	q := strings.ToLower(query)

	var out []models.Node
	for _, n := range nodes {
		if strings.Contains(strings.ToLower(n.Title), q) {
			out = append(out, n)
			continue
		}
		if !n.IsFolder() {
			if strings.Contains(strings.ToLower(n.URL), q) {
				out = append(out, n)
			}
			continue
		}
		if children := FilterNodes(n.Children, query); len(children) > 0 {
			out = append(out, models.NewFolder(n.Title, children))
		}
	}
	return out
}

// BuildTree converts bookmark nodes into tview tree nodes. Spaces start
// expanded; nested folders only when expandAll is set.
func BuildTree(roots []models.Node, expandAll bool) *tview.TreeNode {
	root := tview.NewTreeNode("Bookmarks").SetColor(tcell.ColorYellow)

	var add func(parent *tview.TreeNode, n models.Node, level int)
	add = func(parent *tview.TreeNode, n models.Node, level int) {
		node := tview.NewTreeNode(label(n)).SetReference(n)
		if n.IsFolder() {
			node.SetColor(tcell.ColorGreen).SetExpanded(level == 0 || expandAll)
			for _, child := range n.Children {
				add(node, child, level+1)
			}
		}
		parent.AddChild(node)
	}

	for _, n := range roots {
		add(root, n, 0)
	}
	return root
}

// Details formats the detail pane text for a node
func Details(n models.Node) string {
	if n.IsFolder() {
		return fmt.Sprintf(
			"[::b]Type:[::-]\nFolder\n\n[::b]Name:[::-]\n%s\n\n[::b]Bookmarks:[::-]\n%d",
			tview.Escape(n.Title), models.CountBookmarks([]models.Node{n}))
	}
	return fmt.Sprintf(
		"[::b]Type:[::-]\nBookmark\n\n[::b]Title:[::-]\n%s\n\n[::b]URL:[::-]\n%s",
		tview.Escape(n.Title), tview.Escape(n.URL))
}

func label(n models.Node) string {
	if n.IsFolder() {
		return "📁 " + n.Title
	}
	if n.Title == "" {
		return n.URL
	}
	return n.Title
}

package parser

import (
	"io"
	"strings"

	"github.com/dastanaron/arc-bookmarks/internal/models"

	"golang.org/x/net/html"
)

// Parser reads Netscape bookmark files back into bookmark trees
type Parser struct{}

// NewParser creates a new parser
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses an HTML bookmark file and returns its top level nodes
func (p *Parser) Parse(r io.Reader) ([]models.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var roots []models.Node
	var folderStack []models.Node

	add := func(n models.Node) {
		if len(folderStack) == 0 {
			roots = append(roots, n)
			return
		}
		top := &folderStack[len(folderStack)-1]
		top.Children = append(top.Children, n)
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "h3":
				// Folder header; its <DL> follows and closes it
				folderStack = append(folderStack, models.NewFolder(textOf(n), []models.Node{}))
				return
			case "a":
				b := models.NewBookmark(textOf(n), attr(n, "href"))
				add(b)
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}

		// When exiting DL container - "close" current folder
		if n.Type == html.ElementNode && n.Data == "dl" && len(folderStack) > 0 {
			folder := folderStack[len(folderStack)-1]
			folderStack = folderStack[:len(folderStack)-1]
			add(folder)
		}
	}

	walk(doc)

	// folders whose <DL> never came
	for len(folderStack) > 0 {
		folder := folderStack[len(folderStack)-1]
		folderStack = folderStack[:len(folderStack)-1]
		add(folder)
	}
	return roots, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textOf(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return sb.String()
}

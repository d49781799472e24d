package exporter

import (
	"fmt"
	"html"
	"strings"

	"github.com/dastanaron/arc-bookmarks/internal/models"
)

const header = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>`

const footer = "\n</DL><p>"

// Renderer writes bookmark trees in the Netscape bookmark file format
type Renderer struct {
	// Escape HTML-escapes titles and URLs. Off by default, which emits
	// them verbatim.
	Escape bool
}

// NewRenderer creates a renderer that emits values verbatim
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render returns the complete bookmark document for roots.
// Every entry starts on a new line indented with one tab per level;
// the document has no trailing newline.
func (r *Renderer) Render(roots []models.Node) string {
	var sb strings.Builder
	sb.WriteString(header)
	r.writeNodes(&sb, roots, 1)
	sb.WriteString(footer)
	return sb.String()
}

func (r *Renderer) writeNodes(sb *strings.Builder, nodes []models.Node, level int) {
	indent := strings.Repeat("\t", level)
	for _, n := range nodes {
		switch n.Type {
		case models.ItemTypeFolder:
			r.writeFolder(sb, n, indent, level)
		case models.ItemTypeBookmark:
			r.writeBookmark(sb, n, indent)
		}
	}
}

// writeFolder writes a folder header and its contents recursively
func (r *Renderer) writeFolder(sb *strings.Builder, n models.Node, indent string, level int) {
	fmt.Fprintf(sb, "\n%s<DT><H3>%s</H3>", indent, r.text(n.Title))
	fmt.Fprintf(sb, "\n%s<DL><p>", indent)
	r.writeNodes(sb, n.Children, level+1)
	fmt.Fprintf(sb, "\n%s</DL><p>", indent)
}

func (r *Renderer) writeBookmark(sb *strings.Builder, n models.Node, indent string) {
	fmt.Fprintf(sb, "\n%s<DT><A HREF=\"%s\">%s</A>", indent, r.text(n.URL), r.text(n.Title))
}

func (r *Renderer) text(s string) string {
	if r.Escape {
		return html.EscapeString(s)
	}
	return s
}

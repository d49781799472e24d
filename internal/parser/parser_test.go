package parser

import (
	"reflect"
	"strings"
	"testing"

	"github.com/dastanaron/arc-bookmarks/internal/exporter"
	"github.com/dastanaron/arc-bookmarks/internal/models"
)

func TestParseRenderedTree(t *testing.T) {
	roots := []models.Node{
		models.NewFolder("Work", []models.Node{
			models.NewBookmark("Example", "https://example.com"),
			models.NewFolder("Sub", []models.Node{
				models.NewBookmark("Deep", "file:///Users/x"),
			}),
			models.NewFolder("Empty", []models.Node{}),
			models.NewBookmark("After", "https://after.example"),
		}),
		models.NewFolder("Home", []models.Node{}),
	}

	doc := exporter.NewRenderer().Render(roots)
	got, err := NewParser().Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Failed to parse HTML: %v", err)
	}
	if !reflect.DeepEqual(got, roots) {
		t.Fatalf("Expected %+v, got %+v", roots, got)
	}
}

func TestParseEscapedTitles(t *testing.T) {
	roots := []models.Node{
		models.NewFolder("R&D <team>", []models.Node{
			models.NewBookmark(`Q&A "faq"`, "https://example.com/?a=1&b=2"),
		}),
	}

	doc := (&exporter.Renderer{Escape: true}).Render(roots)
	got, err := NewParser().Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Failed to parse HTML: %v", err)
	}
	if !reflect.DeepEqual(got, roots) {
		t.Fatalf("Expected %+v, got %+v", roots, got)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	doc := exporter.NewRenderer().Render(nil)
	got, err := NewParser().Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Failed to parse HTML: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Expected no nodes, got %+v", got)
	}
}

package exporter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dastanaron/arc-bookmarks/internal/models"
)

const preamble = "<!DOCTYPE NETSCAPE-Bookmark-file-1>\n" +
	"<META HTTP-EQUIV=\"Content-Type\" CONTENT=\"text/html; charset=UTF-8\">\n" +
	"<TITLE>Bookmarks</TITLE>\n" +
	"<H1>Bookmarks</H1>\n" +
	"<DL><p>"

func TestRenderEmpty(t *testing.T) {
	got := NewRenderer().Render(nil)
	want := preamble + "\n</DL><p>"
	if got != want {
		t.Fatalf("Expected %q, got %q", want, got)
	}
}

func TestRenderNesting(t *testing.T) {
	roots := []models.Node{
		models.NewFolder("Work", []models.Node{
			models.NewFolder("Sub", []models.Node{
				models.NewBookmark("Example", "https://example.com"),
			}),
			models.NewFolder("Empty", []models.Node{}),
		}),
		models.NewFolder("Home", nil),
	}

	got := NewRenderer().Render(roots)
	want := preamble +
		"\n\t<DT><H3>Work</H3>" +
		"\n\t<DL><p>" +
		"\n\t\t<DT><H3>Sub</H3>" +
		"\n\t\t<DL><p>" +
		"\n\t\t\t<DT><A HREF=\"https://example.com\">Example</A>" +
		"\n\t\t</DL><p>" +
		"\n\t\t<DT><H3>Empty</H3>" +
		"\n\t\t<DL><p>" +
		"\n\t\t</DL><p>" +
		"\n\t</DL><p>" +
		"\n\t<DT><H3>Home</H3>" +
		"\n\t<DL><p>" +
		"\n\t</DL><p>" +
		"\n</DL><p>"
	if got != want {
		t.Fatalf("Render mismatch\nwant:\n%s\ngot:\n%s", want, got)
	}

	if open, closed := strings.Count(got, "<DL><p>"), strings.Count(got, "</DL><p>"); open != closed {
		t.Fatalf("Unbalanced lists: %d opened, %d closed", open, closed)
	}
}

func TestRenderVerbatimAndEscaped(t *testing.T) {
	roots := []models.Node{
		models.NewFolder("R&D <team>", []models.Node{
			models.NewBookmark(`Q&A "faq"`, "https://example.com/?a=1&b=2"),
		}),
	}

	verbatim := NewRenderer().Render(roots)
	if !strings.Contains(verbatim, `<DT><H3>R&D <team></H3>`) {
		t.Fatalf("Expected verbatim folder title, got:\n%s", verbatim)
	}
	if !strings.Contains(verbatim, `<DT><A HREF="https://example.com/?a=1&b=2">Q&A "faq"</A>`) {
		t.Fatalf("Expected verbatim bookmark, got:\n%s", verbatim)
	}

	escaped := (&Renderer{Escape: true}).Render(roots)
	if !strings.Contains(escaped, `<DT><H3>R&amp;D &lt;team&gt;</H3>`) {
		t.Fatalf("Expected escaped folder title, got:\n%s", escaped)
	}
	if !strings.Contains(escaped, `<DT><A HREF="https://example.com/?a=1&amp;b=2">Q&amp;A &#34;faq&#34;</A>`) {
		t.Fatalf("Expected escaped bookmark, got:\n%s", escaped)
	}
}

func TestOutputPath(t *testing.T) {
	now := time.Date(2024, time.March, 5, 23, 59, 0, 0, time.UTC)
	got := OutputPath("out", "arc_bookmarks", now)
	want := filepath.Join("out", "arc_bookmarks_2024_03_05.html")
	if got != want {
		t.Fatalf("Expected %s, got %s", want, got)
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "arc_bookmarks_2024_03_05.html")

	if err := WriteFile(path, "first"); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if err := WriteFile(path, "second"); err != nil {
		t.Fatalf("Failed to overwrite file: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Fatalf("Expected 'second', got '%s'", data)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected only the output file, found %d entries", len(entries))
	}
}

func TestWriteFileMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.html")
	if err := WriteFile(path, "x"); err == nil {
		t.Fatal("Expected error for missing directory")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("Expected no output file, got %v", err)
	}
}

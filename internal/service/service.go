package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dastanaron/arc-bookmarks/internal/exporter"
	"github.com/dastanaron/arc-bookmarks/internal/hierarchy"
	"github.com/dastanaron/arc-bookmarks/internal/models"
	"github.com/dastanaron/arc-bookmarks/internal/parser"
	"github.com/dastanaron/arc-bookmarks/internal/sidebar"
)

// ErrVerification is returned when the rendered document does not read back
// with the same number of bookmarks
var ErrVerification = errors.New("rendered bookmarks do not match")

// Result is the outcome of one conversion
type Result struct {
	HTML   string
	Roots  []models.Node
	Spaces models.SpaceIndex
	Stats  models.Stats
	// Empty is set when no container qualified and an empty document was rendered
	Empty bool
}

// ConvertService turns a sidebar export into a bookmark document
type ConvertService struct {
	policy   sidebar.Policy
	builder  *hierarchy.Builder
	renderer *exporter.Renderer
	parser   *parser.Parser
}

// NewConvertService creates a converter using the given container policy
func NewConvertService(policy sidebar.Policy) *ConvertService {
	return &ConvertService{
		policy:   policy,
		builder:  hierarchy.NewBuilder(),
		renderer: exporter.NewRenderer(),
		parser:   parser.NewParser(),
	}
}

// WithEscape enables HTML escaping in the rendered document
func (s *ConvertService) WithEscape(escape bool) *ConvertService {
	s.renderer.Escape = escape
	return s
}

// WithMaxDepth limits folder nesting below each space
func (s *ConvertService) WithMaxDepth(depth int) *ConvertService {
	s.builder.MaxDepth = depth
	return s
}

// Convert runs the whole pipeline over the raw export.
// A missing container is not an error: the result is an empty document.
func (s *ConvertService) Convert(raw []byte) (*Result, error) {
	doc, err := sidebar.Parse(string(raw))
	if err != nil {
		return nil, err
	}

	res := &Result{Spaces: models.NewSpaceIndex()}

	container, err := doc.SelectContainer(s.policy)
	if errors.Is(err, sidebar.ErrNoEligibleContainer) {
		res.Empty = true
		res.Stats.ContainerIndex = -1
		res.Roots = []models.Node{}
		res.HTML = s.renderer.Render(res.Roots)
		return res, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select container: %w", err)
	}

	spaces, spaceCount := sidebar.ResolveSpaces(container.Spaces)
	items, skipped := sidebar.ParseItems(container.Items)

	roots, stats := s.builder.Build(spaces.Pinned, items)
	stats.SpacesFound = spaceCount
	stats.ContainerIndex = container.Index
	stats.ItemsDropped += skipped

	res.Roots = roots
	res.Spaces = spaces
	res.Stats = stats
	res.HTML = s.renderer.Render(roots)
	return res, nil
}

// Verify reads the rendered document back and checks the bookmark count
func (s *ConvertService) Verify(res *Result) error {
	nodes, err := s.parser.Parse(strings.NewReader(res.HTML))
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	if got := models.CountBookmarks(nodes); got != res.Stats.BookmarksFound {
		return fmt.Errorf("verify: %w: rendered %d, read back %d", ErrVerification, res.Stats.BookmarksFound, got)
	}
	return nil
}

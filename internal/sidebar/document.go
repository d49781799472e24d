package sidebar

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

// Policy selects which container of the export is converted
type Policy string

const (
	// PolicyFirstMatch takes the first container holding both spaces and items
	PolicyFirstMatch Policy = "first-match"
	// PolicyLargest takes the container with the most items, first one on ties
	PolicyLargest Policy = "largest"
)

// ParsePolicy converts a flag value into a Policy
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case PolicyFirstMatch:
		return PolicyFirstMatch, nil
	case PolicyLargest, "":
		return PolicyLargest, nil
	}
	return "", fmt.Errorf("unknown container policy %q (want %s or %s)", s, PolicyFirstMatch, PolicyLargest)
}

// Document is a parsed sidebar export
type Document struct {
	root gjson.Result
}

// Container is the entry of sidebar.containers chosen for conversion
type Container struct {
	Index  int
	Spaces gjson.Result
	Items  gjson.Result
}

// Parse repairs the raw export text and checks that it is valid JSON
func Parse(text string) (*Document, error) {
	text = Repair(text)
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("parse sidebar: %w: not UTF-8", ErrMalformedInput)
	}
	if !gjson.Valid(text) {
		return nil, fmt.Errorf("parse sidebar: %w", ErrMalformedInput)
	}
	return &Document{root: gjson.Parse(text)}, nil
}

// Containers returns sidebar.containers, or nil when the export has none
func (d *Document) Containers() []gjson.Result {
	containers := field(field(d.root, "sidebar"), "containers")
	if !containers.IsArray() {
		return nil
	}
	return containers.Array()
}

// SelectContainer picks the container to convert according to policy
func (d *Document) SelectContainer(policy Policy) (Container, error) {
	return SelectContainer(d.Containers(), policy)
}

// SelectContainer picks one container holding both spaces and items.
// Entries that are not objects are ignored.
func SelectContainer(containers []gjson.Result, policy Policy) (Container, error) {
	best := Container{Index: -1}
	bestSize := -1

	for i, c := range containers {
		if !c.IsObject() {
			continue
		}
		spaces, items := field(c, "spaces"), field(c, "items")
		if !spaces.Exists() || !items.Exists() {
			continue
		}

		if policy == PolicyFirstMatch {
			return Container{Index: i, Spaces: spaces, Items: items}, nil
		}

		size := 0
		if items.IsArray() {
			size = len(items.Array())
		}
		if size > bestSize {
			best = Container{Index: i, Spaces: spaces, Items: items}
			bestSize = size
		}
	}

	if best.Index < 0 {
		return best, ErrNoEligibleContainer
	}
	return best, nil
}

package models

// OrderedMap maps container ids to space titles and remembers insertion order.
// Setting an existing key replaces the value but keeps its position.
type OrderedMap struct {
	keys   []string
	values map[string]string
}

// NewOrderedMap creates an empty map
func NewOrderedMap() *OrderedMap {
	return &OrderedMap{values: make(map[string]string)}
}

// Set stores value under key
func (m *OrderedMap) Set(key, value string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key
func (m *OrderedMap) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Len returns the number of keys
func (m *OrderedMap) Len() int {
	return len(m.keys)
}

// Keys returns keys in insertion order
func (m *OrderedMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Each calls fn for every entry in insertion order until fn returns false
func (m *OrderedMap) Each(fn func(key, value string) bool) {
	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			return
		}
	}
}

// SpaceIndex holds container id to space title associations
type SpaceIndex struct {
	Pinned   *OrderedMap
	Unpinned *OrderedMap
}

// NewSpaceIndex creates an empty index
func NewSpaceIndex() SpaceIndex {
	return SpaceIndex{Pinned: NewOrderedMap(), Unpinned: NewOrderedMap()}
}

// Stats are the counters a conversion run reports
type Stats struct {
	SpacesFound    int
	BookmarksFound int
	FoldersFound   int
	ContainerIndex int // -1 when no container qualified
	ItemsDropped   int
	CyclesSkipped  int
}

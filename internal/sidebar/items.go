package sidebar

import "github.com/tidwall/gjson"

// Tab is the saved tab attached to a bookmark item
type Tab struct {
	SavedTitle string
	SavedURL   string
}

// Item is one entry of a container's flat items list
type Item struct {
	ID        string
	ParentID  string
	HasParent bool
	Title     string
	HasTitle  bool
	Tab       *Tab // nil unless data.tab is present
}

// ItemIndex is an id to item lookup that keeps first-insertion order.
// A duplicate id replaces the earlier item in place.
type ItemIndex struct {
	order []string
	items map[string]Item
}

// Len returns the number of distinct ids
func (x *ItemIndex) Len() int {
	return len(x.order)
}

// Get returns the item stored under id
func (x *ItemIndex) Get(id string) (Item, bool) {
	it, ok := x.items[id]
	return it, ok
}

// Children returns the items whose parentID equals parentID, in index order
func (x *ItemIndex) Children(parentID string) []Item {
	var out []Item
	for _, id := range x.order {
		it := x.items[id]
		if it.HasParent && it.ParentID == parentID {
			out = append(out, it)
		}
	}
	return out
}

func (x *ItemIndex) put(it Item) {
	if _, ok := x.items[it.ID]; !ok {
		x.order = append(x.order, it.ID)
	}
	x.items[it.ID] = it
}

// ParseItems builds the lookup from a container's items list.
// Entries that are not objects are ignored. Objects without an id are
// skipped and their number is returned alongside the index.
func ParseItems(items gjson.Result) (*ItemIndex, int) {
	index := &ItemIndex{items: make(map[string]Item)}
	if !items.IsArray() {
		return index, 0
	}

	skipped := 0
	for _, raw := range items.Array() {
		if !raw.IsObject() {
			continue
		}
		id := field(raw, "id")
		if !id.Exists() || id.Type == gjson.Null {
			skipped++
			continue
		}
		index.put(newItem(id.String(), raw))
	}
	return index, skipped
}

func newItem(id string, raw gjson.Result) Item {
	it := Item{ID: id}

	if p := field(raw, "parentID"); p.Exists() && p.Type != gjson.Null {
		it.ParentID = p.String()
		it.HasParent = true
	}
	if t := field(raw, "title"); t.Exists() {
		it.Title = t.String()
		it.HasTitle = true
	}

	data := field(raw, "data")
	if data.IsObject() {
		if tab := field(data, "tab"); tab.Exists() {
			it.Tab = &Tab{
				SavedTitle: field(tab, "savedTitle").String(),
				SavedURL:   field(tab, "savedURL").String(),
			}
		}
	}
	return it
}

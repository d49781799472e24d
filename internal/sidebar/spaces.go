package sidebar

import (
	"strconv"

	"github.com/dastanaron/arc-bookmarks/internal/models"

	"github.com/tidwall/gjson"
)

// ResolveSpaces maps container ids to space titles.
// Each marker object in newContainerIDs ({"pinned":...} or {"unpinned":...})
// is followed by the id it describes. Untitled spaces are named "Space N",
// counting untitled spaces only. It also returns the number of spaces found;
// entries that are not objects are ignored.
func ResolveSpaces(spaces gjson.Result) (models.SpaceIndex, int) {
	index := models.NewSpaceIndex()
	if !spaces.IsArray() {
		return index, 0
	}

	count := 0
	untitled := 1
	for _, space := range spaces.Array() {
		if !space.IsObject() {
			continue
		}
		count++

		var title string
		if t := field(space, "title"); t.Exists() {
			title = t.String()
		} else {
			title = "Space " + strconv.Itoa(untitled)
			untitled++
		}

		ids := field(space, "newContainerIDs")
		if !ids.IsArray() {
			continue
		}
		entries := ids.Array()
		for i, entry := range entries {
			if !entry.IsObject() {
				continue
			}
			// a marker in last position has no id to pair with
			if i+1 >= len(entries) {
				break
			}
			id := entries[i+1].String()
			if field(entry, "pinned").Exists() {
				index.Pinned.Set(id, title)
			} else if field(entry, "unpinned").Exists() {
				index.Unpinned.Set(id, title)
			}
		}
	}
	return index, count
}

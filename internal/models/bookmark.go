package models

// ItemType represents the type of item (bookmark or folder)
type ItemType string

const (
	ItemTypeBookmark ItemType = "bookmark"
	ItemTypeFolder   ItemType = "folder"
)

// Node is one entry of a converted bookmark tree.
// Folders carry Children, bookmarks carry URL.
type Node struct {
	Type     ItemType
	Title    string
	URL      string
	Children []Node
}

// NewFolder creates a folder node
func NewFolder(title string, children []Node) Node {
	return Node{Type: ItemTypeFolder, Title: title, Children: children}
}

// NewBookmark creates a bookmark node
func NewBookmark(title, url string) Node {
	return Node{Type: ItemTypeBookmark, Title: title, URL: url}
}

// IsFolder reports whether the node is a folder
func (n Node) IsFolder() bool {
	return n.Type == ItemTypeFolder
}

// Walk visits n and its descendants depth-first. Depth of n is 0.
// Returning false from fn skips the node's children.
func (n Node) Walk(fn func(node Node, depth int) bool) {
	var walk func(Node, int)
	walk = func(node Node, depth int) {
		if !fn(node, depth) {
			return
		}
		for _, child := range node.Children {
			walk(child, depth+1)
		}
	}
	walk(n, 0)
}

// CountBookmarks returns the number of bookmarks in the given trees
func CountBookmarks(nodes []Node) int {
	count := 0
	for _, root := range nodes {
		root.Walk(func(node Node, _ int) bool {
			if node.Type == ItemTypeBookmark {
				count++
			}
			return true
		})
	}
	return count
}

// Folder represents a stored bookmark folder
type Folder struct {
	ID       int
	Name     string
	ParentID *int
}

// Bookmark represents a stored bookmark entry
type Bookmark struct {
	ID       int
	Title    string
	URL      string
	FolderID *int
}

package entity

// BookmarkNode is one node of the bookmark tree. Folders have no URL.
type BookmarkNode struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	URL      string          `json:"url,omitempty"`
	Children []*BookmarkNode `json:"children,omitempty"`
}

// IsFolder returns true if the node has no URL.
func (b *BookmarkNode) IsFolder() bool {
	return b.URL == ""
}

// Walk visits the node and its descendants in pre-order.
func (b *BookmarkNode) Walk(visit func(*BookmarkNode)) {
	if b == nil {
		return
	}
	visit(b)
	for _, child := range b.Children {
		child.Walk(visit)
	}
}

// CreateBookmarkInput describes a new bookmark.
type CreateBookmarkInput struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

package mdast

// URLNode represents Node used for storing links.
//
// The address is stored in the URL field and the link text
// is managed by the embedded BaseNode.
type URLNode struct {
	URL string
	*BaseNode
}

// Value returns URL of the link.
func (n *URLNode) Value() string {
	return n.URL
}

// NewURLNode creates new *URLNode with a given URL.
func NewURLNode(url string, children ...Node) *URLNode {
	return &URLNode{
		URL:      url,
		BaseNode: NewBaseNode(NodeLink, children...),
	}
}

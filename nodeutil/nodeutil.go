package nodeutil

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// NamedChildrenOf gets all the named children of a given node
func NamedChildrenOf(node *sitter.Node) []*sitter.Node {
	count := int(node.NamedChildCount())
	children := make([]*sitter.Node, count)
	for ind := 0; ind < count; ind++ {
		children[ind] = node.NamedChild(ind)
	}
	return children
}

// UnnamedChildrenOf gets all the children of a given node, including the
// anonymous (unnamed) ones such as keywords and punctuation
func UnnamedChildrenOf(node *sitter.Node) []*sitter.Node {
	count := int(node.ChildCount())
	children := make([]*sitter.Node, count)
	for ind := 0; ind < count; ind++ {
		children[ind] = node.Child(ind)
	}
	return children
}

// AssertTypeIs panics if the node is not of the expected grammar type
func AssertTypeIs(node *sitter.Node, expectedType string) {
	if node.Type() != expectedType {
		panic(fmt.Errorf("node type assertion failed: expected %v, got %v", expectedType, node.Type()))
	}
}

package fancy

import (
	"github.com/charmbracelet/lipgloss/tree"
)

// ComponentTree creates a component-specific styled tree
type ComponentTree struct {
	tree *tree.Tree
}

// NewComponentTree creates a new component tree with appropriate styling
func NewComponentTree(title string) *ComponentTree {
	t := tree.New()
	t.EnumeratorStyle(BranchStyle)
	t.Enumerator(tree.RoundedEnumerator)
	t.Root(title)

	return &ComponentTree{
		tree: t,
	}
}

// Tree returns the underlying tree
func (c *ComponentTree) Tree() *tree.Tree {
	return c.tree
}

// AddChild adds a child node to the root branch
func (c *ComponentTree) AddChild(child any) *tree.Tree {
	return c.tree.Child(child)
}

// BackendTree creates a tree for a VCS backend block
func BackendTree(kind string) *ComponentTree {
	return NewComponentTree(BackendText(kind))
}

// ProblemTree creates a tree listing validation problems under title
func ProblemTree(title string, problems []string) *ComponentTree {
	t := NewComponentTree(ErrorStyle.Render(title))
	for _, p := range problems {
		t.AddChild(ErrorText(p))
	}
	return t
}

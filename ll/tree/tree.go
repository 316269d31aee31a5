package tree

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/topdown"
	"github.com/npillmayer/topdown/ll"
)

// NodeID references a node within a tree.
type NodeID int

// NoNode is an invalid node reference.
const NoNode NodeID = -1

// Child is a child entry of a node: either a leaf owning a token or a
// subtree.
type Child struct {
	leaf  bool
	token topdown.Token
	node  NodeID
}

// Leaf creates a leaf child for a token.
func Leaf(tok topdown.Token) Child {
	return Child{leaf: true, token: tok, node: NoNode}
}

// Subtree creates a child referencing node n.
func Subtree(n NodeID) Child {
	return Child{node: n}
}

// IsLeaf is a predicate.
func (c Child) IsLeaf() bool {
	return c.leaf
}

// Token returns the token of a leaf. For subtrees the zero token is returned.
func (c Child) Token() topdown.Token {
	return c.token
}

// Node returns the node of a subtree, or NoNode for a leaf.
func (c Child) Node() NodeID {
	return c.node
}

type node struct {
	symbol   ll.Symbol
	parent   NodeID
	children []Child
}

// Tree is a concrete syntax tree. Node 0 is the root.
type Tree struct {
	nodes []node
}

// New creates a tree with a root node for a symbol.
func New(root ll.Symbol) *Tree {
	t := &Tree{}
	t.NewNode(root)
	return t
}

// NewNode creates a detached node. It has to be appended to a parent with
// AppendChild.
func (t *Tree) NewNode(sym ll.Symbol) NodeID {
	t.nodes = append(t.nodes, node{symbol: sym, parent: NoNode})
	return NodeID(len(t.nodes) - 1)
}

// AppendChild appends a child to the child list of node parent. A subtree
// may be appended only once and never to itself or to the root.
func (t *Tree) AppendChild(parent NodeID, c Child) error {
	if !t.valid(parent) {
		return fmt.Errorf("invalid parent node %d", parent)
	}
	if !c.leaf {
		if !t.valid(c.node) || c.node == t.Root() || c.node == parent {
			return fmt.Errorf("cannot append node %d to node %d", c.node, parent)
		}
		if t.nodes[c.node].parent != NoNode {
			return fmt.Errorf("node %d already has parent %d", c.node, t.nodes[c.node].parent)
		}
		t.nodes[c.node].parent = parent
	}
	t.nodes[parent].children = append(t.nodes[parent].children, c)
	return nil
}

func (t *Tree) valid(n NodeID) bool {
	return n >= 0 && int(n) < len(t.nodes)
}

// Root returns the root node.
func (t *Tree) Root() NodeID {
	return 0
}

// Size returns the number of nodes, not counting leaves.
func (t *Tree) Size() int {
	return len(t.nodes)
}

// Symbol returns the grammar symbol of node n.
func (t *Tree) Symbol(n NodeID) ll.Symbol {
	return t.nodes[n].symbol
}

// Children returns the children of node n in derivation order.
func (t *Tree) Children(n NodeID) []Child {
	return t.nodes[n].children
}

// Child returns the first child of node n carrying grammar symbol sym. A leaf
// carries the terminal named by its token.
func (t *Tree) Child(n NodeID, sym ll.Symbol) (Child, bool) {
	for _, c := range t.nodes[n].children {
		if t.SymbolOf(c) == sym {
			return c, true
		}
	}
	return Child{node: NoNode}, false
}

// ChildSymbols returns the grammar symbols of the children of node n.
func (t *Tree) ChildSymbols(n NodeID) []ll.Symbol {
	syms := make([]ll.Symbol, len(t.nodes[n].children))
	for i, c := range t.nodes[n].children {
		syms[i] = t.SymbolOf(c)
	}
	return syms
}

// SymbolOf returns the grammar symbol of a child.
func (t *Tree) SymbolOf(c Child) ll.Symbol {
	if c.leaf {
		return ll.Terminal(c.token.Name)
	}
	return t.nodes[c.node].symbol
}

// Parent returns the parent of node n, or NoNode for the root.
func (t *Tree) Parent(n NodeID) NodeID {
	return t.nodes[n].parent
}

// --- Traversal -------------------------------------------------------------

// Visitor is called for each child during a walk. depth is 0 for the root
// node. Returning false prunes the walk below a subtree.
type Visitor func(c Child, depth int) bool

type walkItem struct {
	child Child
	depth int
}

// Walk traverses the tree in pre-order, i.e. in the order of the input for
// leaves. The root is visited as Subtree(Root()).
func (t *Tree) Walk(visit Visitor) {
	stack := arraystack.New()
	stack.Push(walkItem{child: Subtree(t.Root())})
	for !stack.Empty() {
		top, _ := stack.Pop()
		item := top.(walkItem)
		if !visit(item.child, item.depth) || item.child.leaf {
			continue
		}
		children := t.nodes[item.child.node].children
		for i := len(children) - 1; i >= 0; i-- { // push reversed, leftmost on top
			stack.Push(walkItem{child: children[i], depth: item.depth + 1})
		}
	}
}

// Leaves returns the tokens of all leaves, from left to right. For a tree
// resulting from a successful parse these are exactly the input tokens.
func (t *Tree) Leaves() []topdown.Token {
	var leaves []topdown.Token
	t.Walk(func(c Child, _ int) bool {
		if c.leaf {
			leaves = append(leaves, c.token)
		}
		return true
	})
	return leaves
}

// Depth returns the maximum depth of any node or leaf, with the root at
// depth 0.
func (t *Tree) Depth() int {
	max := 0
	t.Walk(func(_ Child, depth int) bool {
		if depth > max {
			max = depth
		}
		return true
	})
	return max
}

// Count returns the number of nodes reachable from the root carrying symbol sym.
func (t *Tree) Count(sym ll.Symbol) int {
	cnt := 0
	t.Walk(func(c Child, _ int) bool {
		if !c.leaf && t.nodes[c.node].symbol == sym {
			cnt++
		}
		return true
	})
	return cnt
}

// --- Rendering -------------------------------------------------------------

// LeveledItem is a line of a leveled rendering of a tree.
type LeveledItem struct {
	Level int
	Text  string
}

// Leveled returns a list of items, one for each node and leaf, in pre-order.
// This is suitable for tree-printers taking leveled lists.
func (t *Tree) Leveled() []LeveledItem {
	var items []LeveledItem
	t.Walk(func(c Child, depth int) bool {
		items = append(items, LeveledItem{Level: depth, Text: t.label(c)})
		return true
	})
	return items
}

func (t *Tree) label(c Child) string {
	if c.leaf {
		return c.token.String()
	}
	return t.nodes[c.node].symbol.Name
}

const (
	levelEmpty      = "        "
	levelOngoing    = "  |     "
	levelPrefix     = "  |---: "
	levelPrefixLast = `  \---: `
)

type renderItem struct {
	child       Child
	firstPrefix string
	contPrefix  string
}

// String renders the tree on multiple lines. Two trees are structurally
// equal if their renderings are equal.
func (t *Tree) String() string {
	var sb strings.Builder
	stack := arraystack.New()
	stack.Push(renderItem{child: Subtree(t.Root())})
	first := true
	for !stack.Empty() {
		top, _ := stack.Pop()
		item := top.(renderItem)
		if !first {
			sb.WriteByte('\n')
		}
		first = false
		sb.WriteString(item.firstPrefix)
		if item.child.leaf {
			sb.WriteString(fmt.Sprintf("(TERM %s)", item.child.token))
			continue
		}
		sb.WriteString(fmt.Sprintf("( %s )", t.nodes[item.child.node].symbol.Name))
		children := t.nodes[item.child.node].children
		for i := len(children) - 1; i >= 0; i-- {
			next := renderItem{child: children[i]}
			if i+1 < len(children) {
				next.firstPrefix = item.contPrefix + levelPrefix
				next.contPrefix = item.contPrefix + levelOngoing
			} else {
				next.firstPrefix = item.contPrefix + levelPrefixLast
				next.contPrefix = item.contPrefix + levelEmpty
			}
			stack.Push(next)
		}
	}
	return sb.String()
}

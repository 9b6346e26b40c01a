package compiler

import (
	"fmt"
	"io"
)

type astNode interface {
	fmt.Stringer
	children() (astNode, astNode)
}

type symbolNode struct {
	char rune
}

func newSymbolNode(char rune) *symbolNode {
	return &symbolNode{
		char: char,
	}
}

func (n *symbolNode) String() string {
	return fmt.Sprintf("{type: symbol, char: %q}", n.char)
}

func (n *symbolNode) children() (astNode, astNode) {
	return nil, nil
}

// emptyNode matches the empty string.
type emptyNode struct {
}

func newEmptyNode() *emptyNode {
	return &emptyNode{}
}

func (n *emptyNode) String() string {
	return "{type: empty}"
}

func (n *emptyNode) children() (astNode, astNode) {
	return nil, nil
}

type concatNode struct {
	left  astNode
	right astNode
}

func newConcatNode(left, right astNode) *concatNode {
	return &concatNode{
		left:  left,
		right: right,
	}
}

func (n *concatNode) String() string {
	return "{type: concat}"
}

func (n *concatNode) children() (astNode, astNode) {
	return n.left, n.right
}

type altNode struct {
	left  astNode
	right astNode
}

func newAltNode(left, right astNode) *altNode {
	return &altNode{
		left:  left,
		right: right,
	}
}

func (n *altNode) String() string {
	return "{type: alt}"
}

func (n *altNode) children() (astNode, astNode) {
	return n.left, n.right
}

type repeatNode struct {
	left astNode
}

func newRepeatNode(left astNode) *repeatNode {
	return &repeatNode{
		left: left,
	}
}

func (n *repeatNode) String() string {
	return "{type: repeat}"
}

func (n *repeatNode) children() (astNode, astNode) {
	return n.left, nil
}

func printAST(w io.Writer, ast astNode, ruledLine string, childRuledLinePrefix string) {
	if ast == nil {
		return
	}
	fmt.Fprintf(w, "%vnode: %v\n", ruledLine, ast)
	left, right := ast.children()
	children := []astNode{}
	if left != nil {
		children = append(children, left)
	}
	if right != nil {
		children = append(children, right)
	}
	num := len(children)
	for i, child := range children {
		line := "└─ "
		if num > 1 && i < num-1 {
			line = "├─ "
		}
		prefix := "│  "
		if i >= num-1 {
			prefix = "    "
		}
		printAST(w, child, childRuledLinePrefix+line, childRuledLinePrefix+prefix)
	}
}

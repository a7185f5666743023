package bst

import "fmt"

// Orderは、走査の順序である。
type Order int

const (
	PreOrder  Order = iota // ノード、左の部分木、右の部分木
	InOrder                // 左の部分木、ノード、右の部分木
	PostOrder              // 左の部分木、右の部分木、ノード
)

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "pre-order"
	case InOrder:
		return "in-order"
	case PostOrder:
		return "post-order"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// ParseOrderは、"pre-order", "in-order", "post-order" のいずれかを Order に変換する。
func ParseOrder(s string) (Order, error) {
	for _, o := range []Order{PreOrder, InOrder, PostOrder} {
		if o.String() == s {
			return o, nil
		}
	}
	return 0, fmt.Errorf("bst: unknown traversal order %q", s)
}

// walk は、このノードをルートとする部分木を与えられた順序で訪問する。visit が nil の場合は何もしない走査になる。
func (n *node[T]) walk(order Order, visit func(T)) {
	if n == nil {
		return
	}
	switch order {
	case PreOrder:
		if visit != nil {
			visit(n.value)
		}
		n.left.walk(order, visit)
		n.right.walk(order, visit)
	case InOrder:
		n.left.walk(order, visit)
		if visit != nil {
			visit(n.value)
		}
		n.right.walk(order, visit)
	case PostOrder:
		n.left.walk(order, visit)
		n.right.walk(order, visit)
		if visit != nil {
			visit(n.value)
		}
	default:
		panic("invalid order")
	}
}

// Traverseは、木のすべての値を与えられた順序で一度ずつ visit に渡す。木は変更されない。
func (t *Tree[T]) Traverse(order Order, visit func(T)) {
	if order < PreOrder || order > PostOrder {
		panic("invalid order")
	}
	t.root.walk(order, visit)
}

// ForEachは、木の値を中間順（ソート順）で visit に渡す。
func (t *Tree[T]) ForEach(visit func(T)) {
	if t.IsEmpty() || visit == nil {
		return
	}
	t.root.walk(InOrder, visit)
}

// Valuesは、与えられた順序で走査した値をスライスで返す。
func (t *Tree[T]) Values(order Order) []T {
	out := make([]T, 0, t.length)
	t.Traverse(order, func(v T) {
		out = append(out, v)
	})
	return out
}

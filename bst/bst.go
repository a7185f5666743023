package bst

import (
	"fmt"
	"reflect"
	"strings"

	"golang.org/x/exp/constraints"
)

type (
	// LessFuncは、a が b より前に並ぶべきかどうかを返す。
	LessFunc[T any] func(a, b T) bool

	// routeFuncは、ノードの値 at に対して value を右の部分木に入れるべき場合に真を返す。
	// 偽の場合は左に入る。
	routeFunc[T any] func(at, value T) bool

	// nodeは、木の一つのセルである。親への参照は持たない。
	node[T any] struct {
		value       T
		left, right *node[T]
	}

	// Treeは、平衡化を行わない二分探索木である。
	// 最初に挿入された値の型を記憶し、それ以降は同じ型の値しか受け付けない。
	// 並行アクセスに対しては安全ではない。必要であれば Locked を使うこと。
	Tree[T any] struct {
		root   *node[T]
		length int
		route  routeFunc[T]
		kind   reflect.Type
		locked bool
	}
)

// Newは、空の木を作成する。
//
// cmpがnilの場合、数値と文字列の値には自然順序が使われる（at >= value なら左、at < value なら右）。
// cmpが与えられた場合は、値の型に関係なく常にcmpが使われる。cmp(at, value) なら左へ、cmp(value, at) なら右へ降りる。
// どちらでもない（等しい）値は捨てずに左へ入れる。このため中間順の走査はcmpについて降順になる。
// 昇順にしたい場合は NewAscending を使うこと。
func New[T any](cmp LessFunc[T]) *Tree[T] {
	t := &Tree[T]{}
	if cmp != nil {
		t.route = byComparator(cmp)
	}
	return t
}

// NewAscendingは、less について小さい値を左に、大きい値を右に置く木を作成する。等しい値は左へ入る。
func NewAscending[T any](less LessFunc[T]) *Tree[T] {
	return &Tree[T]{route: routeFunc[T](less)}
}

// NewOrderedは、< による自然順序を使う木を作成する。
func NewOrdered[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{route: func(at, value T) bool {
		return at < value
	}}
}

// FromCompareは、三方比較関数を LessFunc に変換する。
func FromCompare[T any](cmp func(a, b T) int) LessFunc[T] {
	return func(a, b T) bool {
		return cmp(a, b) < 0
	}
}

func byComparator[T any](cmp LessFunc[T]) routeFunc[T] {
	return func(at, value T) bool {
		return !cmp(at, value) && cmp(value, at)
	}
}

// insert は、このノードをルートとする部分木に値を挿入し、部分木の新しいルートを返す。
func (n *node[T]) insert(value T, right routeFunc[T]) *node[T] {
	if n == nil {
		return &node[T]{value: value}
	}
	if right(n.value, value) {
		n.right = n.right.insert(value, right)
	} else {
		n.left = n.left.insert(value, right)
	}
	return n
}

func (n *node[T]) String() string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprint(n.value)
}

// Insert は、与えられた値を木に追加する。重複した値も拒否せず、左の部分木に追加される。
// 型が最初の値と異なる場合は *TypeMismatchError を、順序付けできない場合は *UnorderedTypeError を返し、木は変更されない。
func (t *Tree[T]) Insert(value T) error {
	kind := reflect.TypeOf(any(value))
	if t.locked && kind != t.kind {
		return &TypeMismatchError{Want: t.kind, Got: kind}
	}
	if t.root == nil {
		t.root = &node[T]{value: value}
		t.length++
		t.kind, t.locked = kind, true
		return nil
	}
	right, err := t.routing(value)
	if err != nil {
		return err
	}
	t.root = t.root.insert(value, right)
	t.length++
	return nil
}

// routing は、挿入に使う順序を決める。コンストラクタで与えられた順序が自然順序より優先される。
func (t *Tree[T]) routing(value T) (routeFunc[T], error) {
	if t.route != nil {
		return t.route, nil
	}
	if !naturallyOrdered(reflect.ValueOf(any(value))) {
		return nil, &UnorderedTypeError{Kind: reflect.TypeOf(any(value))}
	}
	return naturalLess[T], nil
}

// Headは、ルートの値を返す。木が空の場合は false を返す。
func (t *Tree[T]) Head() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	return t.root.value, true
}

func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Lenは、現在木にある値の数を返す。
func (t *Tree[T]) Len() int {
	return t.length
}

// テスト/デバッグのために使用されます。ルートとその直下の子だけを表示する。
func (t *Tree[T]) String() string {
	if t.root == nil {
		return "<nil>"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Head: %v\n", t.root)
	fmt.Fprintf(&b, "\tleft: %v\n", t.root.left)
	fmt.Fprintf(&b, "\tright: %v", t.root.right)
	return b.String()
}

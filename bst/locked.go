package bst

import "sync"

// Lockedは、Tree を RWMutex で保護したもの。
// Insert は書き込みロックを、走査と参照系は読み込みロックを取る。
// visit の中から同じ Locked のメソッドを呼んではいけない。Insert はもちろん、Len や Head も
// 二重に読み込みロックを取るため、その間に書き込みが待っているとデッドロックする。
type Locked[T any] struct {
	mu   sync.RWMutex
	tree *Tree[T]
}

func NewLocked[T any](t *Tree[T]) *Locked[T] {
	return &Locked[T]{tree: t}
}

func (l *Locked[T]) Insert(value T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tree.Insert(value)
}

func (l *Locked[T]) Traverse(order Order, visit func(T)) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.tree.Traverse(order, visit)
}

func (l *Locked[T]) ForEach(visit func(T)) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.tree.ForEach(visit)
}

func (l *Locked[T]) Values(order Order) []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Values(order)
}

func (l *Locked[T]) Head() (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Head()
}

func (l *Locked[T]) IsEmpty() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.IsEmpty()
}

func (l *Locked[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Len()
}

func (l *Locked[T]) String() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.String()
}

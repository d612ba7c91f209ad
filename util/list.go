package util

import "iter"

// Iterator is a node of a List. It is handed out to callers as a cursor:
// Next moves to the following node and returns nil past the tail.
type Iterator[T any] struct {
	next *Iterator[T]
	data T
}

// Next returns the following node, or nil when it is the last one.
func (iterator *Iterator[T]) Next() *Iterator[T] {
	if iterator == nil {
		return nil
	}
	return iterator.next
}

// Data returns the value stored in the node. The value is never copied
// deeply or released by the list; pointer values stay owned by the caller.
func (iterator *Iterator[T]) Data() T {
	return iterator.data
}

// List is an insertion-ordered singly-linked list. The list owns its nodes
// but not the values stored in them.
//
// A List is not safe for concurrent mutation; wrap it with a lock (see
// parallel.SyncList) when more than one goroutine touches it.
type List[T any] struct {
	head   *Iterator[T]
	tail   *Iterator[T]
	length int
}

func NewList[T any]() *List[T] {
	return &List[T]{}
}

// Free unlinks every node and resets the list to empty. Stored values are
// dropped from the nodes but otherwise left alone.
func (list *List[T]) Free() {
	var zero T
	node := list.head
	for node != nil {
		next := node.next
		node.next = nil
		node.data = zero
		node = next
	}
	list.head = nil
	list.tail = nil
	list.length = 0
}

// Iterator returns the head node, or nil if the list is empty.
func (list *List[T]) Iterator() *Iterator[T] {
	return list.head
}

// Add appends data after the current tail and returns the new node.
func (list *List[T]) Add(data T) *Iterator[T] {
	node := &Iterator[T]{
		data: data,
	}

	if list.tail == nil {
		list.head = node
	} else {
		list.tail.next = node
	}

	list.tail = node
	list.length++
	return node
}

// Remove unlinks the given node. It reports false, leaving the list as it
// was, when the node is not part of the chain.
func (list *List[T]) Remove(iterator *Iterator[T]) bool {
	if iterator == nil {
		return false
	}

	var prev *Iterator[T]
	node := list.head
	for node != nil && node != iterator {
		prev = node
		node = node.next
	}
	if node == nil {
		return false
	}

	if prev != nil {
		prev.next = node.next
	}
	if list.head == node {
		list.head = node.next
	}
	if list.tail == node {
		list.tail = prev
	}
	node.next = nil
	list.length--
	return true
}

// PopHead removes the head node and returns its value. The second result
// is false when the list is empty.
func (list *List[T]) PopHead() (T, bool) {
	node := list.head
	if node == nil {
		var zero T
		return zero, false
	}

	list.head = node.next
	if list.tail == node {
		list.tail = nil
	}
	node.next = nil
	list.length--
	return node.data, true
}

func (list *List[T]) Len() int {
	return list.length
}

func (list *List[T]) Empty() bool {
	return list.head == nil
}

// All yields the stored values from head to tail. The walk reads each
// node's successor before yielding, so removing the current node through
// Remove or PopHead inside the loop is allowed.
func (list *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		node := list.head
		for node != nil {
			next := node.next
			if !yield(node.data) {
				return
			}
			node = next
		}
	}
}

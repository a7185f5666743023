package bst

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrTypeMismatch  = errors.New("bst: type mismatch")
	ErrUnorderedType = errors.New("bst: unordered type")
)

// TypeMismatchErrorは、最初に挿入された値と異なる型の値を挿入しようとした場合に返される。
type TypeMismatchError struct {
	Want, Got reflect.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("bst: value of type %v cannot be inserted into a tree of %v", e.Got, e.Want)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// UnorderedTypeErrorは、比較関数が与えられておらず、値の型に自然順序がない場合に返される。
type UnorderedTypeError struct {
	Kind reflect.Type
}

func (e *UnorderedTypeError) Error() string {
	return fmt.Sprintf("bst: cannot compare %v without a comparator", e.Kind)
}

func (e *UnorderedTypeError) Is(target error) bool {
	return target == ErrUnorderedType
}

package lox

import (
	"strconv"
	"strings"
)

// NewLoxArray builds the runtime value for an array literal or append chain.
func NewLoxArray(items []interface{}) *LoxArray {
	return &LoxArray{items: items}
}

// LoxArray is a mutable, bounds-checked reference value backing `[]`
// indexing syntax.
type LoxArray struct {
	items []interface{}
}

func (a *LoxArray) Len() int {
	return len(a.items)
}

func (a *LoxArray) Add(item interface{}) {
	a.items = append(a.items, item)
}

func (a *LoxArray) Get(index int) (interface{}, error) {
	if index < 0 || index >= len(a.items) {
		return nil, NewIllegalIndexError(index, "out of range for array of length "+strconv.Itoa(len(a.items)))
	}
	return a.items[index], nil
}

func (a *LoxArray) Set(index int, value interface{}) error {
	if index < 0 || index >= len(a.items) {
		return NewIllegalIndexError(index, "out of range for array of length "+strconv.Itoa(len(a.items)))
	}
	a.items[index] = value
	return nil
}

// Items returns the array's backing slice, read-only by convention; it is
// used only for formatting (see Interpreter.stringify).
func (a *LoxArray) Items() []interface{} {
	return a.items
}

func (a LoxArray) String() string {
	parts := make([]string, len(a.items))
	for i, item := range a.items {
		parts[i] = stringifyValue(item)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

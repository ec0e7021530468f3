package lox

// LoxIterator is implemented by runtime values that support `[]` indexing
// syntax. LoxArray is the only implementation today; the interface exists
// so Index/ArraySet evaluation does not need to know about array internals,
// leaving room for a future sequence-like value (e.g. a string iterator) to
// share the same syntax.
type LoxIterator interface {
	Len() int
	Add(item interface{})
	Get(index int) (interface{}, error)
	Set(index int, value interface{}) error
}

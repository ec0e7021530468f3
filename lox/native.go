package lox

import (
	"time"
	"unicode/utf8"
)

// defineNatives registers the host-provided callables every interpreter
// instance starts with.
func (in *Interpreter) defineNatives() {
	in.globals.Define("clock", nativeClock{})
	in.globals.Define("len", nativeLen{})
	in.globals.Define("str", nativeStr{})
	in.globals.Define("type", nativeType{})
}

// -------- clock ----------------------------------------------------------

type nativeClock struct{}

func (nativeClock) Arity() int { return 0 }

func (nativeClock) Call(interpreter *Interpreter, arguments []interface{}) interface{} {
	return float64(time.Now().UnixNano()) / 1e9
}

func (nativeClock) String() string { return "<native fn>" }

// -------- len --------------------------------------------------------------

type nativeLen struct{}

func (nativeLen) Arity() int { return 1 }

func (nativeLen) Call(interpreter *Interpreter, arguments []interface{}) interface{} {
	switch v := arguments[0].(type) {
	case string:
		return float64(utf8.RuneCountInString(v))
	case LoxIterator:
		return float64(v.Len())
	default:
		panic(NewRuntimeError(nil, "len: argument has no length."))
	}
}

func (nativeLen) String() string { return "<native fn>" }

// -------- str ---------------------------------------------------------------

type nativeStr struct{}

func (nativeStr) Arity() int { return 1 }

func (nativeStr) Call(interpreter *Interpreter, arguments []interface{}) interface{} {
	return interpreter.stringify(arguments[0])
}

func (nativeStr) String() string { return "<native fn>" }

// -------- type ---------------------------------------------------------------

type nativeType struct{}

func (nativeType) Arity() int { return 1 }

func (nativeType) Call(interpreter *Interpreter, arguments []interface{}) interface{} {
	switch v := arguments[0].(type) {
	case nil:
		return "nil"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case *LoxClass:
		return "class"
	case *LoxInstance:
		return "instance"
	case *LoxArray:
		return "array"
	case LoxCallable:
		return "function"
	default:
		_ = v
		return "unknown"
	}
}

func (nativeType) String() string { return "<native fn>" }

package lox

// LoxCallable is implemented by every value that can appear as the callee of
// a Call expression: native functions, user functions/lambdas, and classes
// (whose Call constructs an instance).
type LoxCallable interface {
	Arity() int
	Call(interpreter *Interpreter, arguments []interface{}) interface{}
}

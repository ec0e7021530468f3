package lox

// NewLoxFunction builds the callable for a function declaration or method.
func NewLoxFunction(decl *Function, closure *Environment, isInitializer bool) LoxCallable {
	return &LoxFunction{declaration: decl, closure: closure, isInitializer: isInitializer}
}

// NewLoxLambda builds the callable for an anonymous `fun (...) {...}`
// expression by wrapping it in a nameless Function declaration.
func NewLoxLambda(lambda *Lambda, closure *Environment) LoxCallable {
	return &LoxFunction{
		declaration: NewFunction(nil, lambda.params, lambda.body),
		closure:     closure,
	}
}

// LoxFunction is the runtime value for every user-defined function, method,
// and lambda: a declaration paired with the environment it closed over.
type LoxFunction struct {
	declaration   *Function
	closure       *Environment
	isInitializer bool
}

// Bind returns a copy of f whose closure additionally binds `this` to
// instance, used to turn an unbound method into a bound one on property
// access.
func (f *LoxFunction) Bind(instance *LoxInstance) LoxCallable {
	env := NewEnvironment(f.closure)
	env.Define("this", instance)
	return NewLoxFunction(f.declaration, env, f.isInitializer)
}

func (f *LoxFunction) Arity() int {
	return len(f.declaration.params)
}

func (f *LoxFunction) Call(interpreter *Interpreter, arguments []interface{}) (value interface{}) {
	env := NewEnvironment(f.closure)
	for i, param := range f.declaration.params {
		env.Define(param.Lexeme, arguments[i])
	}
	defer func() {
		if r := recover(); r != nil {
			if ret, ok := r.(*returnSignal); ok {
				value = ret.value
			} else {
				panic(r)
			}
		}
		if f.isInitializer {
			value = f.closure.GetAt(0, "this")
		}
	}()
	interpreter.executeBlock(f.declaration.body, env)
	return
}

func (f LoxFunction) String() string {
	if f.declaration.name != nil {
		return "<fn " + f.declaration.name.Lexeme + ">"
	}
	return "<fn>"
}

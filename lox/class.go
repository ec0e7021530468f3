package lox

// NewLoxClass builds a class value. methods holds only the methods declared
// directly on this class; lookup falls through to superclass on miss.
func NewLoxClass(name string, superclass *LoxClass, methods map[string]LoxCallable) *LoxClass {
	return &LoxClass{name: name, superclass: superclass, methods: methods}
}

// LoxClass is the runtime value produced by a class declaration. Method
// resolution is single-inheritance: a linear search of this class's own
// methods, then the superclass chain.
type LoxClass struct {
	name       string
	methods    map[string]LoxCallable
	superclass *LoxClass
}

func (c *LoxClass) findMethod(name string) LoxCallable {
	if method, ok := c.methods[name]; ok {
		return method
	}
	if c.superclass != nil {
		return c.superclass.findMethod(name)
	}
	return nil
}

// Call constructs a new instance and, if the class defines an init method,
// binds and invokes it with arguments.
func (c *LoxClass) Call(interpreter *Interpreter, arguments []interface{}) interface{} {
	instance := NewLoxInstance(c)
	if initializer := c.findMethod("init"); initializer != nil {
		initializer.(*LoxFunction).Bind(instance).Call(interpreter, arguments)
	}
	return instance
}

func (c *LoxClass) Arity() int {
	initializer := c.findMethod("init")
	if initializer == nil {
		return 0
	}
	return initializer.Arity()
}

func (c LoxClass) String() string {
	return c.name
}

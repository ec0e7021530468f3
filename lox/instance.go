package lox

// NewLoxInstance builds an instance of class with no fields set.
func NewLoxInstance(class *LoxClass) *LoxInstance {
	return &LoxInstance{class: class, fields: map[string]interface{}{}}
}

// LoxInstance is the runtime value produced by calling a LoxClass. Fields
// are created on first assignment; reads fall through to a bound method
// when no field of that name exists.
type LoxInstance struct {
	class  *LoxClass
	fields map[string]interface{}
}

func (li *LoxInstance) Get(name *Token) interface{} {
	if value, ok := li.fields[name.Lexeme]; ok {
		return value
	}
	if method := li.class.findMethod(name.Lexeme); method != nil {
		return method.(*LoxFunction).Bind(li)
	}
	panic(NewRuntimeError(name, "Undefined property '"+name.Lexeme+"'."))
}

func (li *LoxInstance) Set(name *Token, value interface{}) {
	li.fields[name.Lexeme] = value
}

func (li LoxInstance) String() string {
	return li.class.name + " instance"
}

package lox

import (
	"fmt"
	"io"
	"strconv"
)

// Options configures interpreter behavior that does not change language
// semantics but does change host-visible formatting.
type Options struct {
	// MaxArrayPreview caps how many elements Print renders for an array
	// before eliding the rest with "...". Zero means unlimited.
	MaxArrayPreview int
}

// Interpreter walks a resolved tree, evaluating expressions and executing
// statements against a chain of Environments. Each Interpreter owns its own
// globals, resolution map, and Reporter, so a host may run several
// independent programs - or REPL lines sharing one long-lived session - in
// the same process without their error state or global bindings colliding.
type Interpreter struct {
	environment *Environment
	globals     *Environment
	locals      map[Expr]int
	reporter    *Reporter
	stdout      io.Writer
	opts        Options
}

// NewInterpreter returns an Interpreter with its native functions already
// registered in globals, writing Print output to stdout and diagnostics
// through reporter.
func NewInterpreter(reporter *Reporter, stdout io.Writer, opts Options) *Interpreter {
	globals := NewEnvironment(nil)
	in := &Interpreter{
		environment: globals,
		globals:     globals,
		locals:      map[Expr]int{},
		reporter:    reporter,
		stdout:      stdout,
		opts:        opts,
	}
	in.defineNatives()
	return in
}

// Run executes statements, recovering any runtime error (or, as a last
// resort, any control-flow signal that escaped its target due to an
// implementation bug) and reporting it instead of letting it crash the
// host process.
func (in *Interpreter) Run(statements []Stmt) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if re, ok := r.(RuntimeError); ok {
			in.reporter.RuntimeError(re)
			return
		}
		in.reporter.RuntimeError(NewRuntimeError(nil, fmt.Sprintf("internal error: %v", r)))
	}()
	for _, statement := range statements {
		in.execute(statement)
	}
}

func (in *Interpreter) execute(stmt Stmt) {
	stmt.accept(in)
}

// resolve records the lexical depth the resolver computed for expr.
func (in *Interpreter) resolve(expr Expr, depth int) {
	in.locals[expr] = depth
}

func (in *Interpreter) executeBlock(statements []Stmt, env *Environment) {
	previous := in.environment
	defer func() { in.environment = previous }()
	in.environment = env
	for _, statement := range statements {
		in.execute(statement)
	}
}

func (in *Interpreter) visitBlockStmt(stmt *Block) interface{} {
	in.executeBlock(stmt.statements, NewEnvironment(in.environment))
	return nil
}

func (in *Interpreter) visitClassStmt(stmt *Class) interface{} {
	var superclass interface{}
	if stmt.superclass != nil {
		superclass = in.evaluate(stmt.superclass)
		if _, ok := superclass.(*LoxClass); !ok {
			panic(NewRuntimeError(stmt.superclass.name, "Superclass must be a class."))
		}
	}

	in.environment.Define(stmt.name.Lexeme, nil)
	if stmt.superclass != nil {
		in.environment = NewEnvironment(in.environment)
		in.environment.Define("super", superclass)
	}

	methods := map[string]LoxCallable{}
	for _, method := range stmt.methods {
		methods[method.name.Lexeme] = NewLoxFunction(method, in.environment, method.name.Lexeme == "init")
	}

	superclassPtr, _ := superclass.(*LoxClass)
	class := NewLoxClass(stmt.name.Lexeme, superclassPtr, methods)
	if superclassPtr != nil {
		in.environment = in.environment.enclosing
	}

	in.environment.Assign(stmt.name, class)
	return nil
}

func (in *Interpreter) visitLiteralExpr(expr *Literal) interface{} {
	return expr.value
}

func (in *Interpreter) visitLogicalExpr(expr *Logical) interface{} {
	left := in.evaluate(expr.left)
	if expr.operator.Type == OR {
		if in.isTruthy(left) {
			return left
		}
	} else if !in.isTruthy(left) {
		return left
	}
	return in.evaluate(expr.right)
}

func (in *Interpreter) visitSetExpr(expr *Set) interface{} {
	object := in.evaluate(expr.object)
	instance, ok := object.(*LoxInstance)
	if !ok {
		panic(NewRuntimeError(expr.name, "only instances have fields."))
	}
	value := in.evaluate(expr.value)
	instance.Set(expr.name, value)
	return value
}

func (in *Interpreter) visitSuperExpr(expr *Super) interface{} {
	distance := in.locals[expr]
	superclass, _ := in.environment.GetAt(distance, "super").(*LoxClass)
	object, _ := in.environment.GetAt(distance-1, "this").(*LoxInstance)

	method := superclass.findMethod(expr.method.Lexeme)
	if method == nil {
		panic(NewRuntimeError(expr.method, "Undefined property '"+expr.method.Lexeme+"'."))
	}
	return method.(*LoxFunction).Bind(object)
}

func (in *Interpreter) visitThisExpr(expr *This) interface{} {
	return in.lookUpVariable(expr.keyword, expr)
}

func (in *Interpreter) visitGroupingExpr(expr *Grouping) interface{} {
	return in.evaluate(expr.expression)
}

func (in *Interpreter) visitUnaryExpr(expr *Unary) interface{} {
	switch expr.operator.Type {
	case MINUS:
		right := in.evaluate(expr.right)
		in.checkNumberOperand(expr.operator, right)
		return -right.(float64)
	case BANG:
		return !in.isTruthy(in.evaluate(expr.right))
	case PLUS_PLUS, MINUS_MINUS:
		return in.increment(expr)
	}
	return nil
}

// increment implements prefix/postfix ++ and --. The operand must be a bare
// variable reference; it is re-read through the same resolved path Assign
// uses so the write lands in the right environment.
func (in *Interpreter) increment(expr *Unary) interface{} {
	variable, ok := expr.right.(*Variable)
	if !ok {
		panic(NewRuntimeError(expr.operator, "operand of "+expr.operator.Lexeme+" must be a variable."))
	}
	current := in.evaluate(expr.right)
	in.checkNumberOperand(expr.operator, current)
	value := current.(float64)

	var next float64
	if expr.operator.Type == PLUS_PLUS {
		next = value + 1
	} else {
		next = value - 1
	}

	distance, ok := in.locals[expr.right]
	if ok {
		in.environment.AssignAt(distance, variable.name, next)
	} else {
		in.globals.Assign(variable.name, next)
	}
	return IfFloat(expr.postfix, value, next)
}

func (in *Interpreter) visitVariableExpr(expr *Variable) interface{} {
	return in.lookUpVariable(expr.name, expr)
}

func (in *Interpreter) lookUpVariable(name *Token, expr Expr) interface{} {
	if distance, ok := in.locals[expr]; ok {
		return in.environment.GetAt(distance, name.Lexeme)
	}
	return in.globals.Get(name)
}

func (in *Interpreter) visitTernaryExpr(expr *Ternary) interface{} {
	if in.isTruthy(in.evaluate(expr.expr)) {
		return in.evaluate(expr.thenBranch)
	}
	return in.evaluate(expr.elseBranch)
}

func (in *Interpreter) visitBinaryExpr(expr *Binary) interface{} {
	left := in.evaluate(expr.left)
	right := in.evaluate(expr.right)

	switch expr.operator.Type {
	case GREATER:
		in.checkNumberOperands(expr.operator, left, right)
		return left.(float64) > right.(float64)
	case GREATER_EQUAL:
		in.checkNumberOperands(expr.operator, left, right)
		return left.(float64) >= right.(float64)
	case LESS:
		in.checkNumberOperands(expr.operator, left, right)
		return left.(float64) < right.(float64)
	case LESS_EQUAL:
		in.checkNumberOperands(expr.operator, left, right)
		return left.(float64) <= right.(float64)
	case MINUS:
		in.checkNumberOperands(expr.operator, left, right)
		return left.(float64) - right.(float64)
	case BANG_EQUAL:
		return !in.isEqual(left, right)
	case EQUAL_EQUAL:
		return in.isEqual(left, right)
	case PLUS:
		if v1, ok1 := left.(float64); ok1 {
			if v2, ok2 := right.(float64); ok2 {
				return v1 + v2
			}
		}
		if s1, ok1 := left.(string); ok1 {
			if s2, ok2 := right.(string); ok2 {
				return s1 + s2
			}
		}
		panic(NewRuntimeError(expr.operator, "Operands must be two numbers or two strings."))
	case SLASH:
		in.checkNumberOperands(expr.operator, left, right)
		return left.(float64) / right.(float64)
	case STAR:
		in.checkNumberOperands(expr.operator, left, right)
		return left.(float64) * right.(float64)
	}
	return nil
}

func (in *Interpreter) visitCallExpr(expr *Call) interface{} {
	callee := in.evaluate(expr.callee)

	arguments := make([]interface{}, len(expr.arguments))
	for i, argument := range expr.arguments {
		arguments[i] = in.evaluate(argument)
	}

	function, ok := callee.(LoxCallable)
	if !ok {
		panic(NewRuntimeError(expr.paren, "Can only call functions and classes."))
	}
	if len(arguments) != function.Arity() {
		panic(NewRuntimeError(expr.paren, "Expected "+strconv.Itoa(function.Arity())+
			" arguments but got "+strconv.Itoa(len(arguments))+"."))
	}
	return function.Call(in, arguments)
}

func (in *Interpreter) visitGetExpr(expr *Get) interface{} {
	object := in.evaluate(expr.object)
	instance, ok := object.(*LoxInstance)
	if !ok {
		panic(NewRuntimeError(expr.name, "Only instances have properties."))
	}
	return instance.Get(expr.name)
}

func (in *Interpreter) visitIndexExpr(expr *Index) interface{} {
	left := in.evaluate(expr.left)
	array, ok := left.(LoxIterator)
	if !ok {
		panic(NewRuntimeError(expr.bracket, "Only arrays have indexed elements."))
	}
	if expr.index == nil {
		panic(NewRuntimeError(expr.bracket, "expect index expression."))
	}
	index, ok := in.evaluate(expr.index).(float64)
	if !ok {
		panic(NewRuntimeError(expr.bracket, "array index must be a number."))
	}
	if float64(int(index)) != index {
		panic(NewRuntimeError(expr.bracket, "array index must be an integer."))
	}
	v, err := array.Get(int(index))
	if err != nil {
		panic(NewRuntimeError(expr.bracket, err.Error()))
	}
	return v
}

func (in *Interpreter) visitExpressionStmt(stmt *Expression) interface{} {
	in.evaluate(stmt.expression)
	return nil
}

func (in *Interpreter) visitFunctionStmt(stmt *Function) interface{} {
	function := NewLoxFunction(stmt, in.environment, false)
	in.environment.Define(stmt.name.Lexeme, function)
	return nil
}

func (in *Interpreter) visitLambdaExpr(expr *Lambda) interface{} {
	return NewLoxLambda(expr, in.environment)
}

func (in *Interpreter) visitArrayLiteralExpr(expr *ArrayLiteral) interface{} {
	items := make([]interface{}, len(expr.items))
	for i, item := range expr.items {
		items[i] = in.evaluate(item)
	}
	return NewLoxArray(items)
}

func (in *Interpreter) visitIfStmt(stmt *If) interface{} {
	if in.isTruthy(in.evaluate(stmt.condition)) {
		in.execute(stmt.thenBranch)
	} else if stmt.elseBranch != nil {
		in.execute(stmt.elseBranch)
	}
	return nil
}

func (in *Interpreter) visitReturnStmt(stmt *Return) interface{} {
	var value interface{}
	if stmt.value != nil {
		value = in.evaluate(stmt.value)
	}
	panic(&returnSignal{value: value})
}

func (in *Interpreter) visitPrintStmt(stmt *Print) interface{} {
	value := in.evaluate(stmt.expression)
	fmt.Fprintln(in.stdout, in.stringify(value))
	return nil
}

func (in *Interpreter) visitVarStmt(stmt *Var) interface{} {
	var value interface{}
	if stmt.initializer != nil {
		value = in.evaluate(stmt.initializer)
	}
	in.environment.Define(stmt.name.Lexeme, value)
	return nil
}

// visitWhileStmt loops until its condition is falsy, or until a breakSignal
// unwinds out of it. A continueSignal unwinds the current iteration's body
// only; the outer for loop here re-evaluates the condition for the next
// pass.
func (in *Interpreter) visitWhileStmt(stmt *While) interface{} {
	for in.isTruthy(in.evaluate(stmt.condition)) {
		if in.runLoopBody(stmt.body) {
			break
		}
	}
	return nil
}

// runLoopBody executes one iteration of a loop body, reporting whether the
// loop should stop (true on break, false otherwise - including on continue).
func (in *Interpreter) runLoopBody(body Stmt) (brokeOut bool) {
	defer func() {
		r := recover()
		switch r.(type) {
		case nil:
		case breakSignal:
			brokeOut = true
		case continueSignal:
		default:
			panic(r)
		}
	}()
	in.execute(body)
	return false
}

func (in *Interpreter) visitBreakStmt(stmt *Break) interface{} {
	panic(breakSignal{})
}

func (in *Interpreter) visitContinueStmt(stmt *Continue) interface{} {
	panic(continueSignal{})
}

func (in *Interpreter) visitAssignExpr(expr *Assign) interface{} {
	value := in.evaluate(expr.value)
	if distance, ok := in.locals[expr]; ok {
		in.environment.AssignAt(distance, expr.name, value)
	} else {
		in.globals.Assign(expr.name, value)
	}
	return value
}

func (in *Interpreter) visitArraySetExpr(expr *ArraySet) interface{} {
	left := in.evaluate(expr.left)
	array, ok := left.(LoxIterator)
	if !ok {
		panic(NewRuntimeError(expr.bracket, "only arrays support indexed assignment."))
	}
	if expr.index == nil {
		value := in.evaluate(expr.value)
		array.Add(value)
		return value
	}
	index, ok := in.evaluate(expr.index).(float64)
	if !ok {
		panic(NewRuntimeError(expr.bracket, "array index must be a number."))
	}
	value := in.evaluate(expr.value)
	if err := array.Set(int(index), value); err != nil {
		panic(NewRuntimeError(expr.bracket, err.Error()))
	}
	return value
}

func (in *Interpreter) evaluate(expr Expr) interface{} {
	return expr.accept(in)
}

func (in *Interpreter) isTruthy(obj interface{}) bool {
	if obj == nil {
		return false
	}
	if v, ok := obj.(bool); ok {
		return v
	}
	return true
}

// isEqual implements value equality with native Go comparison, which gives
// IEEE-754 semantics for float64 operands (NaN is unequal to itself) for
// free.
func (in *Interpreter) isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}

func (in *Interpreter) checkNumberOperand(operator *Token, operand interface{}) {
	if _, ok := operand.(float64); ok {
		return
	}
	panic(NewRuntimeError(operator, "Operand must be a number."))
}

func (in *Interpreter) checkNumberOperands(operator *Token, left, right interface{}) {
	_, ok1 := left.(float64)
	_, ok2 := right.(float64)
	if ok1 && ok2 {
		return
	}
	panic(NewRuntimeError(operator, "operands must be numbers."))
}

// stringify formats a value for Print, honoring the configured array
// preview cap (stringifyValue, used elsewhere, has no access to Options).
func (in *Interpreter) stringify(obj interface{}) string {
	array, ok := obj.(*LoxArray)
	if !ok || in.opts.MaxArrayPreview <= 0 || array.Len() <= in.opts.MaxArrayPreview {
		return stringifyValue(obj)
	}

	items := array.Items()[:in.opts.MaxArrayPreview]
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = stringifyValue(item)
	}
	return "[" + joinComma(parts) + ", ...]"
}

func joinComma(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out
}

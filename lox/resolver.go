package lox

type FunctionType int

type ClassType int

const (
	FT_NONE FunctionType = iota
	FT_FUNCTION
	FT_INITIALIZER
	FT_METHOD

	CT_NONE ClassType = iota
	CT_SUBCLASS
	CT_CLASS
)

// Resolver performs a single pre-execution pass over the tree, binding each
// variable/this/super reference to a lexical depth and enforcing the static
// rules the interpreter assumes already hold (no self-initializing
// declarations, no duplicate bindings in one scope, return/this/super only
// where they're valid). break/continue placement is checked by the parser,
// not here.
type Resolver struct {
	interpreter     *Interpreter
	reporter        *Reporter
	scopes          *Stack
	currentFunction FunctionType
	currentClass    ClassType
}

// NewResolver returns a Resolver that records depths on interpreter and
// reports static errors through reporter.
func NewResolver(interpreter *Interpreter, reporter *Reporter) *Resolver {
	return &Resolver{
		interpreter:     interpreter,
		reporter:        reporter,
		scopes:          NewStack(),
		currentFunction: FT_NONE,
		currentClass:    CT_NONE,
	}
}

func (r *Resolver) visitBlockStmt(stmt *Block) interface{} {
	r.beginScope()
	r.resolve(stmt.statements)
	r.endScope()
	return nil
}

func (r *Resolver) resolve(statements []Stmt) {
	for _, statement := range statements {
		r.resolveStmt(statement)
	}
}

func (r *Resolver) resolveStmt(stmt Stmt) {
	stmt.accept(r)
}

func (r *Resolver) resolveExpr(expr Expr) {
	expr.accept(r)
}

func (r *Resolver) beginScope() {
	r.scopes.Push(map[string]bool{})
}

func (r *Resolver) endScope() {
	_, _ = r.scopes.Pop()
}

func (r *Resolver) visitVarStmt(stmt *Var) interface{} {
	r.declare(stmt.name)
	if stmt.initializer != nil {
		r.resolveExpr(stmt.initializer)
	}
	r.define(stmt.name)
	return nil
}

func (r *Resolver) declare(name *Token) {
	if r.scopes.IsEmpty() {
		return
	}
	scope := r.scopes.Top().(map[string]bool)
	if _, ok := scope[name.Lexeme]; ok {
		r.reporter.ErrorToken(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name *Token) {
	if r.scopes.IsEmpty() {
		return
	}
	r.scopes.Top().(map[string]bool)[name.Lexeme] = true
}

func (r *Resolver) visitVariableExpr(expr *Variable) interface{} {
	if !r.scopes.IsEmpty() {
		if value, ok := r.scopes.Top().(map[string]bool)[expr.name.Lexeme]; ok && !value {
			r.reporter.ErrorToken(expr.name, "Can't read local variable in its own initializer.")
		}
	}
	r.resolveLocal(expr, expr.name)
	return nil
}

func (r *Resolver) resolveLocal(expr Expr, name *Token) {
	for i := r.scopes.Size() - 1; i >= 0; i-- {
		scope, err := r.scopes.Get(i)
		if err != nil {
			continue
		}
		if _, ok := scope.(map[string]bool)[name.Lexeme]; ok {
			r.interpreter.resolve(expr, r.scopes.Size()-1-i)
			return
		}
	}
}

func (r *Resolver) visitAssignExpr(expr *Assign) interface{} {
	r.resolveExpr(expr.value)
	r.resolveLocal(expr, expr.name)
	return nil
}

func (r *Resolver) visitClassStmt(stmt *Class) interface{} {
	enclosingClass := r.currentClass
	r.currentClass = CT_CLASS

	r.declare(stmt.name)
	r.define(stmt.name)

	if stmt.superclass != nil && stmt.name.Lexeme == stmt.superclass.name.Lexeme {
		r.reporter.ErrorToken(stmt.superclass.name, "a class can't inherit from itself.")
	}

	if stmt.superclass != nil {
		r.currentClass = CT_SUBCLASS
		r.resolveExpr(stmt.superclass)
		r.beginScope()
		r.scopes.Top().(map[string]bool)["super"] = true
	}

	r.beginScope()
	r.scopes.Top().(map[string]bool)["this"] = true
	for _, method := range stmt.methods {
		declaration := FT_METHOD
		if method.name.Lexeme == "init" {
			declaration = FT_INITIALIZER
		}
		r.resolveFunction(method, declaration)
	}
	r.endScope()
	if stmt.superclass != nil {
		r.endScope()
	}
	r.currentClass = enclosingClass
	return nil
}

func (r *Resolver) visitFunctionStmt(stmt *Function) interface{} {
	r.declare(stmt.name)
	r.define(stmt.name)
	r.resolveFunction(stmt, FT_FUNCTION)
	return nil
}

func (r *Resolver) resolveFunction(function *Function, ft FunctionType) {
	r.function(function.params, function.body, ft)
}

func (r *Resolver) resolveLambda(lambda *Lambda, ft FunctionType) {
	r.function(lambda.params, lambda.body, ft)
}

func (r *Resolver) function(params []*Token, body []Stmt, ft FunctionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = ft

	r.beginScope()
	for _, param := range params {
		r.declare(param)
		r.define(param)
	}
	r.resolve(body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *Resolver) visitExpressionStmt(stmt *Expression) interface{} {
	r.resolveExpr(stmt.expression)
	return nil
}

func (r *Resolver) visitIfStmt(stmt *If) interface{} {
	r.resolveExpr(stmt.condition)
	r.resolveStmt(stmt.thenBranch)
	if stmt.elseBranch != nil {
		r.resolveStmt(stmt.elseBranch)
	}
	return nil
}

func (r *Resolver) visitPrintStmt(stmt *Print) interface{} {
	r.resolveExpr(stmt.expression)
	return nil
}

func (r *Resolver) visitReturnStmt(stmt *Return) interface{} {
	if r.currentFunction == FT_NONE {
		r.reporter.ErrorToken(stmt.keyword, "can't return from top-level code.")
	}
	if stmt.value != nil {
		if r.currentFunction == FT_INITIALIZER {
			r.reporter.ErrorToken(stmt.keyword, "can't return a value from an initializer.")
		}
		r.resolveExpr(stmt.value)
	}
	return nil
}

func (r *Resolver) visitWhileStmt(stmt *While) interface{} {
	r.resolveExpr(stmt.condition)
	r.resolveStmt(stmt.body)
	return nil
}

func (r *Resolver) visitBreakStmt(stmt *Break) interface{} {
	return nil
}

func (r *Resolver) visitContinueStmt(stmt *Continue) interface{} {
	return nil
}

func (r *Resolver) visitBinaryExpr(expr *Binary) interface{} {
	r.resolveExpr(expr.left)
	r.resolveExpr(expr.right)
	return nil
}

func (r *Resolver) visitCallExpr(expr *Call) interface{} {
	r.resolveExpr(expr.callee)
	for _, argument := range expr.arguments {
		r.resolveExpr(argument)
	}
	return nil
}

func (r *Resolver) visitGroupingExpr(expr *Grouping) interface{} {
	r.resolveExpr(expr.expression)
	return nil
}

func (r *Resolver) visitLiteralExpr(expr *Literal) interface{} {
	return nil
}

func (r *Resolver) visitLogicalExpr(expr *Logical) interface{} {
	r.resolveExpr(expr.left)
	r.resolveExpr(expr.right)
	return nil
}

func (r *Resolver) visitSetExpr(expr *Set) interface{} {
	r.resolveExpr(expr.value)
	r.resolveExpr(expr.object)
	return nil
}

func (r *Resolver) visitSuperExpr(expr *Super) interface{} {
	if r.currentClass == CT_NONE {
		r.reporter.ErrorToken(expr.keyword, "can't use 'super' outside of a class.")
	} else if r.currentClass != CT_SUBCLASS {
		r.reporter.ErrorToken(expr.keyword, "can't use 'super' in a class with no superclass.")
	}
	r.resolveLocal(expr, expr.keyword)
	return nil
}

func (r *Resolver) visitThisExpr(expr *This) interface{} {
	if r.currentClass == CT_NONE {
		r.reporter.ErrorToken(expr.keyword, "can't use 'this' outside of a class.")
		return nil
	}
	r.resolveLocal(expr, expr.keyword)
	return nil
}

func (r *Resolver) visitGetExpr(expr *Get) interface{} {
	r.resolveExpr(expr.object)
	return nil
}

func (r *Resolver) visitUnaryExpr(expr *Unary) interface{} {
	r.resolveExpr(expr.right)
	return nil
}

func (r *Resolver) visitTernaryExpr(expr *Ternary) interface{} {
	r.resolveExpr(expr.expr)
	r.resolveExpr(expr.thenBranch)
	r.resolveExpr(expr.elseBranch)
	return nil
}

func (r *Resolver) visitLambdaExpr(expr *Lambda) interface{} {
	r.resolveLambda(expr, FT_FUNCTION)
	return nil
}

func (r *Resolver) visitIndexExpr(expr *Index) interface{} {
	r.resolveExpr(expr.left)
	if expr.index != nil {
		r.resolveExpr(expr.index)
	}
	return nil
}

func (r *Resolver) visitArraySetExpr(expr *ArraySet) interface{} {
	r.resolveExpr(expr.left)
	if expr.index != nil {
		r.resolveExpr(expr.index)
	}
	r.resolveExpr(expr.value)
	return nil
}

func (r *Resolver) visitArrayLiteralExpr(expr *ArrayLiteral) interface{} {
	for _, item := range expr.items {
		r.resolveExpr(item)
	}
	return nil
}

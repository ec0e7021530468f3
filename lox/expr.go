package lox

type Expr interface {
	accept(visitor VisitorExpr) interface{}
}

type VisitorExpr interface {
	visitAssignExpr(expr *Assign) interface{}
	visitBinaryExpr(expr *Binary) interface{}
	visitLambdaExpr(expr *Lambda) interface{}
	visitCallExpr(expr *Call) interface{}
	visitGetExpr(expr *Get) interface{}
	visitIndexExpr(expr *Index) interface{}
	visitArrayLiteralExpr(expr *ArrayLiteral) interface{}
	visitGroupingExpr(expr *Grouping) interface{}
	visitLiteralExpr(expr *Literal) interface{}
	visitLogicalExpr(expr *Logical) interface{}
	visitSetExpr(expr *Set) interface{}
	visitSuperExpr(expr *Super) interface{}
	visitThisExpr(expr *This) interface{}
	visitArraySetExpr(expr *ArraySet) interface{}
	visitUnaryExpr(expr *Unary) interface{}
	visitTernaryExpr(expr *Ternary) interface{}
	visitVariableExpr(expr *Variable) interface{}
}

func NewAssign(name *Token, value Expr) *Assign {
	return &Assign{
		name : name,
		value : value,
	}
}

type Assign struct {
	name *Token
	value Expr
}

func (a *Assign) accept(visitor VisitorExpr) interface{} {
	return visitor.visitAssignExpr(a)
}

func NewBinary(left Expr, operator *Token, right Expr) *Binary {
	return &Binary{
		left : left,
		operator : operator,
		right : right,
	}
}

type Binary struct {
	left Expr
	operator *Token
	right Expr
}

func (b *Binary) accept(visitor VisitorExpr) interface{} {
	return visitor.visitBinaryExpr(b)
}

func NewLambda(params []*Token, body []Stmt) *Lambda {
	return &Lambda{
		params : params,
		body : body,
	}
}

type Lambda struct {
	params []*Token
	body []Stmt
}

func (l *Lambda) accept(visitor VisitorExpr) interface{} {
	return visitor.visitLambdaExpr(l)
}

func NewCall(callee Expr, paren *Token, arguments []Expr) *Call {
	return &Call{
		callee : callee,
		paren : paren,
		arguments : arguments,
	}
}

type Call struct {
	callee Expr
	paren *Token
	arguments []Expr
}

func (c *Call) accept(visitor VisitorExpr) interface{} {
	return visitor.visitCallExpr(c)
}

func NewGet(object Expr, name *Token) *Get {
	return &Get{
		object : object,
		name : name,
	}
}

type Get struct {
	object Expr
	name *Token
}

func (g *Get) accept(visitor VisitorExpr) interface{} {
	return visitor.visitGetExpr(g)
}

func NewIndex(left Expr, bracket *Token, index Expr) *Index {
	return &Index{
		left : left,
		bracket : bracket,
		index : index,
	}
}

type Index struct {
	left Expr
	bracket *Token
	index Expr
}

func (i *Index) accept(visitor VisitorExpr) interface{} {
	return visitor.visitIndexExpr(i)
}

func NewArrayLiteral(bracket *Token, items []Expr) *ArrayLiteral {
	return &ArrayLiteral{
		bracket : bracket,
		items : items,
	}
}

type ArrayLiteral struct {
	bracket *Token
	items []Expr
}

func (a *ArrayLiteral) accept(visitor VisitorExpr) interface{} {
	return visitor.visitArrayLiteralExpr(a)
}

func NewGrouping(expression Expr) *Grouping {
	return &Grouping{
		expression : expression,
	}
}

type Grouping struct {
	expression Expr
}

func (g *Grouping) accept(visitor VisitorExpr) interface{} {
	return visitor.visitGroupingExpr(g)
}

func NewLiteral(value interface{}) *Literal {
	return &Literal{
		value : value,
	}
}

type Literal struct {
	value interface{}
}

func (l *Literal) accept(visitor VisitorExpr) interface{} {
	return visitor.visitLiteralExpr(l)
}

func NewLogical(left Expr, operator *Token, right Expr) *Logical {
	return &Logical{
		left : left,
		operator : operator,
		right : right,
	}
}

type Logical struct {
	left Expr
	operator *Token
	right Expr
}

func (l *Logical) accept(visitor VisitorExpr) interface{} {
	return visitor.visitLogicalExpr(l)
}

func NewSet(object Expr, name *Token, value Expr) *Set {
	return &Set{
		object : object,
		name : name,
		value : value,
	}
}

type Set struct {
	object Expr
	name *Token
	value Expr
}

func (s *Set) accept(visitor VisitorExpr) interface{} {
	return visitor.visitSetExpr(s)
}

func NewSuper(keyword *Token, method *Token) *Super {
	return &Super{
		keyword : keyword,
		method : method,
	}
}

type Super struct {
	keyword *Token
	method *Token
}

func (s *Super) accept(visitor VisitorExpr) interface{} {
	return visitor.visitSuperExpr(s)
}

func NewThis(keyword *Token) *This {
	return &This{
		keyword : keyword,
	}
}

type This struct {
	keyword *Token
}

func (t *This) accept(visitor VisitorExpr) interface{} {
	return visitor.visitThisExpr(t)
}

func NewArraySet(left Expr, bracket *Token, index Expr, value Expr) *ArraySet {
	return &ArraySet{
		left : left,
		bracket : bracket,
		index : index,
		value : value,
	}
}

type ArraySet struct {
	left Expr
	bracket *Token
	index Expr
	value Expr
}

func (a *ArraySet) accept(visitor VisitorExpr) interface{} {
	return visitor.visitArraySetExpr(a)
}

func NewUnary(operator *Token, right Expr, postfix bool) *Unary {
	return &Unary{
		operator : operator,
		right : right,
		postfix : postfix,
	}
}

type Unary struct {
	operator *Token
	right Expr
	postfix bool
}

func (u *Unary) accept(visitor VisitorExpr) interface{} {
	return visitor.visitUnaryExpr(u)
}

func NewTernary(expr Expr, thenBranch Expr, elseBranch Expr) *Ternary {
	return &Ternary{
		expr : expr,
		thenBranch : thenBranch,
		elseBranch : elseBranch,
	}
}

type Ternary struct {
	expr Expr
	thenBranch Expr
	elseBranch Expr
}

func (t *Ternary) accept(visitor VisitorExpr) interface{} {
	return visitor.visitTernaryExpr(t)
}

func NewVariable(name *Token) *Variable {
	return &Variable{
		name : name,
	}
}

type Variable struct {
	name *Token
}

func (v *Variable) accept(visitor VisitorExpr) interface{} {
	return visitor.visitVariableExpr(v)
}


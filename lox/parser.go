package lox

// Parser is a recursive-descent parser with one token of lookahead. Syntax
// errors panic a parserError that declaration() recovers and reports
// through the shared Reporter before synchronizing to the next statement
// boundary, so one bad declaration does not abort the whole parse.
type Parser struct {
	tokens   []*Token
	reporter *Reporter
	current  int
	loop     int
}

// NewParser returns a Parser over tokens, reporting errors through reporter.
func NewParser(tokens []*Token, reporter *Reporter) *Parser {
	return &Parser{tokens: tokens, reporter: reporter}
}

// Parse parses the full token stream into a program (a list of statements).
func (p *Parser) Parse() []Stmt {
	var statements []Stmt
	for !p.isAtEnd() {
		statements = append(statements, p.declaration()...)
	}
	return statements
}

func (p *Parser) declaration() (stmts []Stmt) {
	defer func() {
		if pe, ok := recover().(parserError); ok {
			p.reporter.ErrorToken(pe.token, pe.message)
			p.synchronize()
			stmts = nil
		}
	}()
	if p.match(CLASS) {
		return append(stmts, p.classDeclaration())
	}
	if p.match(FUN) {
		return append(stmts, p.function("function"))
	}
	if p.match(VAR) {
		return p.varDeclarations()
	}
	return append(stmts, p.statement())
}

func (p *Parser) classDeclaration() Stmt {
	name := p.consume(IDENTIFIER, "expect class name")

	var superclass *Variable
	if p.match(LESS) {
		p.consume(IDENTIFIER, "expect superclass name.")
		superclass = NewVariable(p.previous())
	}

	p.consume(LEFT_BRACE, "expect '{' before class body.")
	var methods []*Function
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		methods = append(methods, p.function("method"))
	}
	p.consume(RIGHT_BRACE, "expect '}' after class body.")
	return NewClass(name, superclass, methods)
}

func (p *Parser) varDeclarations() (stmts []Stmt) {
	stmts = append(stmts, p.varDeclaration(false))
	for p.match(COMMA) {
		stmts = append(stmts, p.varDeclaration(false))
	}
	p.consume(SEMICOLON, "expect ';' after variable declaration.")
	return
}

func (p *Parser) varDeclaration(consumeSemicolon bool) Stmt {
	name := p.consume(IDENTIFIER, "expect variable name.")
	var initializer Expr
	if p.match(EQUAL) {
		initializer = p.assignment()
	}
	if consumeSemicolon {
		p.consume(SEMICOLON, "expect ';' after variable declaration.")
	}
	return NewVar(name, initializer)
}

func (p *Parser) whileStatement() Stmt {
	p.consume(LEFT_PAREN, "expect '(' after 'while'.")
	condition := p.expression()
	p.consume(RIGHT_PAREN, "expect ')' after condition.")

	p.loop++
	defer func() { p.loop-- }()
	body := p.statement()

	return NewWhile(condition, body)
}

func (p *Parser) breakStatement() Stmt {
	if p.loop == 0 {
		panic(NewParseError(p.previous(), "'break' must be inside a loop."))
	}
	p.consume(SEMICOLON, "expect ';' after 'break'.")
	return NewBreak()
}

func (p *Parser) continueStatement() Stmt {
	if p.loop == 0 {
		panic(NewParseError(p.previous(), "'continue' must be inside a loop."))
	}
	p.consume(SEMICOLON, "expect ';' after 'continue'.")
	return NewContinue()
}

func (p *Parser) statement() Stmt {
	switch {
	case p.match(FOR):
		return p.forStatement()
	case p.match(IF):
		return p.ifStatement()
	case p.match(PRINT):
		return p.printStatement()
	case p.match(RETURN):
		return p.returnStatement()
	case p.match(WHILE):
		return p.whileStatement()
	case p.match(BREAK):
		return p.breakStatement()
	case p.match(CONTINUE):
		return p.continueStatement()
	case p.match(LEFT_BRACE):
		return NewBlock(p.block())
	default:
		return p.expressionStatement()
	}
}

// forStatement desugars `for (init; cond; incr) body` into a Block holding
// init followed by a While whose body is itself a Block of {body, incr}.
func (p *Parser) forStatement() Stmt {
	p.consume(LEFT_PAREN, "expect '(' after 'for'.")

	var initializer Stmt
	switch {
	case p.match(SEMICOLON):
	case p.match(VAR):
		initializer = p.varDeclaration(true)
	default:
		initializer = p.expressionStatement()
	}

	var condition Expr
	if !p.check(SEMICOLON) {
		condition = p.expression()
	}
	p.consume(SEMICOLON, "expect ';' after loop condition.")

	var increment Expr
	if !p.check(RIGHT_PAREN) {
		increment = p.expression()
	}
	p.consume(RIGHT_PAREN, "expect ')' after for clauses.")

	p.loop++
	defer func() { p.loop-- }()

	body := p.statement()
	if increment != nil {
		body = NewBlock([]Stmt{body, NewExpression(increment)})
	}
	if condition == nil {
		condition = NewLiteral(true)
	}
	body = NewWhile(condition, body)
	if initializer != nil {
		body = NewBlock([]Stmt{initializer, body})
	}
	return body
}

func (p *Parser) ifStatement() Stmt {
	p.consume(LEFT_PAREN, "expect '(' after 'if'.")
	condition := p.expression()
	p.consume(RIGHT_PAREN, "expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch Stmt
	if p.match(ELSE) {
		elseBranch = p.statement()
	}
	return NewIf(condition, thenBranch, elseBranch)
}

func (p *Parser) printStatement() Stmt {
	value := p.expression()
	p.consume(SEMICOLON, "expect ';' after value.")
	return NewPrint(value)
}

func (p *Parser) returnStatement() Stmt {
	keyword := p.previous()
	var value Expr
	if !p.check(SEMICOLON) {
		value = p.expression()
	}
	p.consume(SEMICOLON, "expect ';' after return value.")
	return NewReturn(keyword, value)
}

func (p *Parser) expressionStatement() Stmt {
	expr := p.expression()
	p.consume(SEMICOLON, "expect ';' after expression.")
	return NewExpression(expr)
}

func (p *Parser) function(kind string) *Function {
	name := p.consume(IDENTIFIER, "expect "+kind+" name.")
	parameters, body := p.functionBody(kind)
	return NewFunction(name, parameters, body)
}

func (p *Parser) lambda(kind string) *Lambda {
	parameters, body := p.functionBody(kind)
	return NewLambda(parameters, body)
}

func (p *Parser) functionBody(kind string) ([]*Token, []Stmt) {
	enclosingLoop := p.loop
	p.loop = 0
	defer func() { p.loop = enclosingLoop }()
	p.consume(LEFT_PAREN, "expect '(' after "+kind+" name.")
	var parameters []*Token
	if !p.check(RIGHT_PAREN) {
		for {
			if len(parameters) >= 255 {
				panic(NewParseError(p.peek(), "can't have more than 255 parameters."))
			}
			parameters = append(parameters, p.consume(IDENTIFIER, "expect parameter name."))
			if !p.match(COMMA) {
				break
			}
		}
	}
	p.consume(RIGHT_PAREN, "expect ')' after parameters.")
	p.consume(LEFT_BRACE, "expect '{' before "+kind+" body.")
	body := p.block()
	return parameters, body
}

func (p *Parser) block() []Stmt {
	var statements []Stmt
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		statements = append(statements, p.declaration()...)
	}
	p.consume(RIGHT_BRACE, "expect '}' after block.")
	return statements
}

func (p *Parser) assignment() Expr {
	expr := p.ternary()
	if p.match(EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *Variable:
			return NewAssign(target.name, value)
		case *Index:
			return NewArraySet(target.left, target.bracket, target.index, value)
		case *Get:
			return NewSet(target.object, target.name, value)
		}
		panic(NewParseError(equals, "Invalid assignment target."))
	}
	return expr
}

func (p *Parser) ternary() Expr {
	expr := p.or()
	if p.match(QUESTION_MARK) {
		thenBranch := p.expression()
		p.consume(COLON, "expect ':' after then branch of ternary.")
		elseBranch := p.ternary()
		expr = NewTernary(expr, thenBranch, elseBranch)
	}
	return expr
}

func (p *Parser) or() Expr {
	expr := p.and()
	for p.match(OR) {
		operator := p.previous()
		right := p.and()
		expr = NewLogical(expr, operator, right)
	}
	return expr
}

func (p *Parser) and() Expr {
	expr := p.equality()
	for p.match(AND) {
		operator := p.previous()
		right := p.equality()
		expr = NewLogical(expr, operator, right)
	}
	return expr
}

func (p *Parser) expression() Expr {
	return p.assignment()
}

func (p *Parser) equality() Expr {
	expr := p.comparison()
	for p.match(BANG_EQUAL, EQUAL_EQUAL) {
		operator := p.previous()
		right := p.comparison()
		expr = NewBinary(expr, operator, right)
	}
	return expr
}

func (p *Parser) match(types ...TokenType) bool {
	for _, ty := range types {
		if p.check(ty) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) matchNext(types ...TokenType) bool {
	for _, ty := range types {
		if p.checkNext(ty) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(ty TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == ty
}

func (p *Parser) checkNext(ty TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	tk := p.tokens[p.current+1]
	if tk.Type == EOF {
		return false
	}
	return tk.Type == ty
}

func (p *Parser) advance() *Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == EOF
}

func (p *Parser) peek() *Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() *Token {
	return p.tokens[p.current-1]
}

func (p *Parser) comparison() Expr {
	expr := p.term()
	for p.match(GREATER, GREATER_EQUAL, LESS, LESS_EQUAL) {
		operator := p.previous()
		right := p.term()
		expr = NewBinary(expr, operator, right)
	}
	return expr
}

func (p *Parser) term() Expr {
	expr := p.factor()
	for p.match(MINUS, PLUS) {
		operator := p.previous()
		right := p.factor()
		expr = NewBinary(expr, operator, right)
	}
	return expr
}

func (p *Parser) factor() Expr {
	expr := p.unary()
	for p.match(SLASH, STAR) {
		operator := p.previous()
		right := p.unary()
		expr = NewBinary(expr, operator, right)
	}
	return expr
}

func (p *Parser) unary() Expr {
	if p.match(BANG, MINUS) {
		operator := p.previous()
		right := p.unary()
		return NewUnary(operator, right, false)
	}
	return p.prefix()
}

func (p *Parser) prefix() Expr {
	if p.match(PLUS_PLUS, MINUS_MINUS) {
		operator := p.previous()
		right := p.primary()
		return NewUnary(operator, right, false)
	}
	return p.postfix()
}

// postfix looks one token ahead for ++/-- before consuming the operand, since
// a++ evaluates a's current value before incrementing it.
func (p *Parser) postfix() Expr {
	if p.matchNext(PLUS_PLUS, MINUS_MINUS) {
		operator := p.peek()
		p.current--
		left := p.primary()
		p.advance()
		return NewUnary(operator, left, true)
	}
	return p.call()
}

func (p *Parser) call() Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.match(DOT):
			name := p.consume(IDENTIFIER, "expect property name after '.'.")
			expr = NewGet(expr, name)
		case p.match(LEFT_BRACKET):
			bracket := p.previous()
			var index Expr
			if !p.check(RIGHT_BRACKET) {
				index = p.assignment()
			}
			p.consume(RIGHT_BRACKET, "expect ']' after index expression.")
			expr = NewIndex(expr, bracket, index)
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee Expr) Expr {
	var arguments []Expr
	if !p.check(RIGHT_PAREN) {
		for {
			if len(arguments) >= 255 {
				panic(NewParseError(p.peek(), "can't have more than 255 arguments."))
			}
			arguments = append(arguments, p.assignment())
			if !p.match(COMMA) {
				break
			}
		}
	}
	paren := p.consume(RIGHT_PAREN, "expect ')' after arguments.")
	return NewCall(callee, paren, arguments)
}

func (p *Parser) arrayLiteral() Expr {
	bracket := p.previous()
	var items []Expr
	if !p.check(RIGHT_BRACKET) {
		for {
			items = append(items, p.assignment())
			if !p.match(COMMA) {
				break
			}
		}
	}
	p.consume(RIGHT_BRACKET, "expect ']' after array items.")
	return NewArrayLiteral(bracket, items)
}

func (p *Parser) primary() Expr {
	switch {
	case p.match(FALSE):
		return NewLiteral(false)
	case p.match(TRUE):
		return NewLiteral(true)
	case p.match(NIL):
		return NewLiteral(nil)
	case p.match(NUMBER, STRING):
		return NewLiteral(p.previous().Literal)
	case p.match(SUPER):
		keyword := p.previous()
		p.consume(DOT, "expect '.' after 'super'.")
		method := p.consume(IDENTIFIER, "expect superclass method name.")
		return NewSuper(keyword, method)
	case p.match(THIS):
		return NewThis(p.previous())
	case p.match(IDENTIFIER):
		return NewVariable(p.previous())
	case p.match(LEFT_PAREN):
		expr := p.expression()
		p.consume(RIGHT_PAREN, "expect ')' after expression.")
		return NewGrouping(expr)
	case p.match(LEFT_BRACKET):
		return p.arrayLiteral()
	case p.check(FUN) && p.checkNext(LEFT_PAREN):
		p.advance()
		return p.lambda("function")
	}

	// Error productions: a binary operator where a primary was expected
	// means the left operand is missing. The right operand is parsed by the
	// operator's own production before the error is raised.
	switch {
	case p.match(QUESTION_MARK):
		panic(NewParseError(p.previous(), "missing left-hand condition of ternary operator."))
	case p.match(BANG_EQUAL, EQUAL_EQUAL):
		operator := p.previous()
		p.equality()
		panic(NewParseError(operator, "Missing left-hand operand."))
	case p.match(GREATER, GREATER_EQUAL, LESS, LESS_EQUAL):
		operator := p.previous()
		p.comparison()
		panic(NewParseError(operator, "Missing left-hand operand."))
	case p.match(PLUS):
		operator := p.previous()
		p.term()
		panic(NewParseError(operator, "Missing left-hand operand."))
	case p.match(SLASH, STAR):
		operator := p.previous()
		p.factor()
		panic(NewParseError(operator, "Missing left-hand operand."))
	}
	panic(NewParseError(p.peek(), "expect expression."))
}

func (p *Parser) consume(ty TokenType, message string) *Token {
	if p.check(ty) {
		return p.advance()
	}
	panic(NewParseError(p.peek(), message))
}

func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == SEMICOLON {
			return
		}
		switch p.peek().Type {
		case CLASS, FUN, VAR, FOR, IF, WHILE, PRINT, RETURN:
			return
		}
		p.advance()
	}
}

package lox

import (
	"bytes"
	"testing"
)

func scanAll(t *testing.T, source string) ([]*Token, *Reporter) {
	t.Helper()
	var buf bytes.Buffer
	reporter := NewReporter(&buf)
	tokens := NewScanner(source, reporter).ScanTokens()
	return tokens, reporter
}

func TestScannerSingleAndDoubleCharTokens(t *testing.T) {
	tokens, reporter := scanAll(t, "(){}[],.-+;/*!!====<<=>>=++--")
	if reporter.HadError() {
		t.Fatalf("unexpected scan error")
	}
	want := []TokenType{
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE, LEFT_BRACKET, RIGHT_BRACKET,
		COMMA, DOT, MINUS, PLUS, SEMICOLON, SLASH, STAR,
		BANG, BANG_EQUAL, EQUAL_EQUAL, EQUAL, LESS, LESS_EQUAL, GREATER, GREATER_EQUAL,
		PLUS_PLUS, MINUS_MINUS, EOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, tt := range want {
		if tokens[i].Type != tt {
			t.Fatalf("token %d: got type %v, want %v", i, tokens[i].Type, tt)
		}
	}
}

func TestScannerStringEscapes(t *testing.T) {
	tokens, reporter := scanAll(t, `"a\nb\tc\"d"`)
	if reporter.HadError() {
		t.Fatalf("unexpected scan error")
	}
	if len(tokens) != 2 || tokens[0].Type != STRING {
		t.Fatalf("got %v", tokens)
	}
	want := "a\nb\tc\"d"
	if tokens[0].Literal != want {
		t.Fatalf("got literal %q, want %q", tokens[0].Literal, want)
	}
}

func TestScannerNumberLiteral(t *testing.T) {
	tokens, reporter := scanAll(t, "123.45")
	if reporter.HadError() {
		t.Fatalf("unexpected scan error")
	}
	if len(tokens) != 2 || tokens[0].Type != NUMBER {
		t.Fatalf("got %v", tokens)
	}
	if tokens[0].Literal.(float64) != 123.45 {
		t.Fatalf("got literal %v, want 123.45", tokens[0].Literal)
	}
}

func TestScannerKeywordsAndIdentifiers(t *testing.T) {
	tokens, reporter := scanAll(t, "class else fun for if nil or print return super this true var while break continue foo_bar")
	if reporter.HadError() {
		t.Fatalf("unexpected scan error")
	}
	want := []TokenType{
		CLASS, ELSE, FUN, FOR, IF, NIL, OR, PRINT, RETURN, SUPER, THIS, TRUE,
		VAR, WHILE, BREAK, CONTINUE, IDENTIFIER, EOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, tt := range want {
		if tokens[i].Type != tt {
			t.Fatalf("token %d: got %v, want %v", i, tokens[i].Type, tt)
		}
	}
}

func TestScannerLineTracking(t *testing.T) {
	tokens, _ := scanAll(t, "var a = 1;\nvar b = 2;\n")
	last := tokens[len(tokens)-2]
	if last.Line != 2 {
		t.Fatalf("got line %d, want 2", last.Line)
	}
}

func TestScannerUnterminatedStringIsReported(t *testing.T) {
	_, reporter := scanAll(t, `"unterminated`)
	if !reporter.HadError() {
		t.Fatalf("expected a scan error for an unterminated string")
	}
}

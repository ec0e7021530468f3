package lox

import (
	"bytes"
	"testing"
)

func parseSource(t *testing.T, source string) ([]Stmt, *Reporter) {
	t.Helper()
	var buf bytes.Buffer
	reporter := NewReporter(&buf)
	tokens := NewScanner(source, reporter).ScanTokens()
	statements := NewParser(tokens, reporter).Parse()
	return statements, reporter
}

func TestParserPrecedence(t *testing.T) {
	statements, reporter := parseSource(t, "1 + 2 * 3;")
	if reporter.HadError() {
		t.Fatalf("unexpected parse error")
	}
	printed := (&AstPrinter{}).printStmt(statements[0])
	want := "(; (+ 1 (* 2 3)))"
	if printed != want {
		t.Fatalf("got %q, want %q", printed, want)
	}
}

func TestParserAssignmentIsRightAssociative(t *testing.T) {
	statements, reporter := parseSource(t, "a = b = c;")
	if reporter.HadError() {
		t.Fatalf("unexpected parse error")
	}
	expr := statements[0].(*Expression).expression.(*Assign)
	if _, ok := expr.value.(*Assign); !ok {
		t.Fatalf("expected nested assignment on the right, got %T", expr.value)
	}
}

func TestParserForDesugarsToWhile(t *testing.T) {
	statements, reporter := parseSource(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	if reporter.HadError() {
		t.Fatalf("unexpected parse error")
	}
	block, ok := statements[0].(*Block)
	if !ok || len(block.statements) != 2 {
		t.Fatalf("expected a 2-statement block, got %#v", statements[0])
	}
	if _, ok := block.statements[0].(*Var); !ok {
		t.Fatalf("expected the initializer first, got %T", block.statements[0])
	}
	if _, ok := block.statements[1].(*While); !ok {
		t.Fatalf("expected a desugared while, got %T", block.statements[1])
	}
}

func TestParserEmptyIndexAssignIsAppend(t *testing.T) {
	statements, reporter := parseSource(t, "a[] = 1;")
	if reporter.HadError() {
		t.Fatalf("unexpected parse error")
	}
	set := statements[0].(*Expression).expression.(*ArraySet)
	if set.index != nil {
		t.Fatalf("expected a nil index for append syntax, got %#v", set.index)
	}
}

func TestParserReportsMissingSemicolon(t *testing.T) {
	_, reporter := parseSource(t, "var a = 1")
	if !reporter.HadError() {
		t.Fatalf("expected a parse error for a missing semicolon")
	}
}

func TestParserBreakOutsideLoopIsError(t *testing.T) {
	_, reporter := parseSource(t, "break;")
	if !reporter.HadError() {
		t.Fatalf("expected a parse error for break outside a loop")
	}
}

func TestParserTooManyArgumentsIsError(t *testing.T) {
	args := "f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			args += ","
		}
		args += "1"
	}
	args += ");"
	_, reporter := parseSource(t, args)
	if !reporter.HadError() {
		t.Fatalf("expected a parse error for more than 255 arguments")
	}
}

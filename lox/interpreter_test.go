package lox

import (
	"bytes"
	"strings"
	"testing"

	"github.com/adamscarlat/golox/builtins"
)

func run(t *testing.T, source string) (stdout, diagnostics string, reporter *Reporter) {
	t.Helper()
	var out, errs bytes.Buffer
	reporter = NewReporter(&errs)
	interpreter := NewInterpreter(reporter, &out, Options{})
	RunSource(source, interpreter, reporter)
	return out.String(), errs.String(), reporter
}

func TestInterpreterArithmeticPrecedence(t *testing.T) {
	out, _, r := run(t, "print 1 + 2 * 3;")
	if r.HadError() || r.HadRuntimeError() {
		t.Fatalf("unexpected error")
	}
	if strings.TrimSpace(out) != "7" {
		t.Fatalf("got %q, want 7", out)
	}
}

func TestInterpreterBlockScoping(t *testing.T) {
	out, _, _ := run(t, `var a = 1; { var a = 2; print a; } print a;`)
	if got, want := strings.TrimSpace(out), "2\n1"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestInterpreterClosureCapturesMutation(t *testing.T) {
	out, _, r := run(t, `
		fun make(){ var i = 0; fun inc(){ i = i + 1; return i; } return inc; }
		var c = make();
		print c();
		print c();
		print c();`)
	if r.HadError() || r.HadRuntimeError() {
		t.Fatalf("unexpected error")
	}
	if got, want := strings.TrimSpace(out), "1\n2\n3"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestInterpreterSuperCallsDispatchToSubclass(t *testing.T) {
	out, _, r := run(t, `
		class A { hi(){ print "A"; } }
		class B < A { hi(){ super.hi(); print "B"; } }
		B().hi();`)
	if r.HadError() || r.HadRuntimeError() {
		t.Fatalf("unexpected error")
	}
	if got, want := strings.TrimSpace(out), "A\nB"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestInterpreterForLoop(t *testing.T) {
	out, _, r := run(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	if r.HadError() || r.HadRuntimeError() {
		t.Fatalf("unexpected error")
	}
	if got, want := strings.TrimSpace(out), "0\n1\n2"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestInterpreterStringConcatenationAndTypeError(t *testing.T) {
	out, _, r := run(t, `print "foo" + "bar";`)
	if r.HadError() || r.HadRuntimeError() {
		t.Fatalf("unexpected error")
	}
	if strings.TrimSpace(out) != "foobar" {
		t.Fatalf("got %q, want foobar", out)
	}

	_, diagnostics, r2 := run(t, `print 1 + "x";`)
	if !r2.HadRuntimeError() {
		t.Fatalf("expected a runtime error")
	}
	if !strings.Contains(diagnostics, "Operands must be two numbers or two strings.") {
		t.Fatalf("got diagnostics %q", diagnostics)
	}
}

func TestInterpreterArrayIndexAssignment(t *testing.T) {
	out, _, r := run(t, `var a = [1, 2, 3]; a[1] = 9; print a;`)
	if r.HadError() || r.HadRuntimeError() {
		t.Fatalf("unexpected error")
	}
	if got, want := strings.TrimSpace(out), "[1, 9, 3]"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestInterpreterContinueSkipsIteration(t *testing.T) {
	out, _, r := run(t, `var i = 0; while (i < 5) { i = i + 1; if (i == 3) continue; print i; }`)
	if r.HadError() || r.HadRuntimeError() {
		t.Fatalf("unexpected error")
	}
	if got, want := strings.TrimSpace(out), "1\n2\n4\n5"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestInterpreterArrayOutOfBoundsIsRuntimeErrorNotPanic(t *testing.T) {
	_, diagnostics, r := run(t, `var a = [1]; print a[5];`)
	if !r.HadRuntimeError() {
		t.Fatalf("expected a runtime error")
	}
	if !strings.Contains(diagnostics, "out of range") {
		t.Fatalf("got diagnostics %q", diagnostics)
	}
}

func TestInterpreterMethodBindingReturnsSameInstance(t *testing.T) {
	out, _, r := run(t, `
		class C { m(){ return this; } }
		var c = C();
		print c.m() == c;`)
	if r.HadError() || r.HadRuntimeError() {
		t.Fatalf("unexpected error")
	}
	if strings.TrimSpace(out) != "true" {
		t.Fatalf("got %q, want true", out)
	}
}

func TestInterpreterTernaryEvaluatesOneBranch(t *testing.T) {
	out, _, r := run(t, `
		fun boom(){ print "boom"; return true; }
		print true ? "yes" : boom();`)
	if r.HadError() || r.HadRuntimeError() {
		t.Fatalf("unexpected error")
	}
	if got, want := strings.TrimSpace(out), "yes"; got != want {
		t.Fatalf("got %q, want %q (boom() must not have run)", got, want)
	}
}

func TestInterpreterLambdaAsValue(t *testing.T) {
	out, _, r := run(t, `var add = fun (a, b) { return a + b; }; print add(2, 3);`)
	if r.HadError() || r.HadRuntimeError() {
		t.Fatalf("unexpected error")
	}
	if strings.TrimSpace(out) != "5" {
		t.Fatalf("got %q, want 5", out)
	}
}

func TestInterpreterIncrementDecrement(t *testing.T) {
	out, _, r := run(t, `var i = 0; print i++; print i; print ++i; print i;`)
	if r.HadError() || r.HadRuntimeError() {
		t.Fatalf("unexpected error")
	}
	if got, want := strings.TrimSpace(out), "0\n1\n2\n2"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestInterpreterArrayAppendViaEmptyIndex(t *testing.T) {
	out, _, r := run(t, `var a = []; a[] = 1; a[] = 2; print a;`)
	if r.HadError() || r.HadRuntimeError() {
		t.Fatalf("unexpected error")
	}
	if got, want := strings.TrimSpace(out), "[1, 2]"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestInterpreterMaxArrayPreview(t *testing.T) {
	var out bytes.Buffer
	reporter := NewReporter(&bytes.Buffer{})
	interpreter := NewInterpreter(reporter, &out, Options{MaxArrayPreview: 2})
	RunSource(`print [1, 2, 3, 4];`, interpreter, reporter)
	if got, want := strings.TrimSpace(out.String()), "[1, 2, ...]"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestInterpreterPreludeFunctionsAreAvailable(t *testing.T) {
	var out bytes.Buffer
	var errs bytes.Buffer
	reporter := NewReporter(&errs)
	interpreter := NewInterpreter(reporter, &out, Options{})
	RunProgram(builtins.DefaultPrelude, `
		fun double(x) { return x * 2; }
		print map([1, 2, 3], double);`, interpreter, reporter)
	if reporter.HadError() || reporter.HadRuntimeError() {
		t.Fatalf("unexpected error: %s", errs.String())
	}
	if got, want := strings.TrimSpace(out.String()), "[2, 4, 6]"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestInterpreterNanIsNotEqualToItself(t *testing.T) {
	out, _, r := run(t, `var n = 0.0 / 0.0; print n == n;`)
	if r.HadError() || r.HadRuntimeError() {
		t.Fatalf("unexpected error")
	}
	if strings.TrimSpace(out) != "false" {
		t.Fatalf("got %q, want false", out)
	}
}

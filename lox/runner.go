package lox

// RunSource scans, parses, resolves, and executes one buffer of source text
// against interpreter, reporting diagnostics through reporter. Execution is
// skipped if a compile error was recorded during scanning, parsing, or
// resolution.
func RunSource(source string, interpreter *Interpreter, reporter *Reporter) {
	scanner := NewScanner(source, reporter)
	tokens := scanner.ScanTokens()

	parser := NewParser(tokens, reporter)
	statements := parser.Parse()
	if reporter.HadError() {
		return
	}

	resolver := NewResolver(interpreter, reporter)
	resolver.resolve(statements)
	if reporter.HadError() {
		return
	}

	interpreter.Run(statements)
}

// RunProgram runs prelude and then source against interpreter, each as its
// own RunSource call. Running them separately - rather than concatenating
// the two strings into one buffer - keeps source's line numbers exactly as
// written, since each call's Scanner restarts its own line counter at 1;
// concatenation would shift every diagnostic in source by the prelude's
// line count. Bindings and resolution state from the prelude are still
// visible to source, since both calls share one Interpreter.
func RunProgram(prelude, source string, interpreter *Interpreter, reporter *Reporter) {
	RunSource(prelude, interpreter, reporter)
	if reporter.HadError() || reporter.HadRuntimeError() {
		return
	}
	reporter.Reset()
	RunSource(source, interpreter, reporter)
}

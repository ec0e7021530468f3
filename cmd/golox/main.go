// Command golox runs Lox-family scripts, either from a file or from an
// interactive prompt.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/adamscarlat/golox/builtins"
	"github.com/adamscarlat/golox/internal/config"
	"github.com/adamscarlat/golox/lox"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to a YAML configuration file")
	preludePath := flag.String("prelude", "", "path to a prelude source file, overriding configuration")
	flag.Parse()

	args := flag.Args()
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "usage: golox [-config path] [-prelude path] [script]")
		os.Exit(64)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(64)
	}

	prelude := builtins.DefaultPrelude
	if *preludePath != "" {
		cfg.PreludePath = *preludePath
	}
	if cfg.PreludePath != "" {
		data, err := os.ReadFile(cfg.PreludePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(64)
		}
		prelude = string(data)
	}

	opts := lox.Options{MaxArrayPreview: cfg.MaxArrayPreview}

	if len(args) == 1 {
		os.Exit(runFile(args[0], prelude, opts))
		return
	}
	runPrompt(prelude, opts)
}

func runFile(path string, prelude string, opts lox.Options) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 64
	}

	reporter := lox.NewReporter(os.Stderr)
	interpreter := lox.NewInterpreter(reporter, os.Stdout, opts)
	lox.RunProgram(prelude, string(source), interpreter, reporter)

	if reporter.HadError() {
		return 65
	}
	if reporter.HadRuntimeError() {
		return 70
	}
	return 0
}

// runPrompt loops reading one line at a time, sharing one Interpreter and
// Reporter across the whole session so globals and resolution state
// persist across lines - the same way function/class declarations on one
// line stay visible on the next. After every line both error flags are
// cleared, so a bad line never ends the session.
func runPrompt(prelude string, opts lox.Options) {
	reporter := lox.NewReporter(os.Stderr)
	interpreter := lox.NewInterpreter(reporter, os.Stdout, opts)
	lox.RunSource(prelude, interpreter, reporter)
	reporter.Reset()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		lox.RunSource(scanner.Text(), interpreter, reporter)
		reporter.Reset()
	}
}

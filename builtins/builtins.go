// Package builtins embeds the default prelude source that runs ahead of
// every program the interpreter runs.
package builtins

import _ "embed"

//go:embed prelude.lox
var DefaultPrelude string

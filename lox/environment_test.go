package lox

import "testing"

func TestEnvironmentDefineAndGet(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("a", 1.0)
	name := NewToken(IDENTIFIER, "a", nil, 1)
	if got := env.Get(name); got != 1.0 {
		t.Fatalf("Get() = %v, want 1.0", got)
	}
}

func TestEnvironmentLooksUpEnclosing(t *testing.T) {
	parent := NewEnvironment(nil)
	parent.Define("a", "outer")
	child := NewEnvironment(parent)
	name := NewToken(IDENTIFIER, "a", nil, 1)
	if got := child.Get(name); got != "outer" {
		t.Fatalf("Get() = %v, want outer", got)
	}
}

func TestEnvironmentUndefinedGetPanics(t *testing.T) {
	env := NewEnvironment(nil)
	name := NewToken(IDENTIFIER, "missing", nil, 1)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic for an undefined variable")
		}
	}()
	env.Get(name)
}

func TestEnvironmentAssignAtDistance(t *testing.T) {
	grandparent := NewEnvironment(nil)
	grandparent.Define("a", 1.0)
	parent := NewEnvironment(grandparent)
	child := NewEnvironment(parent)

	name := NewToken(IDENTIFIER, "a", nil, 1)
	child.AssignAt(2, name, 2.0)
	if got := grandparent.Get(name); got != 2.0 {
		t.Fatalf("Get() = %v, want 2.0", got)
	}
}

func TestEnvironmentAssignUndeclaredPanics(t *testing.T) {
	env := NewEnvironment(nil)
	name := NewToken(IDENTIFIER, "missing", nil, 1)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic assigning an undeclared variable")
		}
	}()
	env.Assign(name, 1.0)
}

// ==============================================================================================
// FILE: object/environment_unit_test.go
// ==============================================================================================
// PURPOSE: Specific unit tests for the Environment struct.
//          Validates Define-vs-Assign rules, scope traversal, and variable
//          persistence.
// ==============================================================================================

package object

import "testing"

func TestEnvironment_GetDefine(t *testing.T) {
	env := NewEnvironment()

	if _, ok := env.Get("x"); ok {
		t.Errorf("expected 'x' to not exist")
	}

	val := NumberEvaluation{Value: 10}
	env.Define("x", val)

	result, ok := env.Get("x")
	if !ok {
		t.Fatalf("expected 'x' to exist")
	}
	if result != Evaluation(val) {
		t.Errorf("expected got %v, want %v", result, val)
	}
}

func TestEnclosedEnvironments_Define_Shadows(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", NumberEvaluation{Value: 10})
	outer.Define("y", NumberEvaluation{Value: 5})

	inner := NewEnclosedEnvironment(outer)

	// Reading from outer scope.
	val, ok := inner.Get("x")
	if !ok || val.(NumberEvaluation).Value != 10 {
		t.Errorf("failed to read from outer scope")
	}

	// Define always shadows into the current scope, never mutating outer.
	inner.Define("x", NumberEvaluation{Value: 99})

	valInner, _ := inner.Get("x")
	if valInner.(NumberEvaluation).Value != 99 {
		t.Errorf("inner scope did not shadow outer scope")
	}

	valOuter, _ := outer.Get("x")
	if valOuter.(NumberEvaluation).Value != 10 {
		t.Errorf("outer scope was modified by inner Define (shadowing failed)")
	}

	yVal, ok := inner.Get("y")
	if !ok || yVal.(NumberEvaluation).Value != 5 {
		t.Errorf("failed to traverse up to outer scope")
	}
}

func TestEnclosedEnvironments_Assign_MutatesOuter(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", NumberEvaluation{Value: 10})

	inner := NewEnclosedEnvironment(outer)

	if err := inner.Assign("x", NumberEvaluation{Value: 42}); err != nil {
		t.Fatalf("expected Assign to find x in outer scope, got %v", err)
	}

	valInner, _ := inner.Get("x")
	if valInner.(NumberEvaluation).Value != 42 {
		t.Errorf("expected inner lookup to see the mutated outer value")
	}

	valOuter, _ := outer.Get("x")
	if valOuter.(NumberEvaluation).Value != 42 {
		t.Errorf("expected Assign to mutate the outer scope directly")
	}

	if _, ok := inner.values["x"]; ok {
		t.Errorf("Assign must not create a shadow binding in the inner scope")
	}
}

func TestEnvironment_Assign_UndefinedErrors(t *testing.T) {
	outer := NewEnvironment()
	inner := NewEnclosedEnvironment(outer)

	if err := inner.Assign("never_declared", NumberEvaluation{Value: 1}); err == nil {
		t.Fatalf("expected assigning an undefined variable to error")
	}
}

func TestEnvironment_Resolve(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", NumberEvaluation{Value: 1})
	inner := NewEnclosedEnvironment(outer)
	inner.Define("y", NumberEvaluation{Value: 2})

	if inner.Resolve("x") != outer {
		t.Errorf("expected Resolve(x) to find the outer scope")
	}
	if inner.Resolve("y") != inner {
		t.Errorf("expected Resolve(y) to find the inner scope")
	}
	if inner.Resolve("z") != nil {
		t.Errorf("expected Resolve(z) to find nothing")
	}
}

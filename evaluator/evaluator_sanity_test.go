// ==============================================================================================
// FILE: evaluator/evaluator_sanity_test.go
// ==============================================================================================
// PURPOSE: Sanity checks for the runtime.
//          Ensures that invalid programs fail gracefully with an error
//          instead of panicking, and that degenerate/empty input behaves
//          predictably.
// ==============================================================================================

package evaluator

import (
	"testing"

	"eloquence/object"
)

func TestSanity_EmptyProgramYieldsVoid(t *testing.T) {
	v := testEval(t, "")
	if _, ok := v.(object.VoidEvaluation); !ok {
		t.Fatalf("got %T, want VoidEvaluation", v)
	}
}

func TestSanity_UndefinedVariableErrors(t *testing.T) {
	testEvalError(t, "missing.")
}

func TestSanity_UndefinedVerbErrors(t *testing.T) {
	testEvalError(t, "[1] vanish.")
}

func TestSanity_ItOutsideRoutineErrors(t *testing.T) {
	testEvalError(t, "it.")
}

func TestSanity_NegatingNonNumberErrors(t *testing.T) {
	testEvalError(t, `-"hi".`)
}

func TestSanity_ComparingTextErrors(t *testing.T) {
	testEvalError(t, `"a" < "b".`)
}

func TestSanity_QualifyingWithNumberErrors(t *testing.T) {
	testEvalError(t, "[1] when [2].")
}

func TestSanity_WrongSubjectTypeErrors(t *testing.T) {
	env := object.NewEnvironment()
	testEvalEnv(t, `verb onlyForNumbers for Number { hence it. }`, env)
	testEvalEnvError(t, `"text" onlyForNumbers.`, env)
}

func TestSanity_AndOverNounWithNoTruthValueErrors(t *testing.T) {
	env := object.NewEnvironment()
	testEvalEnv(t, "noun Origin { }", env)
	testEvalEnvError(t, "Origin and true.", env)
}

func TestSanity_NounBodyDoesNotPanicOnEmptyBody(t *testing.T) {
	env := object.NewEnvironment()
	testEvalEnv(t, "noun Empty { }", env)
	if _, ok := env.Get("Empty"); !ok {
		t.Fatal("expected Empty to be defined even with an empty body")
	}
}

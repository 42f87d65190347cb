// ==============================================================================================
// FILE: repl/repl_integration_test.go
// ==============================================================================================
// PURPOSE: Integration tests for the REPL.
//          Validates multi-line interactions involving nouns, verbs, and builtins.
// ==============================================================================================

package repl

import (
	"strings"
	"testing"
)

func TestIntegration_NounAndVerbSession(t *testing.T) {
	input := `
noun Origin { so x is Number as [0]. so y is Number as [0]. }
verb describe for Origin { hence "an origin". }
Origin describe.
.exit`

	output := runSession(input)
	if !strings.Contains(output, "an origin") {
		t.Errorf("Noun/verb session failed. Output:\n%s", output)
	}
}

func TestIntegration_BuiltinPrint(t *testing.T) {
	input := `[0] print "hello from prose".
.exit`

	output := runSession(input)
	if !strings.Contains(output, "hello from prose") {
		t.Errorf("Builtin print integration failed. Output:\n%s", output)
	}
}

func TestIntegration_QualifierAndSkip(t *testing.T) {
	input := `so x is Number as [1].
x as [2] when false.
x.
.exit`

	output := runSession(input)
	if !strings.Contains(output, "1") {
		t.Errorf("Qualified-assign integration failed; expected x to stay 1. Output:\n%s", output)
	}
}

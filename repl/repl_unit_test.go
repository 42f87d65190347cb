// ==============================================================================================
// FILE: repl/repl_unit_test.go
// ==============================================================================================
// PURPOSE: Unit tests for basic REPL functionality.
//          Verifies that commands work and simple calculations produce output.
// ==============================================================================================

package repl

import (
	"bytes"
	"strings"
	"testing"
)

// runSession simulates an interactive REPL session over the given input.
func runSession(input string) string {
	in := strings.NewReader(input)
	var out bytes.Buffer
	Start(in, &out)
	return out.String()
}

func TestREPL_Math(t *testing.T) {
	output := runSession("[10] + [20].\n.exit")
	if !strings.Contains(output, "30") {
		t.Errorf("REPL failed simple math. Output:\n%s", output)
	}
}

func TestREPL_VariablePersistence(t *testing.T) {
	input := "so x is Number as [50].\nx as x + [10].\nx.\n.exit"
	output := runSession(input)
	if !strings.Contains(output, "60") {
		t.Errorf("REPL failed variable persistence. Output:\n%s", output)
	}
}

func TestREPL_Commands(t *testing.T) {
	input := ".debug\nso x is Number as [10].\n.clear\n.exit"
	output := runSession(input)
	if !strings.Contains(output, "ENABLED") {
		t.Errorf("REPL did not report debug toggle. Output:\n%s", output)
	}
	if !strings.Contains(output, "cleared") {
		t.Errorf("REPL did not report environment clear. Output:\n%s", output)
	}
}

// ==============================================================================================
// FILE: token/token_edge_test.go
// ==============================================================================================
// PURPOSE: Tests boundary conditions and unusual inputs to ensure the Token system is robust against
//          malformed or unexpected strings.
// ==============================================================================================

package token

import "testing"

// TestLookupIdentEdgeCases checks empty strings, case sensitivity, and
// type-tag-versus-identifier ambiguity.
func TestLookupIdentEdgeCases(t *testing.T) {
	tests := []struct {
		input string
		want  TokenType
	}{
		// Edge Case 1: Empty String
		// Should default to IDENT, though the lexer usually catches this before calling LookupIdent.
		{"", IDENT},

		// Edge Case 2: Numeric-looking identifiers (the lexer itself never produces
		// these since digits only ever appear bracketed, but LookupIdent on its own
		// must still degrade gracefully).
		{"123abc", IDENT},

		// Edge Case 3: Case sensitivity. Prose is case-sensitive: "Number" is a
		// type tag, "number" is not; "True" is an identifier, "true" is a literal.
		{"Number", TYPE_NUMBER},
		{"number", IDENT},
		{"True", IDENT},
		{"NOUN", IDENT},

		// Edge Case 4: Near-misses of real keywords.
		{"hences", IDENT},
		{"noune", IDENT},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := LookupIdent(tt.input)
			if got != tt.want {
				t.Errorf("FAIL: LookupIdent(%q) = %q; want %q", tt.input, got, tt.want)
			}
		})
	}
}

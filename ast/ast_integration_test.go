// ==============================================================================================
// FILE: ast/ast_integration_test.go
// ==============================================================================================
// PURPOSE: Integration tests for AST nodes.
//          Verifies that complex, nested structures (verbs, nouns, conditions)
//          are assembled and stringified correctly.
// ==============================================================================================

package ast

import (
	"testing"

	"eloquence/token"
)

// TestVerbWithParametersIntegration verifies the structure of a verb
// definition combined with a hence statement and an object parameter.
func TestVerbWithParametersIntegration(t *testing.T) {
	verb := &VerbStatement{
		Token:       token.Token{Type: token.VERB, Lexeme: "verb"},
		Name:        "add",
		SubjectType: "Number",
		Objects: []*SoStatement{
			{Token: token.Token{Type: token.SO, Lexeme: "so"}, Name: "other", Datatype: "Number"},
		},
		Body: []Statement{
			&HenceStatement{
				Token: token.Token{Type: token.HENCE, Lexeme: "hence"},
				Phrase: &ActionPhrase{
					Subject: &ItLiteral{Token: token.Token{Type: token.IT, Lexeme: "it"}},
					Verb:    VerbAdd,
					Object:  &VariableLiteral{Token: token.Token{Type: token.IDENT, Lexeme: "other"}, Name: "other"},
				},
			},
		},
	}

	expected := "verb add for Number when so other is Number {\n  hence (it + other).\n}"
	if verb.String() != expected {
		t.Fatalf("expected %q, got %q", expected, verb.String())
	}
}

// TestProgramStringIntegration verifies that a Program node correctly
// concatenates multiple statements, each on its own line.
func TestProgramStringIntegration(t *testing.T) {
	prog := &Program{
		Statements: []Statement{
			&SoStatement{
				Token:       token.Token{Type: token.SO, Lexeme: "so"},
				Name:        "x",
				Datatype:    "Number",
				Initializer: &NumberLiteral{Token: token.Token{Type: token.NUMBER, Lexeme: "10.0"}, Value: "10.0"},
			},
			&PhraseStatement{
				Phrase: &VariableLiteral{Token: token.Token{Type: token.IDENT, Lexeme: "x"}, Name: "x"},
			},
		},
	}

	expected := "so x is Number as [10.0].\nx.\n"
	if prog.String() != expected {
		t.Fatalf("expected %q, got %q", expected, prog.String())
	}
}

// TestNounAndConditionIntegration verifies the AST shape for a noun
// definition and a condition phrase used within a gating adjective.
func TestNounAndConditionIntegration(t *testing.T) {
	noun := &NounStatement{
		Token: token.Token{Type: token.NOUN, Lexeme: "noun"},
		Name:  "Account",
		Body: []Statement{
			&SoStatement{Token: token.Token{Type: token.SO, Lexeme: "so"}, Name: "balance", Datatype: "Number"},
		},
	}
	expected := "noun Account {\n  so balance is Number.\n}"
	if noun.String() != expected {
		t.Fatalf("expected %q, got %q", expected, noun.String())
	}

	cond := &ConditionPhrase{
		Left:        &VariableLiteral{Name: "it"},
		Conjunction: ConjGreater,
		Right:       &NumberLiteral{Value: "0.0"},
	}
	expectedCond := "(it > [0.0])"
	if cond.String() != expectedCond {
		t.Fatalf("expected %q, got %q", expectedCond, cond.String())
	}
}

// ==============================================================================================
// FILE: parser/parser_integration_test.go
// ==============================================================================================
// PURPOSE: Integration tests for the Parser.
//          Validates the parsing of complete, multi-statement programs that
//          combine definitions and sentences the way a real source file
//          would.
// ==============================================================================================

package parser

import (
	"testing"

	"eloquence/ast"
	"eloquence/lexer"
)

func TestIntegration_NounWithNestedVerbAndAdjective(t *testing.T) {
	input := `
noun Cart {
    so total is Number.

    verb add is Number when so amount is Number {
        hence total + amount.
    }

    adjective empty for Cart {
        hence total = [0].
    }
}
`
	program := parseProgram(t, input)
	noun := onlyStatement(t, program).(*ast.NounStatement)
	if len(noun.Body) != 3 {
		t.Fatalf("expected 3 body statements, got %d", len(noun.Body))
	}
	if _, ok := noun.Body[0].(*ast.SoStatement); !ok {
		t.Errorf("expected first member to be a so-statement, got %T", noun.Body[0])
	}
	if _, ok := noun.Body[1].(*ast.VerbStatement); !ok {
		t.Errorf("expected second member to be a verb, got %T", noun.Body[1])
	}
	if _, ok := noun.Body[2].(*ast.AdjectiveStatement); !ok {
		t.Errorf("expected third member to be an adjective, got %T", noun.Body[2])
	}
}

func TestIntegration_MultipleTopLevelStatements(t *testing.T) {
	input := `
so x is Number as [1].
so y is Number as [2].
x as x + y.
`
	program := parseProgram(t, input)
	if len(program.Statements) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(program.Statements))
	}
	last, ok := program.Statements[2].(*ast.PhraseStatement)
	if !ok {
		t.Fatalf("expected last statement to be a phrase statement, got %T", program.Statements[2])
	}
	act, ok := last.Phrase.(*ast.ActionPhrase)
	if !ok || act.Verb != ast.VerbAssign {
		t.Errorf("expected assignment action, got %v", last.Phrase)
	}
}

func TestIntegration_WhenAdjectiveOnlyGrammar(t *testing.T) {
	input := "x when positive and nonempty."
	program := parseProgram(t, input)
	post := phraseOf(t, onlyStatement(t, program)).(*ast.PostfixPhrase)
	cond, ok := post.Adjective.(*ast.ConditionPhrase)
	if !ok || cond.Conjunction != ast.ConjAnd {
		t.Fatalf("expected the when-rhs to be a conjunction of adjectives, got %v", post.Adjective)
	}
}

func TestIntegration_WhenRejectsPrefixOnRHS(t *testing.T) {
	l := lexer.New("x when not positive.")
	p := New(l)
	p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Errorf("expected the adjective-only when-rhs grammar to reject a 'not' prefix")
	}
}

func TestIntegration_ParseErrorsAccumulateAndRecover(t *testing.T) {
	input := `
so x is Number as [1].
so @@@.
so y is Number as [2].
`
	l := lexer.New(input)
	p := New(l)
	program := p.ParseProgram()

	if len(p.Errors()) == 0 {
		t.Fatalf("expected at least one parse error")
	}
	if len(program.Statements) != 2 {
		t.Fatalf("expected parser to recover and keep parsing valid statements, got %d", len(program.Statements))
	}
}

func TestIntegration_NestedParenthesesGrouping(t *testing.T) {
	input := "([1] + [2]) * [3]."
	program := parseProgram(t, input)
	act, ok := phraseOf(t, onlyStatement(t, program)).(*ast.ActionPhrase)
	if !ok || act.Verb != ast.VerbMultiply {
		t.Fatalf("expected outermost multiply, got %v", phraseOf(t, onlyStatement(t, program)))
	}
	inner, ok := act.Subject.(*ast.ActionPhrase)
	if !ok || inner.Verb != ast.VerbAdd {
		t.Errorf("expected grouped addition as left operand, got %v", act.Subject)
	}
}

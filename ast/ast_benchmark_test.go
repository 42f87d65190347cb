// ==============================================================================================
// FILE: ast/ast_benchmark_test.go
// ==============================================================================================
// PURPOSE: Performance benchmarks for the Abstract Syntax Tree (AST).
//          These tests measure the efficiency of the .String() methods, which involves
//          recursive tree traversal and string concatenation.
//          High performance here is important for logging, debugging, and code formatting tools.
// ==============================================================================================

package ast

import (
	"testing"

	"eloquence/token"
)

// BenchmarkActionPhraseString measures the allocation and speed cost of
// converting a binary arithmetic phrase (e.g., "[100] + [200]") back to its
// string representation.
// Usage: go test -bench=BenchmarkActionPhraseString ./ast
func BenchmarkActionPhraseString(b *testing.B) {
	left := &NumberLiteral{Token: token.Token{Type: token.NUMBER, Lexeme: "100.0"}, Value: "100.0"}
	right := &NumberLiteral{Token: token.Token{Type: token.NUMBER, Lexeme: "200.0"}, Value: "200.0"}
	phrase := &ActionPhrase{
		Token:   token.Token{Type: token.PLUS, Lexeme: "+"},
		Subject: left,
		Verb:    VerbAdd,
		Object:  right,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = phrase.String()
	}
}

// BenchmarkLargeProgramString measures the performance of the root Program
// node when iterating over a large slice of statements, simulating printing
// a moderately sized source file.
// Usage: go test -bench=BenchmarkLargeProgramString ./ast
func BenchmarkLargeProgramString(b *testing.B) {
	count := 1000
	prog := &Program{Statements: make([]Statement, count)}

	stmt := &PhraseStatement{
		Phrase: &ActionPhrase{
			Subject:    &VariableLiteral{Name: "it"},
			Verb:       VerbAction,
			ActionName: "print",
			Object:     &TextLiteral{Value: "hello"},
		},
	}

	for i := 0; i < count; i++ {
		prog.Statements[i] = stmt
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = prog.String()
	}
}

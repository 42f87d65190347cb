// ----------------------------------------------------------------------------
// FILE: lexer/lexer_integration_test.go
// ----------------------------------------------------------------------------
package lexer

import (
	"testing"

	"eloquence/token"
)

// TestIntegrationLexer tests the lexer's ability to tokenize a complete noun
// definition, exercising identifiers, braces, and type tags together.
func TestIntegrationLexer(t *testing.T) {
	input := `noun Point { so x is Number. so y is Number. }`
	expected := []struct {
		typ    token.TokenType
		lexeme string
	}{
		{token.NOUN, "noun"},
		{token.IDENT, "Point"},
		{token.LBRACE, "{"},
		{token.SO, "so"},
		{token.IDENT, "x"},
		{token.IS, "is"},
		{token.TYPE_NUMBER, "Number"},
		{token.DOT, "."},
		{token.SO, "so"},
		{token.IDENT, "y"},
		{token.IS, "is"},
		{token.TYPE_NUMBER, "Number"},
		{token.DOT, "."},
		{token.RBRACE, "}"},
		{token.EOF, ""},
	}
	l := New(input)
	for i, e := range expected {
		tok := l.NextToken()
		if tok.Type != e.typ || tok.Lexeme != e.lexeme {
			t.Fatalf("[%d] got %q %q, want %q %q", i, tok.Type, tok.Lexeme, e.typ, e.lexeme)
		}
	}
	if len(l.Errors()) != 0 {
		t.Fatalf("unexpected lex errors: %v", l.Errors())
	}
}

// TestIntegrationLexerErrorsAccumulate checks that multiple lexical errors
// across a source do not abort the scan early.
func TestIntegrationLexerErrorsAccumulate(t *testing.T) {
	input := `so x is Number as 5.
so y is Text as "unterminated`
	l := New(input)
	toks := l.Tokenize()
	if toks[len(toks)-1].Type != token.EOF {
		t.Fatalf("expected scan to still reach EOF, last token was %v", toks[len(toks)-1])
	}
	if len(l.Errors()) < 2 {
		t.Fatalf("expected at least 2 lex errors (bare digit + unterminated text), got %d: %v", len(l.Errors()), l.Errors())
	}
}

// ==============================================================================================
// FILE: parser/parser.go
// ==============================================================================================
// PACKAGE: parser
// PURPOSE: Implements a Pratt (precedence-climbing) parser over the token
//          stream produced by the lexer. It converts tokens into the
//          statement/phrase AST defined in package ast. Definitions (noun,
//          verb, adjective, so) and sentences (an optional "hence" plus a
//          phrase terminated by ".") share one top-level dispatch; phrases
//          are parsed by a single binding-power-driven loop with separate
//          nud (prefix/atom) and led (infix/postfix) tables.
// ==============================================================================================

package parser

import (
	"fmt"

	"eloquence/ast"
	"eloquence/lexer"
	"eloquence/token"
)

// bindingPower is the (left, right) binding-power pair a Pratt parser needs
// per infix/postfix token, taken directly from the grammar's precedence
// table rather than grouped into coarse levels.
type bindingPower struct{ left, right int }

// bindingPowers maps every infix/postfix token to its (left, right) pair.
// Comma and a bare identifier-as-verb-call share (1, 2); "as" is the only
// right-associative entry (5, 4).
var bindingPowers = map[token.TokenType]bindingPower{
	token.COMMA:  {1, 2},
	token.IDENT:  {1, 2}, // only consulted when IDENT appears in led position
	token.WHEN:   {3, 0},
	token.AS:     {5, 4},
	token.OR:     {6, 7},
	token.AND:    {8, 9},
	token.EQUALS: {10, 11},
	token.TILDE:  {10, 11},
	token.LT:     {12, 13},
	token.LTE:    {12, 13},
	token.GT:     {12, 13},
	token.GTE:    {12, 13},
	token.PLUS:   {14, 15},
	token.MINUS:  {14, 15},
	token.STAR:   {16, 17},
	token.SLASH:  {16, 17},
}

// prefixRightBindingPower gives the minimum binding power a prefix
// operator's operand must parse at. Negation is not listed in the grammar's
// own table (only "not" and "the" are); it is pinned here to the same tier
// as "not" since both are unary and should bind tighter than any binary
// operator.
const (
	notRightBindingPower       = 18
	negationRightBindingPower  = 18
	adjectiveRightBindingPower = 19
)

// Parser turns a token stream into a Program, accumulating (not failing
// fast on) per-statement syntax errors the way the grammar requires.
type Parser struct {
	l         *lexer.Lexer
	curToken  token.Token
	peekToken token.Token
	errors    []string
}

// New prepares a Parser over l, priming curToken/peekToken.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns every accumulated parse diagnostic, each already formatted
// with its source line.
func (p *Parser) Errors() []string { return p.errors }

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.errorf(p.peekToken.Line, "expected %s, got %s (%q) instead", t, p.peekToken.Type, p.peekToken.Lexeme)
	return false
}

func (p *Parser) errorf(line int, format string, args ...interface{}) {
	p.errors = append(p.errors, fmt.Sprintf("[line %d] %s", line, fmt.Sprintf(format, args...)))
}

// ParseProgram parses the entire token stream into a Program. Parse errors
// are non-fatal per top-level statement: the parser records the error and
// skips ahead to the next statement boundary, so one bad sentence doesn't
// swallow the rest of the file.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	for !p.curTokenIs(token.EOF) {
		before := len(p.errors)
		stmt := p.parseStatement()
		if stmt != nil && len(p.errors) == before {
			program.Statements = append(program.Statements, stmt)
		} else if len(p.errors) != before {
			p.recoverToNextStatement()
		}
		p.nextToken()
	}
	return program
}

// recoverToNextStatement skips tokens until a sentence terminator or block
// delimiter, so a single malformed statement doesn't cascade errors through
// the rest of the file.
func (p *Parser) recoverToNextStatement() {
	for !p.curTokenIs(token.DOT) && !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		p.nextToken()
	}
}

// parseStatement dispatches "prose := definition | sentence".
func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.NOUN:
		return p.parseNounStatement()
	case token.VERB:
		return p.parseVerbStatement()
	case token.ADJECTIVE:
		return p.parseAdjectiveStatement()
	case token.SO:
		return p.parseSoStatement()
	default:
		return p.parseSentence()
	}
}

// parseSentence parses "[ 'hence' ] phrase '.'".
func (p *Parser) parseSentence() ast.Statement {
	if p.curTokenIs(token.HENCE) {
		return p.parseHenceStatement()
	}
	return p.parsePhraseStatement()
}

func (p *Parser) parseHenceStatement() ast.Statement {
	tok := p.curToken
	if p.peekTokenIs(token.DOT) {
		p.nextToken()
		return &ast.HenceStatement{Token: tok}
	}
	p.nextToken()
	phrase := p.parsePhrase(0)
	stmt := &ast.HenceStatement{Token: tok, Phrase: phrase}
	if !p.expectPeek(token.DOT) {
		return nil
	}
	return stmt
}

func (p *Parser) parsePhraseStatement() ast.Statement {
	tok := p.curToken
	if p.curTokenIs(token.DOT) {
		return &ast.PhraseStatement{Token: tok}
	}
	phrase := p.parsePhrase(0)
	stmt := &ast.PhraseStatement{Token: tok, Phrase: phrase}
	if !p.expectPeek(token.DOT) {
		return nil
	}
	return stmt
}

// ------------------------------------------------------------------------------------------
// DEFINITIONS
// ------------------------------------------------------------------------------------------

// typeName reads the type token at curToken (a built-in type tag or a
// noun-reference identifier) and returns its rendered name.
func (p *Parser) typeName() (string, bool) {
	switch p.curToken.Type {
	case token.TYPE_NUMBER:
		return "Number", true
	case token.TYPE_TEXT:
		return "Text", true
	case token.TYPE_NOTION:
		return "Notion", true
	case token.IDENT:
		return p.curToken.Lexeme, true
	default:
		p.errorf(p.curToken.Line, "expected a datatype, got %s (%q)", p.curToken.Type, p.curToken.Lexeme)
		return "", false
	}
}

// parseNounStatement parses "noun NAME [ 'is' TYPE ] '{' definition* '}'".
func (p *Parser) parseNounStatement() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.curToken.Lexeme

	superType := ""
	if p.peekTokenIs(token.IS) {
		p.nextToken()
		p.nextToken()
		st, ok := p.typeName()
		if !ok {
			return nil
		}
		superType = st
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	p.nextToken()

	var body []ast.Statement
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		before := len(p.errors)
		stmt := p.parseDefinitionStatement()
		if stmt != nil && len(p.errors) == before {
			body = append(body, stmt)
		} else if len(p.errors) != before {
			p.recoverToNextStatement()
		}
		p.nextToken()
	}
	if !p.curTokenIs(token.RBRACE) {
		p.errorf(p.curToken.Line, "expected '}' to close noun %s", name)
		return nil
	}
	return &ast.NounStatement{Token: tok, Name: name, SuperType: superType, Body: body}
}

// parseDefinitionStatement restricts a noun's body to "definition*".
func (p *Parser) parseDefinitionStatement() ast.Statement {
	switch p.curToken.Type {
	case token.NOUN:
		return p.parseNounStatement()
	case token.VERB:
		return p.parseVerbStatement()
	case token.ADJECTIVE:
		return p.parseAdjectiveStatement()
	case token.SO:
		return p.parseSoStatement()
	default:
		p.errorf(p.curToken.Line, "expected a definition inside a noun body, got %s (%q)", p.curToken.Type, p.curToken.Lexeme)
		return nil
	}
}

// parseVerbStatement parses
// "verb NAME [ 'is' TYPE ] [ 'for' TYPE ] [ 'when' param_list ] '{' sentence* '}'".
func (p *Parser) parseVerbStatement() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.curToken.Lexeme

	henceType := ""
	if p.peekTokenIs(token.IS) {
		p.nextToken()
		p.nextToken()
		ht, ok := p.typeName()
		if !ok {
			return nil
		}
		henceType = ht
	}

	subjectType := ""
	if p.peekTokenIs(token.FOR) {
		p.nextToken()
		p.nextToken()
		st, ok := p.typeName()
		if !ok {
			return nil
		}
		subjectType = st
	}

	var objects []*ast.SoStatement
	if p.peekTokenIs(token.WHEN) {
		p.nextToken()
		p.nextToken()
		objects = p.parseParamList()
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	p.nextToken()

	body := p.parseSentenceBody(fmt.Sprintf("verb %s", name))
	if !p.curTokenIs(token.RBRACE) {
		p.errorf(p.curToken.Line, "expected '}' to close verb %s", name)
		return nil
	}
	return &ast.VerbStatement{Token: tok, Name: name, HenceType: henceType, SubjectType: subjectType, Objects: objects, Body: body}
}

// parseAdjectiveStatement parses "adjective NAME 'for' TYPE '{' sentence* '}'".
func (p *Parser) parseAdjectiveStatement() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.curToken.Lexeme
	if !p.expectPeek(token.FOR) {
		return nil
	}
	p.nextToken()
	subjectType, ok := p.typeName()
	if !ok {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	p.nextToken()

	body := p.parseSentenceBody(fmt.Sprintf("adjective %s", name))
	if !p.curTokenIs(token.RBRACE) {
		p.errorf(p.curToken.Line, "expected '}' to close adjective %s", name)
		return nil
	}
	return &ast.AdjectiveStatement{Token: tok, Name: name, SubjectType: subjectType, Body: body}
}

// parseSentenceBody reads statements until '}' or EOF, used by verb and
// adjective bodies, which the grammar restricts to "sentence*".
func (p *Parser) parseSentenceBody(context string) []ast.Statement {
	var body []ast.Statement
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		before := len(p.errors)
		stmt := p.parseSentence()
		if stmt != nil && len(p.errors) == before {
			body = append(body, stmt)
		} else if len(p.errors) != before {
			p.recoverToNextStatement()
		}
		p.nextToken()
	}
	return body
}

// parseParamList parses "so_decl ( ',' [ 'and'|'or' ] 'so' so_decl )*".
func (p *Parser) parseParamList() []*ast.SoStatement {
	var params []*ast.SoStatement
	if !p.curTokenIs(token.SO) {
		p.errorf(p.curToken.Line, "expected 'so' to begin a parameter declaration, got %s (%q)", p.curToken.Type, p.curToken.Lexeme)
		return nil
	}
	for {
		decl := p.parseSoDeclBody(bindingPowers[token.AS].right)
		if decl == nil {
			return params
		}
		params = append(params, decl)
		if !p.peekTokenIs(token.COMMA) {
			return params
		}
		p.nextToken() // curToken == COMMA
		if p.peekTokenIs(token.AND) || p.peekTokenIs(token.OR) {
			p.nextToken() // consume the natural-language connector
		}
		if !p.expectPeek(token.SO) {
			return params
		}
	}
}

// parseSoStatement parses a standalone "so NAME is TYPE [ 'as' phrase ] '.'".
func (p *Parser) parseSoStatement() ast.Statement {
	decl := p.parseSoDeclBody(0)
	if decl == nil {
		return nil
	}
	if !p.expectPeek(token.DOT) {
		return nil
	}
	return decl
}

// parseSoDeclBody parses "so NAME is TYPE [ 'as' phrase ]" without consuming
// any trailing terminator, so it can be reused both for standalone
// so-statements and for verb parameter declarations. initMinBP is the
// minimum binding power of the initializer phrase: 0 for a standalone
// statement (a full phrase), and the right power of 'as' for a parameter, so
// its default stops before ',', named-verb calls and 'when'.
func (p *Parser) parseSoDeclBody(initMinBP int) *ast.SoStatement {
	tok := p.curToken // 'so'
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.curToken.Lexeme
	if !p.expectPeek(token.IS) {
		return nil
	}
	p.nextToken()
	datatype, ok := p.typeName()
	if !ok {
		return nil
	}

	var initializer ast.Phrase
	if p.peekTokenIs(token.AS) {
		p.nextToken()
		p.nextToken()
		initializer = p.parsePhrase(initMinBP)
	}
	return &ast.SoStatement{Token: tok, Name: name, Datatype: datatype, Initializer: initializer}
}

// ------------------------------------------------------------------------------------------
// PHRASES (Pratt loop)
// ------------------------------------------------------------------------------------------

// parsePhrase is the single phrase-parsing loop: read a nud, then while the
// peeked token's left binding power is at least minBP, consume it and
// dispatch to its led, recursing with its right binding power.
func (p *Parser) parsePhrase(minBP int) ast.Phrase {
	left := p.parseNud()
	if left == nil {
		return nil
	}
	for {
		bp, ok := bindingPowers[p.peekToken.Type]
		if !ok || bp.left < minBP {
			return left
		}
		p.nextToken()
		left = p.parseLed(left, bp)
		if left == nil {
			return nil
		}
	}
}

func (p *Parser) parseNud() ast.Phrase {
	switch p.curToken.Type {
	case token.NUMBER:
		return &ast.NumberLiteral{Token: p.curToken, Value: p.curToken.Lexeme}
	case token.TEXT:
		return &ast.TextLiteral{Token: p.curToken, Value: p.curToken.Lexeme}
	case token.TRUE:
		return &ast.TrueLiteral{Token: p.curToken}
	case token.FALSE:
		return &ast.FalseLiteral{Token: p.curToken}
	case token.IT:
		return &ast.ItLiteral{Token: p.curToken}
	case token.IDENT:
		return &ast.VariableLiteral{Token: p.curToken, Name: p.curToken.Lexeme}
	case token.NOT:
		return p.parseNotPrefix()
	case token.MINUS:
		return p.parseNegationPrefix()
	case token.THE:
		return p.parseAdjectivePrefix()
	case token.LPAREN:
		return p.parseGroupedPhrase()
	default:
		p.errorf(p.curToken.Line, "unexpected token %s (%q) at start of phrase", p.curToken.Type, p.curToken.Lexeme)
		return nil
	}
}

func (p *Parser) parseLed(left ast.Phrase, bp bindingPower) ast.Phrase {
	switch p.curToken.Type {
	case token.COMMA:
		return p.parseCollectiveLed(left, bp.right)
	case token.IDENT:
		return p.parseActionLed(left, bp.right)
	case token.WHEN:
		return p.parseWhenLed(left)
	case token.AS:
		return p.parseAssignLed(left, bp.right)
	case token.OR:
		return p.parseConditionLed(left, ast.ConjOr, bp.right)
	case token.AND:
		return p.parseConditionLed(left, ast.ConjAnd, bp.right)
	case token.EQUALS:
		return p.parseConditionLed(left, ast.ConjEqual, bp.right)
	case token.TILDE:
		return p.parseConditionLed(left, ast.ConjNotEqual, bp.right)
	case token.LT:
		return p.parseConditionLed(left, ast.ConjLess, bp.right)
	case token.LTE:
		return p.parseConditionLed(left, ast.ConjLessEqual, bp.right)
	case token.GT:
		return p.parseConditionLed(left, ast.ConjGreater, bp.right)
	case token.GTE:
		return p.parseConditionLed(left, ast.ConjGreaterEqual, bp.right)
	case token.PLUS:
		return p.parseActionOperatorLed(left, ast.VerbAdd, bp.right)
	case token.MINUS:
		return p.parseActionOperatorLed(left, ast.VerbSubtract, bp.right)
	case token.STAR:
		return p.parseActionOperatorLed(left, ast.VerbMultiply, bp.right)
	case token.SLASH:
		return p.parseActionOperatorLed(left, ast.VerbDivide, bp.right)
	default:
		p.errorf(p.curToken.Line, "token %s (%q) cannot appear as an operator", p.curToken.Type, p.curToken.Lexeme)
		return nil
	}
}

func (p *Parser) parseNotPrefix() ast.Phrase {
	tok := p.curToken
	p.nextToken()
	subject := p.parsePhrase(notRightBindingPower)
	if subject == nil {
		return nil
	}
	return &ast.PrefixPhrase{Token: tok, Kind: ast.PrefixNot, Subject: subject}
}

func (p *Parser) parseNegationPrefix() ast.Phrase {
	tok := p.curToken
	p.nextToken()
	subject := p.parsePhrase(negationRightBindingPower)
	if subject == nil {
		return nil
	}
	return &ast.PrefixPhrase{Token: tok, Kind: ast.PrefixNegation, Subject: subject}
}

func (p *Parser) parseAdjectivePrefix() ast.Phrase {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.curToken.Lexeme
	p.nextToken()
	subject := p.parsePhrase(adjectiveRightBindingPower)
	if subject == nil {
		return nil
	}
	return &ast.PrefixPhrase{Token: tok, Kind: ast.PrefixAdjective, AdjectiveName: name, Subject: subject}
}

func (p *Parser) parseGroupedPhrase() ast.Phrase {
	p.nextToken()
	phrase := p.parsePhrase(0)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return phrase
}

// parseCollectiveLed builds a comma-joined Primary(Collective). A comma
// followed directly by "and"/"or" accepts that word as a natural-language
// stand-in for the comma before the final element.
func (p *Parser) parseCollectiveLed(left ast.Phrase, rbp int) ast.Phrase {
	tok := p.curToken
	elements := []ast.Phrase{left}
	for {
		p.nextToken() // move past the comma
		if p.curTokenIs(token.AND) || p.curTokenIs(token.OR) {
			p.nextToken()
		}
		next := p.parsePhrase(rbp)
		if next == nil {
			return nil
		}
		elements = append(elements, next)
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken() // curToken becomes COMMA again
	}
	return &ast.CollectiveLiteral{Token: tok, Elements: elements}
}

// parseActionLed treats a bare identifier in operator position as a named
// verb call: "subject VERBNAME object". The object is optional: a
// zero-parameter verb (no "when param_list" in its definition) is called
// with nothing following its name, so a terminator here is not an error —
// it just means this call carries no object phrase.
func (p *Parser) parseActionLed(left ast.Phrase, rbp int) ast.Phrase {
	tok := p.curToken
	name := p.curToken.Lexeme
	if p.startsNoPhrase() {
		return &ast.ActionPhrase{Token: tok, Subject: left, Verb: ast.VerbAction, ActionName: name}
	}
	p.nextToken()
	object := p.parsePhrase(rbp)
	if object == nil {
		return nil
	}
	return &ast.ActionPhrase{Token: tok, Subject: left, Verb: ast.VerbAction, ActionName: name, Object: object}
}

// startsNoPhrase reports whether peekToken cannot begin a phrase, meaning an
// optional object/operand here is simply absent rather than malformed.
func (p *Parser) startsNoPhrase() bool {
	switch p.peekToken.Type {
	case token.DOT, token.RBRACE, token.RPAREN, token.EOF:
		return true
	default:
		return false
	}
}

func (p *Parser) parseActionOperatorLed(left ast.Phrase, verb ast.VerbKind, rbp int) ast.Phrase {
	tok := p.curToken
	p.nextToken()
	object := p.parsePhrase(rbp)
	if object == nil {
		return nil
	}
	return &ast.ActionPhrase{Token: tok, Subject: left, Verb: verb, Object: object}
}

// parseAssignLed parses "subject as object"; right-associative, so it
// recurses at its own right binding power (4), one less than its left (5).
func (p *Parser) parseAssignLed(left ast.Phrase, rbp int) ast.Phrase {
	tok := p.curToken
	p.nextToken()
	object := p.parsePhrase(rbp)
	if object == nil {
		return nil
	}
	return &ast.ActionPhrase{Token: tok, Subject: left, Verb: ast.VerbAssign, Object: object}
}

func (p *Parser) parseConditionLed(left ast.Phrase, kind ast.ConjunctionKind, rbp int) ast.Phrase {
	tok := p.curToken
	p.nextToken()
	right := p.parsePhrase(rbp)
	if right == nil {
		return nil
	}
	return &ast.ConditionPhrase{Token: tok, Left: left, Conjunction: kind, Right: right}
}

// parseWhenLed parses "subject when adjective-phrase", where the adjective
// side is restricted to the adjective-only sub-grammar (parseAdjectiveNud /
// parseAdjectiveLed): no prefixes, no action calls, only atoms joined by
// conjunctions.
func (p *Parser) parseWhenLed(left ast.Phrase) ast.Phrase {
	tok := p.curToken
	p.nextToken()
	adjective := p.parseAdjectivePhrase(0)
	if adjective == nil {
		return nil
	}
	return &ast.PostfixPhrase{Token: tok, Subject: left, Adjective: adjective}
}

// adjectiveConjunctionTokens is the restricted led set allowed inside a
// "when" right-hand side: conjunctions only, no arithmetic, assignment,
// collectives, or action calls.
var adjectiveConjunctionTokens = map[token.TokenType]ast.ConjunctionKind{
	token.AND:    ast.ConjAnd,
	token.OR:     ast.ConjOr,
	token.EQUALS: ast.ConjEqual,
	token.TILDE:  ast.ConjNotEqual,
	token.LT:     ast.ConjLess,
	token.LTE:    ast.ConjLessEqual,
	token.GT:     ast.ConjGreater,
	token.GTE:    ast.ConjGreaterEqual,
}

func (p *Parser) parseAdjectivePhrase(minBP int) ast.Phrase {
	left := p.parseAdjectiveNud()
	if left == nil {
		return nil
	}
	for {
		kind, ok := adjectiveConjunctionTokens[p.peekToken.Type]
		bp, bpOK := bindingPowers[p.peekToken.Type]
		if !ok || !bpOK || bp.left < minBP {
			return left
		}
		p.nextToken()
		tok := p.curToken
		p.nextToken()
		right := p.parseAdjectivePhrase(bp.right)
		if right == nil {
			return nil
		}
		left = &ast.ConditionPhrase{Token: tok, Left: left, Conjunction: kind, Right: right}
	}
}

func (p *Parser) parseAdjectiveNud() ast.Phrase {
	switch p.curToken.Type {
	case token.IDENT:
		return &ast.VariableLiteral{Token: p.curToken, Name: p.curToken.Lexeme}
	case token.TRUE:
		return &ast.TrueLiteral{Token: p.curToken}
	case token.FALSE:
		return &ast.FalseLiteral{Token: p.curToken}
	case token.NUMBER:
		return &ast.NumberLiteral{Token: p.curToken, Value: p.curToken.Lexeme}
	case token.TEXT:
		return &ast.TextLiteral{Token: p.curToken, Value: p.curToken.Lexeme}
	default:
		p.errorf(p.curToken.Line, "expected an adjective name or literal, got %s (%q)", p.curToken.Type, p.curToken.Lexeme)
		return nil
	}
}

// ==============================================================================================
// FILE: ast/ast.go
// ==============================================================================================
// PACKAGE: ast
// PURPOSE: Defines the statement/phrase syntax tree produced by the parser.
//          Prose has no inheritance hierarchy to speak of; every node family
//          (Statement, Phrase, Primitive) is a tagged sum modeled as a small
//          marker interface plus concrete structs, matched exhaustively by
//          callers via type switches rather than virtual dispatch.
// ==============================================================================================

package ast

import (
	"bytes"
	"fmt"
	"strings"

	"eloquence/token"
)

// Node is implemented by every tree element; String renders a debug form
// close to the original source, used by parser error messages and tests.
type Node interface {
	TokenLiteral() string
	String() string
}

// Statement is the marker interface for top-level and body statements.
type Statement interface {
	Node
	statementNode()
}

// Phrase is the marker interface for anything that evaluates to a value.
type Phrase interface {
	Node
	phraseNode()
}

// Program is the root node: the full, ordered list of top-level statements
// produced by one parse.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

// ------------------------------------------------------------------------------------------
// STATEMENTS
// ------------------------------------------------------------------------------------------

// NounStatement declares a record type: "noun NAME [is TYPE] { ... }".
type NounStatement struct {
	Token     token.Token // the 'noun' token
	Name      string
	SuperType string // "" if absent
	Body      []Statement
}

func (n *NounStatement) statementNode()       {}
func (n *NounStatement) TokenLiteral() string { return n.Token.Lexeme }
func (n *NounStatement) String() string {
	var out bytes.Buffer
	out.WriteString("noun ")
	out.WriteString(n.Name)
	if n.SuperType != "" {
		out.WriteString(" is ")
		out.WriteString(n.SuperType)
	}
	out.WriteString(" {\n")
	for _, s := range n.Body {
		out.WriteString("  " + s.String() + "\n")
	}
	out.WriteString("}")
	return out.String()
}

// VerbStatement declares a callable routine:
// "verb NAME [is HENCETYPE] [for SUBJECTTYPE] [when so a is T, and so b is T] { ... }".
type VerbStatement struct {
	Token       token.Token // the 'verb' token
	Name        string
	HenceType   string // "" if absent
	SubjectType string // "" if absent
	Objects     []*SoStatement
	Body        []Statement
}

func (v *VerbStatement) statementNode()       {}
func (v *VerbStatement) TokenLiteral() string { return v.Token.Lexeme }
func (v *VerbStatement) String() string {
	var out bytes.Buffer
	out.WriteString("verb ")
	out.WriteString(v.Name)
	if v.HenceType != "" {
		out.WriteString(" is " + v.HenceType)
	}
	if v.SubjectType != "" {
		out.WriteString(" for " + v.SubjectType)
	}
	if len(v.Objects) > 0 {
		parts := make([]string, len(v.Objects))
		for i, o := range v.Objects {
			parts[i] = strings.TrimSuffix(o.String(), ".")
		}
		out.WriteString(" when " + strings.Join(parts, ", and "))
	}
	out.WriteString(" {\n")
	for _, s := range v.Body {
		out.WriteString("  " + s.String() + "\n")
	}
	out.WriteString("}")
	return out.String()
}

// AdjectiveStatement declares a subject-only predicate routine:
// "adjective NAME for SUBJECTTYPE { ... }".
type AdjectiveStatement struct {
	Token       token.Token // the 'adjective' token
	Name        string
	SubjectType string
	Body        []Statement
}

func (a *AdjectiveStatement) statementNode()       {}
func (a *AdjectiveStatement) TokenLiteral() string { return a.Token.Lexeme }
func (a *AdjectiveStatement) String() string {
	var out bytes.Buffer
	out.WriteString(fmt.Sprintf("adjective %s for %s {\n", a.Name, a.SubjectType))
	for _, s := range a.Body {
		out.WriteString("  " + s.String() + "\n")
	}
	out.WriteString("}")
	return out.String()
}

// SoStatement is a typed variable declaration:
// "so NAME is TYPE [as phrase].".
type SoStatement struct {
	Token       token.Token // the 'so' token
	Name        string
	Datatype    string
	Initializer Phrase // nil if absent
}

func (s *SoStatement) statementNode()       {}
func (s *SoStatement) TokenLiteral() string { return s.Token.Lexeme }
func (s *SoStatement) String() string {
	out := fmt.Sprintf("so %s is %s", s.Name, s.Datatype)
	if s.Initializer != nil {
		out += " as " + s.Initializer.String()
	}
	return out + "."
}

// PhraseStatement is an evaluated-and-discarded expression statement.
type PhraseStatement struct {
	Token  token.Token // the phrase's leading token
	Phrase Phrase
}

func (p *PhraseStatement) statementNode()       {}
func (p *PhraseStatement) TokenLiteral() string { return p.Token.Lexeme }
func (p *PhraseStatement) String() string {
	if p.Phrase == nil {
		return "."
	}
	return p.Phrase.String() + "."
}

// HenceStatement is an early-return/short-circuit sentence: "hence phrase.".
type HenceStatement struct {
	Token  token.Token // the 'hence' token
	Phrase Phrase
}

func (h *HenceStatement) statementNode()       {}
func (h *HenceStatement) TokenLiteral() string { return h.Token.Lexeme }
func (h *HenceStatement) String() string {
	if h.Phrase == nil {
		return "hence."
	}
	return "hence " + h.Phrase.String() + "."
}

// ------------------------------------------------------------------------------------------
// PRIMITIVES (Phrase leaves)
// ------------------------------------------------------------------------------------------

// NumberLiteral is a bracketed number literal; Value is the normalized
// lexeme text, parsed to float32 lazily at evaluation time (spec.md's Open
// Question #4: text-faithful, parsed at use).
type NumberLiteral struct {
	Token token.Token
	Value string
}

func (n *NumberLiteral) phraseNode()        {}
func (n *NumberLiteral) TokenLiteral() string { return n.Token.Lexeme }
func (n *NumberLiteral) String() string     { return "[" + n.Value + "]" }

// TextLiteral is a quoted text literal with quotes already stripped.
type TextLiteral struct {
	Token token.Token
	Value string
}

func (t *TextLiteral) phraseNode()        {}
func (t *TextLiteral) TokenLiteral() string { return t.Token.Lexeme }
func (t *TextLiteral) String() string     { return `"` + t.Value + `"` }

// TrueLiteral is the notion literal "true".
type TrueLiteral struct{ Token token.Token }

func (l *TrueLiteral) phraseNode()        {}
func (l *TrueLiteral) TokenLiteral() string { return l.Token.Lexeme }
func (l *TrueLiteral) String() string     { return "true" }

// FalseLiteral is the notion literal "false".
type FalseLiteral struct{ Token token.Token }

func (l *FalseLiteral) phraseNode()        {}
func (l *FalseLiteral) TokenLiteral() string { return l.Token.Lexeme }
func (l *FalseLiteral) String() string     { return "false" }

// ItLiteral is the implicit subject binding, "it".
type ItLiteral struct{ Token token.Token }

func (l *ItLiteral) phraseNode()        {}
func (l *ItLiteral) TokenLiteral() string { return l.Token.Lexeme }
func (l *ItLiteral) String() string     { return "it" }

// VariableLiteral references a bound name.
type VariableLiteral struct {
	Token token.Token
	Name  string
}

func (v *VariableLiteral) phraseNode()        {}
func (v *VariableLiteral) TokenLiteral() string { return v.Token.Lexeme }
func (v *VariableLiteral) String() string     { return v.Name }

// CollectiveLiteral is a comma-joined (optionally "and"/"or"-terminated)
// sequence of phrases.
type CollectiveLiteral struct {
	Token    token.Token // the first comma
	Elements []Phrase
}

func (c *CollectiveLiteral) phraseNode()        {}
func (c *CollectiveLiteral) TokenLiteral() string { return c.Token.Lexeme }
func (c *CollectiveLiteral) String() string {
	parts := make([]string, len(c.Elements))
	for i, e := range c.Elements {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}

// ------------------------------------------------------------------------------------------
// PREFIX
// ------------------------------------------------------------------------------------------

// PrefixKind distinguishes the three prefix forms the grammar allows.
type PrefixKind int

const (
	PrefixNot PrefixKind = iota
	PrefixNegation
	PrefixAdjective
)

// PrefixPhrase is "not X", "-X", or "the ADJECTIVE X".
type PrefixPhrase struct {
	Token         token.Token
	Kind          PrefixKind
	AdjectiveName string // only set when Kind == PrefixAdjective
	Subject       Phrase
}

func (p *PrefixPhrase) phraseNode()        {}
func (p *PrefixPhrase) TokenLiteral() string { return p.Token.Lexeme }
func (p *PrefixPhrase) String() string {
	switch p.Kind {
	case PrefixNot:
		return "(not " + p.Subject.String() + ")"
	case PrefixNegation:
		return "(-" + p.Subject.String() + ")"
	case PrefixAdjective:
		return "(the " + p.AdjectiveName + " " + p.Subject.String() + ")"
	default:
		return "(prefix " + p.Subject.String() + ")"
	}
}

// ------------------------------------------------------------------------------------------
// POSTFIX ("X when A")
// ------------------------------------------------------------------------------------------

// PostfixPhrase qualifies a subject with an adjective phrase.
type PostfixPhrase struct {
	Token     token.Token // the 'when' token
	Subject   Phrase
	Adjective Phrase
}

func (p *PostfixPhrase) phraseNode()        {}
func (p *PostfixPhrase) TokenLiteral() string { return p.Token.Lexeme }
func (p *PostfixPhrase) String() string {
	return "(" + p.Subject.String() + " when " + p.Adjective.String() + ")"
}

// ------------------------------------------------------------------------------------------
// ACTION (arithmetic, assignment, named verb calls)
// ------------------------------------------------------------------------------------------

// VerbKind enumerates the operator family an ActionPhrase carries.
type VerbKind int

const (
	VerbAdd VerbKind = iota
	VerbSubtract
	VerbMultiply
	VerbDivide
	VerbAssign
	VerbAction // a named, user- or builtin-defined verb, see ActionName
)

func (k VerbKind) symbol() string {
	switch k {
	case VerbAdd:
		return "+"
	case VerbSubtract:
		return "-"
	case VerbMultiply:
		return "*"
	case VerbDivide:
		return "/"
	case VerbAssign:
		return "as"
	default:
		return "?"
	}
}

// ActionPhrase is "subject OP object" for arithmetic, "subject as object" for
// assignment, or "subject VERBNAME object" for a named routine call.
type ActionPhrase struct {
	Token      token.Token
	Subject    Phrase // may be nil
	Verb       VerbKind
	ActionName string // only set when Verb == VerbAction
	Object     Phrase // may be nil
}

func (a *ActionPhrase) phraseNode()        {}
func (a *ActionPhrase) TokenLiteral() string { return a.Token.Lexeme }
func (a *ActionPhrase) String() string {
	op := a.Verb.symbol()
	if a.Verb == VerbAction {
		op = a.ActionName
	}
	var subj, obj string
	if a.Subject != nil {
		subj = a.Subject.String()
	}
	if a.Object != nil {
		obj = a.Object.String()
	}
	return "(" + subj + " " + op + " " + obj + ")"
}

// ------------------------------------------------------------------------------------------
// CONDITION (comparisons, equality, and/or)
// ------------------------------------------------------------------------------------------

// ConjunctionKind enumerates the comparison/boolean operators.
type ConjunctionKind int

const (
	ConjGreater ConjunctionKind = iota
	ConjGreaterEqual
	ConjLess
	ConjLessEqual
	ConjEqual
	ConjNotEqual
	ConjAnd
	ConjOr
)

func (k ConjunctionKind) symbol() string {
	switch k {
	case ConjGreater:
		return ">"
	case ConjGreaterEqual:
		return ">="
	case ConjLess:
		return "<"
	case ConjLessEqual:
		return "<="
	case ConjEqual:
		return "="
	case ConjNotEqual:
		return "~"
	case ConjAnd:
		return "and"
	case ConjOr:
		return "or"
	default:
		return "?"
	}
}

// ConditionPhrase is "left CONJ right".
type ConditionPhrase struct {
	Token       token.Token
	Left        Phrase
	Conjunction ConjunctionKind
	Right       Phrase
}

func (c *ConditionPhrase) phraseNode()        {}
func (c *ConditionPhrase) TokenLiteral() string { return c.Token.Lexeme }
func (c *ConditionPhrase) String() string {
	return "(" + c.Left.String() + " " + c.Conjunction.symbol() + " " + c.Right.String() + ")"
}

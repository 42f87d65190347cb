// ==============================================================================================
// FILE: object/datatype.go
// ==============================================================================================
// PACKAGE: object
// PURPOSE: The static-ish type tags values carry around for parity checks:
//          Number | Text | Notion | Noun(name) | Verb(VerbType) | Adjective(name).
// ==============================================================================================

package object

import (
	"fmt"
	"strings"
)

// DatatypeKind tags which of the six Datatype shapes a value carries.
type DatatypeKind int

const (
	DTNumber DatatypeKind = iota
	DTText
	DTNotion
	DTNoun
	DTVerb
	DTAdjective
)

// VerbType describes a verb's calling shape: its declared parameters and
// optional hence (return) type.
type VerbType struct {
	Name       string
	Parameters []Variable
	HenceType  *Datatype // nil if undeclared
}

func (v VerbType) String() string {
	parts := make([]string, len(v.Parameters))
	for i, p := range v.Parameters {
		parts[i] = p.Name
	}
	return fmt.Sprintf("%s(%s)", v.Name, strings.Join(parts, ", "))
}

// Datatype is the tagged union Number|Text|Notion|Noun(name)|Verb(VerbType)|Adjective(name).
type Datatype struct {
	Kind DatatypeKind
	Name string    // populated for DTNoun / DTAdjective
	Verb *VerbType // populated for DTVerb
}

func NumberType() *Datatype { return &Datatype{Kind: DTNumber} }
func TextType() *Datatype   { return &Datatype{Kind: DTText} }
func NotionType() *Datatype { return &Datatype{Kind: DTNotion} }
func NounType(name string) *Datatype {
	return &Datatype{Kind: DTNoun, Name: name}
}
func AdjectiveType(name string) *Datatype {
	return &Datatype{Kind: DTAdjective, Name: name}
}
func VerbDatatype(v VerbType) *Datatype {
	return &Datatype{Kind: DTVerb, Verb: &v}
}

// Equals compares two datatypes structurally (Noun/Adjective by name, Verb
// by name — parameter-shape equality for verbs is not required by parity).
func (d *Datatype) Equals(other *Datatype) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.Kind != other.Kind {
		return false
	}
	switch d.Kind {
	case DTNoun, DTAdjective:
		return d.Name == other.Name
	case DTVerb:
		return d.Verb != nil && other.Verb != nil && d.Verb.Name == other.Verb.Name
	default:
		return true
	}
}

func (d *Datatype) String() string {
	if d == nil {
		return "Void"
	}
	switch d.Kind {
	case DTNumber:
		return "Number"
	case DTText:
		return "Text"
	case DTNotion:
		return "Notion"
	case DTNoun:
		return d.Name
	case DTAdjective:
		return d.Name
	case DTVerb:
		if d.Verb != nil {
			return d.Verb.String()
		}
		return "Verb"
	default:
		return "Unknown"
	}
}

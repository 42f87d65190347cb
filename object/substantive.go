// ==============================================================================================
// FILE: object/substantive.go
// ==============================================================================================
// PACKAGE: object
// PURPOSE: Substantive is the concrete instance data behind a NounEvaluation:
//          a name (the noun type it was built from) and its own Environment
//          holding its fields. Field access walks this Environment exactly
//          like a lexical scope lookup.
// ==============================================================================================

package object

// Substantive is one instance of a noun (record) type.
type Substantive struct {
	Name string
	Env  *Environment
}

// NewSubstantive creates an empty instance of the named noun, its field
// environment enclosed by env (the defining scope at construction time, so
// noun bodies can reference module-level verbs and other nouns).
func NewSubstantive(name string, env *Environment) *Substantive {
	return &Substantive{Name: name, Env: NewEnclosedEnvironment(env)}
}

// Field looks up a name in the instance's environment; like any scope
// lookup, it also reaches the enclosing (defining) scopes.
func (s *Substantive) Field(name string) (Evaluation, bool) {
	return s.Env.Get(name)
}

// SetField defines or overwrites a field directly in the instance's own
// environment.
func (s *Substantive) SetField(name string, value Evaluation) {
	s.Env.Define(name, value)
}

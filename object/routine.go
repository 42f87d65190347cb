// ==============================================================================================
// FILE: object/routine.go
// ==============================================================================================
// PACKAGE: object
// PURPOSE: Routine is the runtime shape behind both verbs and adjectives: a
//          name, an optional subject type, a declared object-parameter list,
//          and an Instruction — native Go code, a user-written body, or a
//          no-op — registered uniformly as data rather than special-cased by
//          name anywhere a routine is invoked.
// ==============================================================================================

package object

import "fmt"

// Parameter is one declared object slot: its Variable (name + optional
// type) and an optional default value used when the caller omits it.
type Parameter struct {
	Variable Variable
	Default  Evaluation // nil if the parameter is required
}

// Instruction is the body a Routine executes once its subject and object
// have been validated and bound.
type Instruction interface {
	instructionNode()
}

// NoOpInstruction does nothing and always yields Void; used for stub verbs
// and adjectives declared but not yet given a body.
type NoOpInstruction struct{}

func (NoOpInstruction) instructionNode() {}

// BuiltInInstruction wraps a native Go function registered as a routine's
// body. Fn receives the already-bound subject/object evaluations and
// returns the routine's result.
type BuiltInInstruction struct {
	Fn func(subject Evaluation, objects []Evaluation) (Evaluation, error)
}

func (BuiltInInstruction) instructionNode() {}

// CustomInstruction wraps a user-written routine body. The body type is
// kept as `interface{}` here (populated with `[]ast.Statement` by the
// interpreter package) to avoid an import cycle between object and ast —
// object only needs to carry the body opaquely, the interpreter is what
// walks it.
type CustomInstruction struct {
	Body interface{}
}

func (CustomInstruction) instructionNode() {}

// Routine is a verb or adjective definition: Subject parity is checked
// against SubjectType (nil meaning the routine accepts no subject, i.e. it
// is Void-for-subject), then each declared ObjectParameter is validated and
// bound before Instruction executes.
type Routine struct {
	Name             string
	SubjectType      *Datatype // nil if the routine takes no subject
	ObjectParameters []Parameter
	HenceType        *Datatype // nil if the routine is declared to return nothing
	Instruction      Instruction
	Closure          *Environment // defining-scope environment; invocation does not use it (the body runs in a scope enclosed by the call site's)
}

// ValidateSubject checks that subject's shape matches the routine's
// declared subject type. A nil SubjectType means the routine takes no
// subject at all, so Parity's Void-only nil-expected rule applies exactly
// as it does for a zero-parameter object list: the subject must be Void.
func (r *Routine) ValidateSubject(subject Evaluation) error {
	return Parity(r.SubjectType, subject)
}

// ValidateObject checks object's shape against the routine's declared
// parameter list and, on success, returns the per-parameter bindings ready
// to Define into the call's child environment.
func (r *Routine) ValidateObject(object Evaluation) (map[string]Evaluation, error) {
	bindings := make(map[string]Evaluation, len(r.ObjectParameters))

	if len(r.ObjectParameters) == 0 {
		if err := Parity(nil, object); err != nil {
			return nil, err
		}
		return bindings, nil
	}

	if len(r.ObjectParameters) == 1 {
		p := r.ObjectParameters[0]
		value := object
		if value == nil {
			value = p.Default
		}
		if value == nil {
			return nil, parityErrorf("missing required parameter %s", p.Variable.Name)
		}
		if p.Variable.Datatype != nil {
			if err := Parity(p.Variable.Datatype, value); err != nil {
				return nil, err
			}
		}
		bindings[p.Variable.Name] = value
		return bindings, nil
	}

	c, ok := object.(CollectiveEvaluation)
	if !ok {
		return nil, parityErrorf("expected a collective of %d arguments, got %s", len(r.ObjectParameters), kindOf(object))
	}
	for i, p := range r.ObjectParameters {
		var value Evaluation
		if i < len(c.Elements) {
			value = c.Elements[i]
		} else {
			value = p.Default
		}
		if value == nil {
			return nil, parityErrorf("missing required parameter %s", p.Variable.Name)
		}
		if p.Variable.Datatype != nil {
			if err := Parity(p.Variable.Datatype, value); err != nil {
				return nil, err
			}
		}
		bindings[p.Variable.Name] = value
	}
	return bindings, nil
}

func kindOf(e Evaluation) EvaluationKind {
	if e == nil {
		return VOID
	}
	return e.Kind()
}

func parityErrorf(format string, args ...interface{}) error {
	return &ParityError{Message: fmt.Sprintf(format, args...)}
}

// ParityError reports a subject/object validation failure at routine
// invocation time.
type ParityError struct{ Message string }

func (e *ParityError) Error() string { return e.Message }

// ==============================================================================================
// FILE: object/parity.go
// ==============================================================================================
// PACKAGE: object
// PURPOSE: Parity is the structural type-compatibility check used to gate
//          routine invocation: "does this evaluation fit that datatype slot".
//          It is distinct from Equal (object.go) — parity checks shape, not
//          value.
// ==============================================================================================

package object

import "fmt"

// Parity reports whether actual fits the shape expected describes. expected
// nil means "the slot is Void"; actual nil (an absent argument) is parity-
// compatible only with a nil expected.
//
// A single-element CollectiveEvaluation unwraps symmetrically on both sides:
// expecting Number against a one-element Collective of a Number succeeds,
// and a single-valued actual against a Collective-shaped routine parameter
// list succeeds the same way, mirroring the original's "parity" routine
// exactly rather than only unwrapping in one direction.
func Parity(expected *Datatype, actual Evaluation) error {
	if expected == nil {
		if actual == nil || actual.Kind() == VOID {
			return nil
		}
		return fmt.Errorf("expected Void, got %s", actual.Kind())
	}
	if actual == nil {
		return fmt.Errorf("expected %s, got Void", expected.String())
	}

	if c, ok := actual.(CollectiveEvaluation); ok && len(c.Elements) == 1 {
		return Parity(expected, c.Elements[0])
	}

	switch expected.Kind {
	case DTNumber:
		if _, ok := actual.(NumberEvaluation); ok {
			return nil
		}
	case DTText:
		if _, ok := actual.(TextEvaluation); ok {
			return nil
		}
	case DTNotion:
		if _, ok := actual.(NotionEvaluation); ok {
			return nil
		}
	case DTNoun:
		if n, ok := actual.(NounEvaluation); ok && n.Instance != nil && n.Instance.Name == expected.Name {
			return nil
		}
	case DTAdjective:
		if a, ok := actual.(AdjectiveEvaluation); ok && a.Routine != nil && a.Routine.Name == expected.Name {
			return nil
		}
	case DTVerb:
		if a, ok := actual.(ActionEvaluation); ok && a.Routine != nil {
			return nil
		}
	}

	return fmt.Errorf("expected %s, got %s", expected.String(), actual.Kind())
}

// ParityCollective checks a parameter-shaped list (the declared `so`
// parameters of a routine) against a single evaluation that is itself
// expected to be a collective of matching length and per-position parity,
// or — symmetrically, per Parity's single-element unwrap — a bare value
// against a one-parameter list.
func ParityCollective(expected []*Datatype, actual Evaluation) error {
	if len(expected) == 1 {
		return Parity(expected[0], actual)
	}
	c, ok := actual.(CollectiveEvaluation)
	if !ok {
		return fmt.Errorf("expected a collective of %d values, got %s", len(expected), actual.Kind())
	}
	if len(c.Elements) != len(expected) {
		return fmt.Errorf("expected %d values, got %d", len(expected), len(c.Elements))
	}
	for i, dt := range expected {
		if err := Parity(dt, c.Elements[i]); err != nil {
			return fmt.Errorf("position %d: %w", i, err)
		}
	}
	return nil
}

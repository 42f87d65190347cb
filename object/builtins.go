// ==============================================================================================
// FILE: object/builtins.go
// ==============================================================================================
// PACKAGE: object
// PURPOSE: Registers the standard library's native routines as ordinary
//          Routine data, the same shape a user-written verb or adjective
//          takes. Nothing downstream special-cases these by name; a call
//          site that writes "it print "hi"." dispatches through the exact
//          same validate-subject / validate-object / invoke path as any
//          user-defined verb.
// ==============================================================================================

package object

import "fmt"

// RegisterBuiltins defines the standard library's native routines into the
// root environment, ready for any program to call by name.
func RegisterBuiltins(root *Environment) {
	for _, r := range []*Routine{printRoutine(), printnRoutine()} {
		root.Define(r.Name, ActionEvaluation{Routine: r})
	}
}

// printRoutine prints its Text object followed by a newline and returns the
// subject unchanged, mirroring the standard library's print_fn: a Number
// subject passes through untouched, and it is the object that gets written.
func printRoutine() *Routine {
	return &Routine{
		Name:        "print",
		SubjectType: NumberType(),
		ObjectParameters: []Parameter{
			{Variable: Variable{Name: "value", Datatype: TextType()}, Default: TextEvaluation{Value: ""}},
		},
		Instruction: BuiltInInstruction{Fn: func(subject Evaluation, objects []Evaluation) (Evaluation, error) {
			fmt.Println(textOf(objects))
			return subject, nil
		}},
	}
}

// printnRoutine behaves like print but takes a Number object and omits the
// trailing newline.
func printnRoutine() *Routine {
	return &Routine{
		Name:        "printn",
		SubjectType: NumberType(),
		ObjectParameters: []Parameter{
			{Variable: Variable{Name: "value", Datatype: NumberType()}, Default: NumberEvaluation{Value: 0}},
		},
		Instruction: BuiltInInstruction{Fn: func(subject Evaluation, objects []Evaluation) (Evaluation, error) {
			fmt.Print(textOf(objects))
			return subject, nil
		}},
	}
}

func textOf(objects []Evaluation) string {
	if len(objects) == 0 {
		return ""
	}
	return objects[0].String()
}

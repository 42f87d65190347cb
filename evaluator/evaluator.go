// ==============================================================================================
// FILE: evaluator/evaluator.go
// ==============================================================================================
// PACKAGE: evaluator
// PURPOSE: Implements the tree-walking runtime: Eval recursively reduces a
//          statement or phrase node to an object.Evaluation against a shared,
//          mutable environment, propagating failures as plain Go errors
//          (matching how object.Parity/ValidateSubject/ValidateObject/Assign
//          already report them) rather than as a sentinel error value in the
//          Evaluation sum itself.
// ==============================================================================================

package evaluator

import (
	"fmt"
	"strconv"

	"eloquence/ast"
	"eloquence/object"
)

// Reused singletons, mirroring the teacher's own TRUE/FALSE/NULL pattern.
var (
	Void  = object.VoidEvaluation{}
	True  = object.NotionEvaluation{Value: true}
	False = object.NotionEvaluation{Value: false}
)

func nativeNotion(b bool) object.NotionEvaluation {
	if b {
		return True
	}
	return False
}

// Eval is the heart of the interpreter: it recursively evaluates AST nodes
// into Evaluations, or returns the first error encountered.
func Eval(node ast.Node, env *object.Environment) (object.Evaluation, error) {
	switch node := node.(type) {

	// --- Root / statements ---
	case *ast.Program:
		return evalProgram(node, env)
	case *ast.NounStatement:
		return evalNounStatement(node, env)
	case *ast.VerbStatement:
		return evalVerbStatement(node, env)
	case *ast.AdjectiveStatement:
		return evalAdjectiveStatement(node, env)
	case *ast.SoStatement:
		return evalSoStatement(node, env)
	case *ast.PhraseStatement:
		if node.Phrase == nil {
			return Void, nil
		}
		return Eval(node.Phrase, env)
	case *ast.HenceStatement:
		return evalHenceStatement(node, env)

	// --- Phrases / primitives ---
	case *ast.NumberLiteral:
		return evalNumberLiteral(node), nil
	case *ast.TextLiteral:
		return object.TextEvaluation{Value: node.Value}, nil
	case *ast.TrueLiteral:
		return True, nil
	case *ast.FalseLiteral:
		return False, nil
	case *ast.ItLiteral:
		return evalIt(env)
	case *ast.VariableLiteral:
		return evalVariable(node, env)
	case *ast.CollectiveLiteral:
		return evalCollective(node, env)
	case *ast.PrefixPhrase:
		return evalPrefixPhrase(node, env)
	case *ast.PostfixPhrase:
		return evalPostfixPhrase(node, env)
	case *ast.ActionPhrase:
		return evalActionPhrase(node, env)
	case *ast.ConditionPhrase:
		return evalConditionPhrase(node, env)
	}

	return nil, fmt.Errorf("cannot evaluate node of type %T", node)
}

// evalProgram runs every top-level statement in order; a Conclusion
// (a top-level "hence") short-circuits the remaining statements.
func evalProgram(p *ast.Program, env *object.Environment) (object.Evaluation, error) {
	var result object.Evaluation = Void
	for _, stmt := range p.Statements {
		val, err := Eval(stmt, env)
		if err != nil {
			return nil, err
		}
		if concl, ok := val.(object.ConclusionEvaluation); ok {
			if concl.Inner == nil {
				return Void, nil
			}
			return concl.Inner, nil
		}
		result = val
	}
	return result, nil
}

// runRoutineBody executes a routine's statements sequentially; if any
// evaluation yields Conclusion(v), execution stops and v is returned.
// Otherwise the routine returns Void, per spec's invocation step 4 — unlike
// evalProgram, the final statement's value is discarded when no hence fired.
func runRoutineBody(body []ast.Statement, env *object.Environment) (object.Evaluation, error) {
	for _, stmt := range body {
		val, err := Eval(stmt, env)
		if err != nil {
			return nil, err
		}
		if concl, ok := val.(object.ConclusionEvaluation); ok {
			if concl.Inner == nil {
				return Void, nil
			}
			return concl.Inner, nil
		}
	}
	return Void, nil
}

// ------------------------------------------------------------------------------------------
// STATEMENTS
// ------------------------------------------------------------------------------------------

// evalNounStatement creates the noun's field environment (pre-binding
// "super" when a super type is declared, per the deferred-delegation
// resolution of Open Question #2), evaluates its body of declarations into
// that environment, and binds the noun's name to the resulting instance.
func evalNounStatement(node *ast.NounStatement, env *object.Environment) (object.Evaluation, error) {
	inst := object.NewSubstantive(node.Name, env)
	if node.SuperType != "" {
		inst.SetField("super", Void)
	}
	for _, stmt := range node.Body {
		if _, err := Eval(stmt, inst.Env); err != nil {
			return nil, err
		}
	}
	env.Define(node.Name, object.NounEvaluation{Instance: inst})
	return Void, nil
}

func evalVerbStatement(node *ast.VerbStatement, env *object.Environment) (object.Evaluation, error) {
	params, err := buildParameters(node.Objects, env)
	if err != nil {
		return nil, err
	}
	routine := &object.Routine{
		Name:             node.Name,
		SubjectType:      resolveOptionalDatatype(node.SubjectType),
		ObjectParameters: params,
		HenceType:        resolveOptionalDatatype(node.HenceType),
		Instruction:      object.CustomInstruction{Body: node.Body},
		Closure:          env,
	}
	env.Define(node.Name, object.ActionEvaluation{Routine: routine})
	return Void, nil
}

func evalAdjectiveStatement(node *ast.AdjectiveStatement, env *object.Environment) (object.Evaluation, error) {
	routine := &object.Routine{
		Name:        node.Name,
		SubjectType: resolveOptionalDatatype(node.SubjectType),
		Instruction: object.CustomInstruction{Body: node.Body},
		Closure:     env,
	}
	env.Define(node.Name, object.AdjectiveEvaluation{Routine: routine})
	return Void, nil
}

// evalSoStatement binds a new variable: if the initializer is absent, the
// datatype's zero value is used; if the initializer evaluates to Void, the
// declaration fails (a declared slot can never be left empty); if it
// evaluates to Skip, the initializer is gated out exactly like a qualified
// assignment, and the variable keeps its zero-value default instead (spec
// scenario 4: "the as is short-circuited and m retains its default 0.0").
func evalSoStatement(node *ast.SoStatement, env *object.Environment) (object.Evaluation, error) {
	value := zeroValue(node.Datatype)
	if node.Initializer != nil {
		v, err := Eval(node.Initializer, env)
		if err != nil {
			return nil, err
		}
		switch v.Kind() {
		case object.VOID:
			return nil, fmt.Errorf("so %s: initializer evaluated to Void", node.Name)
		case object.SKIP:
			// value stays at its zero default.
		default:
			value = v
		}
	}
	env.Define(node.Name, value)
	return Void, nil
}

func zeroValue(datatype string) object.Evaluation {
	switch datatype {
	case "Number":
		return object.NumberEvaluation{Value: 0}
	case "Text":
		return object.TextEvaluation{Value: ""}
	case "Notion":
		return False
	default:
		return Void
	}
}

// evalHenceStatement wraps its phrase's value in Conclusion; a Skip carries
// through unchanged, and a false Notion wraps as Skip per the qualifier
// rules so a failed hence short-circuits the same way a false qualifier does.
func evalHenceStatement(node *ast.HenceStatement, env *object.Environment) (object.Evaluation, error) {
	if node.Phrase == nil {
		return object.ConclusionEvaluation{}, nil
	}
	val, err := Eval(node.Phrase, env)
	if err != nil {
		return nil, err
	}
	switch v := val.(type) {
	case object.SkipEvaluation:
		return object.ConclusionEvaluation{Inner: v}, nil
	case object.NotionEvaluation:
		if !v.Value {
			return object.ConclusionEvaluation{Inner: object.SkipEvaluation{Inner: v}}, nil
		}
		return object.ConclusionEvaluation{Inner: v}, nil
	default:
		return object.ConclusionEvaluation{Inner: val}, nil
	}
}

// ------------------------------------------------------------------------------------------
// PRIMITIVES
// ------------------------------------------------------------------------------------------

// evalNumberLiteral parses the lexeme to f32 lazily, defaulting to 0 on
// failure, per the text-faithful/parse-at-use resolution of Open Question #4.
func evalNumberLiteral(node *ast.NumberLiteral) object.Evaluation {
	f, err := strconv.ParseFloat(node.Value, 32)
	if err != nil {
		return object.NumberEvaluation{Value: 0}
	}
	return object.NumberEvaluation{Value: float32(f)}
}

func evalIt(env *object.Environment) (object.Evaluation, error) {
	v, ok := env.Get("it")
	if !ok {
		return nil, fmt.Errorf("'it' is not bound in this scope")
	}
	return v, nil
}

func evalVariable(node *ast.VariableLiteral, env *object.Environment) (object.Evaluation, error) {
	v, ok := env.Get(node.Name)
	if !ok {
		return nil, fmt.Errorf("undefined variable %s", node.Name)
	}
	return v, nil
}

func evalCollective(node *ast.CollectiveLiteral, env *object.Environment) (object.Evaluation, error) {
	elements := make([]object.Evaluation, len(node.Elements))
	for i, e := range node.Elements {
		v, err := Eval(e, env)
		if err != nil {
			return nil, err
		}
		elements[i] = v
	}
	return object.CollectiveEvaluation{Elements: elements}, nil
}

// ------------------------------------------------------------------------------------------
// PREFIX
// ------------------------------------------------------------------------------------------

func evalPrefixPhrase(node *ast.PrefixPhrase, env *object.Environment) (object.Evaluation, error) {
	switch node.Kind {
	case ast.PrefixNot:
		subject, err := Eval(node.Subject, env)
		if err != nil {
			return nil, err
		}
		return evalNot(subject)
	case ast.PrefixNegation:
		subject, err := Eval(node.Subject, env)
		if err != nil {
			return nil, err
		}
		n, ok := subject.(object.NumberEvaluation)
		if !ok {
			return nil, fmt.Errorf("cannot negate a %s", subject.Kind())
		}
		return object.NumberEvaluation{Value: -n.Value}, nil
	case ast.PrefixAdjective:
		subject, err := Eval(node.Subject, env)
		if err != nil {
			return nil, err
		}
		adj, ok := env.Get(node.AdjectiveName)
		if !ok {
			return nil, fmt.Errorf("undefined adjective %s", node.AdjectiveName)
		}
		return applyQualifier(subject, adj, env)
	default:
		return nil, fmt.Errorf("unknown prefix kind %v", node.Kind)
	}
}

func evalNot(subject object.Evaluation) (object.Evaluation, error) {
	switch v := subject.(type) {
	case object.NotionEvaluation:
		return nativeNotion(!v.Value), nil
	case object.NounEvaluation:
		return object.SkipEvaluation{Inner: v}, nil
	case object.SkipEvaluation:
		return v.Inner, nil
	default:
		return nil, fmt.Errorf("cannot negate a %s", subject.Kind())
	}
}

// ------------------------------------------------------------------------------------------
// POSTFIX ("subject when adjective")
// ------------------------------------------------------------------------------------------

func evalPostfixPhrase(node *ast.PostfixPhrase, env *object.Environment) (object.Evaluation, error) {
	// An assignment wrapped by a qualifier ("y as [5] when false.") must not
	// perform the assignment at all when the qualifier rejects it — not just
	// wrap an already-mutated result in Skip (spec scenario 2). Evaluating
	// the assign's subject phrase eagerly, as the general case below does,
	// would mutate first and ask permission after, so the assign is gated
	// specially here instead.
	if assign, ok := node.Subject.(*ast.ActionPhrase); ok && assign.Verb == ast.VerbAssign {
		return evalQualifiedAssign(assign, node.Adjective, env)
	}

	subject, err := Eval(node.Subject, env)
	if err != nil {
		return nil, err
	}
	adjective, err := Eval(node.Adjective, env)
	if err != nil {
		return nil, err
	}
	return applyQualifier(subject, adjective, env)
}

// evalQualifiedAssign tests the qualifier against the VALUE about to be
// assigned (matching how a qualified so-initializer tests the new value
// rather than the slot's old one, spec scenario 4's "-[1] when positive"),
// and only performs the assignment when it holds; otherwise the assignment
// is skipped entirely and the variable's current value is returned wrapped
// in Skip, leaving the variable itself untouched (spec scenario 2).
func evalQualifiedAssign(assign *ast.ActionPhrase, adjectivePhrase ast.Phrase, env *object.Environment) (object.Evaluation, error) {
	variable, ok := assign.Subject.(*ast.VariableLiteral)
	if !ok {
		return nil, fmt.Errorf("invalid assignment target")
	}

	newValue, err := Eval(assign.Object, env)
	if err != nil {
		return nil, err
	}
	adjective, err := Eval(adjectivePhrase, env)
	if err != nil {
		return nil, err
	}

	gated, err := applyQualifier(newValue, adjective, env)
	if err != nil {
		return nil, err
	}
	if _, skipped := gated.(object.SkipEvaluation); skipped {
		current, _ := env.Get(variable.Name)
		return object.SkipEvaluation{Inner: current}, nil
	}
	if err := env.Assign(variable.Name, newValue); err != nil {
		return nil, err
	}
	return newValue, nil
}

// applyQualifier implements "subject when/the adjective": a true Notion
// passes the subject through, a false one wraps it as Skip, an
// AdjectiveEvaluation is invoked with the subject and no object, and a Skip
// adjective propagates as Skip(subject).
func applyQualifier(subject, adjective object.Evaluation, env *object.Environment) (object.Evaluation, error) {
	switch adj := adjective.(type) {
	case object.NotionEvaluation:
		if adj.Value {
			return subject, nil
		}
		return object.SkipEvaluation{Inner: subject}, nil
	case object.AdjectiveEvaluation:
		verdict, err := invokeRoutine(adj.Routine, subject, nil, env)
		if err != nil {
			return nil, err
		}
		return applyQualifier(subject, verdict, env)
	case object.SkipEvaluation:
		return object.SkipEvaluation{Inner: subject}, nil
	default:
		return nil, fmt.Errorf("cannot qualify with a %s", adjective.Kind())
	}
}

// ------------------------------------------------------------------------------------------
// CONDITION
// ------------------------------------------------------------------------------------------

func evalConditionPhrase(node *ast.ConditionPhrase, env *object.Environment) (object.Evaluation, error) {
	switch node.Conjunction {
	case ast.ConjAnd:
		left, err := Eval(node.Left, env)
		if err != nil {
			return nil, err
		}
		leftTruth, err := evaluateTruth(left)
		if err != nil {
			return nil, err
		}
		if !leftTruth {
			return nativeNotion(false), nil
		}
		right, err := Eval(node.Right, env)
		if err != nil {
			return nil, err
		}
		rightTruth, err := evaluateTruth(right)
		if err != nil {
			return nil, err
		}
		return nativeNotion(rightTruth), nil
	case ast.ConjOr:
		left, err := Eval(node.Left, env)
		if err != nil {
			return nil, err
		}
		leftTruth, err := evaluateTruth(left)
		if err != nil {
			return nil, err
		}
		if leftTruth {
			return nativeNotion(true), nil
		}
		right, err := Eval(node.Right, env)
		if err != nil {
			return nil, err
		}
		rightTruth, err := evaluateTruth(right)
		if err != nil {
			return nil, err
		}
		return nativeNotion(rightTruth), nil
	case ast.ConjEqual:
		left, right, err := evalBothSides(node, env)
		if err != nil {
			return nil, err
		}
		return nativeNotion(object.Equal(left, right)), nil
	case ast.ConjNotEqual:
		left, right, err := evalBothSides(node, env)
		if err != nil {
			return nil, err
		}
		return nativeNotion(!object.Equal(left, right)), nil
	default:
		return evalComparison(node, env)
	}
}

func evalBothSides(node *ast.ConditionPhrase, env *object.Environment) (object.Evaluation, object.Evaluation, error) {
	left, err := Eval(node.Left, env)
	if err != nil {
		return nil, nil, err
	}
	right, err := Eval(node.Right, env)
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

func evalComparison(node *ast.ConditionPhrase, env *object.Environment) (object.Evaluation, error) {
	left, right, err := evalBothSides(node, env)
	if err != nil {
		return nil, err
	}
	l, ok := left.(object.NumberEvaluation)
	if !ok {
		return nil, fmt.Errorf("comparison requires a Number, got %s", left.Kind())
	}
	r, ok := right.(object.NumberEvaluation)
	if !ok {
		return nil, fmt.Errorf("comparison requires a Number, got %s", right.Kind())
	}
	switch node.Conjunction {
	case ast.ConjGreater:
		return nativeNotion(l.Value > r.Value), nil
	case ast.ConjGreaterEqual:
		return nativeNotion(l.Value >= r.Value), nil
	case ast.ConjLess:
		return nativeNotion(l.Value < r.Value), nil
	case ast.ConjLessEqual:
		return nativeNotion(l.Value <= r.Value), nil
	default:
		return nil, fmt.Errorf("unknown conjunction %v", node.Conjunction)
	}
}

// evaluateTruth implements evaluate_truth: Number(0) is false, any other
// number is true, Text is always true, a Notion is its own value, a
// Collective is the AND of its (recursively evaluated) elements, and every
// other shape is an error.
func evaluateTruth(v object.Evaluation) (bool, error) {
	switch val := v.(type) {
	case object.NumberEvaluation:
		return val.Value != 0, nil
	case object.TextEvaluation:
		return true, nil
	case object.NotionEvaluation:
		return val.Value, nil
	case object.CollectiveEvaluation:
		for _, e := range val.Elements {
			truth, err := evaluateTruth(e)
			if err != nil {
				return false, err
			}
			if !truth {
				return false, nil
			}
		}
		return true, nil
	default:
		return false, fmt.Errorf("%s has no truth value", v.Kind())
	}
}

// ------------------------------------------------------------------------------------------
// ACTION (arithmetic, assignment, named verb calls)
// ------------------------------------------------------------------------------------------

func evalActionPhrase(node *ast.ActionPhrase, env *object.Environment) (object.Evaluation, error) {
	switch node.Verb {
	case ast.VerbAdd, ast.VerbSubtract, ast.VerbMultiply, ast.VerbDivide:
		return evalArithmetic(node, env)
	case ast.VerbAssign:
		return evalAssign(node, env)
	case ast.VerbAction:
		return evalNamedAction(node, env)
	default:
		return nil, fmt.Errorf("unknown verb kind %v", node.Verb)
	}
}

func evalArithmetic(node *ast.ActionPhrase, env *object.Environment) (object.Evaluation, error) {
	left, right, err := evalActionOperands(node, env)
	if err != nil {
		return nil, err
	}
	l, ok := left.(object.NumberEvaluation)
	if !ok {
		return nil, fmt.Errorf("arithmetic requires a Number, got %s", left.Kind())
	}
	r, ok := right.(object.NumberEvaluation)
	if !ok {
		return nil, fmt.Errorf("arithmetic requires a Number, got %s", right.Kind())
	}
	switch node.Verb {
	case ast.VerbAdd:
		return object.NumberEvaluation{Value: l.Value + r.Value}, nil
	case ast.VerbSubtract:
		return object.NumberEvaluation{Value: l.Value - r.Value}, nil
	case ast.VerbMultiply:
		return object.NumberEvaluation{Value: l.Value * r.Value}, nil
	case ast.VerbDivide:
		if r.Value == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return object.NumberEvaluation{Value: l.Value / r.Value}, nil
	default:
		return nil, fmt.Errorf("unreachable arithmetic verb %v", node.Verb)
	}
}

func evalActionOperands(node *ast.ActionPhrase, env *object.Environment) (object.Evaluation, object.Evaluation, error) {
	if node.Subject == nil || node.Object == nil {
		return nil, nil, fmt.Errorf("action phrase is missing a subject or object")
	}
	left, err := Eval(node.Subject, env)
	if err != nil {
		return nil, nil, err
	}
	right, err := Eval(node.Object, env)
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

// evalAssign implements the subject short-circuit resolved from Open
// Question #3: the subject phrase is never evaluated as a value — only its
// name is extracted — and a Skip object short-circuits the assignment
// entirely, returning the variable's current (unevaluated-subject) value
// wrapped as Skip.
func evalAssign(node *ast.ActionPhrase, env *object.Environment) (object.Evaluation, error) {
	variable, ok := node.Subject.(*ast.VariableLiteral)
	if !ok {
		return nil, fmt.Errorf("invalid assignment target")
	}
	value, err := Eval(node.Object, env)
	if err != nil {
		return nil, err
	}
	if skip, ok := value.(object.SkipEvaluation); ok {
		current, _ := env.Get(variable.Name)
		return object.SkipEvaluation{Inner: current}, skipNoOpError(skip)
	}
	if err := env.Assign(variable.Name, value); err != nil {
		return nil, err
	}
	return value, nil
}

// skipNoOpError is always nil: a Skip object is a legitimate, non-error
// short-circuit outcome for assignment, not a failure. Named so the call
// site at evalAssign reads as a deliberate no-op rather than a forgotten
// error check.
func skipNoOpError(object.SkipEvaluation) error { return nil }

func evalNamedAction(node *ast.ActionPhrase, env *object.Environment) (object.Evaluation, error) {
	subject, err := Eval(node.Subject, env)
	if err != nil {
		return nil, err
	}
	routineVal, ok := env.Get(node.ActionName)
	if !ok {
		return nil, fmt.Errorf("undefined verb %s", node.ActionName)
	}
	action, ok := routineVal.(object.ActionEvaluation)
	if !ok {
		return nil, fmt.Errorf("%s is not a verb", node.ActionName)
	}

	var object_ object.Evaluation
	if node.Object != nil {
		object_, err = Eval(node.Object, env)
		if err != nil {
			return nil, err
		}
	}
	return invokeRoutine(action.Routine, subject, object_, env)
}

// ------------------------------------------------------------------------------------------
// ROUTINE INVOCATION
// ------------------------------------------------------------------------------------------

// invokeRoutine implements the four-step invocation protocol: validate the
// subject, validate and bind the object parameters, create a child of the
// CALL-SITE environment (not the routine's closure — the call-site-scoping
// resolution of Open Question #1), and execute the body.
func invokeRoutine(routine *object.Routine, subject, callObject object.Evaluation, callSiteEnv *object.Environment) (object.Evaluation, error) {
	if err := routine.ValidateSubject(subject); err != nil {
		return nil, fmt.Errorf("invalid subject for action %s: %w", routine.Name, err)
	}
	bindings, err := routine.ValidateObject(callObject)
	if err != nil {
		return nil, fmt.Errorf("invalid object(s) for action %s: %w", routine.Name, err)
	}

	switch instr := routine.Instruction.(type) {
	case object.BuiltInInstruction:
		objects := make([]object.Evaluation, 0, len(routine.ObjectParameters))
		for _, p := range routine.ObjectParameters {
			objects = append(objects, bindings[p.Variable.Name])
		}
		return instr.Fn(subject, objects)
	case object.CustomInstruction:
		body, ok := instr.Body.([]ast.Statement)
		if !ok {
			return nil, fmt.Errorf("routine %s has a malformed body", routine.Name)
		}
		child := object.NewEnclosedEnvironment(callSiteEnv)
		child.Define("it", subject)
		for name, value := range bindings {
			child.Define(name, value)
		}
		return runRoutineBody(body, child)
	case object.NoOpInstruction:
		return Void, nil
	default:
		return nil, fmt.Errorf("routine %s has no instruction", routine.Name)
	}
}

// ------------------------------------------------------------------------------------------
// VERB/ADJECTIVE DEFINITION HELPERS
// ------------------------------------------------------------------------------------------

func resolveOptionalDatatype(name string) *object.Datatype {
	if name == "" {
		return nil
	}
	return resolveDatatype(name)
}

func resolveDatatype(name string) *object.Datatype {
	switch name {
	case "Number":
		return object.NumberType()
	case "Text":
		return object.TextType()
	case "Notion":
		return object.NotionType()
	default:
		return object.NounType(name)
	}
}

// buildParameters evaluates each declared parameter's default initializer
// (if any) against the verb's defining environment, once, at definition
// time — not re-evaluated on every call.
func buildParameters(decls []*ast.SoStatement, env *object.Environment) ([]object.Parameter, error) {
	params := make([]object.Parameter, len(decls))
	for i, decl := range decls {
		var def object.Evaluation
		if decl.Initializer != nil {
			v, err := Eval(decl.Initializer, env)
			if err != nil {
				return nil, err
			}
			def = v
		}
		params[i] = object.Parameter{
			Variable: object.Variable{Name: decl.Name, Datatype: resolveDatatype(decl.Datatype)},
			Default:  def,
		}
	}
	return params, nil
}

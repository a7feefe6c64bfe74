/*
File    : quill/eval/statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"quill/ast"
	"quill/object"
)

// evalLetStatement binds the evaluated value to Name in the local
// environment. env.Set always writes the local frame (object.Environment),
// so a let inside a while body or nested block mutates that same shared
// frame rather than shadowing into a throwaway child — this is what makes
// a loop like `let x = 0; while (x < 3) { let x = x + 1; }` leave x
// bound to 3 in the enclosing scope.
//
// When the bound value is a freshly created Function, the function is
// rebuilt with a child environment that already contains the name bound
// to itself, so a recursive call inside the function body resolves
// through its own closure instead of failing with an undefined
// identifier fault.
func evalLetStatement(stmt *ast.LetStatement, env *object.Environment) object.Value {
	val := Eval(stmt.Value, env)

	if fn, ok := val.(*object.Function); ok {
		selfEnv := object.NewEnclosedEnvironment(fn.Env)
		self := &object.Function{Parameters: fn.Parameters, Body: fn.Body, Env: selfEnv}
		selfEnv.Set(stmt.Name.Value, self)
		val = self
	}

	env.Set(stmt.Name.Value, val)
	return val
}

// evalWhileStatement repeats Body for as long as Condition evaluates to
// the Boolean true object. Any other value — including a truthy integer
// or function — terminates the loop immediately rather than looping
// forever; this is a deliberate asymmetry with `if`'s broader
// truthiness rule. The body shares its caller's environment: no new
// frame is created per iteration, matching evalBlockStatement.
func evalWhileStatement(stmt *ast.WhileStatement, env *object.Environment) object.Value {
	var result object.Value = NULL

	for {
		cond := Eval(stmt.Condition, env)

		b, ok := cond.(*object.Boolean)
		if !ok || !b.Value {
			break
		}

		result = Eval(stmt.Body, env)
		if result != nil && result.Type() == object.ReturnValueType {
			return result
		}
	}

	return result
}

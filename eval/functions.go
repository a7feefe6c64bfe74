/*
File    : quill/eval/functions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"quill/ast"
	"quill/object"
)

// evalCallExpression evaluates the callee, checks it is a Function,
// evaluates arguments left-to-right in the CALLER's environment, binds
// them in a fresh environment enclosed by the function's captured
// (definition-time) environment, evaluates the body there, and unwraps
// a ReturnValue at this call boundary — the same unwrap-on-return
// contract evalProgram applies at the top level.
func evalCallExpression(node *ast.CallExpression, env *object.Environment) object.Value {
	fnVal := Eval(node.Function, env)
	fn, ok := fnVal.(*object.Function)
	if !ok {
		return reportFault("not a function: %s", fnVal.Type())
	}

	if len(node.Arguments) != len(fn.Parameters) {
		return reportFault("wrong number of arguments: expected %d, got %d",
			len(fn.Parameters), len(node.Arguments))
	}

	args := make([]object.Value, 0, len(node.Arguments))
	for _, a := range node.Arguments {
		args = append(args, Eval(a, env))
	}

	if callDepth >= maxCallDepth {
		return reportFault("recursion depth limit exceeded")
	}

	callEnv := object.NewEnclosedEnvironment(fn.Env)
	for i, param := range fn.Parameters {
		callEnv.Set(param.Value, args[i])
	}

	callDepth++
	result := evalFunctionBody(fn.Body, callEnv)
	callDepth--

	return result
}

// evalFunctionBody runs the body and unwraps a ReturnValue into its
// inner value, since evalBlockStatement leaves it wrapped so it can
// propagate through nested blocks untouched.
func evalFunctionBody(body *ast.BlockStatement, env *object.Environment) object.Value {
	result := Eval(body, env)
	if rv, ok := result.(*object.ReturnValue); ok {
		return rv.Value
	}
	return result
}

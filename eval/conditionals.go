/*
File    : quill/eval/conditionals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"quill/ast"
	"quill/object"
)

// evalIfExpression evaluates Condition and branches on isTruthy. An
// if-expression with no matching Alternative and a false condition
// yields NULL, the same value a caller would get from any other
// statement that produced nothing useful.
func evalIfExpression(ie *ast.IfExpression, env *object.Environment) object.Value {
	condition := Eval(ie.Condition, env)

	if isTruthy(condition) {
		return Eval(ie.Consequence, env)
	} else if ie.Alternative != nil {
		return Eval(ie.Alternative, env)
	}

	return NULL
}

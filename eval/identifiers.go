/*
File    : quill/eval/identifiers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"quill/ast"
	"quill/object"
)

// evalIdentifier resolves a name through env, walking outward through
// enclosing frames (object.Environment.Get). An identifier that resolves
// nowhere is a runtime fault, not a parse error, since the parser never
// tracks bindings.
func evalIdentifier(node *ast.Identifier, env *object.Environment) object.Value {
	if val, ok := env.Get(node.Value); ok {
		return val
	}
	return reportFault("identifier not found: %s", node.Value)
}

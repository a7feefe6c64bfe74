/*
File    : quill/parser/precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "quill/token"

// Operator precedence levels for the Pratt expression parser, lowest to
// highest. The expression loop in parseExpression advances and invokes
// the registered infix handler while the current precedence is strictly
// less than the peek token's precedence — this is what yields
// left-associativity and correct binding for every operator below.
const (
	_ int = iota
	LOWEST
	ASSIGN      // reserved precedence slot; no infix handler is registered
	EQUALS      // == !=
	LESSGREATER // < >
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -x or !x
	CALL        // fn(x)
)

// precedences maps each infix-capable token to its binding strength.
// ASSIGN has no entry: "=" only ever appears inside a let statement,
// which consumes it directly rather than through the Pratt loop, so it
// never participates in expression-level precedence climbing.
var precedences = map[token.Type]int{
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.SLASH:    PRODUCT,
	token.ASTERISK: PRODUCT,
	token.LPAREN:   CALL,
}

/*
File    : quill/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a recursive-descent parser for statements and
// a Pratt (top-down operator-precedence) parser for expressions.
//
// The parser never panics and never aborts: on any expect-mismatch it
// appends a descriptive message to Errors and returns, letting the
// calling statement parser skip ahead and keep going. Parsing always
// reaches end-of-input and always returns a (possibly empty) Program
// alongside a (possibly empty) error list.
package parser

import (
	"fmt"

	"quill/ast"
	"quill/lexer"
	"quill/token"
)

// prefixParseFn parses an expression that starts with the current token
// (a literal, an identifier, or a prefix operator).
type prefixParseFn func() ast.Expression

// infixParseFn parses the rest of an expression given the already-parsed
// left-hand side and the current token sitting on the infix operator.
type infixParseFn func(ast.Expression) ast.Expression

// Parser drives token-by-token recursive descent over a Lexer.
type Parser struct {
	lex *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	errors []string

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
}

// New creates a Parser over l, primes curToken/peekToken by advancing
// twice, and registers every prefix/infix handler the grammar needs.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{
		lex:    l,
		errors: []string{},
	}

	p.prefixParseFns = make(map[token.Type]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.BANG, p.parsePrefixExpression)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.TRUE, p.parseBooleanLiteral)
	p.registerPrefix(token.FALSE, p.parseBooleanLiteral)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(token.IF, p.parseIfExpression)
	p.registerPrefix(token.FUNCTION, p.parseFunctionLiteral)

	p.infixParseFns = make(map[token.Type]infixParseFn)
	for _, tt := range []token.Type{
		token.PLUS, token.MINUS, token.SLASH, token.ASTERISK,
		token.EQ, token.NOT_EQ, token.LT, token.GT,
	} {
		p.registerInfix(tt, p.parseInfixExpression)
	}
	p.registerInfix(token.LPAREN, p.parseCallExpression)

	// Two calls to advance the token cursor so curToken and peekToken are
	// both populated before parsing starts.
	p.nextToken()
	p.nextToken()

	return p
}

func (p *Parser) registerPrefix(tt token.Type, fn prefixParseFn) {
	p.prefixParseFns[tt] = fn
}

func (p *Parser) registerInfix(tt token.Type, fn infixParseFn) {
	p.infixParseFns[tt] = fn
}

// Errors returns every parse-error message accumulated so far, in the
// order they were encountered.
func (p *Parser) Errors() []string {
	return p.errors
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.lex.NextToken()
}

func (p *Parser) curTokenIs(tt token.Type) bool  { return p.curToken.Type == tt }
func (p *Parser) peekTokenIs(tt token.Type) bool { return p.peekToken.Type == tt }

// expectPeek asserts that peekToken is tt, advancing past it on success.
// On mismatch it records a descriptive error and leaves the cursor where
// it was: the caller is expected to bail out of the current statement,
// not keep parsing as if the token had been there.
func (p *Parser) expectPeek(tt token.Type) bool {
	if p.peekTokenIs(tt) {
		p.nextToken()
		return true
	}
	p.peekError(tt)
	return false
}

func (p *Parser) peekError(tt token.Type) {
	msg := fmt.Sprintf("Expected %s, got %s", tt, p.peekToken.Type)
	p.errors = append(p.errors, msg)
}

func (p *Parser) noPrefixParseFnError(tt token.Type) {
	msg := fmt.Sprintf("Expected expression, got %s", tt)
	p.errors = append(p.errors, msg)
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Type]; ok {
		return pr
	}
	return LOWEST
}

// ParseProgram parses the entire token stream into a Program. It always
// terminates: every iteration either parses a statement or advances past
// whatever it couldn't parse.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{Statements: []ast.Statement{}}

	for !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program
}

/*
File    : quill/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"quill/token"
)

func TestNextToken_Operators(t *testing.T) {
	input := `=+(){},;!*/<>-`

	expected := []token.Token{
		token.New(token.ASSIGN, "="),
		token.New(token.PLUS, "+"),
		token.New(token.LPAREN, "("),
		token.New(token.RPAREN, ")"),
		token.New(token.LBRACE, "{"),
		token.New(token.RBRACE, "}"),
		token.New(token.COMMA, ","),
		token.New(token.SEMICOLON, ";"),
		token.New(token.BANG, "!"),
		token.New(token.ASTERISK, "*"),
		token.New(token.SLASH, "/"),
		token.New(token.LT, "<"),
		token.New(token.GT, ">"),
		token.New(token.MINUS, "-"),
		token.New(token.EOF, ""),
	}

	l := New(input)
	for i, want := range expected {
		got := l.NextToken()
		assert.Equalf(t, want, got, "token %d", i)
	}
}

func TestNextToken_Program(t *testing.T) {
	input := `
let five = 5;
let add = fn(x, y) {
  x + y;
};
let result = add(five, 10);
!-/*5;
5 < 10 > 5;

if (5 < 10) {
	return true;
} else {
	return false;
}

10 == 10;
10 != 9;
while (x < 3) {
	let x = x + 1;
}
`

	expected := []token.Token{
		token.New(token.LET, "let"),
		token.New(token.IDENT, "five"),
		token.New(token.ASSIGN, "="),
		token.New(token.INT, "5"),
		token.New(token.SEMICOLON, ";"),
		token.New(token.LET, "let"),
		token.New(token.IDENT, "add"),
		token.New(token.ASSIGN, "="),
		token.New(token.FUNCTION, "fn"),
		token.New(token.LPAREN, "("),
		token.New(token.IDENT, "x"),
		token.New(token.COMMA, ","),
		token.New(token.IDENT, "y"),
		token.New(token.RPAREN, ")"),
		token.New(token.LBRACE, "{"),
		token.New(token.IDENT, "x"),
		token.New(token.PLUS, "+"),
		token.New(token.IDENT, "y"),
		token.New(token.SEMICOLON, ";"),
		token.New(token.RBRACE, "}"),
		token.New(token.SEMICOLON, ";"),
		token.New(token.LET, "let"),
		token.New(token.IDENT, "result"),
		token.New(token.ASSIGN, "="),
		token.New(token.IDENT, "add"),
		token.New(token.LPAREN, "("),
		token.New(token.IDENT, "five"),
		token.New(token.COMMA, ","),
		token.New(token.INT, "10"),
		token.New(token.RPAREN, ")"),
		token.New(token.SEMICOLON, ";"),
		token.New(token.BANG, "!"),
		token.New(token.MINUS, "-"),
		token.New(token.SLASH, "/"),
		token.New(token.ASTERISK, "*"),
		token.New(token.INT, "5"),
		token.New(token.SEMICOLON, ";"),
		token.New(token.INT, "5"),
		token.New(token.LT, "<"),
		token.New(token.INT, "10"),
		token.New(token.GT, ">"),
		token.New(token.INT, "5"),
		token.New(token.SEMICOLON, ";"),
		token.New(token.IF, "if"),
		token.New(token.LPAREN, "("),
		token.New(token.INT, "5"),
		token.New(token.LT, "<"),
		token.New(token.INT, "10"),
		token.New(token.RPAREN, ")"),
		token.New(token.LBRACE, "{"),
		token.New(token.RETURN, "return"),
		token.New(token.TRUE, "true"),
		token.New(token.SEMICOLON, ";"),
		token.New(token.RBRACE, "}"),
		token.New(token.ELSE, "else"),
		token.New(token.LBRACE, "{"),
		token.New(token.RETURN, "return"),
		token.New(token.FALSE, "false"),
		token.New(token.SEMICOLON, ";"),
		token.New(token.RBRACE, "}"),
		token.New(token.INT, "10"),
		token.New(token.EQ, "=="),
		token.New(token.INT, "10"),
		token.New(token.SEMICOLON, ";"),
		token.New(token.INT, "10"),
		token.New(token.NOT_EQ, "!="),
		token.New(token.INT, "9"),
		token.New(token.SEMICOLON, ";"),
		token.New(token.WHILE, "while"),
		token.New(token.LPAREN, "("),
		token.New(token.IDENT, "x"),
		token.New(token.LT, "<"),
		token.New(token.INT, "3"),
		token.New(token.RPAREN, ")"),
		token.New(token.LBRACE, "{"),
		token.New(token.LET, "let"),
		token.New(token.IDENT, "x"),
		token.New(token.ASSIGN, "="),
		token.New(token.IDENT, "x"),
		token.New(token.PLUS, "+"),
		token.New(token.INT, "1"),
		token.New(token.SEMICOLON, ";"),
		token.New(token.RBRACE, "}"),
		token.New(token.EOF, ""),
	}

	l := New(input)
	for i, want := range expected {
		got := l.NextToken()
		assert.Equalf(t, want, got, "token %d (%+v)", i, want)
	}
}

func TestNextToken_Totality(t *testing.T) {
	l := New("let x = 42")
	for i := 0; i < 50; i++ {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			for j := 0; j < 5; j++ {
				assert.Equal(t, token.EOF, l.NextToken().Type)
			}
			return
		}
	}
	t.Fatal("lexer never reached EOF")
}

func TestNextToken_IllegalCharacter(t *testing.T) {
	l := New("@")
	tok := l.NextToken()
	assert.Equal(t, token.ILLEGAL, tok.Type)
	assert.Equal(t, "@", tok.Literal)
}

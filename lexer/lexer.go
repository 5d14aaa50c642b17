package lexer

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

func NewLexer(content string) *Lexer {
	lexer := Lexer{
		Content: content,
		Row:     1,
		Col:     1,
		Cur:     0,
	}
	return &lexer
}

// Tokenize scans the whole source and returns its tokens, terminated by a
// single EOF token.
func Tokenize(source string) ([]Token, error) {
	return NewLexer(source).Tokenize()
}

func (l *Lexer) current() rune {
	if l.Cur >= len(l.Content) {
		return 0
	}
	char, _ := utf8.DecodeRuneInString(l.Content[l.Cur:])
	return char
}

func (l *Lexer) readChar() {
	if l.Cur >= len(l.Content) {
		// reach end of file
		return
	}

	char, size := utf8.DecodeRuneInString(l.Content[l.Cur:])

	switch char {
	case '\n':
		l.Row++
		l.Col = 1
	default:
		l.Col++
	}

	l.Cur += size
}

func (l *Lexer) position() Position {
	return Position{Offset: l.Cur, Row: l.Row, Col: l.Col}
}

func newToken(kind TokenKind, text string, pos Position) Token {
	return Token{
		LiteralToken: LiteralToken{
			Kind: kind,
			Text: text,
		},
		Pos: pos,
	}
}

func (l *Lexer) NextToken() (Token, error) {
	l.skipWhiteSpace()

	pos := l.position()

	if l.Cur >= len(l.Content) {
		return newToken(TokenEOF, "", pos), nil
	}

	char := l.current()

	switch {
	case isLetter(char):
		return l.readIdentifier(), nil
	case isDigit(char) || char == '.':
		return l.readNumber()
	}

	switch char {
	case '=':
		l.readChar()
		if l.current() == '=' {
			l.readChar()
			return newToken(TokenEq, "==", pos), nil
		}
		return newToken(TokenEquals, "=", pos), nil
	case '!':
		l.readChar()
		if l.current() == '=' {
			l.readChar()
			return newToken(TokenNotEq, "!=", pos), nil
		}
		// a lone ! has no meaning in the language
		return Token{}, &Error{Err: ErrIllegalChar, Pos: pos, Char: "!"}
	case '<':
		l.readChar()
		if l.current() == '=' {
			l.readChar()
			return newToken(TokenLessOrEqual, "<=", pos), nil
		}
		return newToken(TokenLess, "<", pos), nil
	case '>':
		l.readChar()
		if l.current() == '=' {
			l.readChar()
			return newToken(TokenGreaterOrEqual, ">=", pos), nil
		}
		return newToken(TokenGreater, ">", pos), nil
	}

	if char < utf8.RuneSelf {
		if kind, ok := Units[byte(char)]; ok {
			l.readChar()
			return newToken(kind, string(char), pos), nil
		}
	}

	return Token{}, &Error{Err: ErrIllegalChar, Pos: pos, Char: string(char)}
}

func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			break
		}
	}
	return tokens, nil
}

func isLetter(char rune) bool {
	return unicode.IsLetter(char) || char == '_'
}

func isDigit(char rune) bool {
	return '0' <= char && char <= '9'
}

func (l *Lexer) readIdentifier() Token {
	startPos := l.Cur
	pos := l.position()

	for l.Cur < len(l.Content) {
		char := l.current()
		if isLetter(char) || unicode.IsDigit(char) {
			l.readChar()
		} else {
			break
		}
	}

	text := l.Content[startPos:l.Cur]

	if tokenKind, isKeyword := Keywords[text]; isKeyword {
		return newToken(tokenKind, text, pos)
	}

	return newToken(TokenIdentifier, text, pos)
}

func (l *Lexer) readNumber() (Token, error) {
	startPos := l.Cur
	pos := l.position()
	isFloat := false

	// Read integer part, may be empty for literals like .5
	for isDigit(l.current()) {
		l.readChar()
	}

	if l.current() == '.' {
		isFloat = true
		l.readChar() // consume '.'

		if !isDigit(l.current()) {
			return Token{}, &Error{Err: ErrInvalidFloat, Pos: l.position()}
		}

		// Read fractional part
		for isDigit(l.current()) {
			l.readChar()
		}
	}

	text := l.Content[startPos:l.Cur]

	if isFloat {
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Token{}, &Error{Err: ErrInvalidFloat, Pos: pos, Char: text}
		}
		tok := newToken(TokenFNumber, text, pos)
		tok.Float = value
		return tok, nil
	}

	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Token{}, &Error{Err: ErrInvalidNumber, Pos: pos, Char: text}
	}
	tok := newToken(TokenNumber, text, pos)
	tok.Int = value
	return tok, nil
}

func (l *Lexer) skipWhiteSpace() {
	for l.Cur < len(l.Content) && unicode.IsSpace(l.current()) {
		l.readChar()
	}
}

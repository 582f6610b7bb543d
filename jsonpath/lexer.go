package jsonpath

import (
	"strings"
)

// Tokenize scans a whole path expression into a token stream terminated by
// exactly one EOI token. On an unrecognized byte it returns a SyntaxError
// whose span begins at the bad offset and extends to end-of-input; no
// partial token stream is returned.
func Tokenize(src string) ([]Token, error) {
	lx := &lexer{src: src}
	var tokens []Token
	for {
		tok, err := lx.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == EOI {
			return tokens, nil
		}
	}
}

type lexer struct {
	src string
	pos int
}

func (l *lexer) next() (Token, error) {
	l.skipWhitespace()
	if l.pos >= len(l.src) {
		return l.tok(EOI, l.pos, l.pos), nil
	}
	start := l.pos
	c := l.src[l.pos]

	switch {
	case isIdentStart(c):
		return l.lexIdent(start), nil
	case c == '`':
		return l.lexBacktick(start)
	case c == '"' || c == '\'':
		return l.lexQuoted(start, c)
	case isDigit(c):
		return l.lexNumber(start), nil
	case c == '-':
		if l.pos+1 < len(l.src) && isDigit(l.src[l.pos+1]) {
			return l.lexNumber(start), nil
		}
		l.pos++
		return l.tok(Minus, start, l.pos), nil
	}
	return l.lexPunct(start)
}

func (l *lexer) skipWhitespace() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\r', '\n', '\f':
			l.pos++
		default:
			return
		}
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || isDigit(c) || c == '$'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func (l *lexer) lexIdent(start int) Token {
	l.pos++
	for l.pos < len(l.src) && isIdentCont(l.src[l.pos]) {
		l.pos++
	}
	text := l.src[start:l.pos]
	if kind, ok := keywords[strings.ToLower(text)]; ok {
		return l.tok(kind, start, l.pos)
	}
	return l.tok(Ident, start, l.pos)
}

// lexBacktick scans a backtick-delimited quoted string: no escape
// processing, runs until the next backtick.
func (l *lexer) lexBacktick(start int) (Token, error) {
	l.pos++ // opening `
	for l.pos < len(l.src) && l.src[l.pos] != '`' {
		l.pos++
	}
	if l.pos >= len(l.src) {
		return Token{}, l.syntaxErr(start)
	}
	l.pos++ // closing `
	return l.tok(QuotedString, start, l.pos), nil
}

// lexQuoted scans a double- or single-quoted string with `\.` escapes and
// doubled-quote (`""`/`''`) escaping.
func (l *lexer) lexQuoted(start int, q byte) (Token, error) {
	l.pos++ // opening quote
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == '\\' && l.pos+1 < len(l.src) {
			l.pos += 2
			continue
		}
		if c == q {
			if l.pos+1 < len(l.src) && l.src[l.pos+1] == q {
				l.pos += 2
				continue
			}
			l.pos++
			return l.tok(QuotedString, start, l.pos), nil
		}
		l.pos++
	}
	return Token{}, l.syntaxErr(start)
}

// lexNumber scans LiteralInteger or LiteralFloat, with an optional leading
// sign already known to be followed by a digit.
func (l *lexer) lexNumber(start int) Token {
	if l.src[l.pos] == '-' {
		l.pos++
	}
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
	isFloat := false
	if l.pos < len(l.src) && l.src[l.pos] == '.' {
		isFloat = true
		l.pos++
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
	}
	if l.pos < len(l.src) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
		save := l.pos
		l.pos++
		if l.pos < len(l.src) && (l.src[l.pos] == '+' || l.src[l.pos] == '-') {
			l.pos++
		}
		if l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
				l.pos++
			}
			isFloat = true
		} else {
			l.pos = save // not actually an exponent; back off
		}
	}
	if isFloat {
		return l.tok(LiteralFloat, start, l.pos)
	}
	return l.tok(LiteralInteger, start, l.pos)
}

// lexPunct scans punctuation, preferring the longest valid match.
func (l *lexer) lexPunct(start int) (Token, error) {
	rest := l.src[l.pos:]
	for _, p := range punctuators {
		if strings.HasPrefix(rest, p.text) {
			l.pos += len(p.text)
			return l.tok(p.kind, start, l.pos), nil
		}
	}
	return Token{}, l.syntaxErr(start)
}

// punctuators is tried in order, longest-spelling first, so that e.g. "<=>"
// is preferred over "<=" and "<".
var punctuators = []struct {
	text string
	kind Kind
}{
	{"<=>", Spaceship},
	{"==", DoubleEq},
	{"<>", NotEq},
	{"!=", NotEq},
	{"<=", Lte},
	{">=", Gte},
	{"||", PipePipe},
	{"&&", AmpAmp},
	{"..", DotDot},
	{"::", ColonColon},
	{"$", Dollar},
	{"=", Eq},
	{"<", Lt},
	{">", Gt},
	{"+", Plus},
	{"-", Minus},
	{"*", Star},
	{"/", Slash},
	{"%", Percent},
	{"(", LParen},
	{")", RParen},
	{",", Comma},
	{".", Period},
	{":", Colon},
	{";", Semicolon},
	{"\\", Backslash},
	{"[", LBracket},
	{"]", RBracket},
	{"^", Caret},
	{"{", LBrace},
	{"}", RBrace},
	{"@", At},
	{"?", Question},
}

func (l *lexer) tok(kind Kind, start, end int) Token {
	return Token{Kind: kind, Source: l.src, Span: Span{Start: start, End: end}}
}

func (l *lexer) syntaxErr(start int) error {
	return &SyntaxError{
		Message: "unable to recognize the rest of the input",
		Span:    Span{Start: start, End: len(l.src)},
	}
}

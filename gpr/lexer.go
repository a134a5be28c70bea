package gpr

import (
	"strings"
	"unicode"
)

// tokenKind discriminates lexer output.
type tokenKind int

const (
	tokIdent tokenKind = iota // gene identifier
	tokAnd                    // keyword "and" (any case)
	tokOr                     // keyword "or" (any case)
	tokLParen
	tokRParen
)

// token is a single lexeme with its byte offset in the rule text.
type token struct {
	kind tokenKind
	text string
	pos  int
}

// lex splits a rule into tokens. Parentheses are single-character tokens;
// any other run of non-space, non-paren characters is one word. Words
// equal to "and"/"or" under case folding become operators, everything
// else is a gene identifier (identifiers may contain dots, dashes,
// colons - anything but spaces and parentheses).
func lex(text string) []token {
	var (
		toks  []token
		start = -1 // start offset of the word being accumulated
	)
	flush := func(end int) {
		if start < 0 {
			return
		}
		word := text[start:end]
		switch {
		case strings.EqualFold(word, "and"):
			toks = append(toks, token{kind: tokAnd, text: word, pos: start})
		case strings.EqualFold(word, "or"):
			toks = append(toks, token{kind: tokOr, text: word, pos: start})
		default:
			toks = append(toks, token{kind: tokIdent, text: word, pos: start})
		}
		start = -1
	}
	for i, r := range text {
		switch {
		case unicode.IsSpace(r):
			flush(i)
		case r == '(':
			flush(i)
			toks = append(toks, token{kind: tokLParen, text: "(", pos: i})
		case r == ')':
			flush(i)
			toks = append(toks, token{kind: tokRParen, text: ")", pos: i})
		default:
			if start < 0 {
				start = i
			}
		}
	}
	flush(len(text))
	return toks
}

// Copyright (c) 2026, The css-typed-om-polyfill Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lexer implements the single-pass tokenizer for the CSS value
// micro-language: numbers with units, identifiers, the calc() math
// sublanguage punctuation, and function-call headers.
package lexer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	tdwparse "github.com/tdewolff/parse/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/oy3o/css-typed-om-polyfill/dimension"
)

var lowerCaser = cases.Lower(language.Und)

// Lexer scans value text into a stream of Tokens.
type Lexer struct {
	src    []byte
	pos    int
	peeked *Token
}

// New returns a Lexer positioned at the start of text.
func New(text string) *Lexer {
	return &Lexer{src: []byte(text)}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() Token {
	if lx.peeked == nil {
		tok := lx.scan()
		lx.peeked = &tok
	}
	return *lx.peeked
}

// Next consumes and returns the next token.
func (lx *Lexer) Next() Token {
	if lx.peeked != nil {
		tok := *lx.peeked
		lx.peeked = nil
		return tok
	}
	return lx.scan()
}

func (lx *Lexer) atEnd() bool { return lx.pos >= len(lx.src) }

func (lx *Lexer) byteAt(i int) byte {
	if i < 0 || i >= len(lx.src) {
		return 0
	}
	return lx.src[i]
}

func (lx *Lexer) runeAt(i int) (rune, int) {
	if i >= len(lx.src) {
		return 0, 0
	}
	return utf8.DecodeRune(lx.src[i:])
}

func isWhitespace(b byte) bool { return b <= 0x20 }

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isIdentStartRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || r >= 0x80
}

func isIdentContRune(r rune) bool {
	return isIdentStartRune(r) || (r >= '0' && r <= '9') || r == '-'
}

func (lx *Lexer) skipWhitespace() {
	for !lx.atEnd() && isWhitespace(lx.src[lx.pos]) {
		lx.pos++
	}
}

// scan performs the actual tokenization work for one token.
func (lx *Lexer) scan() Token {
	lx.skipWhitespace()
	start := lx.pos
	if lx.atEnd() {
		return Token{Kind: EOF, Pos: start}
	}

	b := lx.src[lx.pos]

	switch b {
	case '(':
		lx.pos++
		return Token{Kind: OPEN, Text: "(", Pos: start}
	case ')':
		lx.pos++
		return Token{Kind: CLOSE, Text: ")", Pos: start}
	case ',':
		lx.pos++
		return Token{Kind: COMMA, Text: ",", Pos: start}
	case '+', '*', '/':
		lx.pos++
		return Token{Kind: OP, Text: string(b), Pos: start}
	}

	if isDigit(b) || (b == '.' && isDigit(lx.byteAt(lx.pos+1))) {
		return lx.scanNumber(start)
	}

	if b == '-' {
		next, width := lx.runeAt(lx.pos + 1)
		switch {
		case next != 0 && (isDigit(byte(next)) || next == '.'):
			return lx.scanNumber(start)
		case next != 0 && (isIdentStartRune(next) || next == '-'):
			return lx.scanIdentOrFunc(start)
		default:
			_ = width
			lx.pos++
			return Token{Kind: OP, Text: "-", Pos: start}
		}
	}

	r, width := lx.runeAt(lx.pos)
	if isIdentStartRune(r) {
		return lx.scanIdentOrFunc(start)
	}

	lx.pos += maxInt(width, 1)
	return Token{Kind: ERR, Text: string(r), Pos: start}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// scanNumber scans an optionally-signed decimal with optional exponent,
// then looks at the following character(s) to decide between a NUM and
// a DIM token.
func (lx *Lexer) scanNumber(start int) Token {
	n := tdwparse.Number(lx.src[lx.pos:])
	if n <= 0 {
		lx.pos++
		return Token{Kind: ERR, Text: "invalid number", Pos: start}
	}
	numText := string(lx.src[lx.pos : lx.pos+n])
	lx.pos += n

	val, err := strconv.ParseFloat(numText, 64)
	if err != nil {
		return Token{Kind: ERR, Text: "invalid number: " + numText, Pos: start}
	}

	// A finite decimal/exponent literal of this grammar cannot itself
	// overflow to Inf for any realistic input length, but guard anyway
	// a parsed value must be finite.
	if isInfOrNaN(val) {
		return Token{Kind: ERR, Text: "non-finite number: " + numText, Pos: start}
	}

	if lx.byteAt(lx.pos) == '%' {
		lx.pos++
		return Token{Kind: DIM, Text: "percent", Num: val, Pos: start}
	}

	r, _ := lx.runeAt(lx.pos)
	if isIdentStartRune(r) {
		unitStart := lx.pos
		lx.consumeIdentRunes()
		raw := string(lx.src[unitStart:lx.pos])
		unit := lowerCaser.String(raw)
		if !dimension.IsUnit(unit) {
			return Token{Kind: ERR, Text: "unknown unit: " + raw, Pos: start}
		}
		return Token{Kind: DIM, Text: unit, Num: val, Pos: start}
	}

	return Token{Kind: NUM, Text: "number", Num: val, Pos: start}
}

func isInfOrNaN(v float64) bool {
	return v != v || v > maxFloat || v < -maxFloat
}

const maxFloat = 1.797693134862315708145274237317043567981e+308

// consumeIdentRunes advances over a maximal run of identifier-continue
// runes (letters, digits, '_', '-', non-ASCII).
func (lx *Lexer) consumeIdentRunes() {
	for !lx.atEnd() {
		r, w := lx.runeAt(lx.pos)
		if !isIdentContRune(r) {
			return
		}
		lx.pos += w
	}
}

// scanIdentOrFunc scans an identifier (optionally beginning with '-' or
// '--') and decides whether it is a FUNC header by looking ahead across
// optional whitespace for '('.
func (lx *Lexer) scanIdentOrFunc(start int) Token {
	if lx.byteAt(lx.pos) == '-' {
		lx.pos++
	}
	lx.consumeIdentRunes()
	raw := string(lx.src[start:lx.pos])

	// Look ahead across whitespace for '(' without committing unless found.
	look := lx.pos
	for look < len(lx.src) && isWhitespace(lx.src[look]) {
		look++
	}
	if look < len(lx.src) && lx.src[look] == '(' {
		lx.pos = look + 1
		return Token{Kind: FUNC, Text: lowerCaser.String(raw), Pos: start}
	}

	return Token{Kind: IDENT, Text: raw, Pos: start}
}

// Rest returns the remaining unscanned text, including anything held in
// the one-token lookahead buffer.
func (lx *Lexer) Rest() string {
	if lx.peeked != nil {
		// Reconstruct: the peeked token's text doesn't carry trailing
		// trivia, so just report from its recorded start position.
		return string(lx.src[lx.peeked.Pos:])
	}
	return string(lx.src[lx.pos:])
}

// Pos returns the current byte offset: the start of the buffered
// lookahead token if there is one, else the scan position.
func (lx *Lexer) Pos() int {
	if lx.peeked != nil {
		return lx.peeked.Pos
	}
	return lx.pos
}

// SeekTo repositions the scanner to an absolute byte offset and discards
// any buffered lookahead token.
func (lx *Lexer) SeekTo(pos int) {
	lx.peeked = nil
	lx.pos = pos
}

// Len returns the total length, in bytes, of the source text.
func (lx *Lexer) Len() int { return len(lx.src) }

// Source returns the original source text.
func (lx *Lexer) Source() string { return string(lx.src) }

// TrimmedEmpty reports whether text is empty once surrounding ASCII
// whitespace (<= 0x20) is trimmed first.
func TrimmedEmpty(text string) bool {
	return strings.TrimFunc(text, func(r rune) bool { return r <= 0x20 }) == ""
}

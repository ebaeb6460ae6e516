// Package parser implements a recursive-descent JSON reader over an
// in-memory text buffer. It materializes a full models.Value tree before
// anything is queryable; there is no streaming or incremental access.
// All strings and container nodes are charged to a caller-supplied arena,
// so a failed or discarded parse is reclaimed by rewinding that arena.
//
// The accepted grammar is deliberately a superset of strict JSON: numbers
// may start with '.', strings carry their bytes verbatim with no escape
// decoding (a backslash is stored literally), and null is not a value.
package parser

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mcncl/arenajson/internal/arena"
	"github.com/mcncl/arenajson/internal/errors"
	"github.com/mcncl/arenajson/internal/models"
)

// DefaultMaxDepth bounds array/object nesting so adversarial input cannot
// overflow the goroutine stack.
const DefaultMaxDepth = 128

// Parser reads one JSON value from a byte buffer. The cursor always stays
// within [0, len(src)].
type Parser struct {
	src      []byte
	pos      int
	arena    *arena.Arena
	maxDepth int
}

// Option configures a Parser.
type Option func(*Parser)

// WithMaxDepth overrides the maximum array/object nesting depth.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

// New creates a Parser over src. Strings and container nodes allocated
// during the parse are charged to a; the caller owns both the buffer and
// the arena.
func New(src []byte, a *arena.Arena, opts ...Option) *Parser {
	p := &Parser{
		src:      src,
		arena:    a,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Pos returns the current cursor offset, useful for diagnostics.
func (p *Parser) Pos() int {
	return p.pos
}

// Parse reads exactly one top-level value. On failure no usable value is
// returned and nothing allocated for the failed parse is reclaimed; the
// caller rewinds the arena if it wants to reuse the space.
func (p *Parser) Parse() (models.Value, error) {
	return p.parseValue(0)
}

// parseValue dispatches on the first non-whitespace character:
// digit or '.' for numbers, '"' for strings, 't'/'f' for booleans,
// '[' for arrays, '{' for objects.
func (p *Parser) parseValue(depth int) (models.Value, error) {
	if depth > p.maxDepth {
		return models.Value{}, errors.ErrDepthExceeded
	}

	p.skipWhitespace()
	if p.eof() {
		return models.Value{}, errors.NewSyntaxError(p.pos, "value", 0)
	}

	switch c := p.src[p.pos]; {
	case isDigit(c) || c == '.':
		return p.parseNumber()
	case c == '"':
		return p.parseString()
	case c == 't' || c == 'f':
		return p.parseBoolean()
	case c == '[':
		return p.parseArray(depth)
	case c == '{':
		return p.parseObject(depth)
	default:
		return models.Value{}, errors.NewSyntaxError(p.pos, "value", c)
	}
}

// parseNumber consumes the maximal valid numeric prefix: digits, an
// optional fraction, an optional exponent. A leading '.' is accepted,
// which is wider than strict JSON.
func (p *Parser) parseNumber() (models.Value, error) {
	start := p.pos

	for !p.eof() && isDigit(p.src[p.pos]) {
		p.pos++
	}
	if !p.eof() && p.src[p.pos] == '.' {
		p.pos++
		for !p.eof() && isDigit(p.src[p.pos]) {
			p.pos++
		}
	}
	if !p.eof() && (p.src[p.pos] == 'e' || p.src[p.pos] == 'E') {
		mark := p.pos
		p.pos++
		if !p.eof() && (p.src[p.pos] == '+' || p.src[p.pos] == '-') {
			p.pos++
		}
		if p.eof() || !isDigit(p.src[p.pos]) {
			// "1e" or "1e+" without digits: the exponent is not part
			// of the numeric prefix.
			p.pos = mark
		} else {
			for !p.eof() && isDigit(p.src[p.pos]) {
				p.pos++
			}
		}
	}

	text := string(p.src[start:p.pos])
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return models.Value{}, errors.NewSyntaxError(start, "number", p.src[start])
	}
	return models.NumberValue(n), nil
}

// parseString consumes raw bytes up to the closing quote. Escape
// sequences are not interpreted; a backslash is stored literally. The
// text is duplicated into the arena.
func (p *Parser) parseString() (models.Value, error) {
	p.pos++ // opening quote, guaranteed by the dispatch
	start := p.pos
	for !p.eof() && p.src[p.pos] != '"' {
		p.pos++
	}
	if p.eof() {
		return models.Value{}, errors.NewSyntaxError(p.pos, `closing '"'`, 0)
	}

	s, err := p.arena.CopyString(string(p.src[start:p.pos]))
	if err != nil {
		return models.Value{}, err
	}
	p.pos++ // closing quote
	return models.StringValue(s), nil
}

// parseBoolean consumes the maximal alphabetic run and requires it to be
// exactly "true" or "false". The token is classified in arena scratch
// space and the stamp rewound afterwards, so the temporary copy never
// outlives this call.
func (p *Parser) parseBoolean() (models.Value, error) {
	start := p.pos
	for !p.eof() && isAlpha(p.src[p.pos]) {
		p.pos++
	}

	stamp := p.arena.Mark()
	token, err := p.arena.Copy(p.src[start:p.pos])
	if err != nil {
		return models.Value{}, err
	}
	isTrue := string(token) == "true"
	isFalse := string(token) == "false"
	p.arena.Rewind(stamp)

	if !isTrue && !isFalse {
		return models.Value{}, errors.NewSyntaxError(start, "'true' or 'false'", p.src[start])
	}
	return models.BooleanValue(isTrue), nil
}

// parseArray reads '[' value (',' value)* ']'. A missing ']' or a bad
// element fails the whole parse.
func (p *Parser) parseArray(depth int) (models.Value, error) {
	value := models.ArrayValue()
	arr, _ := value.AsArray()

	p.pos++ // '[', guaranteed by the dispatch
	p.skipWhitespace()
	if !p.eof() && p.src[p.pos] == ']' {
		p.pos++
		return value, nil
	}

	for {
		elem, err := p.parseValue(depth + 1)
		if err != nil {
			return models.Value{}, err
		}
		if err := arr.Append(p.arena, elem); err != nil {
			return models.Value{}, err
		}
		p.skipWhitespace()
		if p.eof() || p.src[p.pos] != ',' {
			break
		}
		p.pos++
	}

	p.skipWhitespace()
	if err := p.expect(']'); err != nil {
		return models.Value{}, err
	}
	return value, nil
}

// parseObject reads '{' "key" ':' value (',' "key" ':' value)* '}'.
// Duplicate keys are kept; lookup order decides which one wins.
func (p *Parser) parseObject(depth int) (models.Value, error) {
	value := models.ObjectValue()
	obj, _ := value.AsObject()

	p.pos++ // '{', guaranteed by the dispatch
	p.skipWhitespace()
	if !p.eof() && p.src[p.pos] == '}' {
		p.pos++
		return value, nil
	}

	for {
		key, elem, err := p.parseEntry(depth)
		if err != nil {
			return models.Value{}, err
		}
		if err := obj.Append(p.arena, key, elem); err != nil {
			return models.Value{}, err
		}
		p.skipWhitespace()
		if p.eof() || p.src[p.pos] != ',' {
			break
		}
		p.pos++
	}

	p.skipWhitespace()
	if err := p.expect('}'); err != nil {
		return models.Value{}, err
	}
	return value, nil
}

// parseEntry reads one quoted key, the ':' separator and the value that
// follows. The key is duplicated into the arena like any other string.
func (p *Parser) parseEntry(depth int) (string, models.Value, error) {
	p.skipWhitespace()
	if err := p.expect('"'); err != nil {
		return "", models.Value{}, err
	}
	start := p.pos
	for !p.eof() && p.src[p.pos] != '"' {
		p.pos++
	}
	if p.eof() {
		return "", models.Value{}, errors.NewSyntaxError(p.pos, `closing '"'`, 0)
	}
	key, err := p.arena.CopyString(string(p.src[start:p.pos]))
	if err != nil {
		return "", models.Value{}, err
	}
	p.pos++ // closing quote

	p.skipWhitespace()
	if err := p.expect(':'); err != nil {
		return "", models.Value{}, err
	}

	value, err := p.parseValue(depth + 1)
	if err != nil {
		return "", models.Value{}, err
	}
	return key, value, nil
}

// expect consumes c or fails with a SyntaxError naming it.
func (p *Parser) expect(c byte) error {
	if p.eof() {
		return errors.NewSyntaxError(p.pos, fmt.Sprintf("%q", c), 0)
	}
	if p.src[p.pos] != c {
		return errors.NewSyntaxError(p.pos, fmt.Sprintf("%q", c), p.src[p.pos])
	}
	p.pos++
	return nil
}

func (p *Parser) skipWhitespace() {
	for !p.eof() && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

func (p *Parser) eof() bool {
	return p.pos >= len(p.src)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

// ParseBytes parses one top-level value from src, charging allocations
// to a.
func ParseBytes(src []byte, a *arena.Arena, opts ...Option) (models.Value, error) {
	return New(src, a, opts...).Parse()
}

// ParseString parses one top-level value from a string.
func ParseString(input string, a *arena.Arena, opts ...Option) (models.Value, error) {
	if strings.TrimSpace(input) == "" {
		return models.Value{}, errors.NewInputError("input string is empty", errors.ErrEmptyInput)
	}
	return ParseBytes([]byte(input), a, opts...)
}

// ParseFile reads an entire file into memory and parses it. The parser
// requires the full byte content up front, not a stream.
func ParseFile(path string, a *arena.Arena, opts ...Option) (models.Value, error) {
	if strings.TrimSpace(path) == "" {
		return models.Value{}, errors.NewInputError("file path is empty", errors.ErrFileNotFound)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Value{}, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", path),
				errors.ErrFileNotFound,
			)
		}
		return models.Value{}, errors.NewInputError(
			fmt.Sprintf("failed to read file '%s'", path),
			err,
		)
	}
	if len(data) == 0 {
		return models.Value{}, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", path),
			errors.ErrFileEmpty,
		)
	}
	return ParseBytes(data, a, opts...)
}

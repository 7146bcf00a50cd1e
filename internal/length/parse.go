package length

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrSyntax is returned by ParseStrict for malformed expressions
	ErrSyntax = errors.New("invalid length expression")

	termRegex  = regexp.MustCompile(`(-?[\d.]+)(px|vw|vh|%)`)
	spaceRegex = regexp.MustCompile(`\s+`)
)

// Parse sums every <number><unit> occurrence in text.
// Unknown tokens and unparseable numbers contribute nothing.
// A minus is read as the sign of the number after it, so a doubled sign
// such as "10px - -5px" sums to 5px. ParseStrict handles that correctly.
func Parse(text string) Expr {
	var e Expr
	compact := spaceRegex.ReplaceAllString(text, "")
	for _, m := range termRegex.FindAllStringSubmatch(compact, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		e = e.Add(unitExpr(v, m[2]))
	}
	return e
}

// ParseStrict parses a single term or a calc() sum of terms, rejecting
// anything it does not fully understand.
func ParseStrict(text string) (Expr, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Expr{}, fmt.Errorf("%w: empty string", ErrSyntax)
	}

	if strings.HasPrefix(s, "calc(") {
		if !strings.HasSuffix(s, ")") {
			return Expr{}, fmt.Errorf("%w: unterminated calc in %q", ErrSyntax, text)
		}
		s = strings.TrimSpace(s[len("calc(") : len(s)-1])
		if s == "" {
			return Expr{}, fmt.Errorf("%w: empty calc in %q", ErrSyntax, text)
		}
	}

	if s == "0" {
		return Expr{}, nil
	}

	p := &scanner{src: s}
	var e Expr
	first := true
	for {
		p.skipSpace()
		if p.done() {
			break
		}

		sign := 1.0
		if !first {
			switch p.peek() {
			case '+':
			case '-':
				sign = -1
			default:
				return Expr{}, fmt.Errorf("%w: expected + or - at offset %d in %q", ErrSyntax, p.pos, text)
			}
			p.pos++
			p.skipSpace()
		}

		v, unit, err := p.term()
		if err != nil {
			return Expr{}, fmt.Errorf("%w in %q", err, text)
		}
		e = e.Add(unitExpr(sign*v, unit))
		first = false
	}

	if first {
		return Expr{}, fmt.Errorf("%w: no terms in %q", ErrSyntax, text)
	}
	return e, nil
}

// MustParse is ParseStrict for literals known to be valid
func MustParse(text string) Expr {
	e, err := ParseStrict(text)
	if err != nil {
		panic(err)
	}
	return e
}

func unitExpr(v float64, unit string) Expr {
	switch unit {
	case "px":
		return Px(v)
	case "vw":
		return Vw(v)
	case "vh":
		return Vh(v)
	case "%":
		return Percent(v)
	}
	return Expr{}
}

type scanner struct {
	src string
	pos int
}

func (s *scanner) done() bool { return s.pos >= len(s.src) }

func (s *scanner) peek() byte { return s.src[s.pos] }

func (s *scanner) skipSpace() {
	for !s.done() && (s.peek() == ' ' || s.peek() == '\t' || s.peek() == '\n') {
		s.pos++
	}
}

// term reads an optionally negative number followed by a unit
func (s *scanner) term() (float64, string, error) {
	start := s.pos
	if !s.done() && s.peek() == '-' {
		s.pos++
	}
	digits := s.pos
	for !s.done() && (s.peek() >= '0' && s.peek() <= '9' || s.peek() == '.') {
		s.pos++
	}
	if s.pos == digits {
		return 0, "", fmt.Errorf("%w: expected number at offset %d", ErrSyntax, start)
	}
	v, err := strconv.ParseFloat(s.src[start:s.pos], 64)
	if err != nil {
		return 0, "", fmt.Errorf("%w: bad number %q", ErrSyntax, s.src[start:s.pos])
	}

	for _, unit := range []string{"px", "vw", "vh", "%"} {
		if strings.HasPrefix(s.src[s.pos:], unit) {
			s.pos += len(unit)
			return v, unit, nil
		}
	}
	return 0, "", fmt.Errorf("%w: missing unit after %q", ErrSyntax, s.src[start:s.pos])
}

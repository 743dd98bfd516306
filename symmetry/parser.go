package symmetry

import (
	"fmt"
	"math/big"

	"github.com/Liozou/crystalnets-core/rational"
	"github.com/Liozou/crystalnets-core/report"
)

type tokenKind int

const (
	tokInt tokenKind = iota
	tokIdent
	tokPlus
	tokMinus
	tokSlash
	tokSep // ',' or ';'
)

type token struct {
	kind tokenKind
	text string
	idx  int // identifier column index, valid when kind == tokIdent
}

func tokenize(s string, ids [3]string) ([]token, error) {
	toks := make([]token, 0, len(s))
	runes := []rune(s)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == ' ' || r == '\t' || r == '\n':
			i++
		case r == '+':
			toks = append(toks, token{kind: tokPlus})
			i++
		case r == '-':
			toks = append(toks, token{kind: tokMinus})
			i++
		case r == '/':
			toks = append(toks, token{kind: tokSlash})
			i++
		case r == ',' || r == ';':
			toks = append(toks, token{kind: tokSep})
			i++
		case r >= '0' && r <= '9':
			j := i
			for j < len(runes) && runes[j] >= '0' && runes[j] <= '9' {
				j++
			}
			toks = append(toks, token{kind: tokInt, text: string(runes[i:j])})
			i = j
		default:
			matched := -1
			matchLen := 0
			for idIdx, id := range ids {
				if id == "" {
					continue
				}
				idRunes := []rune(id)
				if i+len(idRunes) > len(runes) {
					continue
				}
				if string(runes[i:i+len(idRunes)]) == id && len(idRunes) > matchLen {
					matched = idIdx
					matchLen = len(idRunes)
				}
			}
			if matched == -1 {
				return nil, fmt.Errorf("%w: unexpected character %q at position %d", ErrParse, r, i)
			}
			toks = append(toks, token{kind: tokIdent, idx: matched})
			i += matchLen
		}
	}
	return toks, nil
}

// term accumulates a pending signed rational coefficient while scanning.
type term struct {
	sign    int64
	intPart *big.Int
	ratPart *big.Rat
	active  bool
}

func (t *term) value() *big.Rat {
	var v *big.Rat
	switch {
	case t.ratPart != nil:
		v = new(big.Rat).Set(t.ratPart)
	case t.intPart != nil:
		v = new(big.Rat).SetInt(t.intPart)
	default:
		v = big.NewRat(1, 1)
	}
	if t.sign < 0 {
		v.Neg(v)
	}
	return v
}

// ParseOperator parses a single symmetry operator string such as
// "-x+1/2, y, z+1/4" against the given reference identifiers, per the
// spec C2 grammar:
//
//  1. identifiers consume any pending signed rational as a coefficient
//     (defaulting to ±1 when absent) into the matrix column they name;
//  2. a signed rational not consumed by a following identifier is
//     folded into the row's translation offset (warning if the offset
//     already holds a non-zero value, since a well-formed operator
//     string only ever contributes one bare term per dimension);
//  3. a row must contain at least one identifier coefficient;
//  4. the string must declare exactly three dimensions.
func ParseOperator(s string, ids [3]string, rep report.Reporter) (EquivalentPosition, error) {
	toks, err := tokenize(s, ids)
	if err != nil {
		return EquivalentPosition{}, err
	}

	m := rational.Mat3{}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[r][c] = new(big.Rat)
		}
	}
	offset := rational.ZeroVec3()

	row := 0
	wroteCoeff := false
	cur := term{sign: 1}

	flushOffset := func() error {
		if !cur.active {
			return nil
		}
		if offset[row].Sign() != 0 {
			rep.Warnf("symmetry: folding signed rational into already non-zero offset for dimension %d", row+1)
		}
		offset[row].Add(offset[row], cur.value())
		cur = term{sign: 1}
		return nil
	}

	for i := 0; i < len(toks); i++ {
		tk := toks[i]
		switch tk.kind {
		case tokPlus, tokMinus:
			if cur.intPart != nil || cur.ratPart != nil {
				if err := flushOffset(); err != nil {
					return EquivalentPosition{}, err
				}
			}
			sgn := int64(1)
			if tk.kind == tokMinus {
				sgn = -1
			}
			if cur.active && cur.intPart == nil && cur.ratPart == nil {
				cur.sign *= sgn
			} else {
				cur.sign = sgn
				cur.active = true
			}

		case tokInt:
			n := new(big.Int)
			n.SetString(tk.text, 10)
			cur.intPart = n
			cur.active = true

		case tokSlash:
			if cur.intPart == nil || cur.ratPart != nil {
				return EquivalentPosition{}, fmt.Errorf("%w: '/' without a preceding integer numerator", ErrParse)
			}
			if i+1 >= len(toks) || toks[i+1].kind != tokInt {
				return EquivalentPosition{}, fmt.Errorf("%w: '/' not followed by an integer denominator", ErrParse)
			}
			den := new(big.Int)
			den.SetString(toks[i+1].text, 10)
			if den.Sign() == 0 {
				return EquivalentPosition{}, fmt.Errorf("%w: zero denominator", ErrParse)
			}
			cur.ratPart = new(big.Rat).SetFrac(cur.intPart, den)
			cur.intPart = nil
			i++ // consume denominator token

		case tokIdent:
			if row > 2 {
				return EquivalentPosition{}, fmt.Errorf("%w: more than three dimensions declared", ErrParse)
			}
			coeff := cur.value()
			m[row][tk.idx].Add(m[row][tk.idx], coeff)
			cur = term{sign: 1}
			wroteCoeff = true

		case tokSep:
			if !wroteCoeff {
				return EquivalentPosition{}, fmt.Errorf("%w: no coefficient written for dimension %d", ErrParse, row+1)
			}
			if err := flushOffset(); err != nil {
				return EquivalentPosition{}, err
			}
			row++
			if row > 2 {
				return EquivalentPosition{}, fmt.Errorf("%w: more than three dimensions declared", ErrParse)
			}
			wroteCoeff = false
		}
	}

	if row != 2 {
		return EquivalentPosition{}, fmt.Errorf("%w: fewer than three dimensions declared", ErrParse)
	}
	if !wroteCoeff {
		return EquivalentPosition{}, fmt.Errorf("%w: no coefficient written for dimension %d", ErrParse, row+1)
	}
	if err := flushOffset(); err != nil {
		return EquivalentPosition{}, err
	}

	return EquivalentPosition{M: m, T: offset}, nil
}

// ParseOperators parses every string in ops using the identifiers
// discovered within the set (or the default "x","y","z").
func ParseOperators(ops []string, rep report.Reporter) ([]EquivalentPosition, [3]string, error) {
	ids := DiscoverReferenceIdentifiers(ops)
	out := make([]EquivalentPosition, 0, len(ops))
	for _, s := range ops {
		e, err := ParseOperator(s, ids, rep)
		if err != nil {
			return nil, ids, fmt.Errorf("symmetry: parsing %q: %w", s, err)
		}
		out = append(out, e)
	}
	return out, ids, nil
}

package cifio

import "fmt"

// DefaultTokenizer is a minimal generic-text tokenizer over the
// grammar spec §6 names for a CIF value line: integer runs, identifier
// runs (any span of letters or underscores), the five punctuation
// marks (+ - / , ;), and whitespace, each reported as a byte-offset span. It is
// grounded on symmetry.tokenize's single-pass []rune scanner, with the
// fixed x/y/z identifier set replaced by "any letter run" since this
// tokenizer has no reference identifiers to match against.
type DefaultTokenizer struct{}

// Tokenize implements Tokenizer.
func (DefaultTokenizer) Tokenize(line string) ([]Token, error) {
	runes := []rune(line)
	var toks []Token
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case r == ' ' || r == '\t':
			j := i
			for j < len(runes) && (runes[j] == ' ' || runes[j] == '\t') {
				j++
			}
			toks = append(toks, Token{Start: i, End: j, Kind: KindWhitespace})
			i = j
		case r == '+':
			toks = append(toks, Token{Start: i, End: i + 1, Kind: KindPlus})
			i++
		case r == '-':
			toks = append(toks, Token{Start: i, End: i + 1, Kind: KindMinus})
			i++
		case r == '/':
			toks = append(toks, Token{Start: i, End: i + 1, Kind: KindSlash})
			i++
		case r == ',':
			toks = append(toks, Token{Start: i, End: i + 1, Kind: KindComma})
			i++
		case r == ';':
			toks = append(toks, Token{Start: i, End: i + 1, Kind: KindSemicolon})
			i++
		case r >= '0' && r <= '9':
			j := i
			for j < len(runes) && runes[j] >= '0' && runes[j] <= '9' {
				j++
			}
			toks = append(toks, Token{Start: i, End: j, Kind: KindInteger})
			i = j
		case isIdentRune(r):
			j := i
			for j < len(runes) && isIdentRune(runes[j]) {
				j++
			}
			toks = append(toks, Token{Start: i, End: j, Kind: KindIdentifier})
			i = j
		default:
			return nil, fmt.Errorf("cifio: unexpected character %q at position %d", r, i)
		}
	}
	toks = append(toks, Token{Start: len(runes), End: len(runes), Kind: KindEnd})
	return toks, nil
}

func isIdentRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

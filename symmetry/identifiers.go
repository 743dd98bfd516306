package symmetry

import "strings"

// DiscoverReferenceIdentifiers scans ops for the first entry that
// contains none of the operator characters '+', '-', '/' and splits,
// on ',' or ';', into exactly three non-empty identifier tokens. If no
// such entry exists, DefaultIdentifiers is returned.
func DiscoverReferenceIdentifiers(ops []string) [3]string {
	for _, s := range ops {
		if strings.ContainsAny(s, "+-/") {
			continue
		}
		parts := splitCommaSemicolon(s)
		if len(parts) != 3 {
			continue
		}
		var ids [3]string
		ok := true
		for i, p := range parts {
			p = strings.TrimSpace(p)
			if p == "" {
				ok = false
				break
			}
			ids[i] = p
		}
		if ok {
			return ids
		}
	}
	return DefaultIdentifiers
}

func splitCommaSemicolon(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' })
}

package domain

import "strings"

var wordSeparators = strings.NewReplacer("_", " ", ".", " ", "-", " ")

// MatchKeywords reports whether name satisfies a keyword filter.
//
// The first keyword that fires decides the result:
//
//	@x  name equals x            -> true
//	.x  name ends with x         -> true
//	+x  x is one of name's words -> true
//	-x  x is one of name's words -> false
//	x   name contains x          -> true
//
// Words are name split on '_', '.', '-' and whitespace. Whitespace-only keywords are empty
// constraints, and an exclusion that does not fire is neutral. When nothing fires the
// result is true only if every keyword was neutral, so an absent filter matches everything
// and a pure blacklist passes every name it does not name.
func MatchKeywords(keywords []string, name string) bool {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(wordSeparators.Replace(name)) {
		words[w] = struct{}{}
	}

	neutral := 0
	for _, k := range keywords {
		if strings.TrimSpace(k) == "" {
			neutral++
			continue
		}

		switch k[0] {
		case '@':
			if name == k[1:] {
				return true
			}
		case '.':
			if strings.HasSuffix(name, k[1:]) {
				return true
			}
		case '+':
			if _, ok := words[k[1:]]; ok {
				return true
			}
		case '-':
			if _, ok := words[k[1:]]; ok {
				return false
			}
			neutral++
		default:
			if strings.Contains(name, k) {
				return true
			}
		}
	}

	return len(keywords) == neutral
}

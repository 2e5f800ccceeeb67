package domain

import (
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Intention is a build variant such as debug or optimal.
type Intention string

// Known intentions.
const (
	IntentionIdentity    Intention = "identity"
	IntentionOptimal     Intention = "optimal"
	IntentionPortable    Intention = "portable"
	IntentionDebug       Intention = "debug"
	IntentionAuxiliary   Intention = "auxiliary"
	IntentionCapture     Intention = "capture"
	IntentionDelineation Intention = "delineation"
	IntentionProfile     Intention = "profile"
	IntentionCoverage    Intention = "coverage"
)

const (
	// CodeAll selects every coded intention.
	CodeAll = 'A'
	// CodeExclude inverts the selection: every coded intention except the named ones.
	CodeExclude = 'a'
)

type intentionInfo struct {
	rank int
	code rune
}

var intentions = map[Intention]intentionInfo{
	IntentionIdentity:    {rank: 1, code: 'I'},
	IntentionOptimal:     {rank: 2, code: 'O'},
	IntentionPortable:    {rank: 3, code: 'o'},
	IntentionDebug:       {rank: 4, code: 'g'},
	IntentionAuxiliary:   {rank: 5, code: 'U'},
	IntentionCapture:     {rank: 6, code: 'Y'},
	IntentionDelineation: {rank: 7},
	IntentionProfile:     {rank: 8, code: 'P'},
	IntentionCoverage:    {rank: 9, code: 'C'},
}

// Rank orders intentions; unknown intentions sort last.
func (i Intention) Rank() int {
	if info, ok := intentions[i]; ok {
		return info.rank
	}
	return len(intentions) + 1
}

// Code returns the flag letter of the intention, or zero when it has none.
func (i Intention) Code() rune {
	return intentions[i].code
}

// ParseIntention validates an intention name.
func ParseIntention(name string) (Intention, error) {
	i := Intention(strings.TrimSpace(name))
	if _, ok := intentions[i]; !ok {
		return "", zerr.With(zerr.Wrap(ErrUnknownIntention, "invalid intention"), "intention", name)
	}
	return i, nil
}

// ParseIntentions validates a list of names, dropping duplicates, in rank order.
func ParseIntentions(names []string) ([]Intention, error) {
	out := make([]Intention, 0, len(names))
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		i, err := ParseIntention(n)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return SortIntentions(out), nil
}

// CodedIntentions returns every intention that has a flag letter, in rank order.
func CodedIntentions() []Intention {
	out := make([]Intention, 0, len(intentions))
	for i, info := range intentions {
		if info.code != 0 {
			out = append(out, i)
		}
	}
	return SortIntentions(out)
}

// SelectIntentions interprets a string of intention flag letters, e.g. "gO" or "aC".
// 'A' selects all coded intentions; 'a' switches to exclusion mode. The result is in rank order.
func SelectIntentions(codes string) ([]Intention, error) {
	var selected []Intention
	exclude := false

	for _, c := range codes {
		switch c {
		case CodeAll:
			return CodedIntentions(), nil
		case CodeExclude:
			exclude = true
		default:
			i, ok := intentionByCode(c)
			if !ok {
				return nil, zerr.With(zerr.Wrap(ErrUnknownIntentionCode, "invalid intention flag"), "code", string(c))
			}
			selected = append(selected, i)
		}
	}

	if exclude {
		return ExcludeIntentions(selected), nil
	}

	return SortIntentions(selected), nil
}

// ExcludeIntentions returns the coded intentions not in excluded, in rank order.
func ExcludeIntentions(excluded []Intention) []Intention {
	var kept []Intention
	for _, i := range CodedIntentions() {
		if !slices.Contains(excluded, i) {
			kept = append(kept, i)
		}
	}
	return kept
}

func intentionByCode(c rune) (Intention, bool) {
	for i, info := range intentions {
		if info.code != 0 && info.code == c {
			return i, true
		}
	}
	return "", false
}

// SortIntentions returns a deduplicated copy in rank order.
func SortIntentions(in []Intention) []Intention {
	out := slices.Clone(in)
	slices.SortStableFunc(out, func(a, b Intention) int {
		return a.Rank() - b.Rank()
	})
	return slices.Compact(out)
}

// JoinIntentions joins intention names with sep.
func JoinIntentions(in []Intention, sep string) string {
	names := make([]string, len(in))
	for idx, i := range in {
		names[idx] = string(i)
	}
	return strings.Join(names, sep)
}

// RebuildLevel controls how strongly the build tool-chain invalidates its cache.
type RebuildLevel int

const (
	// RebuildRespect keeps existing build products.
	RebuildRespect RebuildLevel = iota
	// RebuildOverwrite rebuilds in place.
	RebuildOverwrite
	// RebuildRecreate recreates build products from scratch.
	RebuildRecreate
)

// NewRebuildLevel validates a numeric level.
func NewRebuildLevel(n int) (RebuildLevel, error) {
	if n < int(RebuildRespect) || n > int(RebuildRecreate) {
		return 0, zerr.With(zerr.Wrap(ErrInvalidRebuildLevel, "invalid rebuild level"), "level", n)
	}
	return RebuildLevel(n), nil
}

// String returns the level as the value handed to build tools.
func (l RebuildLevel) String() string {
	return strconv.Itoa(int(l))
}

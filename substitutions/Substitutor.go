// Package substitutions implements one-pass multiple string substitution with
// an explicit priority order between overlapping tokens.
package substitutions

import (
	"regexp"
	"strings"
)

// Substitution pairs a literal token with the text that replaces it.
type Substitution struct {
	Token string
	Value string
}

// Substitutor performs efficient one-pass multiple string substitution.
//
// The substitutions are compiled into a single alternation regexp in the
// order they were supplied.  Because the regexp engine prefers the earliest
// alternative at any given position, a token listed before another wins when
// both match at the same offset; tokens starting earlier in the input always
// win regardless of order.  Callers therefore list longer, more specific
// tokens first.
//
//	subs := []substitutions.Substitution{{`foo`, `bar`}, {`bar`, `foo`}, {`and`, `or`}}
//	substitutions.New(subs).Apply(`foo is bar, and bar is foo`) // => `bar is foo, or foo is bar`
type Substitutor struct {
	values map[string]string
	regex  *regexp.Regexp
}

// New compiles an ordered substitution table.  When the same token is listed
// twice, the first definition wins.
func New(subs []Substitution) *Substitutor {
	values := make(map[string]string, len(subs))
	quoted := make([]string, 0, len(subs))
	for _, sub := range subs {
		if _, ok := values[sub.Token]; ok {
			continue
		}
		values[sub.Token] = sub.Value
		quoted = append(quoted, regexp.QuoteMeta(sub.Token))
	}
	if len(quoted) == 0 {
		return &Substitutor{values: values}
	}
	return &Substitutor{
		values: values,
		regex:  regexp.MustCompile(strings.Join(quoted, `|`)),
	}
}

// Apply substitutes every token occurrence in the string; unrecognized text
// is copied through verbatim.
func (s *Substitutor) Apply(str string) string {
	if s.regex == nil {
		return str
	}
	return s.regex.ReplaceAllStringFunc(str, func(match string) string {
		return s.values[match]
	})
}

// InString substitutes in a single pass without retaining the compiled table.
func InString(str string, subs []Substitution) string {
	return New(subs).Apply(str)
}

package mapping

import (
	"fmt"

	"resource-mapper/internal/diagnostic"
)

// ConstantSet is a named, closed collection of string tokens documenting
// the known values of one attribute. Membership is advisory only.
type ConstantSet struct {
	name   string
	tokens []string
	index  map[string]struct{}
}

// NewConstantSet builds a constant set. Empty or repeated tokens are a
// definition error.
func NewConstantSet(name string, tokens ...string) (ConstantSet, error) {
	diags := &diagnostic.Diagnostics{}
	checkTokens(diags, name, tokens)

	if diags.HasErrors() {
		return ConstantSet{}, definitionError(name, diags)
	}

	cs := ConstantSet{
		name:   name,
		tokens: append([]string(nil), tokens...),
		index:  make(map[string]struct{}, len(tokens)),
	}

	for _, tok := range tokens {
		cs.index[tok] = struct{}{}
	}

	return cs, nil
}

// MustConstantSet is like NewConstantSet but panics on a definition error.
func MustConstantSet(name string, tokens ...string) ConstantSet {
	cs, err := NewConstantSet(name, tokens...)
	if err != nil {
		panic(err)
	}

	return cs
}

// Name returns the set name, e.g. "ContentStatus".
func (c ConstantSet) Name() string {
	return c.name
}

// Len returns the number of tokens.
func (c ConstantSet) Len() int {
	return len(c.tokens)
}

// Contains reports whether token is a known member.
func (c ConstantSet) Contains(token string) bool {
	_, ok := c.index[token]
	return ok
}

// Tokens returns a copy of the tokens in declaration order.
func (c ConstantSet) Tokens() []string {
	return append([]string(nil), c.tokens...)
}

func checkTokens(diags *diagnostic.Diagnostics, name string, tokens []string) {
	seen := make(map[string]struct{}, len(tokens))

	for i, tok := range tokens {
		if tok == "" {
			diags.AddError("empty_constant_token", fmt.Sprintf("token %d is empty", i), name, "")
			continue
		}

		if _, dup := seen[tok]; dup {
			diags.AddError("duplicate_constant_token", fmt.Sprintf("token %q declared twice", tok), name, tok)
			continue
		}

		seen[tok] = struct{}{}
	}
}

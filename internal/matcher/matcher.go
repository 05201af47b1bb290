// Package matcher resolves free-text budget line descriptions to
// catalog parts. Budget lines are written by people; some name a part
// by SKU, some by (approximate) name, and some describe labor that
// maps to no part at all.
package matcher

import (
	"regexp"
	"strings"
)

// PartRef is the slice of a catalog part the matcher needs.
type PartRef struct {
	ID   string
	Name string
	SKU  string
}

// Match is a successful resolution of a description to a part.
type Match struct {
	Part PartRef
	// Rule names the policy step that produced the match. Useful in
	// logs when a resolution surprises someone.
	Rule string
}

// AmbiguousError is returned when a description matches more than one
// catalog part. The line has to be corrected by hand; guessing a part
// here would deduct the wrong stock.
type AmbiguousError struct {
	Description string
	Candidates  []PartRef
}

func (e *AmbiguousError) Error() string {
	return "description matches multiple parts: " + e.Description
}

// UnresolvedSKUError is returned when a description contains a token
// shaped like a SKU but no catalog part carries it. Such lines clearly
// intend a part, so silently treating them as labor would skip a
// deduction.
type UnresolvedSKUError struct {
	Description string
	Token       string
}

func (e *UnresolvedSKUError) Error() string {
	return "no part matches SKU token " + e.Token + " in: " + e.Description
}

// Matcher resolves descriptions against a part catalog snapshot.
type Matcher interface {
	// Resolve returns the matched part, or (nil, nil) when the
	// description is a service concept with no part intent.
	Resolve(description string, catalog []PartRef) (*Match, error)
}

// skuToken matches catalog-style SKUs embedded in free text: hyphened
// uppercase alphanumeric codes such as "SCR-IP13-OEM".
var skuToken = regexp.MustCompile(`\b[A-Z0-9]+(?:-[A-Z0-9]+)+\b`)

// NameMatcher implements the resolution policy:
//
//  1. SKU token present in the description and carried by exactly one
//     catalog part wins outright.
//  2. Otherwise the whole description, normalized, equal to exactly
//     one part name.
//  3. Otherwise exactly one part name contained in the description
//     (or vice versa), normalized.
//
// More than one candidate at any step is ambiguous. A SKU-shaped token
// that resolves to nothing is an error. A description with no SKU
// token and no name match is a service concept and resolves to nil.
type NameMatcher struct{}

// NewNameMatcher creates the default matcher.
func NewNameMatcher() *NameMatcher {
	return &NameMatcher{}
}

// Resolve implements Matcher.
func (m *NameMatcher) Resolve(description string, catalog []PartRef) (*Match, error) {
	tokens := skuToken.FindAllString(strings.ToUpper(description), -1)
	for _, tok := range tokens {
		var hits []PartRef
		for _, p := range catalog {
			if strings.EqualFold(p.SKU, tok) {
				hits = append(hits, p)
			}
		}
		switch len(hits) {
		case 0:
			// Fall through to the next token, but remember the miss.
		case 1:
			return &Match{Part: hits[0], Rule: "sku"}, nil
		default:
			return nil, &AmbiguousError{Description: description, Candidates: hits}
		}
	}

	norm := normalize(description)

	var exact []PartRef
	for _, p := range catalog {
		if normalize(p.Name) == norm {
			exact = append(exact, p)
		}
	}
	if len(exact) == 1 {
		return &Match{Part: exact[0], Rule: "exact-name"}, nil
	}
	if len(exact) > 1 {
		return nil, &AmbiguousError{Description: description, Candidates: exact}
	}

	var partial []PartRef
	for _, p := range catalog {
		pn := normalize(p.Name)
		if pn == "" {
			continue
		}
		if strings.Contains(norm, pn) || strings.Contains(pn, norm) {
			partial = append(partial, p)
		}
	}
	if len(partial) == 1 {
		return &Match{Part: partial[0], Rule: "name-contains"}, nil
	}
	if len(partial) > 1 {
		return nil, &AmbiguousError{Description: description, Candidates: partial}
	}

	if len(tokens) > 0 {
		return nil, &UnresolvedSKUError{Description: description, Token: tokens[0]}
	}
	return nil, nil
}

// normalize lowercases, trims, and collapses interior whitespace.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

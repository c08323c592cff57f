// Package query filters, sorts and paginates in-memory collections for the
// list views.
package query

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// All is the categorical wildcard sent by the status and credit dropdowns.
const All = "all"

// Field is a text column searched by the free-text term. Exact fields are
// compared without case folding.
type Field[T any] struct {
	Name  string
	Get   func(T) string
	Exact bool
}

// Match is a categorical equality test. It is inactive when Want is empty or All.
type Match[T any] struct {
	Name string
	Want string
	Get  func(T) string
}

// Active reports whether the match constrains the result.
func (m Match[T]) Active() bool {
	return m.Want != "" && m.Want != All
}

// Spec combines a free-text term over Fields with categorical Matches. A
// record passes when the term is found in at least one field and every active
// match holds.
type Spec[T any] struct {
	Term    string
	Fields  []Field[T]
	Matches []Match[T]
}

// Active reports whether any criterion is set.
func (s Spec[T]) Active() bool {
	if s.Term != "" && len(s.Fields) > 0 {
		return true
	}
	for _, m := range s.Matches {
		if m.Active() {
			return true
		}
	}
	return false
}

// Filter returns the records accepted by spec in their original order. An
// inactive spec returns records itself.
func Filter[T any](records []T, spec Spec[T]) []T {
	if !spec.Active() {
		return records
	}
	fold := cases.Fold()
	term := spec.Term
	foldedTerm := fold.String(term)
	useTerm := term != "" && len(spec.Fields) > 0

	out := make([]T, 0, len(records))
	for _, r := range records {
		if useTerm && !matchesTerm(r, spec.Fields, term, foldedTerm, fold) {
			continue
		}
		if !matchesAll(r, spec.Matches) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesTerm[T any](r T, fields []Field[T], term, folded string, fold cases.Caser) bool {
	for _, f := range fields {
		v := f.Get(r)
		if f.Exact {
			if strings.Contains(v, term) {
				return true
			}
			continue
		}
		if strings.Contains(fold.String(v), folded) {
			return true
		}
	}
	return false
}

func matchesAll[T any](r T, matches []Match[T]) bool {
	for _, m := range matches {
		if m.Active() && m.Get(r) != m.Want {
			return false
		}
	}
	return true
}

// Sorted returns a stably sorted copy of records.
func Sorted[T any](records []T, cmp func(a, b T) int) []T {
	out := slices.Clone(records)
	if cmp != nil {
		slices.SortStableFunc(out, cmp)
	}
	return out
}

// Package httpx provides HTTP response utilities.
package httpx

import (
	"errors"
	"net/http"
)

// Sentinel errors for the HTTP edge.
var (
	ErrNotFound   = errors.New("resource not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
)

// Rule maps errors matching Target to a problem status and title.
type Rule struct {
	Target error
	Status int
	Title  string
}

var baseRules = []Rule{
	{Target: ErrNotFound, Status: http.StatusNotFound, Title: "Not Found"},
	{Target: ErrConflict, Status: http.StatusConflict, Title: "Conflict"},
	{Target: ErrValidation, Status: http.StatusBadRequest, Title: "Validation Failed"},
}

// RespondError maps errors to RFC7807 responses. Caller rules are checked
// before the package sentinels; anything unmatched is a 500 without detail.
func RespondError(w http.ResponseWriter, err error, rules ...Rule) {
	status, title, ok := Classify(err, rules...)
	if !ok {
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	Problem(w, status, title, err.Error())
}

// Classify returns the status and title of the first matching rule.
func Classify(err error, rules ...Rule) (int, string, bool) {
	if err == nil {
		return 0, "", false
	}
	for _, set := range [][]Rule{rules, baseRules} {
		for _, rule := range set {
			if errors.Is(err, rule.Target) {
				return rule.Status, rule.Title, true
			}
		}
	}
	return http.StatusInternalServerError, "", false
}

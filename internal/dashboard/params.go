package dashboard

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/silkroad-freight/freightboard/internal/platform/httpx"
)

type listParams struct {
	Term    string
	Sort    string
	Page    int
	PerPage int
}

// parseList reads q, sort, page and per_page. Missing numbers fall back to
// the pagination defaults; malformed ones are rejected.
func parseList(r *http.Request) (listParams, error) {
	values := r.URL.Query()
	params := listParams{
		Term: values.Get("q"),
		Sort: strings.TrimSpace(values.Get("sort")),
	}
	var err error
	if params.Page, err = optionalInt(values.Get("page")); err != nil {
		return params, fmt.Errorf("%w: page: %v", httpx.ErrValidation, err)
	}
	if params.PerPage, err = optionalInt(values.Get("per_page")); err != nil {
		return params, fmt.Errorf("%w: per_page: %v", httpx.ErrValidation, err)
	}
	return params, nil
}

func optionalInt(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if v < 1 {
		return 0, fmt.Errorf("must be positive, got %d", v)
	}
	return v, nil
}

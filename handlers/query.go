package handlers

import (
	"math"
	"net/url"
	"strconv"

	"github.com/itdeptjamiat/portfolio/models"
)

// ParseProjectQuery reads the listing parameters from a query string.
//
// featured keeps its historical meaning: when present, only the literal
// "true" selects featured projects and any other value selects the rest.
// page and limit fall back to their defaults when they are not integers;
// page is clamped to [1, the last page whose offset fits an int] and limit
// to [1, maxLimit].
func ParseProjectQuery(values url.Values, maxLimit int) models.ProjectQuery {
	q := models.ProjectQuery{
		Category:   values.Get("category"),
		Technology: values.Get("technology"),
		Status:     values.Get("status"),
		Search:     values.Get("search"),
		Page:       intOr(values.Get("page"), models.DefaultPage),
		Limit:      intOr(values.Get("limit"), models.DefaultLimit),
	}

	if _, ok := values["featured"]; ok {
		featured := values.Get("featured") == "true"
		q.Featured = &featured
	}

	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = models.DefaultLimit
	}
	if maxLimit > 0 && q.Limit > maxLimit {
		q.Limit = maxLimit
	}
	if lastPage := math.MaxInt / q.Limit; q.Page > lastPage {
		q.Page = lastPage
	}
	return q
}

func intOr(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

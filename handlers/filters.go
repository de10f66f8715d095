// Copyright (c) 2025 the agora authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/openagora/agora/models"
)

// sortKeys supplies the ordering keys of one content kind to applyFilter.
// Name is the title for topics/questions/events and the content for replies.
type sortKeys[T any] struct {
	Likes   func(T) int64
	Created func(T) time.Time
	Name    func(T) string
}

// applyFilter orders items in place according to the filter mode. The mode
// is validated at the handler boundary, so anything unknown here behaves
// like "all": fetch order untouched. Sorting is stable; ties keep the order
// the candidate fetch produced.
func applyFilter[T any](items []T, mode string, keys sortKeys[T]) {
	switch mode {
	case models.FilterPopular:
		sort.SliceStable(items, func(i, j int) bool {
			return keys.Likes(items[i]) > keys.Likes(items[j])
		})
	case models.FilterRecent:
		sort.SliceStable(items, func(i, j int) bool {
			return keys.Created(items[i]).After(keys.Created(items[j]))
		})
	case models.FilterOld:
		sort.SliceStable(items, func(i, j int) bool {
			return keys.Created(items[i]).Before(keys.Created(items[j]))
		})
	case models.FilterName:
		// A collator is not safe for concurrent use; build one per sort.
		c := collate.New(language.English)
		sort.SliceStable(items, func(i, j int) bool {
			return c.CompareString(keys.Name(items[i]), keys.Name(items[j])) < 0
		})
	}
}

// searchPattern builds the argument for a LOWER(col) LIKE ? substring match.
func searchPattern(search string) string {
	return "%" + strings.ToLower(search) + "%"
}

// parseIDParam reads a required positive integer query parameter.
func parseIDParam(r *http.Request, name string) (uint, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, errors.New(name + " is required")
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid " + name)
	}
	return uint(id), nil
}

package models

import "strings"

//Jamaica is divided into fourteen parishes. The order below is the canonical
//order used when presenting the catalog to clients.
var allParishes = []string{
	"Kingston",
	"St. Andrew",
	"St. Thomas",
	"Portland",
	"St. Mary",
	"St. Ann",
	"Trelawny",
	"St. James",
	"Hanover",
	"Westmoreland",
	"St. Elizabeth",
	"Manchester",
	"Clarendon",
	"St. Catherine",
}

var parishLookup = func() map[string]struct{} {
	lookup := map[string]struct{}{}
	for _, parish := range allParishes {
		lookup[strings.ToLower(parish)] = struct{}{}
	}
	return lookup
}()

//AllParishes returns the full parish catalog in canonical order
func AllParishes() []string {
	parishes := make([]string, len(allParishes))
	copy(parishes, allParishes)
	return parishes
}

//IsValidParish returns true if the supplied name matches a parish in the
//catalog. Matching is case-insensitive, but callers are expected to store
//the name as it was given.
func IsValidParish(parish string) bool {
	_, ok := parishLookup[strings.ToLower(parish)]
	return ok
}

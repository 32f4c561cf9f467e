package shear

import (
	"regexp"
	"strings"
)

// camelBoundary matches a lower-case letter followed by a run of upper-case letters.
var camelBoundary = regexp.MustCompile(`([a-z])([A-Z]+)`)

// Dashed converts a camel-case field name into the dashed lower-case name
// an encoder uses for its element or attribute:
//
//	feedRateInSettingsHolder -> feed-rate-in-settings-holder
//	FeedRate                 -> feed-rate
//	UserID                   -> user-id
//
// A run of upper-case letters gets a single dash in front of it.
func Dashed(name string) string {
	return strings.ToLower(camelBoundary.ReplaceAllString(name, "${1}-${2}"))
}

// Package normalize canonicalizes player display names for lookups.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
)

// Name folds case and collapses whitespace so that lookups match the
// way players actually type names.
func Name(s string) string {
	return cases.Fold().String(strings.Join(strings.Fields(s), " "))
}

package platform

import (
	"fmt"
	"slices"
	"strings"
)

// Token that requests usage output in place of a platform name.
const helpToken = "help"

// Parses user-supplied platform tokens into a deduplicated, sorted
// platform set.
//
// An empty token list selects every platform in the catalog. The help
// token short-circuits with [ErrHelp] no matter what else was given, so
// callers print usage before any validation noise. Unknown tokens fail
// with [ErrUnknownPlatform] naming the offending token, before any build
// work starts.
func Select(tokens []string) ([]Platform, error) {
	if len(tokens) == 0 {
		return All(), nil
	}
	if slices.Contains(tokens, helpToken) {
		return nil, ErrHelp
	}

	seen := make(map[Platform]bool, len(tokens))
	var selected []Platform
	for _, token := range tokens {
		p := Platform(token)
		if !p.Known() {
			return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownPlatform, token, knownList())
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		selected = append(selected, p)
	}
	slices.Sort(selected)
	return selected, nil
}

// Returns the catalog's platform names as a comma-separated list for
// error messages.
func knownList() string {
	all := All()
	names := make([]string, len(all))
	for i, p := range all {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

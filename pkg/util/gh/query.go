package gh

import "strings"

// SearchQuery builds the GitHub search string for one table, e.g.
// "state:open author:@me is:pr org:acme". Repeated org qualifiers are
// OR'd by GitHub search, so every org passed widens the result set.
func SearchQuery(predicate string, orgs []string) string {
	var b strings.Builder

	b.WriteString("state:open ")
	b.WriteString(predicate)

	for _, org := range orgs {
		b.WriteString(" org:")
		b.WriteString(org)
	}

	return b.String()
}

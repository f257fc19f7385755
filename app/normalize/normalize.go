// Package normalize canonicalizes author and link fields so values produced
// by different feed parsers can be compared.
package normalize

import (
	"fmt"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(
	`(([a-zA-Z0-9_\-.+]+)@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.)|(([a-zA-Z0-9\-]+\.)+))([a-zA-Z]{2,4}|[0-9]{1,3})(\]?))(\?subject=\S+)?`)

// MungeAuthor rewrites an author string holding both a name and an email
// into "name (email)". Strings without a recognizable email are returned
// unchanged.
func MungeAuthor(author string) string {
	if !strings.Contains(author, "@") {
		return author
	}

	email := emailPattern.FindString(author)
	if email == "" {
		return author
	}

	name := strings.ReplaceAll(author, email, "")
	for _, empty := range []string{"()", "<>", "&lt;&gt;"} {
		name = strings.ReplaceAll(name, empty, "")
	}
	name = strings.TrimSpace(name)
	name = strings.TrimPrefix(name, "(")
	name = strings.TrimSuffix(name, ")")
	name = strings.TrimSpace(name)

	return fmt.Sprintf("%s (%s)", name, email)
}

// Link strips '#' from both ends, lower-cases and trims whitespace.
func Link(link string) string {
	return strings.TrimSpace(strings.ToLower(strings.Trim(link, "#")))
}

// Package console implements the read-only SQL console: a denylist
// validator, a capped executor over a read-only handle, and live schema
// introspection.
package console

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Validation failures with fixed wording. The executor never sees a query
// that produced one of these.
var (
	ErrEmptyQuery         = errors.New("query is empty")
	ErrNotReadQuery       = errors.New("only read queries are allowed")
	ErrMultipleStatements = errors.New("multiple statements are not allowed")
)

// readEntryRe matches the permitted leading keywords as whole words, any
// case.
var readEntryRe = regexp.MustCompile(`(?i)^(select|with)\b`)

// denyRe matches schema-changing, data-changing, and transaction-control
// keywords as whole words. Word boundaries keep identifiers such as
// updateTime or pragma_table_info from tripping it.
var denyRe = regexp.MustCompile(`(?i)\b(attach|detach|pragma|alter|insert|update|delete|drop|create|replace|vacuum|analyze|trigger|index|begin|commit|rollback)\b`)

// Validate rejects anything that is not a single read statement and returns
// the normalized query text on acceptance. Normalization trims surrounding
// whitespace and at most one trailing semicolon; callers must execute the
// returned text byte for byte.
//
// This is a denylist, not a SQL parser: a semicolon inside a string literal
// reads as a second statement, and keyword matching cannot catch every
// hostile query. The read-only database handle is the enforcement layer;
// Validate exists to give a clear error before a query gets that far.
func Validate(raw string) (string, error) {
	q := strings.TrimSpace(raw)
	if q == "" {
		return "", ErrEmptyQuery
	}
	q = strings.TrimSuffix(q, ";")

	if !readEntryRe.MatchString(q) {
		return "", ErrNotReadQuery
	}
	if strings.Contains(q, ";") {
		return "", ErrMultipleStatements
	}
	if tok := denyRe.FindString(q); tok != "" {
		return "", fmt.Errorf("disallowed token: %s", strings.ToUpper(tok))
	}
	return q, nil
}

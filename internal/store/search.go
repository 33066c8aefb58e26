package store

import "strings"

// SortDirection is the date ordering requested for a search. Anything other
// than the two recognised tokens means natural table order.
type SortDirection string

const (
	SortNone       SortDirection = ""
	SortAscending  SortDirection = "ascending"
	SortDescending SortDirection = "descending"
)

// ParseSort maps a raw query parameter to a SortDirection. Unrecognised
// values are not an error; they simply apply no ordering.
func ParseSort(raw string) SortDirection {
	switch raw {
	case "ascending":
		return SortAscending
	case "descending":
		return SortDescending
	}
	return SortNone
}

// AppointmentQuery describes a filtered, optionally sorted appointment
// search. Zero-value fields are not applied.
type AppointmentQuery struct {
	Specialization string
	Name           string // literal substring, matched case-insensitively
	Sort           SortDirection
}

// conditions compiles the query into WHERE fragments and their arguments.
// All fragments are combined with AND by the caller.
func (q AppointmentQuery) conditions() ([]string, []any) {
	var clauses []string
	var args []any
	if q.Specialization != "" {
		clauses = append(clauses, "specialization = ?")
		args = append(args, q.Specialization)
	}
	if q.Name != "" {
		clauses = append(clauses, "LOWER(name) LIKE ?")
		args = append(args, "%"+strings.ToLower(EscapeLike(q.Name))+"%")
	}
	return clauses, args
}

// order returns the ORDER BY expression, or "" for natural order.
func (q AppointmentQuery) order() string {
	switch q.Sort {
	case SortAscending:
		return "date ASC"
	case SortDescending:
		return "date DESC"
	}
	return ""
}

// EscapeLike neutralises LIKE metacharacters so user-supplied text matches
// as a literal substring and is never interpreted as a pattern.
func EscapeLike(s string) string {
	return strings.NewReplacer(
		`\`, `\\`,
		`%`, `\%`,
		`_`, `\_`,
	).Replace(s)
}

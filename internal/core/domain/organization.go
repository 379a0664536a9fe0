package domain

import "strings"

// Organization is a bank or a broker an account is held with. It is
// shared between accounts, never owned by one: an organization outlives
// every account referencing it.
type Organization struct {
	ID       int64  `json:"id,omitempty"` // 0 until assigned by storage
	Name     string `json:"name"`
	Shortcut string `json:"shortcut"`
}

// MatchString reports whether s names this organization. The comparison
// is case-insensitive and ignores surrounding whitespace, matching
// either the full name or the shortcut.
func (o Organization) MatchString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ToLower(o.Name) == s || strings.ToLower(o.Shortcut) == s
}

// Equal reports structural equality with another organization,
// comparing name and shortcut case-insensitively. IDs are not compared
// so an unsaved organization still equals its stored counterpart.
func (o Organization) Equal(other Organization) bool {
	return strings.EqualFold(o.Name, other.Name) &&
		strings.EqualFold(o.Shortcut, other.Shortcut)
}

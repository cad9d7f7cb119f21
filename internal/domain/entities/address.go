package entities

import (
	"html"
	"strings"
)

// Address is a postal address embedded in customers and profiles.
type Address struct {
	Name1   string `json:"name1"`
	Name2   string `json:"name2,omitempty"`
	Name3   string `json:"name3,omitempty"`
	Name4   string `json:"name4,omitempty"`
	Street  string `json:"street,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

// Tuple returns the non-empty address lines. With namesOnly only the name
// lines are returned.
func (a Address) Tuple(namesOnly bool) []string {
	parts := nonEmpty(a.Name1, a.Name2, a.Name3, a.Name4)
	if namesOnly {
		return parts
	}
	if a.Street != "" {
		parts = append(parts, a.Street)
	}
	switch {
	case a.City != "" && a.ZipCode != "":
		parts = append(parts, a.ZipCode+" "+a.City)
	case a.City != "":
		parts = append(parts, a.City)
	}
	if a.Country != "" {
		parts = append(parts, a.Country)
	}
	return parts
}

// String joins all address lines with sep. Lines are HTML escaped when sep
// is markup.
func (a Address) String(sep string) string {
	return joinLines(a.Tuple(false), sep)
}

// JoinName joins the name lines with sep.
func (a Address) JoinName(sep string) string {
	return joinLines(a.Tuple(true), sep)
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func joinLines(parts []string, sep string) string {
	if strings.Contains(sep, "<") {
		escaped := make([]string, len(parts))
		for i, p := range parts {
			escaped[i] = html.EscapeString(p)
		}
		parts = escaped
	}
	return strings.Join(parts, sep)
}

package entity

import "strings"

// Lead is one prospect record. Every field is free text and may be empty.
type Lead struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`
	LinkedInBio string `json:"linkedin_bio"`
}

// NewLead builds a Lead with surrounding whitespace stripped from every field.
func NewLead(name, role, company, industry, location, linkedinBio string) Lead {
	return Lead{
		Name:        strings.TrimSpace(name),
		Role:        strings.TrimSpace(role),
		Company:     strings.TrimSpace(company),
		Industry:    strings.TrimSpace(industry),
		Location:    strings.TrimSpace(location),
		LinkedInBio: strings.TrimSpace(linkedinBio),
	}
}

// Fields returns the six lead fields in column order.
func (l Lead) Fields() []string {
	return []string{l.Name, l.Role, l.Company, l.Industry, l.Location, l.LinkedInBio}
}

// IsComplete reports whether all six fields are non-blank.
func (l Lead) IsComplete() bool {
	for _, f := range l.Fields() {
		if strings.TrimSpace(f) == "" {
			return false
		}
	}
	return true
}

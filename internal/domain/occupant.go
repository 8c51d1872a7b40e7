package domain

import "strings"

// OccupantKind вид проживающего: частное лицо или компания
type OccupantKind string

const (
	OccupantIndividual OccupantKind = "individual"
	OccupantCompany    OccupantKind = "company"
)

// Guest represents a single guest
type Guest struct {
	Name   string
	Phone  string
	Email  string
	IDCard string
}

// Occupant represents who holds a room during a stay:
// a single guest, or a company with an ordered guest list
type Occupant struct {
	Kind        OccupantKind
	CompanyName string // только для OccupantCompany
	Guests      []Guest
}

// NewIndividual creates an occupant for a single guest
func NewIndividual(guest Guest) Occupant {
	return Occupant{
		Kind:   OccupantIndividual,
		Guests: []Guest{guest},
	}
}

// NewCompany creates a company occupant
func NewCompany(companyName string, guests []Guest) Occupant {
	return Occupant{
		Kind:        OccupantCompany,
		CompanyName: companyName,
		Guests:      guests,
	}
}

// IsCompany returns true for a company occupant
func (o Occupant) IsCompany() bool {
	return o.Kind == OccupantCompany
}

// DisplayName имя для счёта и дашборда: название компании или имя гостя
func (o Occupant) DisplayName() string {
	if o.IsCompany() {
		return o.CompanyName
	}
	if len(o.Guests) > 0 {
		return o.Guests[0].Name
	}
	return ""
}

// NamedGuests returns guests with a non-blank name, preserving order
func (o Occupant) NamedGuests() []Guest {
	named := make([]Guest, 0, len(o.Guests))
	for _, g := range o.Guests {
		if strings.TrimSpace(g.Name) != "" {
			named = append(named, g)
		}
	}
	return named
}

// Clone returns a copy with its own guest slice
func (o Occupant) Clone() Occupant {
	c := o
	if o.Guests != nil {
		c.Guests = append([]Guest(nil), o.Guests...)
	}
	return c
}

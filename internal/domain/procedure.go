package domain

import "sort"

// Procedure represents a service offered by the salon
type Procedure struct {
	ID              string
	NamePL          string
	NameRU          string
	Category        string
	DurationMinutes int
	Price           string // normalized PLN price: "150", "200-300" or "0"
	IsActive        bool
	Order           *int // nil = listed after ordered procedures
}

// ActiveProcedures returns active procedures sorted by Order; procedures without order go last
func ActiveProcedures(procedures []Procedure) []Procedure {
	result := make([]Procedure, 0, len(procedures))
	for _, p := range procedures {
		if p.IsActive {
			result = append(result, p)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		oi, oj := result[i].Order, result[j].Order
		switch {
		case oi == nil:
			return false
		case oj == nil:
			return true
		default:
			return *oi < *oj
		}
	})

	return result
}

// FindProcedure returns the procedure with the given id
func FindProcedure(procedures []Procedure, id string) (Procedure, bool) {
	for _, p := range procedures {
		if p.ID == id {
			return p, true
		}
	}
	return Procedure{}, false
}

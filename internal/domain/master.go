package domain

// Master is a staff member with an own calendar and an own schedule spreadsheet
type Master struct {
	ID         string
	Name       string
	CalendarID string
	SheetID    string
	IsDefault  bool
}

package domain

// ServiceCatalogEntry describes one bookable service. Static configuration;
// duration and price are never recomputed elsewhere.
type ServiceCatalogEntry struct {
	Name            string
	DurationMinutes int
	Price           int
}

// StaffMember describes one staff member offered during staff selection.
type StaffMember struct {
	Name            string
	Specialty       string
	ExperienceLabel string
}

// TimeSlot is one bookable slot in the static schedule. Slots are regenerated
// per process start over a fixed forward window and never persisted.
type TimeSlot struct {
	Date      string // YYYY-MM-DD
	Time      string // HH:MM
	Available bool
}

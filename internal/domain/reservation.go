package domain

// Reservation is the per-user dialogue state for an in-progress booking.
// Fields after Step are filled one at a time as the dialogue advances; an
// empty string means "not collected yet". At most one Reservation exists per
// user at any moment.
type Reservation struct {
	UserID  string
	Step    Step
	Service string
	Staff   string
	Date    string // YYYY-MM-DD
	Time    string // HH:MM
}

// ReadyToConfirm reports whether every field required for confirmation has
// been collected. The dialogue must never reach the confirmation step while
// this is false.
func (r *Reservation) ReadyToConfirm() bool {
	return r.Service != "" && r.Staff != "" && r.Date != "" && r.Time != ""
}

// CompletedReservation is the record handed to the calendar side channel
// after a user confirms. It is detached from dialogue state.
type CompletedReservation struct {
	UserID          string
	Service         string
	Staff           string
	Date            string
	Time            string
	DurationMinutes int
	Price           int
}

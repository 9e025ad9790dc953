package domain

// Step identifies the current position of a user inside the booking dialogue.
type Step string

const (
	StepServiceSelection Step = "service_selection"
	StepStaffSelection   Step = "staff_selection"
	StepDateSelection    Step = "date_selection"
	StepTimeSelection    Step = "time_selection"
	StepConfirmation     Step = "confirmation"
)

// Intent is the coarse classification the router assigns to an inbound
// message when no dialogue is open.
type Intent string

const (
	IntentReservation    Intent = "reservation"
	IntentServiceStart   Intent = "service_start"
	IntentServiceInquiry Intent = "service_inquiry"
	IntentStaffInquiry   Intent = "staff_inquiry"
	IntentCancel         Intent = "cancel"
	IntentGeneral        Intent = "general"
)

// StaffUnspecified is the sentinel staff value meaning "no preference".
// It is a valid selection, distinct from an unset field.
const StaffUnspecified = "未指定"

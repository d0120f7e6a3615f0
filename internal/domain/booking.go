package domain

// Booking request origins.
const (
	BookingSourceChat = "chat"
	BookingSourceForm = "form"
)

// BookingRequest is an appointment request collected by the chat dialogue or
// the web booking form.
type BookingRequest struct {
	ID            string
	Source        string
	SessionID     string
	Name          string
	Contact       string
	ContactMethod string
	Service       string
	Timeframe     string
	PreferredDate string
	DayOfWeek     string
	TimeOfDay     string
	SpecificTime  string
	Vehicle       string
	VIN           string
	VehicleInfo   string
	Notes         string
	CreatedAt     string
	TTL           int64
}

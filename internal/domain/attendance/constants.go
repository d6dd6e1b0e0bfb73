package attendance

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusHalfDay = "half-day"
	StatusOnLeave = "on-leave"

	// Defaults applied by the admin day toggle, which records a nominal
	// working day rather than a real clock-in.
	DefaultCheckIn  = "09:00"
	DefaultCheckOut = "17:00"
	DefaultHours    = 8.0

	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

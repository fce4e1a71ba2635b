package datemath

// Layouts used for canonical keys.
const (
	DateKeyLayout = "2006-01-02"
	ClockLayout   = "15:04"

	MinutesPerDay = 24 * 60
	DaysPerWeek   = 7
)

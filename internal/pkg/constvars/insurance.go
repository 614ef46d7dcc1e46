package constvars

// States maps Australian state and territory codes to their full names.
var States = map[string]string{
	"NSW": "New South Wales",
	"VIC": "Victoria",
	"QLD": "Queensland",
	"WA":  "Western Australia",
	"SA":  "South Australia",
	"TAS": "Tasmania",
	"ACT": "Australian Capital Territory",
	"NT":  "Northern Territory",
}

// DefaultWaitingPeriods holds the standard waiting period in months for
// each service group on a new policy.
var DefaultWaitingPeriods = map[string]int{
	"general":        2,
	"pre_existing":   12,
	"pregnancy":      12,
	"psychiatric":    2,
	"rehabilitation": 2,
}

var ProviderTypes = []string{
	"Hospital",
	"General Practitioner",
	"Specialist",
	"Dentist",
	"Optometrist",
	"Physiotherapist",
	"Chiropractor",
	"Psychologist",
	"Podiatrist",
	"Acupuncturist",
	"Naturopath",
	"Massage Therapist",
}

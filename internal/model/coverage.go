package model

// DisabilityCoverage is the salary-insurance tier derived from the absence
// quota balance.
type DisabilityCoverage int

const (
	Weeks26 DisabilityCoverage = iota
	Weeks52
)

func (c DisabilityCoverage) String() string {
	switch c {
	case Weeks26:
		return "26 weeks"
	case Weeks52:
		return "52 weeks"
	default:
		return "unknown"
	}
}

func (c DisabilityCoverage) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

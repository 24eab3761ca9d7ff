package model

import "time"

// EmploymentType distinguishes the two personnel actions the business
// tracks: a cessation/re-hire without break versus a permanent movement.
type EmploymentType int

const (
	EmploymentTemporary EmploymentType = iota
	EmploymentPermanent
)

func (t EmploymentType) String() string {
	switch t {
	case EmploymentTemporary:
		return "temporary"
	case EmploymentPermanent:
		return "permanent"
	default:
		return "unknown"
	}
}

func (t EmploymentType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// EmploymentEvent is the most recent matching personnel action and the
// date it took effect.
type EmploymentEvent struct {
	Type EmploymentType `yaml:"type" json:"type"`
	Date time.Time      `yaml:"date" json:"date"`
}

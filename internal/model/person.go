package model

// Gender as recorded on the identity infotype. The screen only carries a
// title prefix, so anything outside the known prefixes maps to Unknown.
type Gender int

const (
	GenderUnknown Gender = iota
	GenderMale
	GenderFemale
)

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	default:
		return "unknown"
	}
}

// MarshalText makes Gender render as its name in YAML and JSON output.
func (g Gender) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// Person is the identity record of one employee.
type Person struct {
	Gender Gender `yaml:"gender" json:"gender"`
	Name   string `yaml:"name"   json:"name"`
}

package model

// EmailType is the category slot an email address belongs to. The
// communication screen lists many channel kinds; only these two are emails
// we care about.
type EmailType int

const (
	EmailWork EmailType = iota
	EmailPersonal
)

func (t EmailType) String() string {
	switch t {
	case EmailWork:
		return "work"
	case EmailPersonal:
		return "personal"
	default:
		return "unknown"
	}
}

// MarshalText lets EmailType serve as a readable map key in YAML and JSON.
func (t EmailType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

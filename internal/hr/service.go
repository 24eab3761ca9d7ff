// Package hr translates PA20 screen content into typed domain values. It
// exposes two capability groups, each with a live implementation driving
// the SAP GUI and a synthetic one producing plausible random values for
// offline use. The choice between them is made once, at composition time;
// nothing in here branches on a mode switch.
package hr

import "github.com/Xiaoy312/sap-hr-cli/internal/model"

// Directory answers identity and contact queries for one employee.
type Directory interface {
	Identity(employeeID int) (model.Person, error)
	Gender(employeeID int) (model.Gender, error)
	Address(employeeID int) (model.Address, error)
	EmailAddresses(employeeID int) (map[model.EmailType]string, error)
}

// Benefits answers the custom eligibility queries. Optional results are
// three-valued: a nil pointer is "the host had nothing to say", distinct
// from an explicit false or a returned error; each method documents its
// own policy because the policies genuinely differ.
type Benefits interface {
	ModificationEvent(employeeID int) (*model.EmploymentEvent, error)
	HasHealthInsurance(employeeID int) (*bool, error)
	HasDentalInsurance(employeeID int) (*bool, error)
	DisabilityCoverage(employeeID int) (*model.DisabilityCoverage, error)
}

package hr

import (
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/rs/zerolog/log"

	"github.com/Xiaoy312/sap-hr-cli/internal/model"
)

// NewSyntheticDirectory returns a directory producing plausible random
// values without touching SAP. Shapes match the live one, including the
// guarantee that the email set always fills both category slots.
func NewSyntheticDirectory() Directory {
	return &syntheticDirectory{}
}

type syntheticDirectory struct{}

func (*syntheticDirectory) Identity(employeeID int) (model.Person, error) {
	log.Warn().Int("employee", employeeID).Msg("serving synthetic identity")

	person := model.Person{Name: gofakeit.LastName()}
	if gofakeit.Bool() {
		person.Gender = model.GenderMale
	} else {
		person.Gender = model.GenderFemale
	}
	return person, nil
}

func (s *syntheticDirectory) Gender(employeeID int) (model.Gender, error) {
	person, err := s.Identity(employeeID)
	if err != nil {
		return model.GenderUnknown, err
	}
	return person.Gender, nil
}

func (*syntheticDirectory) Address(employeeID int) (model.Address, error) {
	log.Warn().Int("employee", employeeID).Msg("serving synthetic address")

	return model.Address{
		StreetNumberName: gofakeit.Street(),
		City:             gofakeit.City(),
		Province:         gofakeit.State(),
		PostalCode:       strings.ToUpper(gofakeit.Lexify(gofakeit.Numerify("?#? #?#"))),
	}, nil
}

func (*syntheticDirectory) EmailAddresses(employeeID int) (map[model.EmailType]string, error) {
	log.Warn().Int("employee", employeeID).Msg("serving synthetic email addresses")

	return map[model.EmailType]string{
		model.EmailWork:     gofakeit.Numerify(gofakeit.Username() + ".###@fake.email.com"),
		model.EmailPersonal: gofakeit.Numerify(gofakeit.Username() + ".###@fake.email.biz"),
	}, nil
}

// NewSyntheticBenefits returns an eligibility service producing plausible
// random values without touching SAP.
func NewSyntheticBenefits() Benefits {
	return &syntheticBenefits{}
}

type syntheticBenefits struct{}

func (*syntheticBenefits) ModificationEvent(employeeID int) (*model.EmploymentEvent, error) {
	log.Warn().Int("employee", employeeID).Msg("serving synthetic modification event")

	event := &model.EmploymentEvent{Type: model.EmploymentPermanent}
	if gofakeit.Bool() {
		event.Type = model.EmploymentTemporary
	}
	d := gofakeit.PastDate()
	event.Date = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return event, nil
}

func (*syntheticBenefits) HasHealthInsurance(employeeID int) (*bool, error) {
	log.Warn().Int("employee", employeeID).Msg("serving synthetic health insurance")
	return boolPtr(gofakeit.Bool()), nil
}

func (*syntheticBenefits) HasDentalInsurance(employeeID int) (*bool, error) {
	log.Warn().Int("employee", employeeID).Msg("serving synthetic dental insurance")
	return boolPtr(gofakeit.Bool()), nil
}

func (*syntheticBenefits) DisabilityCoverage(employeeID int) (*model.DisabilityCoverage, error) {
	log.Warn().Int("employee", employeeID).Msg("serving synthetic disability coverage")

	coverage := model.Weeks26
	if gofakeit.Bool() {
		coverage = model.Weeks52
	}
	return &coverage, nil
}

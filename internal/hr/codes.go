package hr

import (
	"regexp"

	"github.com/Xiaoy312/sap-hr-cli/internal/model"
)

// Infotype and subtype codes queried by the mappers.
const (
	itIdentity      = "0002"
	itAddresses     = "0006"
	itCommunication = "0105"
	itActions       = "0000"
	itHealthPlans   = "0167"
	itAbsenceQuotas = "2006"

	subtypeMedical    = "MEDI"
	subtypeDental     = "DENT"
	subtypeDisability = "15"
)

// genderByPrefix maps the title prefix of the identity screen to a
// gender. Prefixes outside the map read as unknown, not as an error.
var genderByPrefix = map[string]model.Gender{
	"M.":  model.GenderMale,
	"Mme": model.GenderFemale,
}

// namePrefixRe strips the title prefix repeated in front of the name.
var namePrefixRe = regexp.MustCompile(`^(M\.|Mme) `)

// emailTypeByLabel maps communication-channel descriptions to the two
// email slots. Every other channel kind is skipped: not every channel is
// an email.
var emailTypeByLabel = map[string]model.EmailType{
	"Courrier électronique HQ":     model.EmailWork,
	"Adresse courriel personnelle": model.EmailPersonal,
}

// employmentByAction maps personnel action codes to employment types.
var employmentByAction = map[string]model.EmploymentType{
	"A5": model.EmploymentTemporary, // Cess. réemb. sans bris /CCE
	"A6": model.EmploymentPermanent, // Mouvement de personnel /CCE
}

// actionDateLayout is the fixed date format of the actions list screen.
const actionDateLayout = "2006/01/02"

// enrollmentByOption is the closed table of health/dental plan options.
// A code outside it must surface as UnsupportedOptionError, never be
// guessed into a default.
var enrollmentByOption = map[string]bool{
	"EXEM": false, // Exempté de participation
	"BASE": true,  // Option de base
	"MOD1": true,  // Module de base
	"MOD2": true,  // Module bonifié
	"MOD3": true,  // Module enrichi
	"NONP": false, // Non participant
}

const (
	// planRetirementHealth is the retirement health plan, not considered
	// valid coverage.
	planRetirementHealth = "MALH"

	// planDentalStandard is the only dental plan taken into account.
	planDentalStandard = "DEN0"

	// openEndedYearPrefix marks a plan that has not expired.
	openEndedYearPrefix = "9999"
)

// disabilityQuotaThreshold separates the two coverage tiers: a quota
// below it means 52 weeks, at or above it 26 weeks.
const disabilityQuotaThreshold = 99999

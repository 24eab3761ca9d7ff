package hr

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Xiaoy312/sap-hr-cli/internal/model"
	"github.com/Xiaoy312/sap-hr-cli/internal/pa20"
	"github.com/Xiaoy312/sap-hr-cli/internal/sapgui"
)

// NewBenefits returns the live eligibility service, reading through the
// given PA20 client.
func NewBenefits(client *pa20.Client) Benefits {
	return &liveBenefits{client: client}
}

type liveBenefits struct {
	client *pa20.Client
}

// Column layout of the actions list screen:
//
//	0 Début  1 Fin  2 Mes.  3 Dés. cat. mesure  4 MotMe  5 Dés. motif mesure
const (
	colActionStart = 0
	colActionCode  = 2
)

// ModificationEvent returns the first personnel action matching the known
// action codes, or nil when no row matches. Absence of an event is a
// normal answer here, not an error.
func (b *liveBenefits) ModificationEvent(employeeID int) (*model.EmploymentEvent, error) {
	log.Info().Int("employee", employeeID).Msg("querying modification event")

	entries, err := b.client.Entries(employeeID, itActions, "")
	if err != nil {
		return nil, err
	}

	for entries.Next() {
		row := entries.Row()
		action, err := row.CText(colActionCode)
		if err != nil {
			return nil, err
		}
		employmentType, ok := employmentByAction[action]
		if !ok {
			continue
		}
		start, err := row.Text(colActionStart)
		if err != nil {
			return nil, err
		}
		date, err := time.Parse(actionDateLayout, strings.TrimSpace(start))
		if err != nil {
			return nil, fmt.Errorf("action %s has unparseable start date %q: %w", action, start, err)
		}
		event := &model.EmploymentEvent{Type: employmentType, Date: date}
		log.Info().Stringer("type", event.Type).Time("date", event.Date).Msg("modification event")
		return event, nil
	}
	if err := entries.Err(); err != nil {
		return nil, err
	}

	log.Warn().Int("employee", employeeID).Msg("no record matching the action criteria")
	return nil, nil
}

// HasHealthInsurance reads the medical plan election. False means
// explicitly not insured (retirement plan, expired plan, non-participant
// option, or no plan record at all); an option outside the closed table
// is a hard error.
func (b *liveBenefits) HasHealthInsurance(employeeID int) (*bool, error) {
	log.Info().Int("employee", employeeID).Msg("querying health insurance")

	detail, err := b.client.Detail(employeeID, itHealthPlans, subtypeMedical)
	if err != nil {
		// No plan record for the period means not insured, the one
		// query-level failure deliberately recovered into a value.
		if pa20.IsNoData(err) {
			log.Warn().Int("employee", employeeID).Msg("no health plan record, treating as uninsured")
			return boolPtr(false), nil
		}
		return nil, err
	}

	// The retirement health plan is not valid coverage; nothing else on
	// the screen matters once it shows up.
	plan, err := sapgui.TextOf(detail, "Q0167-BPLAN")
	if err != nil {
		return nil, err
	}
	if plan == planRetirementHealth {
		log.Warn().Str("plan", plan).Msg("retirement health plan, treating as uninsured")
		return boolPtr(false), nil
	}

	// An expired plan has an end date other than 9999-12-31.
	endDate, err := sapgui.CTextOf(detail, "P0167-ENDDA")
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(endDate, openEndedYearPrefix) {
		log.Warn().Str("end_date", endDate).Msg("health plan expired")
		return boolPtr(false), nil
	}

	return b.enrollment(detail)
}

// HasDentalInsurance reads the dental plan election. Only the standard
// dental plan is interpretable; anything else fails loudly. No plan
// record means not insured.
func (b *liveBenefits) HasDentalInsurance(employeeID int) (*bool, error) {
	log.Info().Int("employee", employeeID).Msg("querying dental insurance")

	detail, err := b.client.Detail(employeeID, itHealthPlans, subtypeDental)
	if err != nil {
		if pa20.IsNoData(err) {
			log.Warn().Int("employee", employeeID).Msg("no dental plan record, treating as uninsured")
			return boolPtr(false), nil
		}
		return nil, err
	}

	plan, err := sapgui.CTextOf(detail, "P0167-BPLAN")
	if err != nil {
		return nil, err
	}
	if plan != planDentalStandard {
		label, err := sapgui.TextOf(detail, "T5UCA-LTEXT")
		if err != nil {
			return nil, err
		}
		uerr := &UnsupportedPlanError{Plan: plan, Label: label}
		log.Error().Str("plan", plan).Str("label", label).Msg("invalid dental plan type")
		return nil, uerr
	}

	return b.enrollment(detail)
}

// enrollment resolves the plan option through the closed table shared by
// the two insurance mappers.
func (b *liveBenefits) enrollment(detail sapgui.Window) (*bool, error) {
	option, err := sapgui.CTextOf(detail, "P0167-BOPTI")
	if err != nil {
		return nil, err
	}
	label, err := sapgui.TextOf(detail, "T5UCE-LTEXT")
	if err != nil {
		return nil, err
	}

	enrolled, ok := enrollmentByOption[option]
	if !ok {
		uerr := &UnsupportedOptionError{Option: option, Label: label}
		log.Error().Str("option", option).Str("label", label).Msg("invalid plan option")
		return nil, uerr
	}
	log.Info().Str("option", option).Str("label", label).Bool("enrolled", enrolled).Msg("plan option")
	return boolPtr(enrolled), nil
}

// DisabilityCoverage derives the salary-insurance tier from the absence
// quota balance. No quota record yields nil, not false: unlike the
// insurance mappers, absence carries no verdict here.
func (b *liveBenefits) DisabilityCoverage(employeeID int) (*model.DisabilityCoverage, error) {
	log.Info().Int("employee", employeeID).Msg("querying disability coverage")

	detail, err := b.client.Detail(employeeID, itAbsenceQuotas, subtypeDisability)
	if err != nil {
		if pa20.IsNoData(err) {
			log.Warn().Int("employee", employeeID).Msg("no absence quota record")
			return nil, nil
		}
		return nil, err
	}

	text, err := sapgui.TextOf(detail, "P2006-ANZHL")
	if err != nil {
		return nil, err
	}
	quota, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return nil, fmt.Errorf("absence quota %q is not numeric: %w", text, err)
	}

	coverage := model.Weeks26
	if quota < disabilityQuotaThreshold {
		coverage = model.Weeks52
	}
	log.Info().Float64("quota", quota).Stringer("coverage", coverage).Msg("disability coverage")
	return &coverage, nil
}

func boolPtr(b bool) *bool { return &b }

package hr

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Xiaoy312/sap-hr-cli/internal/model"
	"github.com/Xiaoy312/sap-hr-cli/internal/pa20"
	"github.com/Xiaoy312/sap-hr-cli/internal/sapgui"
)

// NewDirectory returns the live directory, reading through the given PA20
// client.
func NewDirectory(client *pa20.Client) Directory {
	return &liveDirectory{client: client}
}

type liveDirectory struct {
	client *pa20.Client
}

func (d *liveDirectory) Identity(employeeID int) (model.Person, error) {
	log.Info().Int("employee", employeeID).Msg("querying identity")

	detail, err := d.client.Detail(employeeID, itIdentity, "")
	if err != nil {
		return model.Person{}, err
	}

	prefix, err := sapgui.KeyOf(detail, "Q0002-ANREX")
	if err != nil {
		return model.Person{}, err
	}
	name, err := sapgui.TextOf(detail, "P0001-ENAME")
	if err != nil {
		return model.Person{}, err
	}

	person := model.Person{
		Gender: genderByPrefix[prefix],
		Name:   namePrefixRe.ReplaceAllString(name, ""),
	}
	log.Info().Stringer("gender", person.Gender).Str("name", person.Name).Msg("identity")
	return person, nil
}

func (d *liveDirectory) Gender(employeeID int) (model.Gender, error) {
	person, err := d.Identity(employeeID)
	if err != nil {
		return model.GenderUnknown, err
	}
	return person.Gender, nil
}

func (d *liveDirectory) Address(employeeID int) (model.Address, error) {
	log.Info().Int("employee", employeeID).Msg("querying address")

	detail, err := d.client.Detail(employeeID, itAddresses, "")
	if err != nil {
		return model.Address{}, err
	}

	// The two address lines collapse into one street field; blanks drop
	// out rather than leaving a stray separator.
	var lines []string
	for _, name := range []string{"P0006-STRAS", "P0006-LOCAT"} {
		text, err := sapgui.TextOf(detail, name)
		if err != nil {
			return model.Address{}, err
		}
		if text = strings.TrimSpace(text); text != "" {
			lines = append(lines, text)
		}
	}
	city, err := sapgui.TextOf(detail, "P0006-ORT01")
	if err != nil {
		return model.Address{}, err
	}
	province, err := sapgui.TextOf(detail, "T005U-BEZEI")
	if err != nil {
		return model.Address{}, err
	}
	postal, err := sapgui.TextOf(detail, "P0006-PSTLZ")
	if err != nil {
		return model.Address{}, err
	}

	return model.Address{
		StreetNumberName: strings.Join(lines, " "),
		City:             strings.TrimSpace(city),
		Province:         strings.TrimSpace(province),
		PostalCode:       strings.ToUpper(strings.TrimSpace(postal)),
	}, nil
}

// Column layout of the communication list screen:
//
//	0 Début  1 Fin  2 Mode communicat.  3 Désignation  4 ID du système  5 CB
const (
	colChannelDescription = 3
	colChannelValue       = 4
)

func (d *liveDirectory) EmailAddresses(employeeID int) (map[model.EmailType]string, error) {
	log.Info().Int("employee", employeeID).Msg("querying email addresses")

	entries, err := d.client.Entries(employeeID, itCommunication, "")
	if err != nil {
		return nil, err
	}

	result := map[model.EmailType]string{}
	for entries.Next() {
		row := entries.Row()
		description, err := row.Text(colChannelDescription)
		if err != nil {
			return nil, err
		}
		emailType, ok := emailTypeByLabel[description]
		if !ok {
			continue
		}
		if _, seen := result[emailType]; seen {
			continue
		}
		value, err := row.Text(colChannelValue)
		if err != nil {
			return nil, err
		}
		result[emailType] = value
		log.Info().Stringer("type", emailType).Str("address", value).Msg("email found")

		// Early exit once both slots are filled.
		if len(result) == len(emailTypeByLabel) {
			break
		}
	}
	if err := entries.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

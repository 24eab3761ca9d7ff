package hr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xiaoy312/sap-hr-cli/internal/hr"
	"github.com/Xiaoy312/sap-hr-cli/internal/model"
	"github.com/Xiaoy312/sap-hr-cli/internal/pa20"
	"github.com/Xiaoy312/sap-hr-cli/internal/pa20/pa20test"
	"github.com/Xiaoy312/sap-hr-cli/internal/sapgui"
	"github.com/Xiaoy312/sap-hr-cli/internal/sapgui/saptest"
)

func newDirectory(user string, script map[pa20test.Request]pa20test.Response) hr.Directory {
	return hr.NewDirectory(pa20.NewClient(pa20test.NewEngine(user, script)))
}

func TestIdentity(t *testing.T) {
	directory := newDirectory("ALICE", map[pa20test.Request]pa20test.Response{
		{Employee: "12345", Infotype: "0002"}: {Screen: pa20test.DetailScreen("Afficher Données personnelles",
			&saptest.ComboBox{ControlName: "Q0002-ANREX", Selected: "Mme"},
			&saptest.TextField{ControlName: "P0001-ENAME", Value: "Mme Dupont"},
		)},
	})

	person, err := directory.Identity(12345)
	require.NoError(t, err)
	assert.Equal(t, model.Person{Gender: model.GenderFemale, Name: "Dupont"}, person)
}

func TestIdentity_UnknownPrefix(t *testing.T) {
	directory := newDirectory("ALICE", map[pa20test.Request]pa20test.Response{
		{Employee: "12345", Infotype: "0002"}: {Screen: pa20test.DetailScreen("Afficher Données personnelles",
			&saptest.ComboBox{ControlName: "Q0002-ANREX", Selected: "Dr"},
			&saptest.TextField{ControlName: "P0001-ENAME", Value: "Dr Tremblay"},
		)},
	})

	person, err := directory.Identity(12345)
	require.NoError(t, err)
	// A prefix outside the known pair reads as unknown, and nothing gets
	// stripped off the name.
	assert.Equal(t, model.GenderUnknown, person.Gender)
	assert.Equal(t, "Dr Tremblay", person.Name)
}

func TestGender(t *testing.T) {
	directory := newDirectory("ALICE", map[pa20test.Request]pa20test.Response{
		{Employee: "777", Infotype: "0002"}: {Screen: pa20test.DetailScreen("Afficher Données personnelles",
			&saptest.ComboBox{ControlName: "Q0002-ANREX", Selected: "M."},
			&saptest.TextField{ControlName: "P0001-ENAME", Value: "M. Gagnon"},
		)},
	})

	gender, err := directory.Gender(777)
	require.NoError(t, err)
	assert.Equal(t, model.GenderMale, gender)
}

func TestIdentity_UnknownEmployee(t *testing.T) {
	directory := newDirectory("ALICE", nil)

	_, err := directory.Identity(99999)
	var nores *pa20.NoResultError
	require.ErrorAs(t, err, &nores)
	assert.Equal(t, 99999, nores.EmployeeID)
}

func TestAddress(t *testing.T) {
	directory := newDirectory("ALICE", map[pa20test.Request]pa20test.Response{
		{Employee: "12345", Infotype: "0006"}: {Screen: pa20test.DetailScreen("Afficher Adresses",
			&saptest.TextField{ControlName: "P0006-STRAS", Value: "123 Rue Principale "},
			&saptest.TextField{ControlName: "P0006-LOCAT", Value: "App. 4"},
			&saptest.TextField{ControlName: "P0006-ORT01", Value: " Montréal "},
			&saptest.TextField{ControlName: "T005U-BEZEI", Value: "Québec"},
			&saptest.TextField{ControlName: "P0006-PSTLZ", Value: " h0h 0h0 "},
		)},
	})

	address, err := directory.Address(12345)
	require.NoError(t, err)
	assert.Equal(t, model.Address{
		StreetNumberName: "123 Rue Principale App. 4",
		City:             "Montréal",
		Province:         "Québec",
		PostalCode:       "H0H 0H0",
	}, address)
}

func TestAddress_BlankSecondLine(t *testing.T) {
	directory := newDirectory("ALICE", map[pa20test.Request]pa20test.Response{
		{Employee: "12345", Infotype: "0006"}: {Screen: pa20test.DetailScreen("Afficher Adresses",
			&saptest.TextField{ControlName: "P0006-STRAS", Value: "456 Boulevard Nord"},
			&saptest.TextField{ControlName: "P0006-LOCAT", Value: "   "},
			&saptest.TextField{ControlName: "P0006-ORT01", Value: "Laval"},
			&saptest.TextField{ControlName: "T005U-BEZEI", Value: "Québec"},
			&saptest.TextField{ControlName: "P0006-PSTLZ", Value: "H7N 1A1"},
		)},
	})

	address, err := directory.Address(12345)
	require.NoError(t, err)
	// A blank second line must not leave a trailing separator.
	assert.Equal(t, "456 Boulevard Nord", address.StreetNumberName)
}

// communicationRow builds one row of the communication list screen.
func communicationRow(description, value string) []string {
	return []string{"2001/01/01", "9999/12/31", "0010", description, value, ""}
}

func TestEmailAddresses(t *testing.T) {
	table := saptest.NewTable("T0105",
		communicationRow("Téléphone", "514-555-0199"),
		communicationRow("Courrier électronique HQ", "dupont@example.gouv.qc.ca"),
		communicationRow("Courrier électronique HQ", "old.dupont@example.gouv.qc.ca"),
		communicationRow("Adresse courriel personnelle", "dupont@example.com"),
		communicationRow("Téléavertisseur", "514-555-0100"),
	)
	list := saptest.NewScreen("Liste Communication")
	list.Add(&saptest.Area{ControlName: "usr", Members: []sapgui.Control{table}})
	list.Add(table)

	directory := newDirectory("ALICE", map[pa20test.Request]pa20test.Response{
		{Employee: "12345", Infotype: "0105", List: true}: {Screen: list},
	})

	emails, err := directory.EmailAddresses(12345)
	require.NoError(t, err)
	assert.Equal(t, map[model.EmailType]string{
		model.EmailWork:     "dupont@example.gouv.qc.ca",
		model.EmailPersonal: "dupont@example.com",
	}, emails)

	// Both slots filled at row 3; the enumeration must stop there instead
	// of paging through the rest of the history.
	assert.Equal(t, 3, table.Pos())
}

func TestEmailAddresses_NoEmailChannels(t *testing.T) {
	directory := newDirectory("ALICE", map[pa20test.Request]pa20test.Response{
		{Employee: "12345", Infotype: "0105", List: true}: {Screen: pa20test.ListScreen("Liste Communication", "T0105",
			communicationRow("Téléphone", "514-555-0199"),
			communicationRow("Téléavertisseur", "514-555-0100"),
		)},
	})

	emails, err := directory.EmailAddresses(12345)
	require.NoError(t, err)
	assert.Empty(t, emails)
}

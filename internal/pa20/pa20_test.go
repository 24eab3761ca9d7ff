package pa20_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xiaoy312/sap-hr-cli/internal/pa20"
	"github.com/Xiaoy312/sap-hr-cli/internal/pa20/pa20test"
	"github.com/Xiaoy312/sap-hr-cli/internal/sapgui"
	"github.com/Xiaoy312/sap-hr-cli/internal/sapgui/saptest"
)

func TestRun_FoundIffTitleChanged(t *testing.T) {
	result := pa20test.DetailScreen("Afficher Identité")
	engine := pa20test.NewEngine("ALICE", map[pa20test.Request]pa20test.Response{
		{Employee: "12345", Infotype: "0002"}: {Screen: result},
	})
	client := pa20.NewClient(engine)

	window, err := client.Detail(12345, "0002", "")
	require.NoError(t, err)
	title, err := window.Title()
	require.NoError(t, err)
	assert.Equal(t, "Afficher Identité", title)

	// Same query for an unknown employee: the host is told not to
	// transition, so the unchanged title must classify as no result.
	_, err = client.Detail(99999, "0002", "")
	var nores *pa20.NoResultError
	require.ErrorAs(t, err, &nores)
	assert.Equal(t, 99999, nores.EmployeeID)
	assert.Equal(t, "0002", nores.Infotype)
	assert.Equal(t, pa20.ModeDetail, nores.Mode)
	assert.NotEmpty(t, nores.StatusMessage)
}

func TestRun_WritesQueryFields(t *testing.T) {
	session := pa20test.NewSession("ALICE", nil)
	engine := saptest.NewHost(session)
	client := pa20.NewClient(engine)

	_, err := client.Run(pa20.Query{EmployeeID: 777, Infotype: "0167", Subtype: "MEDI", Mode: pa20.ModeDetail})
	require.Error(t, err) // nothing scripted, so no transition

	lookup := session.Screens[pa20.TransactionCode]
	assert.Equal(t, "777", lookup.Field(pa20.FieldEmployeeID))
	assert.Equal(t, "0167", lookup.Field(pa20.FieldInfotype))
	assert.Equal(t, "MEDI", lookup.Field(pa20.FieldSubtype))
	require.NotEmpty(t, lookup.Keys)
	assert.Equal(t, sapgui.VKeyDisplay, lookup.Keys[len(lookup.Keys)-1])
}

func TestRun_ListAndDetailUseDistinctKeys(t *testing.T) {
	session := pa20test.NewSession("ALICE", nil)
	engine := saptest.NewHost(session)
	client := pa20.NewClient(engine)
	lookup := session.Screens[pa20.TransactionCode]

	_, _ = client.Run(pa20.Query{EmployeeID: 1, Infotype: "0105", Mode: pa20.ModeList})
	assert.Equal(t, sapgui.VKeyOverview, lookup.Keys[len(lookup.Keys)-1])

	_, _ = client.Run(pa20.Query{EmployeeID: 1, Infotype: "0105", Mode: pa20.ModeDetail})
	assert.Equal(t, sapgui.VKeyDisplay, lookup.Keys[len(lookup.Keys)-1])
}

func TestEntries_DiscoversTableUnderUserArea(t *testing.T) {
	list := pa20test.ListScreen("Liste Communication", "T0105",
		[]string{"2001/01/01", "9999/12/31", "0010", "desc", "val", ""},
		[]string{"2002/02/02", "9999/12/31", "0010", "desc2", "val2", ""},
	)
	engine := pa20test.NewEngine("ALICE", map[pa20test.Request]pa20test.Response{
		{Employee: "12345", Infotype: "0105", List: true}: {Screen: list},
	})
	client := pa20.NewClient(engine)

	cursor, err := client.Entries(12345, "0105", "")
	require.NoError(t, err)

	count := 0
	for cursor.Next() {
		count++
	}
	require.NoError(t, cursor.Err())
	assert.Equal(t, 2, count)
}

func TestEntries_NoTableOnListScreen(t *testing.T) {
	broken := pa20test.DetailScreen("Liste vide")
	engine := pa20test.NewEngine("ALICE", map[pa20test.Request]pa20test.Response{
		{Employee: "12345", Infotype: "0105", List: true}: {Screen: broken},
	})
	client := pa20.NewClient(engine)

	_, err := client.Entries(12345, "0105", "")
	var notFound *sapgui.ControlNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestIsNoData(t *testing.T) {
	noData := &pa20.NoResultError{
		StatusMessage: "Aucune donnée existe pour Régimes de santé  (0167) (dans période sélectionnée)",
	}
	assert.True(t, pa20.IsNoData(noData))

	otherStatus := &pa20.NoResultError{StatusMessage: "Le numéro de personnel n'existe pas"}
	assert.False(t, pa20.IsNoData(otherStatus))

	assert.False(t, pa20.IsNoData(&pa20.NoResultError{}))
	assert.False(t, pa20.IsNoData(nil))
	assert.False(t, pa20.IsNoData(assert.AnError))
}

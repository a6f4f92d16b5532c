package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append(args, "--end-date", "2022-03-31"))

	err := cmd.Execute()
	return out.String(), err
}

func TestDashboardCommand_Texto(t *testing.T) {
	out, err := run(t, "dashboard", "--region", "North")
	require.NoError(t, err)

	assert.Contains(t, out, "Receita total")
	assert.Contains(t, out, "North")
	assert.NotContains(t, out, "South")
}

func TestDashboardCommand_JSON(t *testing.T) {
	out, err := run(t, "dashboard", "--year", "2022", "--quarter", "1", "--json")
	require.NoError(t, err)

	var view domain.DashboardView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, []int{2022}, view.Selection.Years)
	assert.Len(t, view.Result.Monthly, 3)
}

func TestDashboardCommand_SemResultado(t *testing.T) {
	out, err := run(t, "dashboard", "--region", "Atlantis")
	require.NoError(t, err)
	assert.NotContains(t, out, "Receita total")
	assert.NotEmpty(t, out)
}

func TestDashboardCommand_TrimestreInvalido(t *testing.T) {
	_, err := run(t, "dashboard", "--quarter", "7")
	assert.Error(t, err)
}

func TestDashboardCommand_DataInvalida(t *testing.T) {
	_, err := run(t, "dashboard", "--start-date", "01/01/2022")
	assert.ErrorContains(t, err, "--start-date")
}

func TestOptionsCommand(t *testing.T) {
	out, err := run(t, "options", "--category", "Electronics")
	require.NoError(t, err)

	assert.Contains(t, out, "Região")
	assert.Contains(t, out, "North")
	assert.Contains(t, out, "2022")
}

func TestRecordsCommand(t *testing.T) {
	out, err := run(t, "records", "--limit", "3", "--json")
	require.NoError(t, err)

	var page domain.RecordsPage
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	assert.Len(t, page.Rows, 3)
	assert.Equal(t, 3, page.Limit)
	assert.Greater(t, page.Total, 3)
}

func TestRecordsCommand_Texto(t *testing.T) {
	out, err := run(t, "records", "--limit", "2", "--salesperson", "Alice")
	require.NoError(t, err)
	assert.Contains(t, out, "VENDEDOR")
	assert.Contains(t, out, "registros")
}

func TestRecordsCommand_LimiteDoAmbiente(t *testing.T) {
	t.Setenv("DETAIL_TABLE_LIMIT", "2")

	out, err := run(t, "records", "--json")
	require.NoError(t, err)

	var page domain.RecordsPage
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	assert.Equal(t, 2, page.Limit)
	assert.Len(t, page.Rows, 2)
}

func TestDashboardCommand_TopVendedoresDoAmbiente(t *testing.T) {
	t.Setenv("TOP_SALESPERSONS", "3")

	out, err := run(t, "dashboard", "--json")
	require.NoError(t, err)

	var view domain.DashboardView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Len(t, view.TopSalespersons, 3)
}

func TestRecordsCommand_SementeDoAmbiente(t *testing.T) {
	t.Setenv("DATASET_SEED", "7")
	fromEnv, err := run(t, "records", "--limit", "5", "--json")
	require.NoError(t, err)

	fromFlag, err := run(t, "records", "--limit", "5", "--json", "--seed", "7")
	require.NoError(t, err)

	t.Setenv("DATASET_SEED", "42")
	defaultSeed, err := run(t, "records", "--limit", "5", "--json")
	require.NoError(t, err)

	assert.JSONEq(t, fromFlag, fromEnv)
	assert.NotEqual(t, fromEnv, defaultSeed)
}

package scenario_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scenred/reduction"
	"github.com/katalvlaran/scenred/scenario"
)

func TestReadCSV_CostsOnly(t *testing.T) {
	set, err := scenario.ReadCSV(strings.NewReader("cost\n0\n1\n 2\n10\n"))
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 1, 2, 10}, set.Costs)
	assert.Nil(t, set.Probabilities)
	assert.False(t, set.Weighted())
	assert.Equal(t, 4, set.Len())
}

func TestReadCSV_WithProbabilities(t *testing.T) {
	in := "# solved relaxation costs\n12.5,0.2\n-3,0.3\n7e2,0.5\n"
	set, err := scenario.ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []float64{12.5, -3, 700}, set.Costs)
	assert.Equal(t, []float64{0.2, 0.3, 0.5}, set.Probabilities)
	assert.True(t, set.Weighted())
}

func TestReadCSV_Errors(t *testing.T) {
	_, err := scenario.ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, scenario.ErrEmptyInput)

	_, err = scenario.ReadCSV(strings.NewReader("cost,probability\n"))
	assert.ErrorIs(t, err, scenario.ErrEmptyInput)

	_, err = scenario.ReadCSV(strings.NewReader("1,0.5\n2\n"))
	assert.ErrorIs(t, err, scenario.ErrBadRecord, "ragged records")

	_, err = scenario.ReadCSV(strings.NewReader("1,2,3\n"))
	assert.ErrorIs(t, err, scenario.ErrBadRecord, "too wide")

	_, err = scenario.ReadCSV(strings.NewReader("1\nabc\n"))
	assert.ErrorIs(t, err, scenario.ErrBadRecord, "non-numeric cost")
}

func TestParseAndFormatIDs(t *testing.T) {
	ids, err := scenario.ParseIDs(" 1, 3,7")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 7}, ids)
	assert.Equal(t, "1,3,7", scenario.FormatIDs(ids))

	_, err = scenario.ParseIDs("")
	assert.ErrorIs(t, err, scenario.ErrBadIDList)

	_, err = scenario.ParseIDs("1,x")
	assert.ErrorIs(t, err, scenario.ErrBadIDList)
}

func TestWriteCSV(t *testing.T) {
	table, err := reduction.RedistributeProbabilities([]float64{0, 1, 2, 10}, []int{1, 3})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, scenario.WriteCSV(&buf, table))
	assert.Equal(t,
		"scenario,cost,representative,probability\n"+
			"0,0,1,0\n"+
			"1,1,1,0.75\n"+
			"2,2,1,0\n"+
			"3,10,3,0.25\n",
		buf.String())

	assert.ErrorIs(t, scenario.WriteCSV(&buf, nil), scenario.ErrNilTable)
}

func TestWriteTable(t *testing.T) {
	table, err := reduction.RedistributeProbabilities([]float64{0, 1, 2, 10}, []int{1, 3})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, scenario.WriteTable(&buf, table))
	out := buf.String()
	for _, want := range []string{"SCENARIO", "REPRESENTATIVE", "1 *", "3 *", "0.75", "TOTAL", "0.5"} {
		assert.Contains(t, out, want)
	}
}

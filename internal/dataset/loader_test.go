package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"pulsex/adapters/excel"
	"pulsex/domain/survey"
	"pulsex/internal"
	"pulsex/internal/errors"
	"pulsex/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "gender,race,education,age,sexual_orientation,marital_status,hispanic,received_vaccine,vaccine_intention,why_no_vaccine_Cost,why_no_vaccine_Other,region"

func newTestLoader() *Loader {
	return NewLoader("why_no_vaccine_", internal.NewNopLogger())
}

func writeCSV(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pulse.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600))
	return path
}

func TestLoadFileCoercesColumns(t *testing.T) {
	path := writeCSV(t,
		header,
		"Male,White,Some college,34,Straight,Married,False,True,,,,Midwest",
		"Female,Black,Graduate degree,61.0,Bisexual,Widowed,True,False,4,1.0,,South",
	)

	table, err := newTestLoader().LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())

	assert.Equal(t, "Male", table.Value(0, survey.FieldGender).AsString())
	assert.Equal(t, survey.NewNumericValue(61), table.Value(1, survey.FieldAge))
	assert.Equal(t, survey.NewBooleanValue(true), table.Value(0, survey.FieldReceivedVaccine))
	assert.Equal(t, survey.NewBooleanValue(true), table.Value(1, survey.FieldHispanic))
	assert.True(t, table.Value(0, survey.FieldVaccineIntention).IsMissing())
	assert.Equal(t, survey.NewNumericValue(4), table.Value(1, survey.FieldVaccineIntention))
	assert.True(t, table.Value(0, "why_no_vaccine_Cost").IsMissing())
	assert.Equal(t, survey.NewNumericValue(1), table.Value(1, "why_no_vaccine_Cost"))
	assert.Equal(t, "South", table.Value(1, "region").AsString(), "unknown columns are inferred")
}

func TestBuildTableMissingColumn(t *testing.T) {
	raw := &excel.RawData{
		Headers: []string{"gender", "race", "education"},
		Rows:    [][]string{{"Male", "White", "Some college"}},
	}

	_, err := newTestLoader().BuildTable(raw)
	require.Error(t, err)
	assert.Equal(t, errors.CodeMissingColumn, errors.GetCode(err))
	assert.Equal(t, survey.FieldAge, errors.GetField(err))
}

func TestBuildTableRejectsNonNumericAge(t *testing.T) {
	path := writeCSV(t,
		header,
		"Male,White,Some college,34,Straight,Married,False,True,,,,",
		"Male,White,Some college,forty,Straight,Married,False,True,,,,",
	)

	_, err := newTestLoader().LoadFile(path)
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidValue, errors.GetCode(err))
	assert.Equal(t, survey.FieldAge, errors.GetField(err))
	assert.Contains(t, err.Error(), "row 1")
}

func TestBuildTableMissingAgeIsAllowed(t *testing.T) {
	path := writeCSV(t,
		header,
		"Male,White,Some college,,Straight,Married,False,True,,,,",
	)

	table, err := newTestLoader().LoadFile(path)
	require.NoError(t, err)
	assert.True(t, table.Value(0, survey.FieldAge).IsMissing())
}

func TestLoadGeneratedData(t *testing.T) {
	config := testkit.DefaultPulseConfig()
	config.Respondents = 100
	raw := testkit.NewPulseDataGenerator(config).Generate()

	table, err := newTestLoader().BuildTable(raw)
	require.NoError(t, err)

	assert.Equal(t, 100, table.Len())
	assert.Len(t, table.ColumnsWithPrefix("why_no_vaccine_"), len(testkit.HesitancyReasons))
}

func TestStoreInitRunsOnce(t *testing.T) {
	store := NewStore()
	calls := 0
	load := func() (*survey.Table, error) {
		calls++
		return survey.NewTable([]string{"age"}, [][]survey.Value{{survey.NewNumericValue(30)}})
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Init("memory", load)
		}()
	}
	wg.Wait()

	table, err := store.Init("other", func() (*survey.Table, error) {
		return nil, fmt.Errorf("never called")
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, table.Len())
	assert.Same(t, table, store.Table())
	assert.Equal(t, "memory", store.Source())
}

func TestStoreInitKeepsFirstError(t *testing.T) {
	store := NewStore()

	_, err := store.Init("broken", func() (*survey.Table, error) {
		return nil, errors.MissingColumn("age")
	})
	require.Error(t, err)

	_, err = store.Init("broken", func() (*survey.Table, error) {
		return survey.NewTable(nil, nil)
	})
	assert.Equal(t, errors.CodeMissingColumn, errors.GetCode(err))
	assert.Nil(t, store.Table())
}

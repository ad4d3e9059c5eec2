package excel

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pulsex/internal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newQuietReader(path string) *DataReader {
	return NewDataReader(path).WithLogger(internal.NewNopLogger())
}

func TestReadCSVData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pulse.csv")
	content := "gender,age,why_no_vaccine_Cost\nMale, 34 ,1.0\n,,\nFemale,51\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	data, err := newQuietReader(path).ReadData()
	require.NoError(t, err)

	assert.Equal(t, []string{"gender", "age", "why_no_vaccine_Cost"}, data.Headers)
	require.Len(t, data.Rows, 2, "blank rows are skipped")
	assert.Equal(t, []string{"Male", "34", "1.0"}, data.Rows[0])
	assert.Equal(t, []string{"Female", "51", ""}, data.Rows[1], "short rows are padded")
}

func TestReadCSVDropsUnnamedIndexColumn(t *testing.T) {
	data, err := newQuietReader("x.csv").ReadCSV(strings.NewReader(",gender,age\n0,Male,20\n1,Female,30\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"gender", "age"}, data.Headers)
	assert.Equal(t, [][]string{{"Male", "20"}, {"Female", "30"}}, data.Rows)
}

func TestReadCSVHeaderOnly(t *testing.T) {
	data, err := newQuietReader("x.csv").ReadCSV(strings.NewReader("gender,age\n"))
	require.NoError(t, err)
	assert.Empty(t, data.Rows)
}

func TestReadCSVEmpty(t *testing.T) {
	_, err := newQuietReader("x.csv").ReadCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestReadDataMissingFile(t *testing.T) {
	_, err := newQuietReader(filepath.Join(t.TempDir(), "absent.csv")).ReadData()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestReadExcelData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pulse.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"gender", "age", "received_vaccine"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"Male", 40, "True"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{"Female", 22, "False"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	data, err := newQuietReader(path).ReadData()
	require.NoError(t, err)

	assert.Equal(t, []string{"gender", "age", "received_vaccine"}, data.Headers)
	assert.Equal(t, [][]string{{"Male", "40", "True"}, {"Female", "22", "False"}}, data.Rows)
}

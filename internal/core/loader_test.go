package core

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rateHeader = "id,email,name,department,hours_worked,rate\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeFile(t, "empty.csv", "")

	records, err := Load(path, LoadOptions{})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoad_HeaderOnly(t *testing.T) {
	path := writeFile(t, "header_only.csv", rateHeader)

	records, err := Load(path, LoadOptions{})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoad_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.csv")

	_, err := Load(path, LoadOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, path, nf.Path)
}

func TestLoad_MissingRequiredColumn(t *testing.T) {
	path := writeFile(t, "no_email.csv", "id,name,department,hours_worked,rate\n1,Alice,HR,40,50\n")

	_, err := Load(path, LoadOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSchema))

	var se *SchemaError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, []string{"email"}, se.Missing)
	assert.Contains(t, err.Error(), "email")
}

func TestLoad_MissingRateColumn(t *testing.T) {
	path := writeFile(t, "no_rate.csv", "id,email,name,department,hours_worked\n1,a,Alice,HR,40\n")

	_, err := Load(path, LoadOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSchema))
	assert.Contains(t, err.Error(), "rate column")
}

func TestLoad_ColumnMismatch(t *testing.T) {
	path := writeFile(t, "mismatch.csv", rateHeader+
		"1,test,Alice,Marketing,40\n"+
		"2,test,Bob,Sales,35,55")
	var diag bytes.Buffer

	res, err := LoadFile(path, LoadOptions{Diagnostics: &diag})
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "Bob", res.Records[0].Name())
	assert.Equal(t, 1, res.Malformed)
	assert.Contains(t, diag.String(), "skipping line 2 in "+path)
}

func TestLoad_NegativeHoursDropped(t *testing.T) {
	path := writeFile(t, "negative.csv", rateHeader+
		"1,a,Alice,HR,-5,50\n"+
		"2,b,Bob,HR,10,50\n")
	var diag bytes.Buffer

	res, err := LoadFile(path, LoadOptions{Diagnostics: &diag})
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "Bob", res.Records[0].Name())
	assert.Equal(t, 1, res.Rejected)
	assert.Empty(t, diag.String(), "invariant violations are dropped silently")
}

func TestLoad_InvalidNumberReportsFileLine(t *testing.T) {
	path := writeFile(t, "bad_number.csv", rateHeader+
		"1,a,Alice,HR,40\n"+
		"2,b,Bob,HR,abc,50\n"+
		"3,c,Carol,HR,30,50\n")
	var diag bytes.Buffer

	res, err := LoadFile(path, LoadOptions{Diagnostics: &diag})
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "Carol", res.Records[0].Name())
	assert.Equal(t, 1, res.Invalid)
	assert.Contains(t, diag.String(), "line 3 contains invalid data")
}

func TestLoad_RateColumnHeaderOrder(t *testing.T) {
	path := writeFile(t, "two_rates.csv",
		"id,email,name,department,hours_worked,salary,hourly_rate\n"+
			"1,a,Alice,HR,10,70,30\n")

	res, err := LoadFile(path, LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, RateColumn("salary"), res.RateColumn)
	require.Len(t, res.Records, 1)
	assert.Equal(t, 70.0, res.Records[0].Rate())
	assert.Equal(t, 700.0, res.Records[0].Payout())
}

func TestLoad_ColumnsInAnyOrder(t *testing.T) {
	path := writeFile(t, "reordered.csv",
		"department,hourly_rate,hours_worked,name,email,id\r\n"+
			"Design, 35 ,40, Alice ,a@x,1\r\n")

	records, err := Load(path, LoadOptions{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Alice", records[0].Name())
	assert.Equal(t, "Design", records[0].Department())
	assert.Equal(t, 40.0, records[0].Hours())
	assert.Equal(t, 35.0, records[0].Rate())
}

func TestLoad_CustomRateColumns(t *testing.T) {
	path := writeFile(t, "wage.csv", "id,email,name,department,hours_worked,wage\n1,a,Alice,HR,10,5\n")

	records, err := Load(path, LoadOptions{RateColumns: []string{"wage"}})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 50.0, records[0].Payout())
}

func TestLoad_RecordInvariants(t *testing.T) {
	path := writeFile(t, "mixed.csv", rateHeader+
		"1,a,Alice,HR,40,50\n"+
		"2,b,,HR,40,50\n"+
		"3,c,Carol,,40,50\n"+
		"4,d,Dan,HR,40,-1\n"+
		"5,e,Eve,Ops,37.5,42.25\n"+
		"6,f,Finn,Ops,0,0\n")

	records, err := Load(path, LoadOptions{})
	require.NoError(t, err)
	require.Len(t, records, 3)

	for _, r := range records {
		assert.NotEmpty(t, r.Name())
		assert.NotEmpty(t, r.Department())
		assert.GreaterOrEqual(t, r.Hours(), 0.0)
		assert.GreaterOrEqual(t, r.Rate(), 0.0)
		assert.InDelta(t, r.Hours()*r.Rate(), r.Payout(), 1e-9)
	}
	assert.Equal(t, []string{"Alice", "Eve", "Finn"}, []string{records[0].Name(), records[1].Name(), records[2].Name()})
}

func TestFileResult_Metrics(t *testing.T) {
	path := writeFile(t, "metrics.csv", rateHeader+
		"1,a,Alice,HR,40,50\n"+
		"2,b,Bob,HR,20,100\n")

	res, err := LoadFile(path, LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2000.0, res.MeanPayout())
	assert.Equal(t, 40.0, res.MaxHours())

	empty := &FileResult{}
	assert.Zero(t, empty.MeanPayout())
	assert.Zero(t, empty.MaxHours())
}

func TestLoad_InvalidUTF8(t *testing.T) {
	path := writeFile(t, "bad.csv", rateHeader+"1,a,Al\xffice,HR,10,50\n")

	records, err := Load(path, LoadOptions{})
	require.Error(t, err)
	assert.Nil(t, records)
	assert.Contains(t, err.Error(), "not valid UTF-8")
	assert.False(t, errors.Is(err, ErrSchema))
}

func TestLoad_CarriageReturnLineEndings(t *testing.T) {
	path := writeFile(t, "mac.csv", "id,email,name,department,hours_worked,rate\r1,a,Cy,HR,1,50\r")

	records, err := Load(path, LoadOptions{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Cy", records[0].Name())
	assert.Equal(t, 50.0, records[0].Rate())
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single newline", "\n", []string{""}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"bare cr", "a\rb\r", []string{"a", "b"}},
		{"mixed endings", "a\r\nb\rc\n", []string{"a", "b", "c"}},
		{"blank line kept", "a\n\nb", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitLines(tt.input))
		})
	}
}

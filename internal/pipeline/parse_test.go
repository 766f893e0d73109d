package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	csv := "Client name,Service Category,Price ( MAD ),Employee\n" +
		"Amina,Hair,350,Emma\n" +
		"\n" +
		"Sara,Facial,450.50,John\n"

	records, err := ParseCSV(csv)
	require.NoError(t, err)
	require.Len(t, records, 2, "blank lines are skipped")

	assert.Equal(t, "Amina", records[0].ClientName)
	assert.Equal(t, "Hair", records[0].ServiceCategory)
	assert.Equal(t, 350.0, records[0].Price)
	assert.Equal(t, "Emma", records[0].Employee)
	assert.Equal(t, 450.50, records[1].Price)
	assert.Equal(t, "MAD", records[0].Extra["currency"])
}

func TestParseCSVNumericColumns(t *testing.T) {
	csv := "Client name,price\na,10\nb,20\nc,30.5\n"
	records, err := ParseCSV(csv)
	require.NoError(t, err)
	require.Len(t, records, 3)
	// A column whose every value is numeric-looking text must be numeric in
	// every row.
	assert.Equal(t, []float64{10, 20, 30.5},
		[]float64{records[0].Price, records[1].Price, records[2].Price})
}

func TestParseCSVQuotedComma(t *testing.T) {
	csv := "Client name,price\n\"Doe, Jane\",100\n"
	records, err := ParseCSV(csv)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Doe, Jane", records[0].ClientName)
	assert.Equal(t, 100.0, records[0].Price)
}

func TestParseCSVShortRow(t *testing.T) {
	csv := "Client name,Service Category,price\nAmina\n"
	records, err := ParseCSV(csv)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Amina", records[0].ClientName)
	assert.Empty(t, records[0].ServiceCategory)
	assert.Zero(t, records[0].Price)
}

func TestParseCSVNonNumericPrice(t *testing.T) {
	csv := "Client name,price\nAmina,free\n"
	records, err := ParseCSV(csv)
	require.NoError(t, err)
	assert.Zero(t, records[0].Price, "non-numeric price coerces to 0")
}

func TestParseCSVUnknownColumnsPreserved(t *testing.T) {
	csv := "Client name,Favorite Color\nAmina,blue\n"
	records, err := ParseCSV(csv)
	require.NoError(t, err)
	assert.Equal(t, "blue", records[0].Extra["Favorite Color"])
}

func TestParseJSON(t *testing.T) {
	data := []byte(`[
		{"Client name": "Amina", "Service Category": "Hair", "price": 350, "transaction date": "2024-01-15"},
		{"Client name": "Sara", "price": "200"}
	]`)
	records, err := ParseJSON(data)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Amina", records[0].ClientName)
	assert.Equal(t, 350.0, records[0].Price)
	assert.Equal(t, "2024-01-15", records[0].TransactionDate)
	assert.Equal(t, 200.0, records[1].Price, "string-typed numbers coerce")
}

func TestParseJSONNotAnArray(t *testing.T) {
	_, err := ParseJSON([]byte(`{"Client name": "Amina"}`))
	assert.Error(t, err)

	_, err = ParseJSON([]byte(`not json`))
	assert.Error(t, err)
}

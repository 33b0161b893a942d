package dataset

import (
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `sex,age,weight
M,34,81.6
F,29,
M,41,92.3
F,NA,64.0
`

func TestReadCSV(t *testing.T) {
	d, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, []string{"sex", "age", "weight"}, d.Names())
	assert.Equal(t, 4, d.Len())

	sex, ok := d.Column("sex")
	require.True(t, ok)
	assert.Equal(t, []string{"M", "F", "M", "F"}, sex.Values)
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	require.Error(t, err)
}

func TestColumn_Numeric(t *testing.T) {
	d, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	age, _ := d.Column("age")
	vals, ok := age.Numeric()
	assert.True(t, ok, "NA entries must not break numeric detection")
	assert.Equal(t, []float64{34, 29, 41}, vals)

	sex, _ := d.Column("sex")
	_, ok = sex.Numeric()
	assert.False(t, ok)
}

func TestColumn_Levels(t *testing.T) {
	d, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	sex, _ := d.Column("sex")
	assert.Equal(t, []string{"M", "F"}, sex.Levels(), "first-appearance order, missing skipped")
	assert.Equal(t, 4, sex.Present())

	weight, _ := d.Column("weight")
	assert.Equal(t, 3, weight.Present())
}

func TestApplyMeta(t *testing.T) {
	d, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	m, err := ReadMeta(strings.NewReader(`
columns:
  weight:
    label: Weight(kg)
  age:
    label: Age
    units: years
  bogus:
    label: ignored
`))
	require.NoError(t, err)

	d.ApplyMeta(m)

	weight, _ := d.Column("weight")
	assert.Equal(t, "Weight(kg)", weight.Label)

	age, _ := d.Column("age")
	assert.Equal(t, "Age", age.Label)
	assert.Equal(t, "years", age.Units)
}

func TestFromRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("SELECT (.+) FROM patients").WillReturnRows(
		sqlmock.NewRows([]string{"sex", "age"}).
			AddRow("M", "34").
			AddRow("F", nil).
			AddRow("F", "29"))

	rows, err := db.Query("SELECT sex, age FROM patients")
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()

	d, err := FromRows(rows)
	require.NoError(t, err)

	assert.Equal(t, []string{"sex", "age"}, d.Names())
	assert.Equal(t, 3, d.Len())

	age, _ := d.Column("age")
	assert.Equal(t, []string{"34", "", "29"}, age.Values)
	assert.Equal(t, 2, age.Present())

	vals, ok := age.Numeric()
	assert.True(t, ok)
	assert.Equal(t, []float64{34, 29}, vals)

	require.NoError(t, mock.ExpectationsWereMet())
}

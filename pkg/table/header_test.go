package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowHeader_ThenSubheader(t *testing.T) {
	b := newTestBuilder().
		RowHeader("Age").
		RowSubheader("Years")
	require.NoError(t, b.Err())

	tbl, err := b.Table()
	require.NoError(t, err)

	require.Len(t, tbl.RowHeader, 2)
	require.Len(t, tbl.RowHeader[0], 1)
	require.Len(t, tbl.RowHeader[1], 1)

	primary := tbl.RowHeader[0][0]
	assert.Equal(t, "Age", primary.Value)
	assert.Equal(t, RoleHeader, primary.Role)

	sub := tbl.RowHeader[1][0]
	assert.Equal(t, "Years", sub.Value)
	assert.Equal(t, RoleSubheader, sub.Role)
	assert.True(t, sub.Role.IsHeader(), "a subheader must satisfy the header contract")
}

func TestRowHeader_TwicePrimary(t *testing.T) {
	b := newTestBuilder().
		RowHeader("Age").
		RowHeader("Weight")
	require.NoError(t, b.Err())

	tbl, err := b.Table()
	require.NoError(t, err)

	// Two independent top-level headers, not merged.
	require.Len(t, tbl.RowHeader, 2)
	assert.Equal(t, "Age", tbl.RowHeader[0][0].Value)
	assert.Equal(t, RoleHeader, tbl.RowHeader[0][0].Role)
	assert.Equal(t, "Weight", tbl.RowHeader[1][0].Value)
	assert.Equal(t, RoleHeader, tbl.RowHeader[1][0].Role)
}

func TestSubheader_FirstAttachmentIsPrimary(t *testing.T) {
	b := newTestBuilder().ColSubheader("n")
	require.NoError(t, b.Err())

	tbl, err := b.Table()
	require.NoError(t, err)

	// Nothing to be "sub" to yet: the requested flag is overridden.
	require.Len(t, tbl.ColHeader, 1)
	assert.Equal(t, RoleHeader, tbl.ColHeader[0][0].Role)
}

func TestColHeader_FlattensAndAnchors(t *testing.T) {
	rowNode := &testNode{name: "r"}
	colNode := &testNode{name: "c"}
	b := New(rowNode, colNode).ColHeader("Overall", []string{"Male", "Female"})
	require.NoError(t, b.Err())

	tbl, err := b.Table()
	require.NoError(t, err)

	require.Len(t, tbl.ColHeader, 1)
	level := tbl.ColHeader[0]
	require.Len(t, level, 3)
	assert.Equal(t, "Female", level[2].Value)
	for _, c := range level {
		assert.Same(t, rowNode, c.Row)
		assert.Same(t, colNode, c.Col)
	}
}

func TestHeader_LeavesBodyAndCursorAlone(t *testing.T) {
	b := newTestBuilder().CursorPos(2, 5).RowHeader("Age").ColHeader("Sex")
	require.NoError(t, b.Err())

	row, col := b.Cursor()
	assert.Equal(t, 2, row)
	assert.Equal(t, 5, col)

	tbl, err := b.Table()
	require.NoError(t, err)
	assert.Len(t, tbl.Rows, 1, "header attachment must not touch the grid")
}

func TestHeader_CountCells(t *testing.T) {
	b := newTestBuilder().
		ColHeader("Male", "Female").
		ColSubheader([]N{40, 60})
	require.NoError(t, b.Err())

	tbl, err := b.Table()
	require.NoError(t, err)
	require.Len(t, tbl.ColHeader, 2)
	assert.Equal(t, N(40), tbl.ColHeader[1][0].Value)
	assert.Equal(t, RoleSubheader, tbl.ColHeader[1][0].Role)
}

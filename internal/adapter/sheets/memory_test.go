package sheets

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySource_SeedReadAppend(t *testing.T) {
	ctx := context.Background()
	src := NewMemorySource()
	src.Seed("https://docs.google.com/spreadsheets/d/sheet1/edit", "", [][]any{{"Project Name"}})

	require.NoError(t, src.AppendRow(ctx, "sheet1", "", []any{"P1"}))

	values, err := src.ReadAll(ctx, "sheet1", "")
	require.NoError(t, err)
	assert.Equal(t, [][]any{{"Project Name"}, {"P1"}}, values)

	// Returned grids are copies.
	values[1][0] = "mutated"
	again, err := src.ReadAll(ctx, "sheet1", "")
	require.NoError(t, err)
	assert.Equal(t, "P1", again[1][0])
}

func TestMemorySource_Missing(t *testing.T) {
	src := NewMemorySource()

	_, err := src.ReadAll(context.Background(), "nope", "")
	assert.ErrorIs(t, err, ErrSheetNotFound)
	assert.ErrorIs(t, src.AppendRow(context.Background(), "nope", "", []any{"x"}), ErrSheetNotFound)
}

func TestMemorySource_ReplaceAndFail(t *testing.T) {
	ctx := context.Background()
	src := NewMemorySource()
	require.NoError(t, src.ReplaceAll(ctx, "s", "Tab", [][]any{{"a"}, {"1"}}))

	values, err := src.ReadAll(ctx, "s", "Tab")
	require.NoError(t, err)
	assert.Len(t, values, 2)

	boom := errors.New("quota")
	src.FailWith(boom)
	_, err = src.ReadAll(ctx, "s", "Tab")
	assert.ErrorIs(t, err, boom)

	src.FailWith(nil)
	_, err = src.ReadAll(ctx, "s", "Tab")
	assert.NoError(t, err)
}

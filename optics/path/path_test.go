package path

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/authcorp/lenskit/errors"
	"github.com/authcorp/lenskit/optics/lens"
)

type point struct {
	Label string
	X     int
}

func pointTable(t *testing.T) *Table[point] {
	t.Helper()
	label := lens.NewLens(
		func(p point) string { return p.Label },
		func(p point, s string) point { p.Label = s; return p },
	)
	x := lens.NewLens(
		func(p point) int { return p.X },
		func(p point, v int) point { p.X = v; return p },
	)
	table := NewTable[point]()
	require.NoError(t, table.Register("label", Text(label)))
	require.NoError(t, table.Register("x", Int(x)))
	return table
}

func TestTableGetSet(t *testing.T) {
	table := pointTable(t)
	p := point{Label: "origin", X: 0}

	got, err := table.Get(p, "label")
	require.NoError(t, err)
	assert.Equal(t, "origin", got)

	moved, err := table.Set(p, "x", " 42 ")
	require.NoError(t, err)
	assert.Equal(t, point{Label: "origin", X: 42}, moved)
	assert.Equal(t, point{Label: "origin", X: 0}, p)

	got, err = table.Get(moved, "x")
	require.NoError(t, err)
	assert.Equal(t, "42", got)
}

func TestTableUnknownPath(t *testing.T) {
	table := pointTable(t)

	_, err := table.Get(point{}, "y")
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.CodeOf(err))

	p := point{Label: "a"}
	same, err := table.Set(p, "y", "1")
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.CodeOf(err))
	assert.Equal(t, p, same)
}

func TestTableParseError(t *testing.T) {
	table := pointTable(t)
	p := point{X: 7}

	same, err := table.Set(p, "x", "seven")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeValidation, apperrors.CodeOf(err))
	assert.Equal(t, p, same)

	appErr, ok := apperrors.AsType[*apperrors.AppError](err)
	require.True(t, ok)
	assert.Equal(t, "x", appErr.Details["path"])
	assert.NotNil(t, errors.Unwrap(err))
}

func TestTableRegisterRejectsDuplicatesAndEmpty(t *testing.T) {
	table := pointTable(t)

	err := table.Register("x", Text(lens.NewLens(
		func(p point) string { return p.Label },
		func(p point, s string) point { p.Label = s; return p },
	)))
	assert.Equal(t, apperrors.ErrCodeConflict, apperrors.CodeOf(err))

	err = table.Register("  ", Accessor[point]{})
	assert.Equal(t, apperrors.ErrCodeValidation, apperrors.CodeOf(err))

	assert.Panics(t, func() { table.MustRegister("label", Accessor[point]{}) })
}

func TestTablePathsSorted(t *testing.T) {
	assert.Equal(t, []string{"label", "x"}, pointTable(t).Paths())
}

type tagged struct {
	Name string
	Tags map[string]string
}

func taggedTable(t *testing.T) *Table[tagged] {
	t.Helper()
	name := lens.NewLens(
		func(v tagged) string { return v.Name },
		func(v tagged, s string) tagged { v.Name = s; return v },
	)
	tags := lens.NewLens(
		func(v tagged) map[string]string { return v.Tags },
		func(v tagged, m map[string]string) tagged { v.Tags = m; return v },
	)
	table := NewTable[tagged]()
	require.NoError(t, table.Register("name", Text(name)))
	require.NoError(t, table.Register("tags.pinned", Text(lens.Compose(tags, lens.MapAt("pinned", "no")))))
	require.NoError(t, table.RegisterFamily("tags", func(key string) Accessor[tagged] {
		return Text(lens.Compose(tags, lens.MapAt(key, "")))
	}))
	return table
}

func TestTableFamily(t *testing.T) {
	table := taggedTable(t)
	v := tagged{Name: "a", Tags: map[string]string{"env": "prod"}}

	got, err := table.Get(v, "tags.env")
	require.NoError(t, err)
	assert.Equal(t, "prod", got)

	got, err = table.Get(v, "tags.team")
	require.NoError(t, err)
	assert.Empty(t, got)

	updated, err := table.Set(v, "tags.team", "core")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"env": "prod", "team": "core"}, updated.Tags)
	assert.Equal(t, map[string]string{"env": "prod"}, v.Tags)

	got, err = table.Get(v, "tags.pinned")
	require.NoError(t, err)
	assert.Equal(t, "no", got, "fixed path wins over the family")

	_, err = table.Get(v, "tags.")
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.CodeOf(err))

	_, err = table.Get(v, "tags")
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.CodeOf(err))
}

func TestTableFamilyLongestPrefixWins(t *testing.T) {
	table := NewTable[string]()
	constant := func(text string) Family[string] {
		return func(string) Accessor[string] {
			return Text(lens.NewLens(
				func(string) string { return text },
				func(s string, _ string) string { return s },
			))
		}
	}
	table.MustRegisterFamily("a", constant("short")).MustRegisterFamily("a.b", constant("long"))

	got, err := table.Get("", "a.b.c")
	require.NoError(t, err)
	assert.Equal(t, "long", got)

	got, err = table.Get("", "a.c")
	require.NoError(t, err)
	assert.Equal(t, "short", got)

	got, err = table.Get("", "a.b")
	require.NoError(t, err)
	assert.Equal(t, "short", got)
}

func TestTableRegisterFamilyRejectsDuplicatesAndEmpty(t *testing.T) {
	table := taggedTable(t)

	err := table.RegisterFamily("tags", func(string) Accessor[tagged] { return Accessor[tagged]{} })
	assert.Equal(t, apperrors.ErrCodeConflict, apperrors.CodeOf(err))

	err = table.RegisterFamily(" ", func(string) Accessor[tagged] { return Accessor[tagged]{} })
	assert.Equal(t, apperrors.ErrCodeValidation, apperrors.CodeOf(err))

	assert.Panics(t, func() {
		table.MustRegisterFamily("tags", func(string) Accessor[tagged] { return Accessor[tagged]{} })
	})
}

func TestTablePathsListsFamilies(t *testing.T) {
	assert.Equal(t, []string{"name", "tags.*", "tags.pinned"}, taggedTable(t).Paths())
}

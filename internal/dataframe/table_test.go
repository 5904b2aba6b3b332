package dataframe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		columns []*Series
		wantErr bool
	}{
		{
			name: "equal length columns",
			columns: []*Series{
				NewSeries("A", Int(1), Int(2)),
				NewSeries("B", String("x"), Null()),
			},
			wantErr: false,
		},
		{
			name:    "no columns",
			columns: nil,
			wantErr: true,
		},
		{
			name: "mismatched lengths",
			columns: []*Series{
				NewSeries("A", Int(1), Int(2)),
				NewSeries("B", String("x")),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := New(tt.columns...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 2, table.NumRows())
			assert.Equal(t, []int{0, 1}, table.Index())
		})
	}
}

func TestValueEqual(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"equal strings", String("x"), String("x"), true},
		{"different strings", String("x"), String("y"), false},
		{"null never equals null", Null(), Null(), false},
		{"null never equals value", Null(), String("x"), false},
		{"equal ints", Int(5), Int(5), true},
		{"int does not equal float", Int(5), Float(5), false},
		{"equal times", Time(now), Time(now), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}

func TestSeriesKind(t *testing.T) {
	tests := []struct {
		name   string
		series *Series
		want   Kind
	}{
		{"all ints", NewSeries("A", Int(1), Int(2)), KindInt},
		{"ints with nulls", NewSeries("A", Int(1), Null()), KindInt},
		{"all nulls", NewSeries("A", Null(), Null()), KindNull},
		{"mixed kinds", NewSeries("A", Int(1), String("x")), KindString},
		{"dates", NewSeries("A", Time(time.Now()), Null()), KindTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.series.Kind())
		})
	}
}

func TestNullCounts(t *testing.T) {
	s := NewSeries("A", Null(), Int(1), Null())
	assert.Equal(t, 2, s.NullCount())

	// Null and non-null cells partition the column.
	assert.Equal(t, s.Len(), s.NullCount()+(s.Len()-s.NullCount()))
}

func TestSelectKeepsIndexLabels(t *testing.T) {
	table, err := New(
		NewSeries("A", Int(10), Int(20), Int(30)),
		NewSeries("B", String("x"), Null(), String("z")),
	)
	require.NoError(t, err)

	subset := table.Select([]int{2, 0})
	assert.Equal(t, []int{2, 0}, subset.Index())

	col, err := subset.Column("A")
	require.NoError(t, err)
	assert.Equal(t, int64(30), col.At(0).Int64())
	assert.Equal(t, int64(10), col.At(1).Int64())

	// Filtering a subset keeps the original labels too.
	nested := subset.Filter(func(row int) bool { return row == 1 })
	assert.Equal(t, []int{0}, nested.Index())
}

func TestRowNullCount(t *testing.T) {
	table, err := New(
		NewSeries("A", Int(1), Null()),
		NewSeries("B", Null(), Null()),
	)
	require.NoError(t, err)

	assert.Equal(t, 1, table.RowNullCount(0))
	assert.Equal(t, 2, table.RowNullCount(1))
}

func TestTransformMutatesInPlace(t *testing.T) {
	table, err := New(NewSeries("A", String("a"), Null()))
	require.NoError(t, err)

	col, err := table.Column("A")
	require.NoError(t, err)
	col.Transform(func(v Value) Value {
		if v.IsNull() {
			return v
		}
		return String(v.Str() + "!")
	})

	again, err := table.Column("A")
	require.NoError(t, err)
	assert.Equal(t, "a!", again.At(0).Str())
	assert.True(t, again.At(1).IsNull())
}

func TestCloneIsIndependent(t *testing.T) {
	table, err := New(NewSeries("A", Int(1)))
	require.NoError(t, err)

	clone := table.Clone()
	col, err := clone.Column("A")
	require.NoError(t, err)
	col.Set(0, Int(99))

	orig, err := table.Column("A")
	require.NoError(t, err)
	assert.Equal(t, int64(1), orig.At(0).Int64())
}

func TestValueFormat(t *testing.T) {
	d := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"int", Int(1200), "1200"},
		{"float without trailing zeros", Float(850), "850"},
		{"negative float", Float(-300), "-300"},
		{"string", String("Jane Rust"), "Jane Rust"},
		{"date", Time(d), "2024-12-01"},
		{"null", Null(), "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Format())
		})
	}
}

package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProject(t *testing.T) {
	tests := []struct {
		name   string
		panel  OptionalFloat
		factor OptionalFloat
		want   OptionalFloat
	}{
		{"scales by factor", SomeFloat(50), SomeFloat(0.5), SomeFloat(100)},
		{"full coverage", SomeFloat(12.5), SomeFloat(1), SomeFloat(12.5)},
		{"missing factor", SomeFloat(50), OptionalFloat{}, OptionalFloat{}},
		{"missing panel", OptionalFloat{}, SomeFloat(0.5), OptionalFloat{}},
		{"zero factor", SomeFloat(50), SomeFloat(0), OptionalFloat{}},
		{"negative factor", SomeFloat(50), SomeFloat(-0.2), OptionalFloat{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project(tt.panel, tt.factor)
			assert.Equal(t, tt.want.Valid, got.Valid)
			if tt.want.Valid {
				assert.InDelta(t, tt.want.Value, got.Value, 1e-9)
			}
		})
	}
}

func TestProject_NeverNaN(t *testing.T) {
	got := Project(SomeFloat(0), SomeFloat(0))
	assert.False(t, got.Valid)
	assert.False(t, math.IsNaN(got.Value))
}

func TestOptionalInt(t *testing.T) {
	assert.True(t, SomeInt(2021).AtLeast(2021))
	assert.False(t, SomeInt(2020).AtLeast(2021))
	assert.False(t, OptionalInt{}.AtLeast(0))
	assert.Equal(t, "2022", SomeInt(2022).String())
	assert.Equal(t, "", OptionalInt{}.String())
}

func TestOptionalFloat_String(t *testing.T) {
	assert.Equal(t, "1234.5", SomeFloat(1234.5).String())
	assert.Equal(t, "", OptionalFloat{}.String())
}

func TestIsReported(t *testing.T) {
	for _, p := range Platforms() {
		assert.True(t, IsReported(string(p)), p)
	}
	assert.False(t, IsReported("NINTENDO SWITCH"))
	assert.False(t, IsReported("ps5"))
	assert.False(t, IsReported(""))
}

func TestCanonicalColumns(t *testing.T) {
	cols := CanonicalColumns()
	assert.Len(t, cols, 17)
	assert.Equal(t, ColSource, cols[0])
	assert.Equal(t, ColValueLocal100, cols[len(cols)-1])
}

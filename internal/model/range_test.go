package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLineRange(t *testing.T) {
	tests := []struct {
		in      string
		want    LineRange
		wantErr bool
	}{
		{in: "7", want: LineRange{Start: 7, End: 7}},
		{in: "3-5", want: LineRange{Start: 3, End: 5}},
		{in: " 3 - 5 ", want: LineRange{Start: 3, End: 5}},
		{in: "0", wantErr: true},
		{in: "5-3", wantErr: true},
		{in: "a-b", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLineRange(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRange)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLineRange(t *testing.T) {
	assert.Equal(t, []int{3, 4, 5}, LineRange{Start: 3, End: 5}.Lines())
	assert.Equal(t, "3-5", LineRange{Start: 3, End: 5}.String())
	assert.Equal(t, "7", LineRange{Start: 7, End: 7}.String())
}

func TestLineRange_Clamp(t *testing.T) {
	huge, err := ParseLineRange("1-9223372036854775807")
	require.NoError(t, err)

	assert.Equal(t, LineRange{Start: 1, End: 4}, huge.Clamp(4))
	assert.Equal(t, []int{1, 2, 3, 4}, huge.Clamp(4).Lines())
	assert.Equal(t, LineRange{Start: 2, End: 3}, LineRange{Start: 2, End: 3}.Clamp(10))
	assert.Empty(t, LineRange{Start: 9, End: 12}.Clamp(4).Lines())
	assert.Empty(t, LineRange{Start: 1, End: 3}.Clamp(0).Lines())
}

func TestFormat_Valid(t *testing.T) {
	for _, f := range Formats {
		assert.True(t, f.Valid(), f)
	}

	assert.False(t, Format("html").Valid())
}

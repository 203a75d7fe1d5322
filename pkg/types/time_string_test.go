package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{name: "morning", in: "06:00"},
		{name: "evening", in: "19:30"},
		{name: "missing_leading_zero", in: "6:00", wantErr: true},
		{name: "hour_out_of_range", in: "24:00", wantErr: true},
		{name: "garbage", in: "noon!", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.in, ts.String())
		})
	}
}

func TestTimeString_Ordering(t *testing.T) {
	early := TimeString("07:00")
	late := TimeString("18:15")

	assert.True(t, early.IsBefore(late))
	assert.False(t, early.IsBefore(early))
}

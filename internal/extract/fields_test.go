package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    int64
		wantErr bool
	}{
		{name: "plain digits", token: "100", want: 100},
		{name: "unit suffix", token: "100개", want: 100},
		{name: "thousands separators", token: "1,234개", want: 1234},
		{name: "no digits", token: "많이", want: 0},
		{name: "empty", token: "", want: 0},
		{name: "overflow", token: "99999999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.token)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		want   time.Time
		wantOK bool
	}{
		{name: "date with time", token: "2024-03-01 21:15:09", want: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), wantOK: true},
		{name: "date only", token: "2024-12-31", want: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), wantOK: true},
		{name: "single digit month and day", token: "2024-3-9 (토)", want: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), wantOK: true},
		{name: "empty", token: ""},
		{name: "not a date", token: "Alice(u1)"},
		{name: "impossible date", token: "2024-02-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.token)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, tt.want.Equal(got), "got %v", got)
			}
		})
	}
}

func TestExtractProbability(t *testing.T) {
	tests := []struct {
		label  string
		want   float64
		wantOK bool
	}{
		{label: "잭팟(10%)", want: 10, wantOK: true},
		{label: "꽝 (55.5%)", want: 55.5, wantOK: true},
		{label: "스페셜(보너스)(0.3%)", want: 0.3, wantOK: true},
		{label: "(1%) 두번째(2%)", want: 2, wantOK: true},
		{label: "꽝(0%)"},
		{label: "잭팟"},
		{label: "잭팟(10)"},
		{label: ""},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := ExtractProbability(tt.label)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

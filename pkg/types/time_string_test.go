package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr error
	}{
		{name: "morning", input: "09:30", want: 570},
		{name: "midnight", input: "00:00", want: 0},
		{name: "last minute", input: "23:59", want: 1439},
		{name: "with seconds", input: "10:00:00", want: 600},
		{name: "spaces trimmed", input: " 12:15 ", want: 735},
		{name: "single digit hour", input: "9:30", wantErr: ErrInvalidTimeFormat},
		{name: "no separator", input: "0930", wantErr: ErrInvalidTimeFormat},
		{name: "letters", input: "ab:cd", wantErr: ErrInvalidTimeFormat},
		{name: "signed", input: "-1:30", wantErr: ErrInvalidTimeFormat},
		{name: "hour 24", input: "24:00", wantErr: ErrTimeOutOfRange},
		{name: "minute 60", input: "10:60", wantErr: ErrTimeOutOfRange},
		{name: "empty", input: "", wantErr: ErrInvalidTimeFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Minutes())
		})
	}
}

func TestTimeString_String(t *testing.T) {
	ts, err := NewTimeStringFromMinutes(9*60 + 5)
	require.NoError(t, err)
	assert.Equal(t, "09:05", ts.String())

	_, err = NewTimeStringFromMinutes(24 * 60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_AddMinutesAndCompare(t *testing.T) {
	start, err := NewTimeStringFromString("11:30")
	require.NoError(t, err)

	end, err := start.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, "12:00", end.String())
	assert.True(t, start.IsBefore(end))
	assert.True(t, end.IsAfter(start))
	assert.False(t, start.IsBefore(start))

	_, err = end.AddMinutes(12 * 60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_On(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	date := time.Date(2026, 3, 10, 17, 45, 0, 0, loc)
	ts, err := NewTimeStringFromString("10:30")
	require.NoError(t, err)

	got := ts.On(date)
	assert.Equal(t, time.Date(2026, 3, 10, 10, 30, 0, 0, loc), got)
}

func TestTimeString_JSON(t *testing.T) {
	var payload struct {
		At TimeString `json:"at"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"at":"08:15"}`), &payload))
	assert.Equal(t, 495, payload.At.Minutes())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"at":"08:15"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"at":"8:15"}`), &payload))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan([]byte("14:00:00")))
	assert.Equal(t, "14:00", ts.String())

	require.NoError(t, ts.Scan("07:45"))
	assert.Equal(t, "07:45", ts.String())

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 18, 20, 33, 0, time.UTC)))
	assert.Equal(t, "18:20", ts.String())

	assert.Error(t, ts.Scan(42))
}

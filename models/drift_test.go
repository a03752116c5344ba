package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDriftStatus(t *testing.T) {
	for raw, want := range map[int64]DriftStatus{
		1: DriftPending,
		2: DriftSuccess,
		3: DriftRejected,
		4: DriftRedrawn,
	} {
		got, err := ParseDriftStatus(raw)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	for _, raw := range []int64{0, 5, -1, 42} {
		_, err := ParseDriftStatus(raw)
		assert.Error(t, err)
	}
}

func TestDriftStatusScan(t *testing.T) {
	var s DriftStatus
	require.NoError(t, s.Scan(int64(3)))
	assert.Equal(t, DriftRejected, s)

	require.NoError(t, s.Scan(int(4)))
	assert.Equal(t, DriftRedrawn, s)

	// Unknown integers and foreign types are data errors, not coerced.
	assert.Error(t, s.Scan(int64(9)))
	assert.Error(t, s.Scan("pending"))
	assert.Error(t, s.Scan(nil))
}

func TestDriftStatusValue(t *testing.T) {
	v, err := DriftSuccess.Value()
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)

	_, err = DriftStatus(7).Value()
	assert.Error(t, err)
}

func TestDriftStatusString(t *testing.T) {
	assert.Equal(t, "pending", DriftPending.String())
	assert.Equal(t, "success", DriftSuccess.String())
	assert.Equal(t, "rejected", DriftRejected.String())
	assert.Equal(t, "redrawn", DriftRedrawn.String())
	assert.Equal(t, "DriftStatus(9)", DriftStatus(9).String())
}

func TestDriftParticipantHelpers(t *testing.T) {
	d := Drift{RequesterID: 7, GifterID: 9}
	assert.True(t, d.IsRequester(7))
	assert.False(t, d.IsRequester(9))
	assert.True(t, d.IsGifter(9))
	assert.False(t, d.IsGifter(7))
}

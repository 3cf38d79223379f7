package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCandidates_WholeDayHourlySlots(t *testing.T) {
	gaps := []Gap{{Start: at(t, "09:00"), End: at(t, "17:00")}}

	got := GenerateCandidates(gaps, 60, 60)

	require.Len(t, got, 8)
	assert.Equal(t, at(t, "09:00"), got[0].Start)
	assert.Equal(t, at(t, "10:00"), got[0].End)
	assert.Equal(t, at(t, "16:00"), got[7].Start)
	assert.Equal(t, at(t, "17:00"), got[7].End)
}

func TestGenerateCandidates_StepDefaultsToDuration(t *testing.T) {
	gaps := []Gap{{Start: at(t, "09:00"), End: at(t, "12:00")}}

	withZeroStep := GenerateCandidates(gaps, 30, 0)
	withExplicitStep := GenerateCandidates(gaps, 30, 30)

	assert.Equal(t, withExplicitStep, withZeroStep)
	assert.Len(t, withZeroStep, 6)
}

func TestGenerateCandidates_SmallerStepOverlapsCandidates(t *testing.T) {
	gaps := []Gap{{Start: at(t, "09:00"), End: at(t, "10:00")}}

	got := GenerateCandidates(gaps, 30, 15)

	// 09:00, 09:15, 09:30 - последний, что целиком помещается
	require.Len(t, got, 3)
	assert.Equal(t, at(t, "09:30"), got[2].Start)
}

func TestGenerateCandidates_CandidateMustFitEntirely(t *testing.T) {
	gaps := []Gap{{Start: at(t, "09:00"), End: at(t, "09:50")}}

	got := GenerateCandidates(gaps, 60, 60)

	assert.Empty(t, got)
}

func TestGenerateCandidates_MultipleGapsKeepOrder(t *testing.T) {
	gaps := []Gap{
		{Start: at(t, "09:00"), End: at(t, "10:00")},
		{Start: at(t, "10:30"), End: at(t, "12:00")},
	}

	got := GenerateCandidates(gaps, 60, 60)

	require.Len(t, got, 2)
	assert.Equal(t, at(t, "09:00"), got[0].Start)
	assert.Equal(t, at(t, "10:30"), got[1].Start)
	assert.True(t, got[0].Start.Before(got[1].Start))
}

func TestGenerateCandidates_InvalidDuration(t *testing.T) {
	gaps := []Gap{{Start: at(t, "09:00"), End: at(t, "17:00")}}

	assert.Nil(t, GenerateCandidates(gaps, 0, 30))
}

func TestNewSlotCandidate(t *testing.T) {
	c := NewSlotCandidate(at(t, "10:00"), 45)

	assert.Equal(t, at(t, "10:45"), c.End)
	assert.Equal(t, 45*time.Minute, c.End.Sub(c.Start))
}

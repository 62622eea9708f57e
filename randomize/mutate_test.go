// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package randomize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/study-randomizer/models"
)

func testSchedule(t *testing.T, n int) models.Schedule {
	t.Helper()
	sched, err := Generate(n, NewSource(1), time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return sched
}

func TestAddParticipant(t *testing.T) {
	sched := testSchedule(t, 3)

	got, err := AddParticipant(sched, 42)
	require.NoError(t, err)

	require.Len(t, got.Participants, 4)
	added := got.Participants[3]
	assert.Equal(t, 4, added.RecordID)
	assert.Equal(t, uint32(42), added.RandomSeed)
	assert.Equal(t, AssignParticipant(4, 42), added)
	assert.Equal(t, SummaryFor(4), got.Summary)

	// Input schedule untouched.
	assert.Len(t, sched.Participants, 3)
	assert.Equal(t, SummaryFor(3), sched.Summary)
}

func TestAddParticipantFullSchedule(t *testing.T) {
	sched := testSchedule(t, models.MaxParticipants)
	_, err := AddParticipant(sched, 1)
	require.ErrorIs(t, err, ErrScheduleFull)
}

func TestRemoveParticipantRenumbers(t *testing.T) {
	sched := testSchedule(t, 5)
	second := sched.Participants[1]
	fourth := sched.Participants[3]

	got, err := RemoveParticipant(sched, 2)
	require.NoError(t, err)

	require.Len(t, got.Participants, 4)
	for i, p := range got.Participants {
		assert.Equal(t, i+1, p.RecordID, "record ids must stay contiguous")
	}
	assert.Equal(t, SummaryFor(4), got.Summary)

	// Randomization identity travels with the participant: the old
	// fourth participant is now record 3, same seed and sessions.
	moved := got.Participants[2]
	assert.Equal(t, fourth.RandomSeed, moved.RandomSeed)
	assert.Equal(t, fourth.Sessions, moved.Sessions)

	// The removed participant's seed is gone from the schedule.
	for _, p := range got.Participants {
		assert.NotEqual(t, second.RandomSeed, p.RandomSeed)
	}
}

func TestRemoveParticipantUnknownID(t *testing.T) {
	sched := testSchedule(t, 2)
	_, err := RemoveParticipant(sched, 9)
	require.ErrorIs(t, err, ErrParticipantNotFound)
}

func TestRegenerateParticipant(t *testing.T) {
	sched := testSchedule(t, 4)
	before := sched.Participants[2]

	got, err := RegenerateParticipant(sched, 3, before.RandomSeed+1)
	require.NoError(t, err)

	after := got.Participants[2]
	assert.Equal(t, 3, after.RecordID)
	assert.NotEqual(t, before.RandomSeed, after.RandomSeed)
	assert.Equal(t, AssignParticipant(3, before.RandomSeed+1), after)

	// Everyone else and the summary untouched.
	assert.Equal(t, sched.Summary, got.Summary)
	for _, i := range []int{0, 1, 3} {
		require.Equal(t, sched.Participants[i], got.Participants[i], "participant %d changed", i+1)
	}

	// The input schedule itself is unchanged.
	assert.Equal(t, before, sched.Participants[2])
}

func TestRegenerateParticipantUnknownID(t *testing.T) {
	sched := testSchedule(t, 2)
	_, err := RegenerateParticipant(sched, 3, 1)
	require.ErrorIs(t, err, ErrParticipantNotFound)
}

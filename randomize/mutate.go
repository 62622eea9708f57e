// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package randomize

import (
	"errors"
	"fmt"

	"github.com/danielhkuo/study-randomizer/models"
)

// ErrParticipantNotFound reports a record id absent from the schedule.
var ErrParticipantNotFound = errors.New("participant not found")

// ErrScheduleFull reports an add against a schedule already at
// MaxParticipants.
var ErrScheduleFull = errors.New("schedule already at maximum participants")

// AddParticipant appends one participant assigned from seed. The new
// record id is the current count + 1; the summary is recomputed.
func AddParticipant(sched models.Schedule, seed uint32) (models.Schedule, error) {
	if len(sched.Participants) >= models.MaxParticipants {
		return models.Schedule{}, fmt.Errorf("%w (%d)", ErrScheduleFull, models.MaxParticipants)
	}

	recordID := len(sched.Participants) + 1
	out := sched
	out.Participants = append(append([]models.Participant(nil), sched.Participants...),
		AssignParticipant(recordID, seed))
	out.Summary = SummaryFor(len(out.Participants))
	return out, nil
}

// RemoveParticipant filters out the given record id and renumbers the
// remaining participants contiguously from 1. Seeds and session
// content travel with their participant; only the ids change.
func RemoveParticipant(sched models.Schedule, recordID int) (models.Schedule, error) {
	kept := make([]models.Participant, 0, len(sched.Participants))
	found := false
	for _, p := range sched.Participants {
		if p.RecordID == recordID {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return models.Schedule{}, fmt.Errorf("%w: record id %d", ErrParticipantNotFound, recordID)
	}

	for i := range kept {
		kept[i].RecordID = i + 1
	}

	out := sched
	out.Participants = kept
	out.Summary = SummaryFor(len(kept))
	return out, nil
}

// RegenerateParticipant replaces one participant's seed and sessions,
// keeping its record id. Every other participant and the summary are
// untouched.
func RegenerateParticipant(sched models.Schedule, recordID int, seed uint32) (models.Schedule, error) {
	idx := -1
	for i, p := range sched.Participants {
		if p.RecordID == recordID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Schedule{}, fmt.Errorf("%w: record id %d", ErrParticipantNotFound, recordID)
	}

	out := sched
	out.Participants = append([]models.Participant(nil), sched.Participants...)
	out.Participants[idx] = AssignParticipant(recordID, seed)
	return out, nil
}

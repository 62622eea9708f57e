// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package randomize

import (
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/study-randomizer/models"
)

// ErrInvalidCount reports a participant count outside [1, MaxParticipants].
var ErrInvalidCount = errors.New("participant count out of range")

// FloatSource is the single draw operation Generate needs from its
// process-level stream. *Source satisfies it.
type FloatSource interface {
	Float64() float64
}

// assignedModel is a catalog entry resolved for one session. Color is
// empty for balloons.
type assignedModel struct {
	id    string
	name  string
	color string
}

func resolveBallOrder(order []string) []assignedModel {
	ms := make([]assignedModel, len(order))
	for i, id := range order {
		m, ok := models.BallModelByID(id)
		if !ok {
			// Keep the identifier visible instead of emitting a
			// blank measurement.
			ms[i] = assignedModel{id: id, name: id}
			continue
		}
		ms[i] = assignedModel{id: m.ID, name: m.Name, color: m.Color}
	}
	return ms
}

func resolveBalloonOrder(order []string) []assignedModel {
	ms := make([]assignedModel, len(order))
	for i, id := range order {
		m, ok := models.BalloonModelByID(id)
		if !ok {
			ms[i] = assignedModel{id: id, name: id}
			continue
		}
		ms[i] = assignedModel{id: m.ID, name: m.Name}
	}
	return ms
}

// fixedCycleMeasurements emits Repetitions passes over the assigned
// order, identical in every repetition. Consumes no draws.
func fixedCycleMeasurements(assigned []assignedModel) []models.Measurement {
	out := make([]models.Measurement, 0, models.Repetitions*len(assigned))
	for rep := 1; rep <= models.Repetitions; rep++ {
		for pos, m := range assigned {
			out = append(out, models.Measurement{
				Repetition: rep,
				Position:   pos + 1,
				ModelID:    m.id,
				ModelName:  m.name,
				Color:      m.color,
			})
		}
	}
	return out
}

// randomizedCycleMeasurements reshuffles the assigned order freshly
// for every repetition, drawing from the continuing stream. Each
// repetition is still a permutation of the same four models, never a
// resample.
func randomizedCycleMeasurements(assigned []assignedModel, src *Source) []models.Measurement {
	out := make([]models.Measurement, 0, models.Repetitions*len(assigned))
	for rep := 1; rep <= models.Repetitions; rep++ {
		perm := indexPermutation(len(assigned), src)
		for pos, idx := range perm {
			m := assigned[idx]
			out = append(out, models.Measurement{
				Repetition: rep,
				Position:   pos + 1,
				ModelID:    m.id,
				ModelName:  m.name,
				Color:      m.color,
			})
		}
	}
	return out
}

// modelTypeOrderPosition returns 1 if the model type comes first in
// the session's model-type order, else 2.
func modelTypeOrderPosition(modelType string, modelTypeOrder []string) int {
	if len(modelTypeOrder) > 0 && modelTypeOrder[0] == modelType {
		return 1
	}
	return 2
}

// buildSession assembles one session from the four randomized
// orderings. The stream continues from the caller's ordering draws;
// only palpation blocks consume further draws. Block build order
// within a modality follows modelTypeOrder, which keeps the stream
// position a pure function of the seed.
func buildSession(number int, modalityOrder, modelTypeOrder, ballOrder, balloonOrder []string, src *Source) models.Session {
	ballAssigned := resolveBallOrder(ballOrder)
	balloonAssigned := resolveBalloonOrder(balloonOrder)

	modalityBlocks := make([]models.ModalityBlock, 0, len(modalityOrder))
	for mi, modality := range modalityOrder {
		blocks := make([]models.ModelTypeBlock, 0, len(modelTypeOrder))
		for _, modelType := range modelTypeOrder {
			var assigned []assignedModel
			var order []string
			if modelType == models.ModelTypeBall {
				assigned, order = ballAssigned, ballOrder
			} else {
				assigned, order = balloonAssigned, balloonOrder
			}

			// Ultrasound repeats the assigned order; palpation
			// reshuffles every repetition.
			var measurements []models.Measurement
			if modality == models.ModalityPalpation {
				measurements = randomizedCycleMeasurements(assigned, src)
			} else {
				measurements = fixedCycleMeasurements(assigned)
			}

			blocks = append(blocks, models.ModelTypeBlock{
				ModelType:    modelType,
				Order:        modelTypeOrderPosition(modelType, modelTypeOrder),
				ModelOrder:   append([]string(nil), order...),
				Measurements: measurements,
			})
		}
		modalityBlocks = append(modalityBlocks, models.ModalityBlock{
			Modality:        modality,
			Order:           mi + 1,
			ModelTypeBlocks: blocks,
		})
	}

	return models.Session{
		SessionNumber:     number,
		ModalityOrder:     append([]string(nil), modalityOrder...),
		ModelTypeOrder:    append([]string(nil), modelTypeOrder...),
		BallOrder:         append([]string(nil), ballOrder...),
		BalloonOrder:      append([]string(nil), balloonOrder...),
		ModalityBlocks:    modalityBlocks,
		TotalMeasurements: models.MeasurementsPerSession,
	}
}

// cloneSession deep-copies a session with a new session number.
func cloneSession(s models.Session, number int) models.Session {
	c := s
	c.SessionNumber = number
	c.ModalityOrder = append([]string(nil), s.ModalityOrder...)
	c.ModelTypeOrder = append([]string(nil), s.ModelTypeOrder...)
	c.BallOrder = append([]string(nil), s.BallOrder...)
	c.BalloonOrder = append([]string(nil), s.BalloonOrder...)
	c.ModalityBlocks = make([]models.ModalityBlock, len(s.ModalityBlocks))
	for i, mb := range s.ModalityBlocks {
		cb := mb
		cb.ModelTypeBlocks = make([]models.ModelTypeBlock, len(mb.ModelTypeBlocks))
		for j, tb := range mb.ModelTypeBlocks {
			ct := tb
			ct.ModelOrder = append([]string(nil), tb.ModelOrder...)
			ct.Measurements = append([]models.Measurement(nil), tb.Measurements...)
			cb.ModelTypeBlocks[j] = ct
		}
		c.ModalityBlocks[i] = cb
	}
	return c
}

// AssignParticipant derives a participant's full schedule from a seed.
// The draw order is a contract: modality order, model-type order, ball
// order, balloon order, then any palpation reshuffles inside the
// session build. Changing it silently remaps every stored seed.
func AssignParticipant(recordID int, seed uint32) models.Participant {
	src := NewSource(seed)

	modalityOrder := Shuffle([]string{models.ModalityUltrasound, models.ModalityPalpation}, src)
	modelTypeOrder := Shuffle([]string{models.ModelTypeBall, models.ModelTypeBalloon}, src)
	ballOrder := Shuffle(models.BallModelIDs(), src)
	balloonOrder := Shuffle(models.BalloonModelIDs(), src)

	first := buildSession(1, modalityOrder, modelTypeOrder, ballOrder, balloonOrder, src)

	sessions := make([]models.Session, 0, models.SessionsPerParticipant)
	sessions = append(sessions, first)
	for n := 2; n <= models.SessionsPerParticipant; n++ {
		sessions = append(sessions, cloneSession(first, n))
	}

	return models.Participant{
		RecordID:   recordID,
		RandomSeed: seed,
		Sessions:   sessions,
	}
}

// SummaryFor computes the derived aggregate counts for n participants.
func SummaryFor(n int) models.Summary {
	return models.Summary{
		ParticipantCount:           n,
		MeasurementsPerSession:     models.MeasurementsPerSession,
		MeasurementsPerParticipant: models.MeasurementsPerParticipant,
		TotalMeasurements:          models.MeasurementsPerParticipant * n,
	}
}

// Generate builds a complete schedule for count participants. Each
// participant gets a seed drawn from src (floor(f * SeedRange)), so a
// time-seeded src yields a fresh batch on every call while every
// individual participant stays reproducible from its stored seed.
func Generate(count int, src FloatSource, now time.Time) (models.Schedule, error) {
	if count < 1 || count > models.MaxParticipants {
		return models.Schedule{}, fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidCount, count, models.MaxParticipants)
	}

	participants := make([]models.Participant, 0, count)
	for i := 1; i <= count; i++ {
		seed := uint32(src.Float64() * SeedRange)
		participants = append(participants, AssignParticipant(i, seed))
	}

	return models.Schedule{
		GeneratedAt:  now,
		Participants: participants,
		Summary:      SummaryFor(count),
	}, nil
}

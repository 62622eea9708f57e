// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Modality constants
const (
	ModalityUltrasound = "ultrasound"
	ModalityPalpation  = "palpation"
)

// Model type constants
const (
	ModelTypeBall    = "ball"
	ModelTypeBalloon = "balloon"
)

// Study design constants. These are properties of the study protocol,
// not configuration.
const (
	Repetitions                = 5
	ModelsPerType              = 4
	SessionsPerParticipant     = 3
	MeasurementsPerSession     = 80
	MeasurementsPerParticipant = 240
	MaxParticipants            = 50
)

// BallModel is one entry of the ball catalog. Balls carry a display
// color; balloons do not.
type BallModel struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// BalloonModel is one entry of the balloon catalog.
type BalloonModel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BallModels is the static ball catalog. Only the identifier set
// matters; catalog order is never used as a measurement order.
var BallModels = []BallModel{
	{ID: "b1", Name: "Ball 1", Color: "#e74c3c"},
	{ID: "b2", Name: "Ball 2", Color: "#3498db"},
	{ID: "b3", Name: "Ball 3", Color: "#2ecc71"},
	{ID: "b4", Name: "Ball 4", Color: "#f1c40f"},
}

// BalloonModels is the static balloon catalog.
var BalloonModels = []BalloonModel{
	{ID: "bl1", Name: "Balloon 1"},
	{ID: "bl2", Name: "Balloon 2"},
	{ID: "bl3", Name: "Balloon 3"},
	{ID: "bl4", Name: "Balloon 4"},
}

// BallModelByID resolves a ball catalog entry. The bool is false for
// unknown identifiers.
func BallModelByID(id string) (BallModel, bool) {
	for _, m := range BallModels {
		if m.ID == id {
			return m, true
		}
	}
	return BallModel{}, false
}

// BalloonModelByID resolves a balloon catalog entry.
func BalloonModelByID(id string) (BalloonModel, bool) {
	for _, m := range BalloonModels {
		if m.ID == id {
			return m, true
		}
	}
	return BalloonModel{}, false
}

// BallModelIDs returns the catalog identifiers in catalog order.
func BallModelIDs() []string {
	ids := make([]string, len(BallModels))
	for i, m := range BallModels {
		ids[i] = m.ID
	}
	return ids
}

// BalloonModelIDs returns the catalog identifiers in catalog order.
func BalloonModelIDs() []string {
	ids := make([]string, len(BalloonModels))
	for i, m := range BalloonModels {
		ids[i] = m.ID
	}
	return ids
}

// Domain types

// Measurement is one atomic measurement record inside a model-type
// block. Color is set only for ball models.
type Measurement struct {
	Repetition int    `json:"repetition"`
	Position   int    `json:"position"`
	ModelID    string `json:"model_id"`
	ModelName  string `json:"model_name"`
	Color      string `json:"color,omitempty"`
}

// ModelTypeBlock holds the 20 measurements (5 repetitions x 4 models)
// of one model type within one modality.
type ModelTypeBlock struct {
	ModelType    string        `json:"model_type"`
	Order        int           `json:"order"`
	ModelOrder   []string      `json:"model_order"`
	Measurements []Measurement `json:"measurements"`
}

// ModalityBlock holds the two model-type blocks of one modality.
type ModalityBlock struct {
	Modality        string           `json:"modality"`
	Order           int              `json:"order"`
	ModelTypeBlocks []ModelTypeBlock `json:"model_type_blocks"`
}

// Session is one measurement session. Sessions 1-3 of a participant
// are structurally identical apart from SessionNumber.
type Session struct {
	SessionNumber     int             `json:"session_number"`
	ModalityOrder     []string        `json:"modality_order"`
	ModelTypeOrder    []string        `json:"model_type_order"`
	BallOrder         []string        `json:"ball_order"`
	BalloonOrder      []string        `json:"balloon_order"`
	ModalityBlocks    []ModalityBlock `json:"modality_blocks"`
	TotalMeasurements int             `json:"total_measurements"`
}

// Participant is one study participant. RandomSeed fully determines
// the session content; RecordID is positional and reassigned when an
// earlier participant is removed.
type Participant struct {
	RecordID   int       `json:"record_id"`
	RandomSeed uint32    `json:"random_seed"`
	Sessions   []Session `json:"sessions"`
}

// Summary holds the derived aggregate counts of a schedule.
type Summary struct {
	ParticipantCount           int `json:"participant_count"`
	MeasurementsPerSession     int `json:"measurements_per_session"`
	MeasurementsPerParticipant int `json:"measurements_per_participant"`
	TotalMeasurements          int `json:"total_measurements"`
}

// Schedule is the top-level aggregate and single root of truth. It is
// persisted wholesale after every mutation.
type Schedule struct {
	GeneratedAt  time.Time     `json:"generated_at"`
	Participants []Participant `json:"participants"`
	Summary      Summary       `json:"summary"`
}

// Request types

type LoginRequest struct {
	Password string `json:"password"`
}

type GenerateRequest struct {
	ParticipantCount int `json:"participant_count"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

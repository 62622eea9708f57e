// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the schedule data model, the static model
catalogs, and the API request/response types.

# Domain Types

The schedule is a strictly nested value with a single root:

  - Schedule: generation timestamp, participants, derived summary
  - Participant: record id, random seed, 3 identical Sessions
  - Session: the four randomized orderings and 2 ModalityBlocks
  - ModalityBlock: ultrasound or palpation, 2 ModelTypeBlocks
  - ModelTypeBlock: ball or balloon, assigned model order, 20 Measurements
  - Measurement: repetition, position, resolved model id/name/color

Nothing in the tree is shared or back-referenced; mutation always
produces a new Schedule value.

# Catalogs

BallModels and BalloonModels are process-wide constants: 4 models per
type with stable identifiers. Ball models carry a display color,
balloon models do not. Randomization permutes the identifier sets; it
never adds or removes models.

# Constants

Study design values fixed by the protocol:

	Repetitions                = 5
	ModelsPerType              = 4
	SessionsPerParticipant     = 3
	MeasurementsPerSession     = 80
	MeasurementsPerParticipant = 240
	MaxParticipants            = 50
*/
package models

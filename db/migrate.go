// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"encoding/json"
	"log/slog"

	"github.com/danielhkuo/study-randomizer/models"
)

// The schedule document format evolved while the study ran: fields
// were renamed, model ids re-identified, and pressure-valued balloons
// replaced by fixed named balloons. Loads run the persisted document
// through a chain of pure upgrade steps until no step applies, then
// decode. Fields no step recognizes pass through untouched.

type migrationStep struct {
	name  string
	apply func(doc map[string]any) bool
}

var migrations = []migrationStep{
	{"rename-legacy-fields", renameLegacyFields},
	{"remap-model-ids", remapModelIDs},
	{"convert-pressure-balloons", convertPressureBalloons},
	{"fill-ball-colors", fillBallColors},
}

// maxMigrationPasses caps the fixpoint loop; each step is idempotent,
// so one pass per step is already more than enough.
const maxMigrationPasses = 8

// DecodeSchedule migrates and decodes a persisted schedule document.
// Returns false for anything unreadable; callers treat that as an
// absent schedule.
func DecodeSchedule(raw []byte) (models.Schedule, bool) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return models.Schedule{}, false
	}

	MigrateDocument(doc)

	buf, err := json.Marshal(doc)
	if err != nil {
		return models.Schedule{}, false
	}
	var sched models.Schedule
	if err := json.Unmarshal(buf, &sched); err != nil {
		return models.Schedule{}, false
	}
	return sched, true
}

// MigrateDocument upgrades a decoded schedule document in place,
// applying the migration chain until a stable shape is reached.
func MigrateDocument(doc map[string]any) {
	for pass := 0; pass < maxMigrationPasses; pass++ {
		changed := false
		for _, step := range migrations {
			if step.apply(doc) {
				slog.Debug("applied schedule migration", "step", step.name)
				changed = true
			}
		}
		if !changed {
			return
		}
	}
	slog.Warn("schedule migration did not reach a fixpoint", "passes", maxMigrationPasses)
}

// Traversal helpers over the decoded JSON tree.

func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func asSlice(v any) ([]any, bool) {
	s, ok := v.([]any)
	return s, ok
}

func eachParticipant(doc map[string]any, fn func(p map[string]any)) {
	ps, ok := asSlice(doc["participants"])
	if !ok {
		return
	}
	for _, v := range ps {
		if p, ok := asMap(v); ok {
			fn(p)
		}
	}
}

func eachSession(doc map[string]any, fn func(s map[string]any)) {
	eachParticipant(doc, func(p map[string]any) {
		ss, ok := asSlice(p["sessions"])
		if !ok {
			return
		}
		for _, v := range ss {
			if s, ok := asMap(v); ok {
				fn(s)
			}
		}
	})
}

func eachModelTypeBlock(doc map[string]any, fn func(b map[string]any)) {
	eachSession(doc, func(s map[string]any) {
		mbs, ok := asSlice(s["modality_blocks"])
		if !ok {
			return
		}
		for _, v := range mbs {
			mb, ok := asMap(v)
			if !ok {
				continue
			}
			tbs, ok := asSlice(mb["model_type_blocks"])
			if !ok {
				continue
			}
			for _, tv := range tbs {
				if tb, ok := asMap(tv); ok {
					fn(tb)
				}
			}
		}
	})
}

func eachMeasurement(b map[string]any, fn func(m map[string]any)) {
	ms, ok := asSlice(b["measurements"])
	if !ok {
		return
	}
	for _, v := range ms {
		if m, ok := asMap(v); ok {
			fn(m)
		}
	}
}

func renameKey(m map[string]any, from, to string) bool {
	v, ok := m[from]
	if !ok {
		return false
	}
	if _, exists := m[to]; !exists {
		m[to] = v
	}
	delete(m, from)
	return true
}

// renameLegacyFields moves pre-rename keys onto their current names:
// subjects -> participants, created_at -> generated_at, and per
// participant seed -> random_seed.
func renameLegacyFields(doc map[string]any) bool {
	changed := renameKey(doc, "subjects", "participants")
	changed = renameKey(doc, "created_at", "generated_at") || changed

	eachParticipant(doc, func(p map[string]any) {
		changed = renameKey(p, "seed", "random_seed") || changed
	})
	return changed
}

// legacyModelIDs maps the first format's verbose model ids onto the
// current short ids.
var legacyModelIDs = map[string]string{
	"ball_1": "b1", "ball_2": "b2", "ball_3": "b3", "ball_4": "b4",
	"balloon_1": "bl1", "balloon_2": "bl2", "balloon_3": "bl3", "balloon_4": "bl4",
}

func remapIDSlice(container map[string]any, key string) bool {
	ids, ok := asSlice(container[key])
	if !ok {
		return false
	}
	changed := false
	for i, v := range ids {
		if id, ok := v.(string); ok {
			if mapped, hit := legacyModelIDs[id]; hit {
				ids[i] = mapped
				changed = true
			}
		}
	}
	return changed
}

// remapModelIDs rewrites legacy model ids wherever they appear: the
// session-level orders, each block's model order, and measurements.
func remapModelIDs(doc map[string]any) bool {
	changed := false
	eachSession(doc, func(s map[string]any) {
		changed = remapIDSlice(s, "ball_order") || changed
		changed = remapIDSlice(s, "balloon_order") || changed
	})
	eachModelTypeBlock(doc, func(b map[string]any) {
		changed = remapIDSlice(b, "model_order") || changed
		eachMeasurement(b, func(m map[string]any) {
			if id, ok := m["model_id"].(string); ok {
				if mapped, hit := legacyModelIDs[id]; hit {
					m["model_id"] = mapped
					changed = true
				}
			}
		})
	})
	return changed
}

// convertPressureBalloons upgrades the oldest balloon format, where a
// measurement held a pressure value (1-100) instead of a model
// reference. The pressure is replaced by the named balloon at the
// measurement's position in the block's assigned order.
func convertPressureBalloons(doc map[string]any) bool {
	changed := false
	eachModelTypeBlock(doc, func(b map[string]any) {
		if mt, _ := b["model_type"].(string); mt != models.ModelTypeBalloon {
			return
		}
		order, _ := asSlice(b["model_order"])
		eachMeasurement(b, func(m map[string]any) {
			if _, hasPressure := m["pressure"]; !hasPressure {
				return
			}
			if _, hasModel := m["model_id"]; hasModel {
				delete(m, "pressure")
				changed = true
				return
			}

			id := balloonIDForPosition(m["position"], order)
			model, ok := models.BalloonModelByID(id)
			if !ok {
				// Unrecognizable measurement: leave it for a future
				// step rather than dropping data.
				return
			}
			m["model_id"] = model.ID
			m["model_name"] = model.Name
			delete(m, "pressure")
			changed = true
		})
	})
	return changed
}

func balloonIDForPosition(position any, order []any) string {
	pos := 0
	if f, ok := position.(float64); ok {
		pos = int(f)
	}
	if pos >= 1 && pos <= len(order) {
		if id, ok := order[pos-1].(string); ok {
			return id
		}
	}
	if pos >= 1 && pos <= len(models.BalloonModels) {
		return models.BalloonModels[pos-1].ID
	}
	return ""
}

// fillBallColors adds catalog colors to ball measurements persisted
// before colors existed.
func fillBallColors(doc map[string]any) bool {
	changed := false
	eachModelTypeBlock(doc, func(b map[string]any) {
		if mt, _ := b["model_type"].(string); mt != models.ModelTypeBall {
			return
		}
		eachMeasurement(b, func(m map[string]any) {
			if c, ok := m["color"].(string); ok && c != "" {
				return
			}
			id, _ := m["model_id"].(string)
			if model, ok := models.BallModelByID(id); ok {
				m["color"] = model.Color
				changed = true
			}
		})
	})
	return changed
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/study-randomizer/models"
)

// CSVHeader is the fixed column order consumed by the study's
// analysis scripts. Do not reorder.
var CSVHeader = []string{
	"Participant ID",
	"Random Seed",
	"Session",
	"Modality",
	"Modality Order",
	"Model Type",
	"Model Type Order",
	"Repetition",
	"Model Position",
	"Model ID",
	"Model Name",
	"Measurement Number",
}

// JSON serializes the schedule directly.
func JSON(sched models.Schedule) ([]byte, error) {
	out, err := json.MarshalIndent(sched, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode schedule: %w", err)
	}
	return out, nil
}

// CSV flattens the schedule to one row per measurement. The
// measurement number restarts at 1 for each session and counts rows
// in protocol execution order.
func CSV(sched models.Schedule) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write(CSVHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, p := range sched.Participants {
		for _, s := range p.Sessions {
			measurementNumber := 0
			for _, mb := range s.ModalityBlocks {
				for _, tb := range mb.ModelTypeBlocks {
					for _, m := range tb.Measurements {
						measurementNumber++
						row := []string{
							strconv.Itoa(p.RecordID),
							strconv.FormatUint(uint64(p.RandomSeed), 10),
							strconv.Itoa(s.SessionNumber),
							mb.Modality,
							strconv.Itoa(mb.Order),
							tb.ModelType,
							strconv.Itoa(tb.Order),
							strconv.Itoa(m.Repetition),
							strconv.Itoa(m.Position),
							m.ModelID,
							m.ModelName,
							strconv.Itoa(measurementNumber),
						}
						if err := w.Write(row); err != nil {
							return nil, fmt.Errorf("failed to write csv row: %w", err)
						}
					}
				}
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// Markdown renders a human-readable summary: per participant, the
// stored seed and the four top-level orderings.
func Markdown(sched models.Schedule) []byte {
	var b strings.Builder

	b.WriteString("# Randomization Schedule\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", sched.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "Participants: %d | Measurements per session: %d | Total measurements: %s\n\n",
		sched.Summary.ParticipantCount,
		sched.Summary.MeasurementsPerSession,
		humanize.Comma(int64(sched.Summary.TotalMeasurements)))

	b.WriteString("| Participant | Seed | Modality Order | Model Type Order | Ball Order | Balloon Order |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, p := range sched.Participants {
		// Migrated legacy documents can hold a participant without
		// sessions; there is nothing to summarize for those.
		if len(p.Sessions) == 0 {
			continue
		}
		s := p.Sessions[0]
		fmt.Fprintf(&b, "| %d | %d | %s | %s | %s | %s |\n",
			p.RecordID,
			p.RandomSeed,
			strings.Join(s.ModalityOrder, ", "),
			strings.Join(s.ModelTypeOrder, ", "),
			strings.Join(s.BallOrder, ", "),
			strings.Join(s.BalloonOrder, ", "),
		)
	}

	return []byte(b.String())
}

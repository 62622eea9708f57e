// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package export renders a schedule into its three download formats.

  - JSON: the schedule serialized directly (indented)
  - CSV: one row per measurement, flattening participant, session,
    modality, model type, repetition, and position context; column
    order is fixed by CSVHeader and consumed by analysis scripts
  - Markdown: per-participant seed and the four top-level orderings,
    for printing and quick review

Exporters are pure functions over the schedule value; they never touch
persistence.
*/
package export

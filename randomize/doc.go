// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package randomize implements the stratified randomization engine: a
seeded pseudo-random stream, a shuffle primitive, and the layered
assignment that composes them into a full measurement schedule.

# Reproducibility

Everything here is a pure function of its inputs. A participant's
stored seed fully determines their schedule because one Mulberry32
stream is created per AssignParticipant call and consumed in a fixed
order:

 1. shuffle the modality pair (1 draw)
 2. shuffle the model-type pair (1 draw)
 3. shuffle the 4 ball model ids (3 draws)
 4. shuffle the 4 balloon model ids (3 draws)
 5. build session 1, reshuffling palpation repetitions on the same
    continuing stream (15 draws per palpation model-type block)
 6. copy session 1 into sessions 2 and 3 with no further draws

Both the Mulberry32 bit pattern and this draw order are frozen
contracts: altering either remaps every seed already issued to a
participant.

# Modality split

Ultrasound blocks repeat the assigned model order in all 5
repetitions and consume no draws. Palpation blocks draw a fresh
permutation of the assigned order for every repetition.

# Mutation

AddParticipant, RemoveParticipant, and RegenerateParticipant are pure
schedule-in/schedule-out operations; callers persist the result
wholesale. Ambient (non-reproducible) seeds for these come from
FreshSeed.
*/
package randomize

package agent

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nstehr/bumblebee/model"
)

// EventKind identifies a notable change between two consecutive ticks.
type EventKind string

const (
	EventBaseEstablished   EventKind = "base_established"
	EventBaseLost          EventKind = "base_lost"
	EventFirstContact      EventKind = "first_contact"
	EventEnemiesEliminated EventKind = "enemies_eliminated"
)

// Event is a change detected by diffing consecutive snapshots. Events are
// logged and journaled; no decision depends on them.
type Event struct {
	Kind   EventKind `json:"kind"`
	Tick   int       `json:"tick"`
	Detail string    `json:"detail"`
}

// stateSnapshot captures the diffable fields from one tick.
type stateSnapshot struct {
	baseIDs    map[string]bool // own base uids
	enemyBases int
}

func takeSnapshot(info model.WorldSnapshot, team string) stateSnapshot {
	own := info[team].Bases
	snap := stateSnapshot{
		baseIDs:    make(map[string]bool, len(own)),
		enemyBases: len(info.EnemyBases(team)),
	}
	for _, b := range own {
		snap.baseIDs[b.UID()] = true
	}
	return snap
}

// detectEvents compares the current snapshot against the previous one.
// Returns nil if prev is nil (first tick).
func detectEvents(prev *stateSnapshot, cur stateSnapshot, tick int) []Event {
	if prev == nil {
		return nil
	}

	var events []Event

	// 1. base_established: a base we did not own last tick (usually a converted ship)
	for _, id := range sortedKeys(cur.baseIDs) {
		if !prev.baseIDs[id] {
			events = append(events, Event{
				Kind:   EventBaseEstablished,
				Tick:   tick,
				Detail: fmt.Sprintf("new base %s (%d total)", id, len(cur.baseIDs)),
			})
		}
	}

	// 2. base_lost
	for _, id := range sortedKeys(prev.baseIDs) {
		if !cur.baseIDs[id] {
			events = append(events, Event{
				Kind:   EventBaseLost,
				Tick:   tick,
				Detail: fmt.Sprintf("lost base %s (%d remaining)", id, len(cur.baseIDs)),
			})
		}
	}

	// 3. first_contact / enemies_eliminated: enemy base visibility flips
	switch {
	case prev.enemyBases == 0 && cur.enemyBases > 0:
		events = append(events, Event{
			Kind:   EventFirstContact,
			Tick:   tick,
			Detail: fmt.Sprintf("%d enemy bases visible", cur.enemyBases),
		})
	case prev.enemyBases > 0 && cur.enemyBases == 0:
		events = append(events, Event{
			Kind:   EventEnemiesEliminated,
			Tick:   tick,
			Detail: fmt.Sprintf("no enemy bases left (was %d)", prev.enemyBases),
		})
	}

	return events
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// formatEvents renders events as a single log-friendly line.
func formatEvents(events []Event) string {
	parts := make([]string, len(events))
	for i, e := range events {
		parts[i] = fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}
	return strings.Join(parts, "; ")
}

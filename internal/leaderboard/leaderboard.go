// Package leaderboard keeps the top finished games, highest score first.
package leaderboard

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// MaxEntries is the default leaderboard length.
const MaxEntries = 10

// Entry is one finished game on the leaderboard.
type Entry struct {
	ID        string    `json:"id"`
	Score     int       `json:"score"`
	Timestamp time.Time `json:"date"`
	Name      string    `json:"name"`
}

// NewEntry creates an entry with a fresh identifier.
func NewEntry(score int, name string, at time.Time) Entry {
	return Entry{
		ID:        uuid.NewString(),
		Score:     score,
		Timestamp: at,
		Name:      name,
	}
}

// less orders entries by score descending. Equal scores keep the earlier
// game first, then fall back to the identifier so the order never depends
// on insertion order.
func less(a, b Entry) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if !a.Timestamp.Equal(b.Timestamp) {
		return a.Timestamp.Before(b.Timestamp)
	}
	return a.ID < b.ID
}

// Sort orders entries in place, best first.
func Sort(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return less(entries[i], entries[j])
	})
}

// Insert returns a new leaderboard with entry added, sorted and cut to limit.
// The input slice is not modified. A limit <= 0 means MaxEntries.
func Insert(entries []Entry, entry Entry, limit int) []Entry {
	if limit <= 0 {
		limit = MaxEntries
	}

	result := make([]Entry, 0, len(entries)+1)
	result = append(result, entries...)
	result = append(result, entry)
	Sort(result)

	if len(result) > limit {
		result = result[:limit]
	}
	return result
}

// Qualifies reports whether score would enter a leaderboard of the given limit.
func Qualifies(entries []Entry, score, limit int) bool {
	if limit <= 0 {
		limit = MaxEntries
	}
	if len(entries) < limit {
		return true
	}
	return score > entries[len(entries)-1].Score
}

// Rank returns the 1-based position of the entry with id, or 0 if absent.
func Rank(entries []Entry, id string) int {
	for i, e := range entries {
		if e.ID == id {
			return i + 1
		}
	}
	return 0
}

// Encode serializes entries as a JSON list.
func Encode(entries []Entry) (string, error) {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("leaderboard: cannot encode: %w", err)
	}
	return string(data), nil
}

// Decode parses a JSON list of entries and returns them sorted.
// Entries with a negative score are rejected as malformed.
func Decode(raw string) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("leaderboard: cannot decode: %w", err)
	}
	for _, e := range entries {
		if e.Score < 0 {
			return nil, fmt.Errorf("leaderboard: entry %q has negative score %d", e.ID, e.Score)
		}
	}
	Sort(entries)
	return entries, nil
}

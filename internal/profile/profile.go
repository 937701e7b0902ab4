// Package profile keeps a player's persisted values: best score, display
// name and the leaderboard. Values live in a storage.KV under string keys.
// Reads fall back to defaults when a value is missing or malformed, and
// writes are fire-and-forget: failures are logged, never returned to the game.
package profile

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile2048/internal/leaderboard"
	"github.com/vovakirdan/tile2048/internal/storage"
)

// MaxNameLength is the longest display name kept, in runes.
const MaxNameLength = 20

// ErrEmptyName is returned by SetName for blank names.
var ErrEmptyName = errors.New("profile: name must not be empty")

// Keys names the storage keys of one profile.
type Keys struct {
	BestScore   string
	Leaderboard string
	Name        string
}

// KeysFor builds keys from a prefix. A non-empty namespace separates best
// score and name per player; the leaderboard key is always shared.
func KeysFor(prefix, namespace string) Keys {
	own := prefix
	if namespace != "" {
		own = prefix + "-" + namespace
	}
	return Keys{
		BestScore:   own + "-best-score",
		Leaderboard: prefix + "-leaderboard",
		Name:        own + "-player-name",
	}
}

// Options configures a Profile.
type Options struct {
	Prefix          string // Key prefix, default "2048"
	Namespace       string // Per-player key namespace, e.g. the SSH user
	DefaultName     string // Display name when none is stored
	LeaderboardSize int    // Max leaderboard entries, default leaderboard.MaxEntries
	Logger          *log.Logger
	Now             func() time.Time
}

// Profile holds the loaded values and writes changes through to the store.
// A Profile belongs to one session and is not safe for concurrent use.
type Profile struct {
	kv      storage.KV
	keys    Keys
	opts    Options
	logger  *log.Logger
	best    int
	name    string
	entries []leaderboard.Entry
}

// New creates a profile over kv. Call Load to restore stored values.
func New(kv storage.KV, opts Options) *Profile {
	if opts.Prefix == "" {
		opts.Prefix = "2048"
	}
	if opts.DefaultName == "" {
		opts.DefaultName = "Player"
	}
	if opts.LeaderboardSize <= 0 {
		opts.LeaderboardSize = leaderboard.MaxEntries
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Profile{
		kv:     kv,
		keys:   KeysFor(opts.Prefix, opts.Namespace),
		opts:   opts,
		logger: logger,
		name:   opts.DefaultName,
	}
}

// Keys returns the storage keys used by this profile.
func (p *Profile) Keys() Keys {
	return p.keys
}

// Load restores best score, name and leaderboard from the store.
func (p *Profile) Load() {
	p.best = 0
	if raw, ok := p.read(p.keys.BestScore); ok {
		if best, err := parseScore(raw); err == nil {
			p.best = best
		} else {
			p.logger.Warn("ignoring malformed best score", "key", p.keys.BestScore, "value", raw)
		}
	}

	p.name = p.opts.DefaultName
	if raw, ok := p.read(p.keys.Name); ok {
		if name, err := normalizeName(raw); err == nil {
			p.name = name
		} else {
			p.logger.Warn("ignoring malformed player name", "key", p.keys.Name)
		}
	}

	p.entries = nil
	if raw, ok := p.read(p.keys.Leaderboard); ok {
		p.entries = p.decodeLeaderboard(raw)
	}
}

// BestScore returns the best score seen so far.
func (p *Profile) BestScore() int {
	return p.best
}

// SetBestScore stores a new best score. When the store supports atomic
// updates, a higher score written by another session is kept.
func (p *Profile) SetBestScore(score int) {
	if score < 0 {
		return
	}
	p.best = score

	updater, ok := p.kv.(storage.Updater)
	if !ok {
		p.write(p.keys.BestScore, strconv.Itoa(score))
		return
	}

	err := updater.Update(p.keys.BestScore, func(raw string, ok bool) (string, error) {
		if ok {
			if stored, err := parseScore(raw); err == nil && stored > score {
				p.best = stored
				return raw, nil
			}
		}
		return strconv.Itoa(score), nil
	})
	if err != nil {
		p.logger.Error("cannot store value", "key", p.keys.BestScore, "error", err)
	}
}

// Name returns the display name.
func (p *Profile) Name() string {
	return p.name
}

// SetName changes and stores the display name. Surrounding whitespace is
// trimmed and long names are cut to MaxNameLength runes.
func (p *Profile) SetName(name string) error {
	normalized, err := normalizeName(name)
	if err != nil {
		return err
	}
	p.name = normalized
	p.write(p.keys.Name, normalized)
	return nil
}

// Leaderboard returns a copy of the current leaderboard, best first.
func (p *Profile) Leaderboard() []leaderboard.Entry {
	result := make([]leaderboard.Entry, len(p.entries))
	copy(result, p.entries)
	return result
}

// Rank returns the 1-based leaderboard position of the entry with id,
// or 0 if it did not make the board.
func (p *Profile) Rank(id string) int {
	return leaderboard.Rank(p.entries, id)
}

// Commit adds a finished game to the leaderboard and stores the result.
// A score that cannot enter a full board leaves the stored value untouched.
// When the store supports atomic updates, entries written by other
// sessions since Load are merged in.
func (p *Profile) Commit(score int, name string) leaderboard.Entry {
	entry := leaderboard.NewEntry(score, name, p.opts.Now())

	if updater, ok := p.kv.(storage.Updater); ok {
		var merged []leaderboard.Entry
		err := updater.Update(p.keys.Leaderboard, func(raw string, ok bool) (string, error) {
			var current []leaderboard.Entry
			if ok {
				current = p.decodeLeaderboard(raw)
			}
			if !leaderboard.Qualifies(current, score, p.opts.LeaderboardSize) {
				merged = current
				return raw, nil
			}
			merged = leaderboard.Insert(current, entry, p.opts.LeaderboardSize)
			return leaderboard.Encode(merged)
		})
		if err == nil {
			p.entries = merged
			return entry
		}
		p.logger.Error("cannot update leaderboard", "key", p.keys.Leaderboard, "error", err)
		p.entries = leaderboard.Insert(p.entries, entry, p.opts.LeaderboardSize)
		return entry
	}

	if !leaderboard.Qualifies(p.entries, score, p.opts.LeaderboardSize) {
		return entry
	}
	p.entries = leaderboard.Insert(p.entries, entry, p.opts.LeaderboardSize)
	raw, err := leaderboard.Encode(p.entries)
	if err != nil {
		p.logger.Error("cannot encode leaderboard", "error", err)
		return entry
	}
	p.write(p.keys.Leaderboard, raw)
	return entry
}

// RecordGame commits a finalized score under the current display name and
// appends it to the store's game history when the store keeps one.
func (p *Profile) RecordGame(score int) leaderboard.Entry {
	entry := p.Commit(score, p.name)

	if scoreLog, ok := p.kv.(storage.ScoreLog); ok {
		if _, err := scoreLog.SaveScore(p.HistoryPlayer(), score); err != nil {
			p.logger.Error("cannot save game history", "error", err)
		}
	}

	p.logger.Info("game recorded", "name", p.name, "score", score,
		"rank", leaderboard.Rank(p.entries, entry.ID))
	return entry
}

// HistoryPlayer returns the player key used for the game history:
// the namespace when set, otherwise the display name.
func (p *Profile) HistoryPlayer() string {
	if p.opts.Namespace != "" {
		return p.opts.Namespace
	}
	return p.name
}

func (p *Profile) read(key string) (string, bool) {
	raw, ok, err := p.kv.Get(key)
	if err != nil {
		p.logger.Warn("cannot read stored value", "key", key, "error", err)
		return "", false
	}
	return raw, ok
}

func (p *Profile) write(key, value string) {
	if err := p.kv.Set(key, value); err != nil {
		p.logger.Error("cannot store value", "key", key, "error", err)
	}
}

func (p *Profile) decodeLeaderboard(raw string) []leaderboard.Entry {
	entries, err := leaderboard.Decode(raw)
	if err != nil {
		p.logger.Warn("ignoring malformed leaderboard", "key", p.keys.Leaderboard, "error", err)
		return nil
	}
	if len(entries) > p.opts.LeaderboardSize {
		entries = entries[:p.opts.LeaderboardSize]
	}
	return entries
}

func parseScore(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || !utf8.ValidString(name) {
		return "", ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		name = strings.TrimSpace(string([]rune(name)[:MaxNameLength]))
	}
	return name, nil
}

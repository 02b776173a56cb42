// Package scores keeps leaderboards: one per shaft size and block set.
package scores

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cbodonnell/shaft/pkg/game/constants"
	"github.com/google/uuid"
)

// Entry is one line of a leaderboard.
type Entry struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Score         int       `json:"score"`
	Cubes         int       `json:"cubes"`
	SecondsPlayed int       `json:"secondsPlayed"`
	Time          time.Time `json:"time"`
	// Online is set for entries confirmed by the score server
	Online bool `json:"online"`
	// Placeholder entries fill up boards with few real scores
	Placeholder bool `json:"placeholder,omitempty"`
}

// SameGame reports whether e and o record the same game. Names are not
// compared since they can be edited after the fact.
func (e Entry) SameGame(o Entry) bool {
	return e.Score == o.Score &&
		e.Cubes == o.Cubes &&
		e.SecondsPlayed == o.SecondsPlayed &&
		e.Time.Unix() == o.Time.Unix()
}

// BoardName returns the leaderboard name for a shaft, e.g. "5x5x12:Shaaft".
func BoardName(width, height, depth int, blockset string) string {
	return fmt.Sprintf("%dx%dx%d:%s", width, height, depth, blockset)
}

// Dimensions is a parsed board name.
type Dimensions struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Depth    int    `json:"depth"`
	Blockset string `json:"blockset"`
}

// ParseBoardName is the inverse of BoardName.
func ParseBoardName(name string) (Dimensions, error) {
	size, blockset, ok := strings.Cut(name, ":")
	if !ok || blockset == "" {
		return Dimensions{}, fmt.Errorf("invalid board name %q: missing blockset", name)
	}
	parts := strings.Split(size, "x")
	if len(parts) != 3 {
		return Dimensions{}, fmt.Errorf("invalid board name %q: expected WxHxD", name)
	}
	var dims [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v <= 0 {
			return Dimensions{}, fmt.Errorf("invalid board name %q: bad dimension %q", name, p)
		}
		dims[i] = v
	}
	return Dimensions{Width: dims[0], Height: dims[1], Depth: dims[2], Blockset: blockset}, nil
}

// SortBoards orders board names by shaft area, then depth, then width, then
// name. Names that do not parse sort last.
func SortBoards(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		a, errA := ParseBoardName(names[i])
		b, errB := ParseBoardName(names[j])
		switch {
		case errA != nil && errB != nil:
			return names[i] < names[j]
		case errA != nil:
			return false
		case errB != nil:
			return true
		}
		areaA, areaB := a.Width*a.Height, b.Width*b.Height
		if areaA != areaB {
			return areaA < areaB
		}
		if a.Depth != b.Depth {
			return a.Depth < b.Depth
		}
		if a.Width != b.Width {
			return a.Width < b.Width
		}
		return names[i] < names[j]
	})
}

// SortEntries orders entries by score, highest first. Equal scores keep
// their order.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
}

// Merge adds the online entries to board. An online entry for a game already
// on the board only marks that entry online. The result is sorted and holds
// at most LeaderboardSize entries.
func Merge(board, online []Entry) []Entry {
	merged := make([]Entry, len(board), len(board)+len(online))
	copy(merged, board)

	for _, o := range online {
		duplicate := false
		for i := range merged {
			if merged[i].SameGame(o) {
				duplicate = true
				merged[i].Online = true
			}
		}
		if !duplicate {
			o.Online = true
			merged = append(merged, o)
		}
	}

	SortEntries(merged)
	if len(merged) > constants.LeaderboardSize {
		merged = merged[:constants.LeaderboardSize]
	}
	return merged
}

var placeholderNames = []string{
	"AB", "MrT", "IB", "BBS", "MM", "ff", "Olli", "HSV", "Minden", "DrB", "DW", "SliQ", "Falo", "Howie",
}

// Placeholders returns n made up entries with scores 10, 20, ... sorted
// highest first. start rotates the names.
func Placeholders(n, start int, now time.Time) []Entry {
	if start < 0 {
		start = -start
	}
	entries := make([]Entry, n)
	for i := range entries {
		entries[i] = Entry{
			Name:        placeholderNames[(i+start)%len(placeholderNames)],
			Score:       10*i + 10,
			Time:        now,
			Placeholder: true,
		}
	}
	SortEntries(entries)
	return entries
}

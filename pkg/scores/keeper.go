package scores

import (
	"github.com/cbodonnell/shaft/pkg/clock"
	"github.com/cbodonnell/shaft/pkg/game/constants"
	"github.com/cbodonnell/shaft/pkg/log"
	"github.com/google/uuid"
)

// DefaultName is used for games whose player did not give a name.
const DefaultName = "Anonymous"

// FinalizeFunc receives the final entry of a game.
type FinalizeFunc func(board string, entry Entry)

// Keeper tracks the score of the running game on its leaderboard. The board
// holds the top ten plus the current game, which moves up as it scores.
type Keeper struct {
	board      string
	entries    []Entry
	current    int
	practice   bool
	finalized  bool
	onFinalize FinalizeFunc
	clock      clock.Clock
}

// NewKeeperOptions contains options for creating a new Keeper.
type NewKeeperOptions struct {
	// Board is the leaderboard name, see BoardName.
	Board string
	// Name is the player name of the current game.
	Name string
	// Top are known scores of the board. Missing entries are made up.
	Top        []Entry
	Practice   bool
	OnFinalize FinalizeFunc
	Clock      clock.Clock
	// PlaceholderSeed rotates the names of made up entries.
	PlaceholderSeed int
}

func NewKeeper(opts NewKeeperOptions) *Keeper {
	k := &Keeper{
		board:      opts.Board,
		practice:   opts.Practice,
		onFinalize: opts.OnFinalize,
		clock:      opts.Clock,
	}
	if k.clock == nil {
		k.clock = clock.SystemClock{}
	}

	size := constants.LeaderboardSize
	top := make([]Entry, 0, size)
	for _, e := range opts.Top {
		if e.Placeholder {
			continue
		}
		top = append(top, e)
	}
	SortEntries(top)
	if len(top) > size-1 {
		top = top[:size-1]
	}
	if missing := size - 1 - len(top); missing > 0 {
		top = append(top, Placeholders(missing, opts.PlaceholderSeed, k.clock.Now())...)
		SortEntries(top)
	}

	name := opts.Name
	if name == "" {
		name = DefaultName
	}
	k.entries = append(top, Entry{
		ID:   uuid.New(),
		Name: name,
		Time: k.clock.Now(),
	})
	k.current = size - 1

	return k
}

// AddToCurrentScore adds to the current game. secs is the time played so far
// and is ignored when 0. In practice mode nothing is recorded. It returns the
// score added.
func (k *Keeper) AddToCurrentScore(score, cubes, secs int) int {
	if k.practice || k.finalized {
		return score
	}

	e := &k.entries[k.current]
	e.Score += score
	e.Cubes += cubes
	e.Time = k.clock.Now()
	if secs != 0 {
		e.SecondsPlayed = secs
	}

	k.sortLeaderBoard()
	return score
}

// sortLeaderBoard moves the current entry up past every lower score.
func (k *Keeper) sortLeaderBoard() {
	current := k.entries[k.current]
	for k.current > 0 && current.Score > k.entries[k.current-1].Score {
		k.entries[k.current] = k.entries[k.current-1]
		k.current--
	}
	k.entries[k.current] = current
}

// Finalize ends the game and hands the final entry to the FinalizeFunc.
// Only the first call has an effect. Practice games are not handed over.
func (k *Keeper) Finalize() {
	if k.finalized {
		return
	}
	k.finalized = true

	entry := k.entries[k.current]
	if k.practice {
		log.Debug("Practice game on %s finished, score not recorded", k.board)
		return
	}
	log.Info("Game on %s finished with %d points (%d cubes, %ds)", k.board, entry.Score, entry.Cubes, entry.SecondsPlayed)
	if k.onFinalize != nil {
		k.onFinalize(k.board, entry)
	}
}

// MergeOnline merges scores from the score server into the board while
// keeping track of the current game.
func (k *Keeper) MergeOnline(online []Entry) {
	if len(online) == 0 {
		return
	}
	current := k.entries[k.current]

	merged := Merge(k.entries, online)
	k.current = -1
	for i, e := range merged {
		if e.ID == current.ID || (e.SameGame(current) && e.Name == current.Name) {
			k.current = i
			break
		}
	}

	if k.current < 0 {
		// the current game fell off the board, keep it in the last slot
		k.current = len(merged) - 1
		merged[k.current] = current
		k.entries = merged
		k.sortLeaderBoard()
		return
	}
	k.entries = merged
}

// SetName renames the player of the current game.
func (k *Keeper) SetName(name string) {
	if name == "" {
		name = DefaultName
	}
	k.entries[k.current].Name = name
}

func (k *Keeper) SetPracticeMode(practice bool) {
	k.practice = practice
}

func (k *Keeper) PracticeMode() bool {
	return k.practice
}

func (k *Keeper) Board() string {
	return k.board
}

func (k *Keeper) Finalized() bool {
	return k.finalized
}

// Current returns the entry of the running game.
func (k *Keeper) Current() Entry {
	return k.entries[k.current]
}

// CurrentIndex is the rank of the running game, 0 being the leader.
func (k *Keeper) CurrentIndex() int {
	return k.current
}

func (k *Keeper) CurrentScore() int {
	return k.entries[k.current].Score
}

func (k *Keeper) HighScore() int {
	return k.entries[0].Score
}

// CurrentIsTopTen reports whether the running game made it onto the board.
func (k *Keeper) CurrentIsTopTen() bool {
	return k.current < len(k.entries)-1
}

// Leaderboard returns a copy of the board, highest score first.
func (k *Keeper) Leaderboard() []Entry {
	out := make([]Entry, len(k.entries))
	copy(out, k.entries)
	return out
}

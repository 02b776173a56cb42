package sim

import (
	"errors"
	"fmt"

	"github.com/cbodonnell/shaft/pkg/blocks"
	"github.com/cbodonnell/shaft/pkg/game/constants"
	"github.com/cbodonnell/shaft/pkg/game/types"
	"github.com/cbodonnell/shaft/pkg/log"
	"github.com/cbodonnell/shaft/pkg/shaft"
)

// ErrEmptyCatalog is returned when a model is built without shapes.
var ErrEmptyCatalog = errors.New("empty shape catalog")

// Rand is the source of randomness of a game. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Model is one game in progress.
type Model struct {
	width  int
	height int
	depth  int

	grid    *shaft.Grid
	catalog []blocks.Shape
	rand    Rand

	audio    AudioPlayer
	scores   ScoreSink
	listener Listener
	logger   *log.Logger

	level        int
	dropDelay    float64
	elementCount int

	// The four views of the current piece are indexed by element ordinal.
	// elements and scratch hold local offsets and are swapped on rotation,
	// reference keeps the spawn offsets for drawing and hint holds absolute
	// landing positions.
	elements  []types.Point3
	reference []types.Point3
	hint      []types.Point3
	scratch   []types.Point3

	offset       types.Point3
	orientation  types.Point3
	multiplier   int
	current      int
	next         int
	freeFall     bool
	freeFallDist int

	nextDrop        float64
	nextBonus       float64
	bonusEnd        float64
	bonusInProgress bool

	practice bool
	alive    bool
	now      float64
}

// NewModelOptions contains options for creating a new Model.
type NewModelOptions struct {
	Width   int
	Height  int
	Depth   int
	Level   int
	Catalog []blocks.Shape
	Rand    Rand

	// Audio, Scores and Listener are optional.
	Audio    AudioPlayer
	Scores   ScoreSink
	Listener Listener
	Logger   *log.Logger

	Practice bool
	// Now is the session time the game starts at.
	Now float64
}

// ResetOptions describe the next game of a Model.
type ResetOptions struct {
	Width   int
	Height  int
	Depth   int
	Level   int
	Catalog []blocks.Shape
}

// NewModel creates a model and spawns its first piece.
func NewModel(opts NewModelOptions) (*Model, error) {
	if opts.Rand == nil {
		return nil, fmt.Errorf("a random source is required")
	}
	m := &Model{
		grid:     shaft.NewGrid(opts.Width, opts.Height, opts.Depth),
		rand:     opts.Rand,
		audio:    opts.Audio,
		scores:   opts.Scores,
		listener: opts.Listener,
		logger:   opts.Logger,
		practice: opts.Practice,
	}
	if m.logger == nil {
		m.logger = log.Default()
	}
	err := m.Reset(ResetOptions{
		Width:   opts.Width,
		Height:  opts.Height,
		Depth:   opts.Depth,
		Level:   opts.Level,
		Catalog: opts.Catalog,
	}, opts.Now)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Reset starts a new game at time now. The practice flag and collaborators
// are kept.
func (m *Model) Reset(opts ResetOptions, now float64) error {
	if opts.Width <= 0 || opts.Height <= 0 || opts.Depth <= 0 {
		return fmt.Errorf("invalid shaft size %dx%dx%d", opts.Width, opts.Height, opts.Depth)
	}
	if len(opts.Catalog) == 0 {
		return ErrEmptyCatalog
	}

	m.logger.Info("New game: w=%d h=%d d=%d level=%d", opts.Width, opts.Height, opts.Depth, opts.Level)

	m.width = opts.Width
	m.height = opts.Height
	m.depth = opts.Depth
	m.grid.Reset(opts.Width, opts.Height, opts.Depth)
	m.catalog = opts.Catalog

	m.level = min(max(opts.Level, 0), constants.MaxLevel)
	m.elementCount = 0
	m.updateDropDelay()

	m.now = now
	m.alive = true
	m.next = m.rand.Intn(len(m.catalog))
	m.spawnNext()
	if !m.verifyAndAdjust() {
		m.logger.Warn("First block does not fit the %dx%dx%d shaft", m.width, m.height, m.depth)
		m.gameOver()
	}
	m.updateHintList()
	m.updateNextDrop(m.dropDelay, false)

	// the bonus fires right at the start
	m.nextBonus = now
	m.bonusEnd = 0
	m.bonusInProgress = false

	return nil
}

func (m *Model) updateDropDelay() {
	m.dropDelay = constants.DropDelay(m.level)
}

func (m *Model) updateNextDrop(delay float64, freeFall bool) {
	if m.practice && !freeFall {
		m.nextDrop = m.now + constants.PracticeDropDelay
		return
	}
	m.nextDrop = m.now + delay
}

func (m *Model) play(sample string) {
	if m.audio != nil {
		m.audio.PlaySample(sample)
	}
}

func (m *Model) addScore(score, cubes, secs int) {
	if m.scores != nil {
		m.scores.AddToCurrentScore(score, cubes, secs)
	}
}

// spawnNext makes the preselected shape the current piece and picks the
// shape after it.
func (m *Model) spawnNext() {
	m.current = m.next
	shape := m.catalog[m.current]

	m.elements = append(m.elements[:0], shape.Elements...)
	m.reference = append(m.reference[:0], shape.Elements...)
	m.hint = append(m.hint[:0], shape.Elements...)
	m.scratch = append(m.scratch[:0], shape.Elements...)
	m.multiplier = shape.Multiplier

	m.offset = types.Point3{X: m.width / 2, Y: m.height / 2, Z: m.depth - 1}
	m.orientation = types.Point3{Z: 1}

	m.freeFall = false
	m.freeFallDist = 0

	m.next = m.rand.Intn(len(m.catalog))

	if m.listener != nil {
		m.listener.NotifyNewBlock()
	}
}

// AttemptMove moves the piece one step. It returns false and leaves the piece
// where it was when the move is blocked. A move into a wall that the wall
// kick undoes counts as blocked. DirIn arms free fall.
func (m *Model) AttemptMove(dir Direction) bool {
	if !m.alive {
		return false
	}

	if dir == DirIn {
		m.freeFall = true
		return true
	}

	delta := dir.delta()
	if delta == (types.Point3{}) {
		return false
	}

	before := m.offset
	m.offset = m.offset.Add(delta)
	if !m.verifyAndAdjust() {
		m.offset = m.offset.Sub(delta)
		return false
	}
	if m.offset == before {
		return false
	}

	m.updateHintList()
	return true
}

// AttemptRotate turns the piece. Near a wall the piece is kicked inward.
// When the turn cannot be placed nothing changes.
func (m *Model) AttemptRotate(rot Rotation) bool {
	if !m.alive {
		return false
	}

	for i, p := range m.elements {
		m.scratch[i] = rot.Apply(p)
	}

	m.elements, m.scratch = m.scratch, m.elements
	if !m.verifyAndAdjust() {
		m.elements, m.scratch = m.scratch, m.elements
		return false
	}

	m.orientation = rot.Apply(m.orientation)
	m.updateHintList()
	if m.listener != nil {
		m.listener.NotifyRotation(rot.Quaternion())
	}
	return true
}

// verifyAndAdjust checks the current piece against the shaft. Pieces that
// stick out of a side wall are nudged back in; the nudge is undone when the
// piece still does not fit.
func (m *Model) verifyAndAdjust() bool {
	var minX, maxX, minY, maxY int
	for _, e := range m.elements {
		a := e.Add(m.offset)
		if a.Z < 0 {
			return false
		}
		minX = max(minX, -a.X)
		maxX = max(maxX, a.X-m.width+1)
		minY = max(minY, -a.Y)
		maxY = max(maxY, a.Y-m.height+1)
	}

	orig := m.offset
	m.offset.X += minX - maxX
	m.offset.Y += minY - maxY

	for _, e := range m.elements {
		a := e.Add(m.offset)
		if !m.inPlane(a) || m.grid.IsOccupied(a) {
			m.offset = orig
			return false
		}
	}
	return true
}

func (m *Model) inPlane(p types.Point3) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

// CanDrop reports whether the piece can move one plane down.
func (m *Model) CanDrop() bool {
	for _, e := range m.elements {
		a := e.Add(m.offset)
		a.Z--
		if a.Z < 0 || m.grid.IsOccupied(a) {
			return false
		}
	}
	return true
}

// updateHintList projects the piece straight down to where it would land.
// Each element finds the landing plane of its column and the piece as a
// whole drops by the smallest of those distances.
func (m *Model) updateHintList() {
	drop := -1
	for _, e := range m.elements {
		cell := e.Add(m.offset)
		start := cell.Z
		for cell.Z >= 0 && !m.grid.IsOccupied(cell) {
			cell.Z--
		}
		cell.Z++
		if dist := start - cell.Z; drop < 0 || dist < drop {
			drop = dist
		}
	}
	if drop < 0 {
		drop = 0
	}

	for i, e := range m.elements {
		m.hint[i] = e.Add(m.offset)
		m.hint[i].Z -= drop
	}
}

func (m *Model) scoreMultiplier() int {
	if m.bonusEnd > m.now {
		return constants.BonusMultiplier
	}
	return 1
}

// BonusDuration is the length of a bonus window for the current shaft.
func (m *Model) BonusDuration() float64 {
	return float64(m.width*m.height) * constants.BonusSecondsPerCell
}

// BonusSecondsLeft is the remaining time of the active bonus window.
func (m *Model) BonusSecondsLeft() float64 {
	if m.bonusEnd > m.now {
		return m.bonusEnd - m.now
	}
	return 0
}

func (m *Model) updateNextBonus() {
	steps := m.rand.Intn(constants.BonusIntervalSteps) + 1
	m.nextBonus = m.now + constants.BonusIntervalUnit*float64(steps)
}

func (m *Model) updateBonus() {
	if m.nextBonus >= m.now {
		return
	}
	if !m.bonusInProgress {
		m.bonusEnd = m.nextBonus + m.BonusDuration()
		m.play(constants.SampleBonus)
		m.logger.Debug("Bonus window until %.1f", m.bonusEnd)
	}
	m.bonusInProgress = true
	if m.nextBonus+constants.BonusCueWindow < m.now {
		m.updateNextBonus()
		m.bonusInProgress = false
	}
}

// Update advances the game to session time now. It returns false once the
// game is over.
func (m *Model) Update(now float64) bool {
	if !m.alive {
		return false
	}
	m.now = now

	m.updateBonus()

	if m.freeFall {
		if m.CanDrop() {
			m.offset.Z--
			m.freeFallDist++
			m.updateNextDrop(constants.FreeFallDelay, true)
		} else {
			m.freeFall = false
			if m.practice {
				m.nextDrop = m.now + constants.FreeFallDelay
			}
		}
	}

	if !m.freeFall && m.now >= m.nextDrop {
		if m.CanDrop() {
			m.offset.Z--
		} else if !m.lockPiece() {
			return false
		}
		m.updateNextDrop(m.dropDelay, false)
	}

	m.updateHintList()
	return true
}

// lockPiece fixes the current piece into the grid, scores it and spawns the
// next piece. It returns false when the game ended.
func (m *Model) lockPiece() bool {
	eCount := 0
	for _, e := range m.elements {
		if err := m.grid.Lock(e.Add(m.offset)); err != nil {
			m.logger.Error("Failed to lock block: %v", err)
			m.gameOver()
			return false
		}
		eCount++
	}

	if m.level < constants.MaxLevel && m.elementCount >= m.level*constants.ElementsPerLevel {
		m.level++
		m.play(constants.SampleLevelUp)
		m.updateDropDelay()
		m.logger.Info("New level is %d", m.level)
	}
	m.elementCount += eCount

	if !m.practice {
		score := (float64(eCount+m.multiplier) + float64(m.freeFallDist)/2.0) * float64(m.level*m.scoreMultiplier())
		m.addScore(int(score), eCount, int(m.now))
	}

	m.play(constants.SampleLock)
	m.checkPlanes()

	m.spawnNext()
	if !m.verifyAndAdjust() {
		m.logger.Info("Can't fit new block!")
		m.gameOver()
		return false
	}
	return true
}

func (m *Model) checkPlanes() {
	cleared := m.grid.ClearFullPlanes()
	if cleared == 0 {
		return
	}

	m.play(constants.ClearSample(cleared))
	if !m.practice {
		m.addScore(cleared*cleared*m.level*constants.PlaneClearBonus*m.scoreMultiplier(), 0, 0)
	}
}

func (m *Model) gameOver() {
	m.alive = false
	m.logger.Info("Game over at level %d after %d elements", m.level, m.elementCount)
	if m.scores != nil {
		m.scores.AddToCurrentScore(0, 0, int(m.now))
		m.scores.Finalize()
	}
}

// SetPracticeMode switches gravity and scoring off or back on.
func (m *Model) SetPracticeMode(practice bool) {
	if m.practice == practice {
		return
	}
	m.practice = practice
	m.updateNextDrop(m.dropDelay, false)
}

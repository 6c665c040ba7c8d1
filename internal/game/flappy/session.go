// Package flappy implements a Flappy Bird-style game on top of the physics
// provider. The bird falls under gravity, the player flaps upward, pipe pairs
// scroll in from the right and every pair passed scores one point.
//
// A Session owns all game state. The platform drains its input queue once per
// tick and hands the actions to Step together with the elapsed time.
package flappy

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/metric"

	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/physics"
)

// Phase is the top-level mode of a session.
type Phase int

const (
	PhaseIdle     Phase = iota // Bird hovers, waiting for a start request
	PhasePlaying               // Gravity on, pipes spawning
	PhaseGameOver              // Everything frozen until restart
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Event is something that happened during a step, reported for sound cues.
type Event int

const (
	EventStarted Event = iota + 1
	EventFlapped
	EventScored
	EventCrashed
	EventRestarted
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventStarted:
		return "started"
	case EventFlapped:
		return "flapped"
	case EventScored:
		return "scored"
	case EventCrashed:
		return "crashed"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// StepResult reports the state after a step.
type StepResult struct {
	Phase  Phase
	Score  int
	Events []Event // In the order they happened
}

// Has reports whether e happened during the step.
func (r StepResult) Has(e Event) bool {
	for _, got := range r.Events {
		if got == e {
			return true
		}
	}
	return false
}

type options struct {
	logger   *log.Logger
	seed     int64
	meter    metric.Meter
	provider func(physics.WorldConfig) physics.Provider
}

// Option configures a Session.
type Option func(*options)

// WithLogger sets the session logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithSeed fixes the pipe gap sequence. Zero picks a seed from the clock.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithMeter replaces the global otel meter.
func WithMeter(m metric.Meter) Option {
	return func(o *options) {
		o.meter = m
	}
}

// WithProvider replaces the resolv-backed world. newProvider receives the
// world size and gravity and must return an empty provider.
func WithProvider(newProvider func(physics.WorldConfig) physics.Provider) Option {
	return func(o *options) {
		o.provider = newProvider
	}
}

// Session is one game from the first idle screen until the player quits.
// It is not safe for concurrent use; the platform calls it from its tick loop.
type Session struct {
	cfg     config.FlappyConfig
	log     *log.Logger
	world   physics.Provider
	sched   *clock.Scheduler
	spawner *Spawner
	metrics *metrics
	bob     *bob

	phase      Phase
	score      int
	bird       *Bird
	pipes      []*Pipe
	zones      []*ScoreZone
	spawnTimer *clock.Timer

	crashCause string // Set by contact handlers during a physics step
	events     []Event
}

// NewSession validates cfg and builds the world in the idle phase.
func NewSession(cfg config.FlappyConfig, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	if o.seed == 0 {
		o.seed = time.Now().UnixNano()
	}
	if o.meter == nil {
		o.meter = meter()
	}
	if o.provider == nil {
		o.provider = func(wc physics.WorldConfig) physics.Provider {
			return physics.NewWorld(wc)
		}
	}

	mt, err := newMetrics(o.meter)
	if err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}

	s := &Session{
		cfg:     cfg,
		log:     o.logger,
		sched:   clock.NewScheduler(),
		spawner: NewSpawner(o.seed, cfg),
		metrics: mt,
		bob:     newBob(cfg.Bird.BobAmplitude, cfg.Bird.BobPeriod()),
	}
	s.buildWorld(o.provider)
	s.log.Debug("session created", "seed", o.seed)
	return s, nil
}

func (s *Session) buildWorld(newProvider func(physics.WorldConfig) physics.Provider) {
	w := newProvider(physics.WorldConfig{
		Width:    s.cfg.World.Width,
		Height:   s.cfg.World.Height,
		Gravity:  s.cfg.World.Gravity,
		CellSize: 20,
	})
	s.world = w

	w.AddStatic(TagGround, 0, s.cfg.Ground.Y, s.cfg.World.Width, s.cfg.Ground.Height)

	bc := s.cfg.Bird
	box := core.BoxFromCenter(bc.StartX, bc.StartY, bc.Width, bc.Height)
	body := w.AddDynamic(TagBird, box.X, box.Y, box.W, box.H)
	body.CollideWorldBounds = bc.CollideBounds
	s.bird = &Bird{body: body, startX: bc.StartX, startY: bc.StartY}
	body.Data = s.bird

	w.Collide(body, TagGround, func(_, _ *physics.Body) { s.crash("ground") })
	w.OverlapTag(body, TagPipe, func(_, _ *physics.Body) { s.crash("pipe") })
}

// Step advances the session by dt. Within a step the actions are applied
// first, then timers fire, then physics integrates and reports contacts,
// then a crash ends the run, then scrolled-out entities are removed.
func (s *Session) Step(actions []core.Action, dt time.Duration) StepResult {
	s.events = nil
	wasIdle := s.phase == PhaseIdle

	for _, a := range actions {
		s.handle(a)
	}

	if wasIdle && s.phase == PhaseIdle {
		offset := s.bob.update(dt.Seconds())
		s.bird.body.SetCenter(s.bird.startX, s.bird.startY+offset)
	}

	s.sched.Advance(dt)

	s.crashCause = ""
	s.world.Step(dt.Seconds())
	if s.crashCause != "" {
		s.endGame(s.crashCause)
	}

	if s.phase == PhasePlaying {
		bc := s.cfg.Bird
		s.bird.angle = core.ClampF(s.bird.body.VY/bc.AngleDivisor, bc.MinAngle, bc.MaxAngle)
	}

	s.cleanup()

	return StepResult{
		Phase:  s.phase,
		Score:  s.score,
		Events: s.events,
	}
}

// handle maps an input action onto the request valid in the current phase.
func (s *Session) handle(a core.Action) {
	switch a {
	case core.ActionFlap:
		switch s.phase {
		case PhaseIdle:
			s.Start()
		case PhasePlaying:
			s.Flap()
		case PhaseGameOver:
			s.Restart()
		}
	case core.ActionPointer:
		// A pointer press never flaps.
		switch s.phase {
		case PhaseIdle:
			s.Start()
		case PhaseGameOver:
			s.Restart()
		}
	case core.ActionRestart:
		if s.phase == PhaseGameOver {
			s.Restart()
		}
	}
}

// Start begins a run from the idle phase. It reports whether the phase changed.
func (s *Session) Start() bool {
	if s.phase != PhaseIdle {
		return false
	}

	s.phase = PhasePlaying
	s.score = 0

	b := s.bird
	b.tinted = false
	b.angle = 0
	b.body.SetVelocity(0, 0)
	b.body.AllowGravity = true

	s.spawnTimer = s.sched.Every(s.cfg.Pipes.SpawnInterval(), s.spawn)
	s.spawn()

	s.emit(EventStarted)
	s.metrics.runStarted()
	s.log.Debug("run started")
	return true
}

// Flap gives the bird its upward impulse while playing.
func (s *Session) Flap() bool {
	if s.phase != PhasePlaying {
		return false
	}
	s.bird.body.VY = s.cfg.Bird.FlapVelocity
	s.emit(EventFlapped)
	return true
}

// Restart clears the run and returns to the idle phase.
func (s *Session) Restart() bool {
	if s.phase != PhaseGameOver {
		return false
	}

	for _, p := range s.pipes {
		s.world.Destroy(p.body)
	}
	for _, z := range s.zones {
		s.world.Destroy(z.body)
	}
	s.pipes = nil
	s.zones = nil

	s.bird.reset()
	s.bob.reset()
	s.score = 0
	s.phase = PhaseIdle

	s.emit(EventRestarted)
	s.log.Debug("run reset")
	return true
}

// crash records a fatal contact; the run ends after the physics step.
func (s *Session) crash(cause string) {
	if s.phase != PhasePlaying || s.crashCause != "" {
		return
	}
	s.crashCause = cause
}

// endGame freezes the run. Calling it outside the playing phase is a no-op.
func (s *Session) endGame(cause string) {
	if s.phase != PhasePlaying {
		return
	}
	s.phase = PhaseGameOver

	b := s.bird
	b.tinted = true
	b.body.SetVelocity(0, 0)
	b.body.AllowGravity = false

	for _, p := range s.pipes {
		p.body.SetVelocity(0, 0)
	}
	for _, z := range s.zones {
		z.body.SetVelocity(0, 0)
	}

	s.spawnTimer.Cancel()
	s.spawnTimer = nil

	s.emit(EventCrashed)
	s.metrics.runEnded(cause)
	s.log.Debug("run ended", "score", s.score, "cause", cause)
}

// spawn adds one pipe pair and its score zone at the spawn x.
func (s *Session) spawn() {
	if s.phase != PhasePlaying {
		return
	}

	layout := s.spawner.Next()
	speed := -s.cfg.Pipes.Speed

	for _, half := range []struct {
		box         core.Box
		orientation Orientation
	}{
		{layout.Top, OrientationTop},
		{layout.Bottom, OrientationBottom},
	} {
		body := s.world.AddKinematic(TagPipe, half.box.X, half.box.Y, half.box.W, half.box.H)
		body.SetVelocity(speed, 0)
		p := &Pipe{orientation: half.orientation, body: body}
		body.Data = p
		s.pipes = append(s.pipes, p)
	}

	zb := layout.Zone
	body := s.world.AddZone(TagZone, zb.X, zb.Y, zb.W, zb.H)
	body.SetVelocity(speed, 0)
	zone := &ScoreZone{body: body}
	body.Data = zone
	s.zones = append(s.zones, zone)
	s.world.Overlap(s.bird.body, body, func(_, _ *physics.Body) { s.collect(zone) })

	s.metrics.pairSpawned()
	s.log.Debug("pipes spawned", "gap", layout.GapCenter)
}

// collect pays out a zone once and removes it.
func (s *Session) collect(z *ScoreZone) {
	if s.phase != PhasePlaying || z.Destroyed() {
		return
	}
	s.score++
	s.removeZone(z)

	s.emit(EventScored)
	s.metrics.scored()
	s.log.Debug("scored", "score", s.score)
}

func (s *Session) removeZone(z *ScoreZone) {
	s.world.Destroy(z.body)
	for i, cur := range s.zones {
		if cur == z {
			s.zones = append(s.zones[:i], s.zones[i+1:]...)
			return
		}
	}
}

// cleanup destroys pipes and zones that scrolled past the despawn line.
func (s *Session) cleanup() {
	limit := s.cfg.Pipes.DespawnX

	live := s.pipes[:0]
	for _, p := range s.pipes {
		if p.X() < limit {
			s.world.Destroy(p.body)
			continue
		}
		live = append(live, p)
	}
	clear(s.pipes[len(live):])
	s.pipes = live

	zones := s.zones[:0]
	for _, z := range s.zones {
		if z.X() < limit {
			s.world.Destroy(z.body)
			continue
		}
		zones = append(zones, z)
	}
	clear(s.zones[len(zones):])
	s.zones = zones
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Bird returns the player.
func (s *Session) Bird() *Bird { return s.bird }

// Pipes returns the live pipes in spawn order.
func (s *Session) Pipes() []*Pipe {
	out := make([]*Pipe, len(s.pipes))
	copy(out, s.pipes)
	return out
}

// Zones returns the live score zones in spawn order.
func (s *Session) Zones() []*ScoreZone {
	out := make([]*ScoreZone, len(s.zones))
	copy(out, s.zones)
	return out
}

// Spawning reports whether the pipe spawn timer is running. It is the only
// timer the session registers.
func (s *Session) Spawning() bool {
	return s.sched.Pending() > 0
}

// Elapsed returns the simulated time since the session was created.
func (s *Session) Elapsed() time.Duration {
	return s.sched.Now()
}

// Config returns the constants the session runs with.
func (s *Session) Config() config.FlappyConfig {
	return s.cfg
}

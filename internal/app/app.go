package app

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/arcadepong/internal/audio"
	"github.com/diegok/arcadepong/internal/config"
	"github.com/diegok/arcadepong/internal/game"
	"github.com/diegok/arcadepong/internal/input"
	"github.com/diegok/arcadepong/internal/session"
	"github.com/diegok/arcadepong/internal/settings"
	"github.com/diegok/arcadepong/internal/snapshot"
	"github.com/diegok/arcadepong/internal/ui"
)

// maxFrameDelta caps the clock step after a stall (suspend, slow terminal)
const maxFrameDelta = 250 * time.Millisecond

type tone struct {
	freq     float64
	duration time.Duration
	wave     audio.Waveform
}

var tones = map[session.EventKind]tone{
	session.EventPaddleHit:  {880, 50 * time.Millisecond, audio.Square},
	session.EventWallBounce: {440, 30 * time.Millisecond, audio.Square},
	session.EventScored:     {220, 150 * time.Millisecond, audio.Triangle},
	session.EventGameOver:   {330, 300 * time.Millisecond, audio.Sawtooth},
	session.EventHighScore:  {1320, 200 * time.Millisecond, audio.Sine},
}

// App is the main application controller that manages the game lifecycle.
type App struct {
	cfg       *config.Config
	screen    *ui.Screen
	renderer  *ui.Renderer
	collector *input.Collector
	session   *session.Session
	store     settings.Store
	sink      audio.Sink
	recorder  *snapshot.Recorder
	logger    *log.Logger

	closers  []io.Closer
	quit     chan struct{}
	quitOnce sync.Once
	sigChan  chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:    cfg,
		logger: log.New(io.Discard, "", 0),
		quit:   make(chan struct{}),
	}
}

// Run is the main entry point for the application.
// It initializes the screen, sets up signal handling, and starts the game.
func (a *App) Run() error {
	if err := a.openLog(); err != nil {
		return err
	}

	screen, err := ui.InitScreen()
	if err != nil {
		a.cleanup()
		return fmt.Errorf("failed to initialize screen: %w", err)
	}

	if err := a.setup(screen, a.openSink()); err != nil {
		a.cleanup()
		return err
	}

	// Setup signal handling
	sigChan := make(chan os.Signal, 1)
	a.sigChan = sigChan
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			a.logger.Printf("received %v, shutting down", sig)
			a.stop()
		case <-a.quit:
		}
	}()

	runErr := a.mainLoop()

	a.cleanup()

	return runErr
}

// setup wires the session and its sinks to an initialized screen
func (a *App) setup(screen *ui.Screen, sink audio.Sink) error {
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)
	a.sink = sink
	a.closers = append(a.closers, closerFunc(sink.Close))

	if a.cfg.SettingsPath == "" {
		a.store = &settings.MemoryStore{}
	} else {
		a.store = settings.NewFileStore(a.cfg.SettingsPath)
	}

	st, err := settings.LoadOrDefault(a.store)
	if err != nil {
		// Corrupt settings are not fatal; they are overwritten on next save
		a.logger.Printf("loading settings: %v (using defaults)", err)
	}

	if a.cfg.RecordPath != "" {
		f, err := os.Create(a.cfg.RecordPath)
		if err != nil {
			return fmt.Errorf("failed to create record file: %w", err)
		}
		a.closers = append(a.closers, f)
		a.recorder = snapshot.NewRecorder(f)
	}

	seed := a.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a.logger.Printf("starting: mode=%s difficulty=%s points=%d time=%v fps=%d seed=%d",
		a.cfg.Ruleset, a.cfg.Difficulty, a.cfg.PointsToWin, a.cfg.TimeLimit, a.cfg.FPS, seed)

	a.session = session.New(game.DefaultPlayfield(), st, session.Options{
		MaxScore:   a.cfg.PointsToWin,
		TimeLimit:  a.cfg.TimeLimit,
		Ruleset:    a.cfg.Ruleset,
		Difficulty: a.cfg.Difficulty,
	}, rand.New(rand.NewSource(seed)))

	a.collector = input.NewCollector(input.DefaultBindings(), input.DefaultHoldTicks)
	a.collector.MapY = func(row int) float64 {
		return a.renderer.Layout().FieldY(row)
	}

	a.renderer.Render(a.session.Snapshot())
	return nil
}

func (a *App) openLog() error {
	if a.cfg.LogPath == "" {
		return nil
	}
	f, err := os.OpenFile(a.cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	a.closers = append(a.closers, f)
	a.logger = log.New(f, "arcadepong: ", log.LstdFlags|log.Lmicroseconds)
	return nil
}

// openSink returns the speaker, or a silent sink when muted or unavailable
func (a *App) openSink() audio.Sink {
	if a.cfg.Mute {
		return audio.Nop{}
	}
	sp, err := audio.NewSpeaker()
	if err != nil {
		// game works without sound
		a.logger.Printf("audio unavailable: %v", err)
		return audio.Nop{}
	}
	return sp
}

// mainLoop is the main event loop that handles all input and state updates.
func (a *App) mainLoop() error {
	// Create event channel for screen events
	events := make(chan tcell.Event)
	screen := a.screen
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(a.cfg.TickInterval())
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			a.handleEvent(ev)

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if a.frame(dt) {
				a.stop()
				return nil
			}
		}
	}
}

func (a *App) stop() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// handleEvent feeds a terminal event to the collector or handles a resize
func (a *App) handleEvent(ev tcell.Event) {
	switch ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		a.renderer.Render(a.session.Snapshot())
	default:
		a.collector.Handle(ev)
	}
}

// frame runs one tick and dispatches its events. Returns true when the
// session asked to quit.
func (a *App) frame(dt time.Duration) bool {
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}
	if dt < 0 {
		dt = 0
	}

	f := a.session.Tick(dt, a.collector.Snapshot())

	for _, ev := range f.Events {
		if t, ok := tones[ev.Kind]; ok {
			a.sink.PlayTone(t.freq, t.duration, t.wave)
		}

		switch ev.Kind {
		case session.EventModeChanged:
			a.logger.Printf("mode -> %s", ev.Mode)
		case session.EventGameOver:
			score := a.session.Score()
			a.logger.Printf("game over: %d-%d winner=%s", score.Player, score.Opponent, ev.Side)
		case session.EventHighScore:
			a.logger.Printf("new high score %d for %s", ev.Score, a.session.HighScoreKey())
		}
	}

	if f.Has(session.EventHighScore) || f.Has(session.EventSettingsChanged) {
		if err := a.store.Save(a.session.Settings()); err != nil {
			a.logger.Printf("saving settings: %v", err)
		}
	}

	if a.recorder != nil {
		if err := a.recorder.Record(&f.Snapshot); err != nil {
			a.logger.Printf("recording disabled: %v", err)
			a.recorder = nil
		}
	}

	a.renderer.Render(f.Snapshot)
	return f.Has(session.EventQuit)
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	// Finalize screen
	if a.screen != nil {
		a.screen.Fini()
		a.screen = nil
	}

	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.logger.Printf("close: %v", err)
		}
	}
	a.closers = nil

	// Stop signal handling
	if a.sigChan != nil {
		signal.Stop(a.sigChan)
		a.sigChan = nil
	}
}

type closerFunc func()

func (f closerFunc) Close() error {
	f()
	return nil
}

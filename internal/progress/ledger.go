package progress

import (
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/math-champions/internal/badges"
	"github.com/vovakirdan/math-champions/internal/config"
	"github.com/vovakirdan/math-champions/internal/storage"
)

// Backend is the key/value store the ledger persists to.
// Get returns storage.ErrNotFound for a key that was never written.
type Backend interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
}

// Outcome is one answered unit. A non-zero Level marks that this unit also
// finished that level with Stars.
type Outcome struct {
	Correct    bool
	XP         int
	Level      int
	Stars      int
	Perfect    bool
	AnswerTime time.Duration
}

// UpdateResult is what Update hands back to the game.
type UpdateResult struct {
	Progress      PlayerProgress
	Unlocked      []badges.ID // every badge unlocked by this update
	Celebrated    badges.ID   // the one to announce, "" for none
	StarsGained   int
	LevelUnlocked int // the newly reachable level, 0 if none
	Saved         bool
}

// Ledger reads and updates the progress record.
// Reads never fail: a missing record yields defaults, a corrupt one yields
// defaults with a warning, and an unreadable store yields the last record seen.
// Writes that fail are logged; the ledger then keeps working from memory
// until a later write succeeds.
type Ledger struct {
	mu      sync.Mutex
	backend Backend
	math    config.MathConfig
	catalog *badges.Catalog
	logger  *log.Logger
	now     func() time.Time
	last    *PlayerProgress
	// unsaved is set while the newest record exists only in memory.
	unsaved bool
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithLogger sets the logger used for fallback warnings.
func WithLogger(l *log.Logger) Option {
	return func(lg *Ledger) { lg.logger = l }
}

// WithClock sets the clock used for the day streak.
func WithClock(now func() time.Time) Option {
	return func(lg *Ledger) { lg.now = now }
}

// NewLedger creates a ledger over backend.
func NewLedger(backend Backend, cfg config.Config, opts ...Option) *Ledger {
	l := &Ledger{
		backend: backend,
		math:    cfg.Math,
		catalog: badges.NewCatalog(cfg.Badges),
		logger:  log.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Catalog returns the badge catalog the ledger evaluates.
func (l *Ledger) Catalog() *badges.Catalog {
	return l.catalog
}

// Math returns the math configuration the ledger scores with.
func (l *Ledger) Math() config.MathConfig {
	return l.math
}

// Load returns the current record.
func (l *Ledger) Load() PlayerProgress {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load().Clone()
}

func (l *Ledger) load() PlayerProgress {
	if l.unsaved && l.last != nil {
		return l.last.Clone()
	}
	data, err := l.backend.Get(RecordKey)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		p := Defaults()
		l.last = &p
		return p
	case err != nil:
		l.logger.Warn("progress unreadable, using last known record", "error", err)
		if l.last != nil {
			return l.last.Clone()
		}
		return Defaults()
	}

	p, err := Decode(data)
	if err != nil {
		l.logger.Warn("progress record corrupt, starting fresh", "error", err)
		p = Defaults()
	}
	l.last = &p
	return p
}

// Update applies one outcome to the latest stored record, runs the badge
// rules, persists, and returns the new record.
func (l *Ledger) Update(o Outcome) UpdateResult {
	l.mu.Lock()
	defer l.mu.Unlock()

	p := l.load().Clone()
	res := UpdateResult{}

	p.TotalAttempts++
	if o.Correct {
		p.TotalProblemsSolved++
		p.CurrentStreak++
		p.XPPoints += max(o.XP, 0)
		if ms := int(o.AnswerTime / time.Millisecond); ms > 0 {
			if p.FastestAnswerMs == 0 || ms < p.FastestAnswerMs {
				p.FastestAnswerMs = ms
			}
		}
	} else {
		p.CurrentStreak = 0
	}
	p.BestStreak = max(p.BestStreak, p.CurrentStreak)

	if o.Level > 0 {
		res.StarsGained, res.LevelUnlocked = l.finishLevel(&p, o)
	}

	p.AccuracyPercentage = accuracy(p.TotalProblemsSolved, p.TotalAttempts)
	l.touchDay(&p)

	ev := l.catalog.Evaluate(p.Facts(), p.Badges)
	p.Badges = ev.Badges
	if p.Badges == nil {
		p.Badges = []badges.ID{}
	}
	res.Unlocked = ev.Newly
	res.Celebrated = ev.Celebrated

	p.Version = CurrentVersion
	res.Progress = p
	res.Saved = l.persist(p)
	l.unsaved = !res.Saved
	l.last = &p
	return res
}

// finishLevel applies a level result and returns the star delta and the
// newly reachable level.
func (l *Ledger) finishLevel(p *PlayerProgress, o Outcome) (gained, unlocked int) {
	stars := min(max(o.Stars, 0), 3)
	if prev := p.LevelStars[o.Level]; stars > prev {
		gained = stars - prev
		p.TotalStars += gained
		p.LevelStars[o.Level] = stars
	} else if _, ok := p.LevelStars[o.Level]; !ok {
		p.LevelStars[o.Level] = 0
	}
	p.markCompleted(o.Level)
	if o.Perfect {
		p.PerfectClears++
	}

	if l.math.Unlocks(stars) {
		next := o.Level + 1
		if l.math.MaxLevel > 0 {
			next = min(next, l.math.MaxLevel)
		}
		if next > p.CurrentLevel {
			p.CurrentLevel = next
			unlocked = next
		}
	}
	return gained, unlocked
}

// touchDay advances the consecutive-days counter.
func (l *Ledger) touchDay(p *PlayerProgress) {
	today := l.now()
	key := today.Format(time.DateOnly)
	switch p.LastPlayedDate {
	case key:
		p.DaysPlayedStreak = max(p.DaysPlayedStreak, 1)
	case today.AddDate(0, 0, -1).Format(time.DateOnly):
		p.DaysPlayedStreak++
	default:
		p.DaysPlayedStreak = 1
	}
	p.LastPlayedDate = key
}

func (l *Ledger) persist(p PlayerProgress) bool {
	data, err := Encode(p)
	if err == nil {
		err = l.backend.Put(RecordKey, data)
	}
	if err != nil {
		l.logger.Warn("progress not saved", "error", err)
		return false
	}
	return true
}

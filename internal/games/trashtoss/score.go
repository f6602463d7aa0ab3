package trashtoss

import (
	"io"
	"strconv"
	"sync"

	"github.com/charmbracelet/log"
)

// BestScoreKey is the settings key the best score is stored under.
const BestScoreKey = "trashThrowHighScore"

// KV is the string key/value store the best score persists to.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// MemoryKV is an in-process KV used when no database is configured.
type MemoryKV struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

// Get returns the value for key.
func (m *MemoryKV) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// ScoreKeeper tracks the current run's score and the persisted best score.
// Storage problems never interrupt play: a missing or unreadable best score
// counts as 0 and failed writes are only logged.
type ScoreKeeper struct {
	kv      KV
	logger  *log.Logger
	current int
	best    int
}

// NewScoreKeeper loads the best score from kv. A nil kv keeps scores in
// memory only.
func NewScoreKeeper(kv KV, logger *log.Logger) *ScoreKeeper {
	if kv == nil {
		kv = NewMemoryKV()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &ScoreKeeper{kv: kv, logger: logger}
	s.best = s.load()
	return s
}

func (s *ScoreKeeper) load() int {
	raw, ok, err := s.kv.Get(BestScoreKey)
	if err != nil {
		s.logger.Warn("best score unavailable", "err", err)
		return 0
	}
	if !ok {
		return 0
	}

	best, err := strconv.Atoi(raw)
	if err != nil || best < 0 {
		s.logger.Warn("ignoring corrupt best score", "value", raw)
		return 0
	}
	return best
}

// Add credits points to the current score and raises the best score when
// the current score passes it.
func (s *ScoreKeeper) Add(points int) {
	s.current += points
	if s.current <= s.best {
		return
	}

	s.best = s.current
	if err := s.kv.Set(BestScoreKey, strconv.Itoa(s.best)); err != nil {
		s.logger.Warn("saving best score failed", "err", err)
	}
}

// Current returns the score of the current run.
func (s *ScoreKeeper) Current() int { return s.current }

// Best returns the best score seen.
func (s *ScoreKeeper) Best() int { return s.best }

// Reset zeroes the current score. The best score is kept.
func (s *ScoreKeeper) Reset() {
	s.current = 0
}

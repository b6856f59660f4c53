package consumption

import (
	"sync"

	"github.com/username/consumption-calendar/pkg/random"
	"go.uber.org/zap"
)

// Store lazily generates and caches one DailyConsumption per Key.
// Once generated, a key always returns the same readings.
type Store struct {
	mu     sync.Mutex
	src    random.Source
	days   map[Key]DailyConsumption
	logger *zap.Logger
}

// NewStore creates an empty store drawing readings from src
func NewStore(src random.Source, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		src:    src,
		days:   make(map[Key]DailyConsumption),
		logger: logger,
	}
}

// GetOrGenerate returns the readings for month/day, generating them on first access.
// Month and day validity is the caller's responsibility.
func (s *Store) GetOrGenerate(month string, day int) DailyConsumption {
	key := Key{Month: month, Day: day}

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq, ok := s.days[key]; ok {
		return seq
	}

	seq := Generate(s.src)
	s.days[key] = seq

	s.logger.Debug("Generated daily consumption",
		zap.Stringer("key", key),
		zap.Int("total_kwh", seq.Total()))

	return seq
}

// Len returns the number of generated days
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.days)
}

// Generate draws a new day of readings, each hour within its band's range
func Generate(src random.Source) DailyConsumption {
	var seq DailyConsumption
	for _, b := range Bands {
		random.FillInclusive(src, seq[b.StartHour:b.EndHour+1], b.MinKWh, b.MaxKWh)
	}
	return seq
}

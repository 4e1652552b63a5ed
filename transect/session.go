package transect

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Site describes where and when a transect was read. Every field is
// optional; coordinates are stored as given.
type Site struct {
	Name      string    `json:"name,omitempty" yaml:"name,omitempty"`
	Observer  string    `json:"observer,omitempty" yaml:"observer,omitempty"`
	Date      time.Time `json:"date,omitempty" yaml:"date,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty" yaml:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty" yaml:"longitude,omitempty"`
}

func (s Site) HasCoordinates() bool {
	return s.Latitude != nil && s.Longitude != nil
}

// Session is the state of one transect reading. It is owned by whoever
// handles the user (the terminal UI, a CLI invocation) and is never shared.
type Session struct {
	ID      string
	Length  float64
	Site    Site
	Catalog Catalog
	store   *Store

	log *zap.Logger
}

// NewSession starts an empty reading over a transect of the given length.
// A nil logger disables logging.
func NewSession(length float64, catalog Catalog, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	id := uuid.NewString()
	return &Session{
		ID:      id,
		Length:  length,
		Catalog: catalog,
		store:   NewStore(),
		log:     log.With(zap.String("session", id)),
	}
}

// Record validates and stores an interval. On rejection the store is left
// unchanged and the *RejectionError is returned.
func (s *Session) Record(species string, start, end float64) (Interval, error) {
	iv, err := Validate(species, start, end, s.Length, s.Catalog)
	if err != nil {
		s.log.Info("interval rejected",
			zap.String("species", species),
			zap.Float64("start", start),
			zap.Float64("end", end),
			zap.Error(err))
		return Interval{}, err
	}
	s.store.Append(iv)
	s.log.Debug("interval recorded",
		zap.String("species", iv.Species),
		zap.Float64("start", iv.Start),
		zap.Float64("end", iv.End),
		zap.Int("count", s.store.Len()))
	return iv, nil
}

// Undo drops the last recorded interval. It is a no-op on an empty session.
func (s *Session) Undo() (Interval, bool) {
	iv, ok := s.store.RemoveLast()
	if ok {
		s.log.Debug("interval removed", zap.Stringer("interval", iv))
	}
	return iv, ok
}

func (s *Session) Clear() {
	s.log.Debug("session cleared", zap.Int("dropped", s.store.Len()))
	s.store.Clear()
}

func (s *Session) Intervals() []Interval {
	return s.store.All()
}

func (s *Session) Len() int {
	return s.store.Len()
}

// SuggestStart is the entry-form default: where the last interval ended,
// or the transect origin.
func (s *Session) SuggestStart() float64 {
	if last, ok := s.store.Last(); ok {
		return last.End
	}
	return 0
}

// SuggestEnd proposes an end span metres past start, clamped to the
// transect.
func (s *Session) SuggestEnd(start, span float64) float64 {
	return min(start+span, s.Length)
}

func (s *Session) Normalized() []Interval {
	return Normalize(s.store.All(), s.Length)
}

func (s *Session) Report() Report {
	return BuildReport(s.store.All(), s.Length)
}

// Index builds a position index over the current intervals.
func (s *Session) Index() *Index {
	return NewIndex(s.store.All())
}

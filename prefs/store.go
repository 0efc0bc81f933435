package prefs

import (
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/puzpuzpuz/xsync"
)

const (
	// DefaultInterval is the refresh interval in minutes when none is stored.
	DefaultInterval = 30

	// TextSizeUnset marks a text size the renderer has not measured yet.
	TextSizeUnset float32 = math.MaxFloat32
)

// ErrorHandler receives failures the store swallows: unreadable or
// undecodable records on reads, and failed writes.
type ErrorHandler func(widgetID int, op string, err error)

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used by SetLastUpdate.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithErrorHandler installs a hook for swallowed storage failures.
func WithErrorHandler(h ErrorHandler) Option {
	return func(s *Store) {
		s.onError = h
	}
}

// Store maps widget ids to their settings records on top of a Backend.
// Writes to one widget are serialized; widgets never block each other.
type Store struct {
	backend Backend
	locks   *xsync.MapOf[string, *sync.Mutex]
	now     func() time.Time
	onError ErrorHandler
}

// NewStore creates a store over backend.
func NewStore(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		locks:   xsync.NewMapOf[*sync.Mutex](),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Widget returns a handle bound to one widget id.
func (s *Store) Widget(id int) *Widget {
	return &Widget{store: s, id: id}
}

func recordKey(id int) string {
	return strconv.Itoa(id)
}

func (s *Store) report(id int, op string, err error) {
	if s.onError != nil {
		s.onError(id, op, err)
	}
}

func (s *Store) lock(id int) func() {
	mu, _ := s.locks.LoadOrStore(recordKey(id), &sync.Mutex{})
	mu.Lock()
	return mu.Unlock
}

// load returns the widget's record, or an empty one when it is missing or
// cannot be read.
func (s *Store) load(id int) record {
	raw, ok, err := s.backend.Load(recordKey(id))
	if err != nil {
		s.report(id, "load", err)
		return record{}
	}
	if !ok {
		return record{}
	}
	rec, err := decodeRecord(raw)
	if err != nil {
		s.report(id, "decode", err)
		return record{}
	}
	return rec
}

func (s *Store) write(id int, rec record) error {
	raw, err := encodeRecord(rec)
	if err != nil {
		s.report(id, "encode", err)
		return fmt.Errorf("failed to encode widget %d: %w", id, err)
	}
	if err := s.backend.Save(recordKey(id), raw); err != nil {
		s.report(id, "save", err)
		return fmt.Errorf("failed to save widget %d: %w", id, err)
	}
	return nil
}

// update runs a read-modify-write of one record under the widget lock.
// A backend read failure aborts the write so stored fields are not lost;
// an undecodable blob is replaced.
func (s *Store) update(id int, apply func(record)) error {
	unlock := s.lock(id)
	defer unlock()

	rec := record{}
	raw, ok, err := s.backend.Load(recordKey(id))
	if err != nil {
		s.report(id, "load", err)
		return fmt.Errorf("failed to load widget %d: %w", id, err)
	}
	if ok {
		if decoded, err := decodeRecord(raw); err != nil {
			s.report(id, "decode", err)
		} else {
			rec = decoded
		}
	}

	apply(rec)
	return s.write(id, rec)
}

// Value returns a raw field of the widget's record. Missing records,
// missing keys, null values and malformed storage all report false.
func (s *Store) Value(id int, key Key) (string, bool) {
	return s.load(id).get(key)
}

// SetValue writes one field and keeps the rest of the record.
func (s *Store) SetValue(id int, key Key, value string) error {
	return s.update(id, func(r record) { r.set(key, value) })
}

// ClearValue stores null for one field and keeps the rest of the record.
func (s *Store) ClearValue(id int, key Key) error {
	return s.update(id, func(r record) { r.clear(key) })
}

// Setup holds the fields the settings screen saves in one go.
type Setup struct {
	Coin         string
	Currency     string
	Refresh      int
	Exchange     string
	ShowLabel    bool
	Theme        string
	ShowIcon     bool
	ShowDecimals bool
	Unit         string
}

// SetAll replaces the widget's record with exactly the setup fields.
// Everything else (last value, text sizes, custom names, the temporary
// flag) is dropped.
func (s *Store) SetAll(id int, setup Setup) error {
	rec := record{}
	rec.set(KeyCoin, setup.Coin)
	rec.set(KeyCurrency, setup.Currency)
	rec.set(KeyRefresh, strconv.Itoa(setup.Refresh))
	rec.set(KeyExchange, setup.Exchange)
	rec.set(KeyShowLabel, strconv.FormatBool(setup.ShowLabel))
	rec.set(KeyTheme, setup.Theme)
	rec.set(KeyHideIcon, strconv.FormatBool(!setup.ShowIcon))
	rec.set(KeyShowDecimals, strconv.FormatBool(setup.ShowDecimals))
	if setup.Unit == "" {
		rec.clear(KeyUnits)
	} else {
		rec.set(KeyUnits, setup.Unit)
	}

	unlock := s.lock(id)
	defer unlock()
	return s.write(id, rec)
}

// Delete removes the widget's record.
func (s *Store) Delete(id int) error {
	unlock := s.lock(id)
	defer unlock()
	return s.remove(id)
}

func (s *Store) remove(id int) error {
	if err := s.backend.Remove(recordKey(id)); err != nil {
		s.report(id, "remove", err)
		return fmt.Errorf("failed to delete widget %d: %w", id, err)
	}
	return nil
}

// DeleteIfTemporary removes the record when its temporary flag is set.
// It reports whether a record was removed.
func (s *Store) DeleteIfTemporary(id int) (bool, error) {
	unlock := s.lock(id)
	defer unlock()

	if _, ok := s.load(id).get(KeyTemporary); !ok {
		return false, nil
	}
	if err := s.remove(id); err != nil {
		return false, err
	}
	return true, nil
}

package observer

import (
	"context"
	"sync"
	"time"

	"github.com/stybik/LLD/pkg/logging"
)

// Record is a reading as persisted by an ArchiveDisplay.
type Record struct {
	ID         int64     `json:"id"`
	Reading    Reading   `json:"reading"`
	RecordedAt time.Time `json:"recorded_at"`
}

type ReadingStore interface {
	Save(ctx context.Context, r Reading, at time.Time) error
	Recent(ctx context.Context, limit int) ([]Record, error)
	Close() error
}

// ArchiveDisplay is an observer that keeps a history of every reading it is
// pushed instead of rendering it.
type ArchiveDisplay struct {
	store   ReadingStore
	timeout time.Duration
	logger  logging.Logger
	now     func() time.Time
}

func NewArchiveDisplay(store ReadingStore, timeout time.Duration, logger logging.Logger) *ArchiveDisplay {
	if logger == nil {
		logger = logging.NewNoopLogger()
	}
	return &ArchiveDisplay{
		store:   store,
		timeout: timeout,
		logger:  logger,
		now:     time.Now,
	}
}

func (a *ArchiveDisplay) Name() string {
	return "Archive"
}

func (a *ArchiveDisplay) Update(temperature, humidity, pressure float64) error {
	ctx := context.Background()
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	r := Reading{Temperature: temperature, Humidity: humidity, Pressure: pressure}
	if err := a.store.Save(ctx, r, a.now()); err != nil {
		return &Error{Op: "Update", Device: a.Name(), Err: err}
	}
	a.logger.Info("archived reading temperature=%s humidity=%s pressure=%s",
		formatValue(temperature), formatValue(humidity), formatValue(pressure))
	return nil
}

// MemoryReadingStore keeps records in process memory.
type MemoryReadingStore struct {
	mu      sync.RWMutex
	records []Record
}

func NewMemoryReadingStore() *MemoryReadingStore {
	return &MemoryReadingStore{}
}

func (m *MemoryReadingStore) Save(ctx context.Context, r Reading, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, Record{
		ID:         int64(len(m.records) + 1),
		Reading:    r,
		RecordedAt: at,
	})
	return nil
}

// Recent returns up to limit records, newest first. A limit of zero or less
// returns everything.
func (m *MemoryReadingStore) Recent(ctx context.Context, limit int) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := len(m.records)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]Record, 0, n)
	for i := len(m.records) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, m.records[i])
	}
	return out, nil
}

func (m *MemoryReadingStore) Close() error {
	return nil
}

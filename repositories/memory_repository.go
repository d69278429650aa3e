package repositories

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"fms-app/controllers/idgen"
	"fms-app/fms/booking"
	"fms-app/models"
	"fms-app/types"
)

// MemoryBookingRepository keeps bookings in process. It backs DB_DRIVER=memory and tests.
type MemoryBookingRepository struct {
	mu       sync.RWMutex
	bookings map[types.SnowflakeID]booking.Booking
	deleted  map[types.SnowflakeID]booking.Booking
	history  []models.TransactionHistory
	now      func() time.Time
}

func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{
		bookings: map[types.SnowflakeID]booking.Booking{},
		deleted:  map[types.SnowflakeID]booking.Booking{},
		now:      time.Now,
	}
}

func (r *MemoryBookingRepository) Create(ctx context.Context, b booking.Booking, actor int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
	r.bookings[b.ID] = b.Clone()
	return nil
}

// CreateMany stores bs all at once, or none of them when an id is already taken.
func (r *MemoryBookingRepository) CreateMany(ctx context.Context, bs []booking.Booking, actor int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range bs {
		if _, taken := r.bookings[b.ID]; taken {
			return fmt.Errorf("booking %s already exists", b.ID)
		}
	}
	now := r.now()
	for _, b := range bs {
		if b.CreatedAt.IsZero() {
			b.CreatedAt = now
		}
		b.UpdatedAt = now
		r.bookings[b.ID] = b.Clone()
	}
	return nil
}

func (r *MemoryBookingRepository) Update(ctx context.Context, b *booking.Booking, actor int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.bookings[b.ID]
	if !ok || cur.Version != b.Version {
		return ErrVersionConflict
	}
	next := b.Clone()
	next.Version = b.Version + 1
	next.CreatedAt = cur.CreatedAt
	next.UpdatedAt = r.now()
	if cur.ShippingRequest != nil {
		next.ShippingRequest = cur.ShippingRequest
	}
	r.bookings[b.ID] = next

	b.Version = next.Version
	b.UpdatedAt = next.UpdatedAt
	return nil
}

func (r *MemoryBookingRepository) Get(ctx context.Context, id types.SnowflakeID) (booking.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return booking.Booking{}, ErrBookingNotFound
	}
	return b.Clone(), nil
}

func (r *MemoryBookingRepository) List(ctx context.Context, q BookingQuery) ([]booking.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]booking.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		if q.Mode != "" && b.Mode != q.Mode {
			continue
		}
		if q.Status != "" && b.Status != q.Status {
			continue
		}
		out = append(out, b.Clone())
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryBookingRepository) Delete(ctx context.Context, ids []types.SnowflakeID, actor int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range ids {
		if b, ok := r.bookings[id]; ok {
			r.deleted[id] = b
			delete(r.bookings, id)
		}
	}
	return nil
}

func (r *MemoryBookingRepository) AppendHistory(ctx context.Context, entry models.TransactionHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == 0 {
		entry.ID = idgen.Generate()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.now()
	}
	r.history = append(r.history, entry)
	return nil
}

func (r *MemoryBookingRepository) History(ctx context.Context, id types.SnowflakeID) ([]models.TransactionHistory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.TransactionHistory
	for _, h := range r.history {
		if h.RefID == id {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *MemoryBookingRepository) NextNumber(ctx context.Context, prefix string, year int) (string, error) {
	if _, err := numberColumn(prefix); err != nil {
		return "", err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	head := numberHead(prefix, year)
	last := ""
	scan := func(b booking.Booking) {
		for _, no := range []string{b.BookingNo, b.BCNo, b.SRNo} {
			if strings.HasPrefix(no, head) && no > last {
				last = no
			}
		}
	}
	for _, b := range r.bookings {
		scan(b)
	}
	for _, b := range r.deleted {
		scan(b)
	}
	return FormatNumber(prefix, year, nextSequence(last, prefix, year)), nil
}

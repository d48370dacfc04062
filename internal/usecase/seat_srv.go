package usecase

import (
	"container/heap"
	"context"
	"errors"
	"fmt"
	"sync"

	"train-booking/internal/data/entity"

	"go.uber.org/zap"
)

// ErrSeatUnavailable is a legitimate business outcome (the section is full
// or the requested seat is taken), not a transient fault.
var ErrSeatUnavailable = errors.New("seat unavailable")

type SeatAllocationService interface {
	Allocate(ctx context.Context, section entity.Section) (entity.Seat, error)
	Release(ctx context.Context, seat entity.Seat)
	Reallocate(ctx context.Context, current, requested entity.Seat) (entity.Seat, error)
	AvailableSeats(ctx context.Context, section entity.Section) []entity.Seat
}

// seatHeap orders available seats by the numeric suffix of the seat
// number, so the pool always hands out the lowest-numbered free seat.
type seatHeap []entity.Seat

func (h seatHeap) Len() int           { return len(h) }
func (h seatHeap) Less(i, j int) bool { return h[i].Index() < h[j].Index() }
func (h seatHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *seatHeap) Push(x any)        { *h = append(*h, x.(entity.Seat)) }
func (h *seatHeap) Pop() any {
	old := *h
	n := len(old)
	seat := old[n-1]
	*h = old[:n-1]
	return seat
}

// sectionPool owns the available/held partition for one section. Every
// seat is in exactly one of the two at all times. Methods assume mu is
// held by the caller.
type sectionPool struct {
	mu        sync.Mutex
	available seatHeap
	held      map[string]entity.Seat
}

func (p *sectionPool) takeLowest() (entity.Seat, bool) {
	if p.available.Len() == 0 {
		return entity.Seat{}, false
	}
	seat := heap.Pop(&p.available).(entity.Seat)
	p.held[seat.Number] = seat
	return seat, true
}

// take removes a specific seat from the available set, if present.
func (p *sectionPool) take(seat entity.Seat) bool {
	for i, s := range p.available {
		if s == seat {
			heap.Remove(&p.available, i)
			p.held[seat.Number] = seat
			return true
		}
	}
	return false
}

func (p *sectionPool) put(seat entity.Seat) {
	// Only seats this pool actually holds move back; anything else would
	// break the conservation invariant.
	if _, ok := p.held[seat.Number]; !ok {
		return
	}
	delete(p.held, seat.Number)
	heap.Push(&p.available, seat)
}

func (p *sectionPool) snapshot() []entity.Seat {
	seats := make([]entity.Seat, len(p.available))
	copy(seats, p.available)
	return seats
}

type seatAllocationService struct {
	pools map[entity.Section]*sectionPool
	log   *zap.Logger
}

// NewSeatAllocationService creates seatsPerSection seats for every section
// at startup. Seats are never destroyed afterwards; they only move between
// the available and held sets.
func NewSeatAllocationService(seatsPerSection int, log *zap.Logger) SeatAllocationService {
	pools := make(map[entity.Section]*sectionPool)
	for _, section := range entity.Sections() {
		pool := &sectionPool{
			available: make(seatHeap, 0, seatsPerSection),
			held:      make(map[string]entity.Seat, seatsPerSection),
		}
		for i := 1; i <= seatsPerSection; i++ {
			pool.available = append(pool.available, entity.NewSeat(section, i))
		}
		heap.Init(&pool.available)
		pools[section] = pool
	}

	return &seatAllocationService{
		pools: pools,
		log:   log.With(zap.String("service", "seat")),
	}
}

func (s *seatAllocationService) Allocate(ctx context.Context, section entity.Section) (entity.Seat, error) {
	pool, ok := s.pools[section]
	if !ok {
		return entity.Seat{}, fmt.Errorf("no seats in section %s: %w", section, ErrSeatUnavailable)
	}

	pool.mu.Lock()
	defer pool.mu.Unlock()

	seat, ok := pool.takeLowest()
	if !ok {
		s.log.Warn("Section full", zap.String("section", string(section)))
		return entity.Seat{}, fmt.Errorf("no seats available in section %s: %w", section, ErrSeatUnavailable)
	}

	s.log.Info("Seat allocated",
		zap.String("seat", seat.Number),
		zap.String("section", string(section)),
	)
	return seat, nil
}

func (s *seatAllocationService) Release(ctx context.Context, seat entity.Seat) {
	pool, ok := s.pools[seat.Section]
	if !ok {
		return
	}

	pool.mu.Lock()
	defer pool.mu.Unlock()

	pool.put(seat)
	s.log.Info("Seat released", zap.String("seat", seat.Number))
}

// Reallocate atomically swaps the held current seat for the requested one.
// On failure nothing moves: current stays held, requested stays wherever
// it was.
func (s *seatAllocationService) Reallocate(ctx context.Context, current, requested entity.Seat) (entity.Seat, error) {
	if requested == current {
		return requested, nil
	}

	reqPool, ok := s.pools[requested.Section]
	if !ok {
		return entity.Seat{}, fmt.Errorf("seat %s: %w", requested.Number, ErrSeatUnavailable)
	}
	curPool, ok := s.pools[current.Section]
	if !ok {
		return entity.Seat{}, fmt.Errorf("seat %s not in any section: %w", current.Number, ErrSeatUnavailable)
	}

	if curPool == reqPool {
		curPool.mu.Lock()
		defer curPool.mu.Unlock()
	} else {
		// Cross-section swap: lock both pools in section order so two
		// concurrent swaps in opposite directions cannot deadlock.
		first, second := curPool, reqPool
		if requested.Section < current.Section {
			first, second = reqPool, curPool
		}
		first.mu.Lock()
		defer first.mu.Unlock()
		second.mu.Lock()
		defer second.mu.Unlock()
	}

	if !reqPool.take(requested) {
		return entity.Seat{}, fmt.Errorf("seat %s is not available: %w", requested.Number, ErrSeatUnavailable)
	}
	curPool.put(current)

	s.log.Info("Seat reallocated",
		zap.String("from", current.Number),
		zap.String("to", requested.Number),
	)
	return requested, nil
}

// AvailableSeats returns a copy of the section's open seats. Order is not
// part of the contract.
func (s *seatAllocationService) AvailableSeats(ctx context.Context, section entity.Section) []entity.Seat {
	pool, ok := s.pools[section]
	if !ok {
		return nil
	}

	pool.mu.Lock()
	defer pool.mu.Unlock()

	return pool.snapshot()
}

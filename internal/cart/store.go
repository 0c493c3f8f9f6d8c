package cart

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Store is a concurrency-safe cart table with server-assigned ids. Same
// discipline as the product store: atomic id counter, one mutex for the map.
type Store struct {
	log    *zap.Logger
	nextID atomic.Int64

	mu sync.RWMutex
	m  map[int]Cart
}

func NewStore(log *zap.Logger) *Store {
	s := &Store{
		log: log,
		m:   make(map[int]Cart),
	}

	maxID := 0
	users := make(map[string]bool)
	for _, c := range seedCarts(time.Now().UTC()) {
		s.m[c.ID] = c
		users[c.UserID] = true
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	s.nextID.Store(int64(maxID))

	s.log.Info("cart store initialized",
		zap.Int("count", len(s.m)),
		zap.Int("users", len(users)),
	)
	return s
}

// All returns every cart in ascending id order.
func (s *Store) All() []Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Cart, 0, len(s.m))
	for _, c := range s.m {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) Get(id int) (Cart, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.m[id]
	return c, ok
}

// ByUserID returns the user's carts ordered by date ascending.
func (s *Store) ByUserID(userID string) []Cart {
	s.mu.RLock()
	out := make([]Cart, 0)
	for _, c := range s.m {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// ByDateRange returns carts whose date falls in [start, end], both bounds
// inclusive and either one open when nil, ordered by id.
func (s *Store) ByDateRange(start, end *time.Time) []Cart {
	s.mu.RLock()
	out := make([]Cart, 0)
	for _, c := range s.m {
		if start != nil && c.Date.Before(*start) {
			continue
		}
		if end != nil && c.Date.After(*end) {
			continue
		}
		out = append(out, c)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Add stores the cart under a freshly allocated id, ignoring any id on the
// input, and returns the stored copy.
func (s *Store) Add(c Cart) Cart {
	c.ID = int(s.nextID.Add(1))

	s.mu.Lock()
	s.m[c.ID] = c
	s.mu.Unlock()

	s.log.Info("cart added",
		zap.Int("id", c.ID),
		zap.String("user_id", c.UserID),
		zap.Int("products", len(c.Products)),
	)
	return c
}

// Update replaces the cart at id, forcing the stored id. Missing ids are
// reported as false and never created.
func (s *Store) Update(id int, c Cart) (Cart, bool) {
	c.ID = id

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.m[id]; !ok {
		s.log.Warn("cart update for unknown id", zap.Int("id", id))
		return Cart{}, false
	}

	s.m[id] = c
	s.log.Info("cart updated", zap.Int("id", id), zap.String("user_id", c.UserID))
	return c, true
}

// Delete removes and returns the prior value.
func (s *Store) Delete(id int) (Cart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.m[id]
	if !ok {
		s.log.Warn("cart delete for unknown id", zap.Int("id", id))
		return Cart{}, false
	}

	delete(s.m, id)
	s.log.Info("cart deleted", zap.Int("id", id), zap.String("user_id", c.UserID))
	return c, true
}

package catalog

import (
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Store is a concurrency-safe product table with server-assigned ids.
// The id counter is atomic and independent of the map lock, so two racing
// Adds can never be handed the same id.
type Store struct {
	log    *zap.Logger
	nextID atomic.Int64

	mu sync.RWMutex
	m  map[int]Product
}

func NewStore(log *zap.Logger) *Store {
	s := &Store{
		log: log,
		m:   make(map[int]Product),
	}

	maxID := 0
	for _, p := range seedProducts() {
		s.m[p.ID] = p
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	s.nextID.Store(int64(maxID))

	s.log.Info("product store initialized",
		zap.Int("count", len(s.m)),
		zap.Int("categories", len(s.Categories())),
	)
	return s
}

// All returns every product in ascending id order.
func (s *Store) All() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0, len(s.m))
	for _, p := range s.m {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) Get(id int) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.m[id]
	return p, ok
}

// Categories returns the distinct category strings, lexicographically
// ordered.
func (s *Store) Categories() []string {
	s.mu.RLock()
	seen := make(map[string]bool)
	for _, p := range s.m {
		seen[p.Category] = true
	}
	s.mu.RUnlock()

	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// ByCategory matches case-insensitively and returns results in ascending id
// order.
func (s *Store) ByCategory(category string) []Product {
	s.mu.RLock()
	out := make([]Product, 0)
	for _, p := range s.m {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Add stores the product under a freshly allocated id, ignoring any id on
// the input, and returns the stored copy.
func (s *Store) Add(p Product) Product {
	p.ID = int(s.nextID.Add(1))

	s.mu.Lock()
	s.m[p.ID] = p
	s.mu.Unlock()

	s.log.Info("product added", zap.Int("id", p.ID), zap.String("title", p.Title))
	return p
}

// Update replaces the product at id, forcing the stored id regardless of
// the body. A missing id is a no-op reported as false; Update never creates.
func (s *Store) Update(id int, p Product) (Product, bool) {
	p.ID = id

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.m[id]; !ok {
		s.log.Warn("product update for unknown id", zap.Int("id", id))
		return Product{}, false
	}

	s.m[id] = p
	s.log.Info("product updated", zap.Int("id", id), zap.String("title", p.Title))
	return p, true
}

// Delete removes and returns the prior value.
func (s *Store) Delete(id int) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.m[id]
	if !ok {
		s.log.Warn("product delete for unknown id", zap.Int("id", id))
		return Product{}, false
	}

	delete(s.m, id)
	s.log.Info("product deleted", zap.Int("id", id), zap.String("title", p.Title))
	return p, true
}

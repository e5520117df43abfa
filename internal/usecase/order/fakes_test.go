package order

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/BruksfildServices01/order-desk/internal/audit"
	domain "github.com/BruksfildServices01/order-desk/internal/domain/order"
	"github.com/BruksfildServices01/order-desk/internal/httperr"
	"github.com/BruksfildServices01/order-desk/internal/models"
)

// ======================================================
// In-memory repositories
// ======================================================

type memStore struct {
	mu      sync.Mutex
	clients map[uint]*models.Client
	orders  map[uint]*models.Order
	nextID  uint
	clock   time.Time
}

func newMemStore() *memStore {
	return &memStore{
		clients: map[uint]*models.Client{},
		orders:  map[uint]*models.Order{},
		clock:   time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (s *memStore) id() uint {
	s.nextID++
	return s.nextID
}

func (s *memStore) tick() time.Time {
	s.clock = s.clock.Add(time.Minute)
	return s.clock
}

// --- client.Repository ---

func (s *memStore) CreateClient(_ context.Context, c *models.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.id()
	c.CreatedAt = s.tick()
	cp := *c
	s.clients[c.ID] = &cp
	return nil
}

func (s *memStore) GetClient(_ context.Context, id uint) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.clients[id]
	if !ok {
		return nil, httperr.ErrNotFound("client_not_found")
	}
	cp := *c
	return &cp, nil
}

func (s *memStore) FindClientByName(_ context.Context, name string) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.clients {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memStore) ListClients(context.Context, string) ([]models.Client, error) {
	return nil, nil
}

func (s *memStore) UpdateClient(_ context.Context, c *models.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *c
	s.clients[c.ID] = &cp
	return nil
}

func (s *memStore) DeleteClient(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.clients, id)
	return nil
}

func (s *memStore) CountClientOrders(_ context.Context, id uint) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, o := range s.orders {
		if o.ClientID == id {
			n++
		}
	}
	return n, nil
}

// --- order.Repository ---

func (s *memStore) withClient(o *models.Order) *models.Order {
	cp := *o
	if c, ok := s.clients[o.ClientID]; ok {
		cp.Client = *c
	}
	return &cp
}

func (s *memStore) CreateOrder(_ context.Context, o *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o.ID = s.id()
	o.CreatedAt = s.tick()
	o.UpdatedAt = o.CreatedAt
	s.orders[o.ID] = s.withClient(o)
	*o = *s.orders[o.ID]
	return nil
}

func (s *memStore) GetOrder(_ context.Context, id uint) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, httperr.ErrNotFound("order_not_found")
	}
	return s.withClient(o), nil
}

func (s *memStore) list(keep func(*models.Order) bool) []models.Order {
	var out []models.Order
	for _, o := range s.orders {
		if keep(o) {
			out = append(out, *s.withClient(o))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (s *memStore) ListOrders(_ context.Context, f domain.ListFilter) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list(func(o *models.Order) bool {
		return (f.Status == "" || o.Status == string(f.Status)) &&
			(f.ServiceKind == "" || o.ServiceKind == string(f.ServiceKind)) &&
			(f.Priority == "" || o.Priority == string(f.Priority)) &&
			(f.ClientID == 0 || o.ClientID == f.ClientID)
	}), nil
}

func (s *memStore) ListOrdersByStatus(_ context.Context, statuses []domain.Status) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list(func(o *models.Order) bool {
		for _, st := range statuses {
			if o.Status == string(st) {
				return true
			}
		}
		return false
	}), nil
}

func (s *memStore) ListOrdersForReport(context.Context) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.list(func(*models.Order) bool { return true })
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memStore) UpdateOrder(_ context.Context, o *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[o.ID]; !ok {
		return httperr.ErrNotFound("order_not_found")
	}
	o.UpdatedAt = s.tick()
	s.orders[o.ID] = s.withClient(o)
	*o = *s.orders[o.ID]
	return nil
}

func (s *memStore) DeleteOrder(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[id]; !ok {
		return httperr.ErrNotFound("order_not_found")
	}
	delete(s.orders, id)
	return nil
}

// ======================================================
// Audit
// ======================================================

type recorder struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *recorder) Record(ev audit.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Action
	}
	return out
}

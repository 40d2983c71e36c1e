package usecase_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/destinity-erp/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para pruebas de ida y vuelta
// ──────────────────────────────────────────────────────────────────────────────

type idGen struct {
	mu sync.Mutex
	n  int
}

func (g *idGen) next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%024x", g.n)
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	switch d := u.Details.(type) {
	case *entity.EmployeeData:
		cp := *d
		c.Details = &cp
	case *entity.ProviderData:
		cp := *d
		c.Details = &cp
	}
	return &c
}

type memUserRepo struct {
	ids   idGen
	mu    sync.Mutex
	items map[string]*entity.User
	order []string

	dropInsertID bool // Create devuelve "" sin error
	zeroUpdate   bool
	zeroDelete   bool
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{items: map[string]*entity.User{}}
}

func (r *memUserRepo) NextID() string { return r.ids.next() }

func (r *memUserRepo) Create(_ context.Context, u *entity.User) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.dropInsertID {
		return "", nil
	}
	r.items[u.ID] = cloneUser(u)
	r.order = append(r.order, u.ID)
	return u.ID, nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.items[id]; ok {
		return cloneUser(u), nil
	}
	return nil, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.first(func(u *entity.User) bool { return u.Email == email }), nil
}

func (r *memUserRepo) List(_ context.Context, page, pageSize int, userType string) ([]*entity.User, error) {
	all := r.filter(func(u *entity.User) bool { return userType == "" || u.UserType() == userType })
	start := page * pageSize
	if start >= len(all) {
		return nil, nil
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (r *memUserRepo) FindByStatus(_ context.Context, status, userType string) ([]*entity.User, error) {
	return r.filter(func(u *entity.User) bool { return u.Status == status && u.UserType() == userType }), nil
}

func (r *memUserRepo) FindByDepartment(_ context.Context, department string) ([]*entity.User, error) {
	return r.filter(func(u *entity.User) bool {
		emp, ok := u.Employee()
		return ok && emp.Department == department
	}), nil
}

func (r *memUserRepo) FindByServiceType(_ context.Context, serviceType string) ([]*entity.User, error) {
	return r.filter(func(u *entity.User) bool {
		prov, ok := u.Provider()
		return ok && prov.ServiceType == serviceType
	}), nil
}

func (r *memUserRepo) SearchByText(_ context.Context, text, userType string) ([]*entity.User, error) {
	text = strings.ToLower(text)
	return r.filter(func(u *entity.User) bool {
		if u.UserType() != userType {
			return false
		}
		for _, f := range []string{u.FirstName, u.LastName, u.MiddleName, u.Email} {
			if strings.Contains(strings.ToLower(f), text) {
				return true
			}
		}
		return false
	}), nil
}

func (r *memUserRepo) Update(_ context.Context, u *entity.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[u.ID]; !ok || r.zeroUpdate {
		return 0, nil
	}
	r.items[u.ID] = cloneUser(u)
	return 1, nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok || r.zeroDelete {
		return 0, nil
	}
	delete(r.items, id)
	return 1, nil
}

func (r *memUserRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

func (r *memUserRepo) filter(keep func(*entity.User) bool) []*entity.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.User
	for _, id := range r.order {
		u, ok := r.items[id]
		if ok && keep(u) {
			out = append(out, cloneUser(u))
		}
	}
	return out
}

func (r *memUserRepo) first(keep func(*entity.User) bool) *entity.User {
	if list := r.filter(keep); len(list) > 0 {
		return list[0]
	}
	return nil
}

type memProductRepo struct {
	ids   idGen
	mu    sync.Mutex
	items map[string]entity.Product
	order []string
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{items: map[string]entity.Product{}}
}

func (r *memProductRepo) NextID() string { return r.ids.next() }

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[p.ID] = *p
	r.order = append(r.order, p.ID)
	return p.ID, nil
}

func (r *memProductRepo) FindByID(_ context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.items[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *memProductRepo) List(_ context.Context, page, pageSize int) ([]*entity.Product, error) {
	all := r.filter(func(*entity.Product) bool { return true })
	start := page * pageSize
	if start >= len(all) {
		return nil, nil
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (r *memProductRepo) FindByCategory(_ context.Context, category string) ([]*entity.Product, error) {
	return r.filter(func(p *entity.Product) bool { return p.Category == category }), nil
}

func (r *memProductRepo) SearchByText(_ context.Context, text string) ([]*entity.Product, error) {
	text = strings.ToLower(text)
	return r.filter(func(p *entity.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), text) ||
			strings.Contains(strings.ToLower(p.Description), text)
	}), nil
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; !ok {
		return 0, nil
	}
	r.items[p.ID] = *p
	return 1, nil
}

func (r *memProductRepo) Delete(_ context.Context, id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return 0, nil
	}
	delete(r.items, id)
	return 1, nil
}

func (r *memProductRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

func (r *memProductRepo) filter(keep func(*entity.Product) bool) []*entity.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Product
	for _, id := range r.order {
		p, ok := r.items[id]
		if ok && keep(&p) {
			cp := p
			out = append(out, &cp)
		}
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Mocks (testify/mock) para propagación de errores
// ──────────────────────────────────────────────────────────────────────────────

type mockSaleRepo struct {
	mock.Mock
}

func (m *mockSaleRepo) NextID() string {
	return m.Called().String(0)
}

func (m *mockSaleRepo) Create(ctx context.Context, s *entity.Sale) (string, error) {
	args := m.Called(ctx, s)
	return args.String(0), args.Error(1)
}

func (m *mockSaleRepo) FindByID(ctx context.Context, id string) (*entity.Sale, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*entity.Sale)
	return s, args.Error(1)
}

func (m *mockSaleRepo) List(ctx context.Context, page, pageSize int) ([]*entity.Sale, error) {
	args := m.Called(ctx, page, pageSize)
	s, _ := args.Get(0).([]*entity.Sale)
	return s, args.Error(1)
}

func (m *mockSaleRepo) FindByStatus(ctx context.Context, status string) ([]*entity.Sale, error) {
	args := m.Called(ctx, status)
	s, _ := args.Get(0).([]*entity.Sale)
	return s, args.Error(1)
}

func (m *mockSaleRepo) SearchByText(ctx context.Context, text string) ([]*entity.Sale, error) {
	args := m.Called(ctx, text)
	s, _ := args.Get(0).([]*entity.Sale)
	return s, args.Error(1)
}

func (m *mockSaleRepo) Update(ctx context.Context, s *entity.Sale) (int64, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSaleRepo) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSaleRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockReceipts struct {
	mock.Mock
}

func (m *mockReceipts) Render(s *entity.Sale) ([]byte, error) {
	args := m.Called(s)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

// fakeHasher evita bcrypt en pruebas de casos de uso.
type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) { return "hash:" + plain, nil }

// steppingClock avanza un segundo en cada llamada.
func steppingClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	t := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Second)
		return t
	}
}

package usecase

import (
	"context"
	"sync"

	"github.com/jhoicas/chatbot-admin-api/internal/domain"
	"github.com/jhoicas/chatbot-admin-api/internal/domain/entity"
)

// memStore almacena las seis colecciones en memoria, protegido por un mutex
// para los tests de concurrencia. Emula el comportamiento de los repos reales:
// Get* devuelve (nil, nil) cuando no existe, y los constraints únicos de
// roles.role_name y users.username devuelven domain.ErrDuplicate.
type memStore struct {
	mu         sync.Mutex
	nextID     int
	roles      map[int]*entity.Role
	users      map[int]*entity.User
	products   map[int]*entity.Product
	orders     map[int]*entity.Order
	faqs       map[int]*entity.FAQ
	unanswered map[int]*entity.UnansweredQuestion
}

func newMemStore() *memStore {
	return &memStore{
		nextID:     1,
		roles:      make(map[int]*entity.Role),
		users:      make(map[int]*entity.User),
		products:   make(map[int]*entity.Product),
		orders:     make(map[int]*entity.Order),
		faqs:       make(map[int]*entity.FAQ),
		unanswered: make(map[int]*entity.UnansweredQuestion),
	}
}

func (s *memStore) newID() int {
	id := s.nextID
	s.nextID++
	return id
}

// repoSet devuelve el RepoSet sobre este store.
func (s *memStore) repoSet() RepoSet {
	return RepoSet{
		Roles:      (*memRoleRepo)(s),
		Users:      (*memUserRepo)(s),
		Products:   (*memProductRepo)(s),
		Orders:     (*memOrderRepo)(s),
		FAQs:       (*memFAQRepo)(s),
		Unanswered: (*memUnansweredRepo)(s),
	}
}

// memTxRunner ejecuta fn contra el store serializando las "transacciones":
// igual que Postgres con los constraints, dos altas concurrentes del mismo
// username se resuelven en orden y la segunda ve el duplicado.
type memTxRunner struct {
	store *memStore
}

func (r *memTxRunner) Run(_ context.Context, fn func(RepoSet) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return fn(r.store.repoSet())
}

// ── Roles ────────────────────────────────────────────────────────────────────

type memRoleRepo memStore

func (r *memRoleRepo) Create(_ context.Context, role *entity.Role) error {
	for _, existing := range r.roles {
		if existing.Name == role.Name {
			return domain.ErrDuplicate
		}
	}
	role.ID = (*memStore)(r).newID()
	cp := *role
	r.roles[role.ID] = &cp
	return nil
}

func (r *memRoleRepo) GetByID(_ context.Context, id int) (*entity.Role, error) {
	role, ok := r.roles[id]
	if !ok {
		return nil, nil
	}
	cp := *role
	return &cp, nil
}

func (r *memRoleRepo) GetByName(_ context.Context, name string) (*entity.Role, error) {
	for _, role := range r.roles {
		if role.Name == name {
			cp := *role
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memRoleRepo) List(_ context.Context) ([]*entity.Role, error) {
	out := make([]*entity.Role, 0, len(r.roles))
	for id := 1; id < r.nextID; id++ {
		if role, ok := r.roles[id]; ok {
			cp := *role
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memRoleRepo) Update(_ context.Context, role *entity.Role) error {
	for id, existing := range r.roles {
		if existing.Name == role.Name && id != role.ID {
			return domain.ErrDuplicate
		}
	}
	cp := *role
	r.roles[role.ID] = &cp
	return nil
}

func (r *memRoleRepo) Delete(_ context.Context, id int) error {
	delete(r.roles, id)
	return nil
}

// ── Users ────────────────────────────────────────────────────────────────────

type memUserRepo memStore

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, existing := range r.users {
		if existing.Username == user.Username {
			return domain.ErrDuplicate
		}
	}
	user.ID = (*memStore)(r).newID()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id int) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *user
	r.fillRoleName(&cp)
	return &cp, nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			cp := *user
			r.fillRoleName(&cp)
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) List(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for id := 1; id < r.nextID; id++ {
		if user, ok := r.users[id]; ok {
			cp := *user
			r.fillRoleName(&cp)
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memUserRepo) Update(_ context.Context, user *entity.User) error {
	for id, existing := range r.users {
		if existing.Username == user.Username && id != user.ID {
			return domain.ErrDuplicate
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id int) error {
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) fillRoleName(user *entity.User) {
	if role, ok := r.roles[user.RoleID]; ok {
		user.RoleName = role.Name
	}
}

// ── Products ─────────────────────────────────────────────────────────────────

type memProductRepo memStore

func (r *memProductRepo) Create(_ context.Context, product *entity.Product) error {
	product.ID = (*memStore)(r).newID()
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id int) (*entity.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *product
	return &cp, nil
}

func (r *memProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for id := 1; id < r.nextID; id++ {
		if product, ok := r.products[id]; ok {
			cp := *product
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memProductRepo) Update(_ context.Context, product *entity.Product) error {
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *memProductRepo) Delete(_ context.Context, id int) error {
	delete(r.products, id)
	return nil
}

// ── Orders ───────────────────────────────────────────────────────────────────

type memOrderRepo memStore

func (r *memOrderRepo) Create(_ context.Context, order *entity.Order) error {
	order.ID = (*memStore)(r).newID()
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *memOrderRepo) GetByID(_ context.Context, id int) (*entity.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *order
	r.fillJoins(&cp)
	return &cp, nil
}

func (r *memOrderRepo) List(_ context.Context) ([]*entity.Order, error) {
	out := make([]*entity.Order, 0, len(r.orders))
	for id := 1; id < r.nextID; id++ {
		if order, ok := r.orders[id]; ok {
			cp := *order
			r.fillJoins(&cp)
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memOrderRepo) Update(_ context.Context, order *entity.Order) error {
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *memOrderRepo) Delete(_ context.Context, id int) error {
	delete(r.orders, id)
	return nil
}

func (r *memOrderRepo) fillJoins(order *entity.Order) {
	if user, ok := r.users[order.UserID]; ok {
		order.Username = user.Username
	}
	if product, ok := r.products[order.ProductID]; ok {
		order.ProductName = product.Name
	}
}

// ── FAQs ─────────────────────────────────────────────────────────────────────

type memFAQRepo memStore

func (r *memFAQRepo) Create(_ context.Context, faq *entity.FAQ) error {
	faq.ID = (*memStore)(r).newID()
	cp := *faq
	r.faqs[faq.ID] = &cp
	return nil
}

func (r *memFAQRepo) GetByID(_ context.Context, id int) (*entity.FAQ, error) {
	faq, ok := r.faqs[id]
	if !ok {
		return nil, nil
	}
	cp := *faq
	return &cp, nil
}

func (r *memFAQRepo) List(_ context.Context) ([]*entity.FAQ, error) {
	out := make([]*entity.FAQ, 0, len(r.faqs))
	for id := 1; id < r.nextID; id++ {
		if faq, ok := r.faqs[id]; ok {
			cp := *faq
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memFAQRepo) Update(_ context.Context, faq *entity.FAQ) error {
	cp := *faq
	r.faqs[faq.ID] = &cp
	return nil
}

func (r *memFAQRepo) Delete(_ context.Context, id int) error {
	delete(r.faqs, id)
	return nil
}

// ── Unanswered ───────────────────────────────────────────────────────────────

type memUnansweredRepo memStore

func (r *memUnansweredRepo) Create(_ context.Context, q *entity.UnansweredQuestion) error {
	q.ID = (*memStore)(r).newID()
	cp := *q
	r.unanswered[q.ID] = &cp
	return nil
}

func (r *memUnansweredRepo) GetByID(_ context.Context, id int) (*entity.UnansweredQuestion, error) {
	q, ok := r.unanswered[id]
	if !ok {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (r *memUnansweredRepo) List(_ context.Context) ([]*entity.UnansweredQuestion, error) {
	out := make([]*entity.UnansweredQuestion, 0, len(r.unanswered))
	for id := 1; id < r.nextID; id++ {
		if q, ok := r.unanswered[id]; ok {
			cp := *q
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memUnansweredRepo) Update(_ context.Context, q *entity.UnansweredQuestion) error {
	cp := *q
	r.unanswered[q.ID] = &cp
	return nil
}

func (r *memUnansweredRepo) Delete(_ context.Context, id int) error {
	delete(r.unanswered, id)
	return nil
}

package usecase

import (
	"context"
	"sync"

	"github.com/Mohammed-hani69/adsvairl/internal/data/entity"
	"github.com/Mohammed-hani69/adsvairl/internal/data/repository"

	"github.com/google/uuid"
)

// Fakes embed the repository interface so unused methods panic if a test reaches them.

type fakeUserRepo struct {
	repository.UserRepository
	mu      sync.Mutex
	byID    map[uuid.UUID]*entity.User
	touched   []uuid.UUID
	count     int64
	updated   int
	createErr error
	limit     int
	offset    int
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{byID: map[uuid.UUID]*entity.User{}}
	for _, u := range users {
		r.byID[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.byID[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byID[id], nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.limit, r.offset = limit, offset
	var out []*entity.User
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) CountAll(context.Context) (int64, error) {
	return r.count, nil
}

func (r *fakeUserRepo) TouchLastLogin(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.touched = append(r.touched, id)
	return nil
}

type fakeSessionRepo struct {
	repository.SessionRepository
	created []*entity.Session
	revoked []uuid.UUID
}

func (r *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	r.created = append(r.created, session)
	return nil
}

func (r *fakeSessionRepo) Revoke(_ context.Context, token uuid.UUID) error {
	r.revoked = append(r.revoked, token)
	return nil
}

type fakeAdRepo struct {
	repository.AdRepository
	counts   map[entity.AdModerationStatus]int64
	countErr error
}

func (r *fakeAdRepo) CountByStatus(_ context.Context, status entity.AdModerationStatus) (int64, error) {
	if r.countErr != nil {
		return 0, r.countErr
	}
	return r.counts[status], nil
}

type fakeVipStoreRepo struct {
	repository.VipStoreRepository
	stores      map[uuid.UUID]*entity.VipStoreWithLocation
	approved    int64
	createErr   error
	updated     []*entity.VipStore
	approvedIDs []uuid.UUID
}

func (r *fakeVipStoreRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.VipStoreWithLocation, error) {
	store, ok := r.stores[id]
	if !ok {
		return nil, nil
	}
	// callers mutate what they load, as they would a fresh row
	copied := *store
	return &copied, nil
}

func (r *fakeVipStoreRepo) FindByUser(_ context.Context, userID uuid.UUID) (*entity.VipStoreWithLocation, error) {
	for _, store := range r.stores {
		if store.UserID == userID {
			return store, nil
		}
	}
	return nil, nil
}

func (r *fakeVipStoreRepo) Create(_ context.Context, store *entity.VipStore) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.stores[store.ID] = &entity.VipStoreWithLocation{VipStore: *store}
	return nil
}

func (r *fakeVipStoreRepo) Update(_ context.Context, store *entity.VipStore) error {
	existing, ok := r.stores[store.ID]
	if !ok {
		return repository.ErrNoRows
	}
	existing.VipStore = *store
	r.updated = append(r.updated, store)
	return nil
}

func (r *fakeVipStoreRepo) Approve(_ context.Context, id uuid.UUID) error {
	store, ok := r.stores[id]
	if !ok {
		return repository.ErrNoRows
	}
	store.IsApproved, store.OwnerIsVip = true, true
	r.approvedIDs = append(r.approvedIDs, id)
	return nil
}

func (r *fakeVipStoreRepo) CountApproved(context.Context) (int64, error) {
	return r.approved, nil
}

type fakeVipOrderRepo struct {
	repository.VipOrderRepository
	orders     map[uuid.UUID]*entity.VipOrder
	created    []*entity.VipOrder
	hasPending bool
	resolveErr error
	pending    int64
	filter     *entity.VipOrderStatus
	createErrs []error
	numbers    []string
}

// Create pops one error from createErrs per call before succeeding.
func (r *fakeVipOrderRepo) Create(_ context.Context, order *entity.VipOrder) error {
	r.numbers = append(r.numbers, order.OrderNumber)
	if len(r.createErrs) > 0 {
		err := r.createErrs[0]
		r.createErrs = r.createErrs[1:]
		return err
	}
	r.created = append(r.created, order)
	return nil
}

func (r *fakeVipOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.VipOrder, error) {
	return r.orders[id], nil
}

func (r *fakeVipOrderRepo) FindAll(_ context.Context, status *entity.VipOrderStatus) ([]*entity.VipOrder, error) {
	r.filter = status
	return nil, nil
}

func (r *fakeVipOrderRepo) HasPendingForStore(context.Context, uuid.UUID) (bool, error) {
	return r.hasPending, nil
}

func (r *fakeVipOrderRepo) Resolve(context.Context, *entity.VipOrder) error {
	return r.resolveErr
}

func (r *fakeVipOrderRepo) CountByStatus(_ context.Context, status entity.VipOrderStatus) (int64, error) {
	if status == entity.VipOrderPending {
		return r.pending, nil
	}
	return 0, nil
}

type fakeLocationRepo struct {
	repository.LocationRepository
	countries []*entity.Country
	states    []*entity.State
	cities    []*entity.City
	calls     int
	created   []*entity.Country
	createErr error
	deleteErr error
	deleted   []uuid.UUID
}

func (r *fakeLocationRepo) FindCountries(_ context.Context, activeOnly bool) ([]*entity.Country, error) {
	r.calls++
	var out []*entity.Country
	for _, c := range r.countries {
		if !activeOnly || c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeLocationRepo) FindCountryByCode(_ context.Context, code string) (*entity.Country, error) {
	for _, c := range r.countries {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeLocationRepo) FindCountryByID(_ context.Context, id uuid.UUID) (*entity.Country, error) {
	for _, c := range r.countries {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeLocationRepo) FindStateByID(_ context.Context, id uuid.UUID) (*entity.State, error) {
	for _, s := range r.states {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeLocationRepo) FindCityByID(_ context.Context, id uuid.UUID) (*entity.City, error) {
	for _, c := range r.cities {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeLocationRepo) deleteAny(id uuid.UUID) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeLocationRepo) DeleteCountry(_ context.Context, id uuid.UUID) error { return r.deleteAny(id) }
func (r *fakeLocationRepo) DeleteState(_ context.Context, id uuid.UUID) error   { return r.deleteAny(id) }
func (r *fakeLocationRepo) DeleteCity(_ context.Context, id uuid.UUID) error    { return r.deleteAny(id) }

func (r *fakeLocationRepo) CreateCountry(_ context.Context, country *entity.Country) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, country)
	r.countries = append(r.countries, country)
	return nil
}

func (r *fakeLocationRepo) CreateState(_ context.Context, state *entity.State) error {
	r.states = append(r.states, state)
	return nil
}

func (r *fakeLocationRepo) CreateCity(_ context.Context, city *entity.City) error {
	r.cities = append(r.cities, city)
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[user.ID] = user
	r.updated++
	return nil
}

type fakeCategoryRepo struct {
	repository.CategoryRepository
	categories []*entity.Category
	listCalls  int
	createErr  error
}

func (r *fakeCategoryRepo) FindAllActive(context.Context) ([]*entity.Category, error) {
	r.listCalls++
	var out []*entity.Category
	for _, c := range r.categories {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) FindBySlug(_ context.Context, slug string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.NameEn == slug {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) Count(context.Context) (int64, error) {
	return int64(len(r.categories)), nil
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.categories = append(r.categories, category)
	return nil
}

type fakeStoreProductRepo struct {
	repository.StoreProductRepository
	products map[uuid.UUID]*entity.StoreProduct
	deleted  []uuid.UUID
}

func (r *fakeStoreProductRepo) Create(_ context.Context, product *entity.StoreProduct) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeStoreProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.StoreProduct, error) {
	return r.products[id], nil
}

func (r *fakeStoreProductRepo) FindByStore(_ context.Context, storeID uuid.UUID) ([]*entity.StoreProduct, error) {
	var out []*entity.StoreProduct
	for _, p := range r.products {
		if p.StoreID == storeID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeStoreProductRepo) Update(_ context.Context, product *entity.StoreProduct) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeStoreProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.products, id)
	r.deleted = append(r.deleted, id)
	return nil
}

package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/dinein/app/models"
)

// MemoryStore implements every repository in process memory with the same
// uniqueness rules as the MongoDB indexes. It backs `serve --memory` and the
// service and controller tests.
type MemoryStore struct {
	mu       sync.RWMutex
	users    []models.User
	bookings []models.Booking
	menu     map[string]models.MenuItem
	cart     []models.CartItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{menu: make(map[string]models.MenuItem)}
}

// Users returns the store as a UserRepository.
func (s *MemoryStore) Users() UserRepository { return memoryUsers{s} }

// Bookings returns the store as a BookingRepository.
func (s *MemoryStore) Bookings() BookingRepository { return memoryBookings{s} }

// Menu returns the store as a MenuRepository.
func (s *MemoryStore) Menu() MenuRepository { return memoryMenu{s} }

// Cart returns the store as a CartRepository.
func (s *MemoryStore) Cart() CartRepository { return memoryCart{s} }

// BookingCount reports how many bookings have been stored.
func (s *MemoryStore) BookingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bookings)
}

type memoryUsers struct{ s *MemoryStore }

func (m memoryUsers) Create(_ context.Context, user *models.User) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	for _, u := range m.s.users {
		if u.Email == user.Email || u.ID == user.ID {
			return fmt.Errorf("users: insert: %w", ErrDuplicate)
		}
	}
	user.ObjectID = primitive.NewObjectID()
	m.s.users = append(m.s.users, *user)
	return nil
}

func (m memoryUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	return m.find(func(u models.User) bool { return u.Email == email })
}

func (m memoryUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	return m.find(func(u models.User) bool { return u.ID == id })
}

func (m memoryUsers) find(match func(models.User) bool) (*models.User, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	for _, u := range m.s.users {
		if match(u) {
			u := u
			return &u, nil
		}
	}
	return nil, fmt.Errorf("users: find: %w", ErrNotFound)
}

type memoryBookings struct{ s *MemoryStore }

func (m memoryBookings) Create(_ context.Context, booking *models.Booking) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	booking.ID = primitive.NewObjectID()
	m.s.bookings = append(m.s.bookings, *booking)
	return nil
}

type memoryMenu struct{ s *MemoryStore }

func (m memoryMenu) FindByName(_ context.Context, foodName string) (*models.MenuItem, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	item, ok := m.s.menu[foodName]
	if !ok {
		return nil, fmt.Errorf("menuitems: find: %w", ErrNotFound)
	}
	return &item, nil
}

func (m memoryMenu) All(_ context.Context) ([]models.MenuItem, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	items := make([]models.MenuItem, 0, len(m.s.menu))
	for _, item := range m.s.menu {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].FoodName < items[j].FoodName })
	return items, nil
}

func (m memoryMenu) Upsert(_ context.Context, item *models.MenuItem) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	existing, ok := m.s.menu[item.FoodName]
	if ok {
		item.ID = existing.ID
	} else if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	m.s.menu[item.FoodName] = *item
	return nil
}

type memoryCart struct{ s *MemoryStore }

func (m memoryCart) Create(_ context.Context, item *models.CartItem) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	item.ID = primitive.NewObjectID()
	m.s.cart = append(m.s.cart, *item)
	return nil
}

func (m memoryCart) FindByUser(_ context.Context, userID string) ([]models.CartItem, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	items := []models.CartItem{}
	for _, item := range m.s.cart {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (m memoryCart) FindByID(_ context.Context, id string) (*models.CartItem, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	i, err := m.index(id)
	if err != nil {
		return nil, fmt.Errorf("cartitems: find: %w", err)
	}
	item := m.s.cart[i]
	return &item, nil
}

func (m memoryCart) UpdateQuantity(_ context.Context, id string, quantity int) (*models.CartItem, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	i, err := m.index(id)
	if err != nil {
		return nil, fmt.Errorf("cartitems: update: %w", err)
	}
	m.s.cart[i].Quantity = quantity
	item := m.s.cart[i]
	return &item, nil
}

func (m memoryCart) Delete(_ context.Context, id string) (*models.CartItem, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	i, err := m.index(id)
	if err != nil {
		return nil, fmt.Errorf("cartitems: delete: %w", err)
	}
	item := m.s.cart[i]
	m.s.cart = append(m.s.cart[:i], m.s.cart[i+1:]...)
	return &item, nil
}

// index must be called with the lock held.
func (m memoryCart) index(id string) (int, error) {
	oid, err := objectID(id)
	if err != nil {
		return -1, err
	}
	for i, item := range m.s.cart {
		if item.ID == oid {
			return i, nil
		}
	}
	return -1, ErrNotFound
}

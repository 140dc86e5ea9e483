package stubapi

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

var ErrEmailTaken = errors.New("email already registered")

type productRecord struct {
	ID       int
	Name     string
	Price    float64
	Quantity int
}

type userRecord struct {
	ID       int
	FullName string
	Email    string
	// Credential is a bcrypt digest of the password hash the client sent.
	Credential []byte
}

// Store holds all server state in memory behind one mutex. Records are
// returned by value so callers never share mutable state.
type Store struct {
	mu          sync.Mutex
	products    map[int]productRecord
	users       map[int]userRecord
	nextProduct int
	nextUser    int
}

func NewStore() *Store {
	return &Store{
		products:    make(map[int]productRecord),
		users:       make(map[int]userRecord),
		nextProduct: 1,
		nextUser:    1,
	}
}

func (s *Store) ListProducts() []productRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]productRecord, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) GetProduct(id int) (productRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	return p, ok
}

func (s *Store) CreateProduct(name string, price float64, quantity int) productRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := productRecord{ID: s.nextProduct, Name: name, Price: price, Quantity: quantity}
	s.nextProduct++
	s.products[p.ID] = p
	return p
}

func (s *Store) UpdateProduct(id int, name string, price float64, quantity int) (productRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return productRecord{}, false
	}
	p := productRecord{ID: id, Name: name, Price: price, Quantity: quantity}
	s.products[id] = p
	return p, true
}

func (s *Store) DeleteProduct(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return false
	}
	delete(s.products, id)
	return true
}

func (s *Store) ListUsers() []userRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]userRecord, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) GetUser(id int) (userRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	return u, ok
}

func (s *Store) FindUserByEmail(email string) (userRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return userRecord{}, false
}

func (s *Store) CreateUser(fullName, email string, credential []byte) (userRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return userRecord{}, ErrEmailTaken
		}
	}

	u := userRecord{ID: s.nextUser, FullName: fullName, Email: email, Credential: credential}
	s.nextUser++
	s.users[u.ID] = u
	return u, nil
}

func (s *Store) UpdateUser(id int, fullName, email string, credential []byte) (userRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.users[id]
	if !ok {
		return userRecord{}, false
	}
	if len(credential) == 0 {
		credential = existing.Credential
	}
	u := userRecord{ID: id, FullName: fullName, Email: email, Credential: credential}
	s.users[id] = u
	return u, true
}

func (s *Store) DeleteUser(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return false
	}
	delete(s.users, id)
	return true
}

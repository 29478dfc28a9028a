// Package stubserver is a development stand-in for the storefront backend.
// It implements the HTTP contract the client consumes (orders, profile,
// token issuance, catalog) with in-memory state, so the cart and checkout
// flows can be exercised without the real deployment.
package stubserver

import (
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/royalbee/storefront/internal/domain"
)

type account struct {
	user         domain.User
	passwordHash []byte
}

// Server holds the stub's in-memory state.
type Server struct {
	logger *zap.Logger

	mu       sync.Mutex
	accounts map[string]*account // keyed by email
	tokens   map[string]string   // bearer token -> email
	orders   []domain.OrderConfirmation
	products []domain.Product
	nextID   int
}

func NewServer(logger *zap.Logger) *Server {
	return &Server{
		logger:   logger,
		accounts: make(map[string]*account),
		tokens:   make(map[string]string),
		products: seedProducts(),
		nextID:   1,
	}
}

func (s *Server) register(email, name, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[email]; exists {
		return nil, errEmailTaken
	}

	user := domain.User{
		ID:       strconv.Itoa(s.nextID),
		Email:    email,
		Name:     name,
		JoinDate: time.Now().UTC().Format(time.RFC3339),
		Role:     "customer",
	}
	s.nextID++
	s.accounts[email] = &account{user: user, passwordHash: hash}
	return &user, nil
}

func (s *Server) authenticate(email, password string) (*account, bool) {
	s.mu.Lock()
	acct, ok := s.accounts[email]
	s.mu.Unlock()
	if !ok {
		return nil, false
	}
	if bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(password)) != nil {
		return nil, false
	}
	return acct, true
}

func (s *Server) issueToken(email, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = email
}

func (s *Server) userForToken(token string) (*domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email, ok := s.tokens[token]
	if !ok {
		return nil, false
	}
	acct, ok := s.accounts[email]
	if !ok {
		return nil, false
	}
	u := acct.user
	return &u, true
}

// recordOrder stores the confirmation and accrues loyalty points at one
// point per whole currency unit of the order total.
func (s *Server) recordOrder(userEmail string, confirmation domain.OrderConfirmation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append(s.orders, confirmation)
	if acct, ok := s.accounts[userEmail]; ok {
		acct.user.Points += int(confirmation.Total)
	}
}

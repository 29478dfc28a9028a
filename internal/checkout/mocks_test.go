package checkout

import (
	"context"
	"sync"

	"github.com/royalbee/storefront/internal/domain"
)

// mockBackend implements Backend, recording every call.
type mockBackend struct {
	mu sync.Mutex

	confirmation *domain.OrderConfirmation
	submitErr    error
	submitCalls  int
	lastOrder    domain.OrderRequest

	profile      *domain.User
	profileErr   error
	profileCalls int
}

func (m *mockBackend) SubmitOrder(_ context.Context, _ string, order domain.OrderRequest) (*domain.OrderConfirmation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.submitCalls++
	m.lastOrder = order
	if m.submitErr != nil {
		return nil, m.submitErr
	}
	return m.confirmation, nil
}

func (m *mockBackend) FetchProfile(context.Context, string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.profileCalls++
	if m.profileErr != nil {
		return nil, m.profileErr
	}
	return m.profile, nil
}

// mockSession implements AuthSession.
type mockSession struct {
	user     *domain.User
	token    string
	replaced *domain.User
}

func (m *mockSession) CurrentUser() (*domain.User, bool) {
	if m.user == nil {
		return nil, false
	}
	return m.user, true
}

func (m *mockSession) Token() string { return m.token }

func (m *mockSession) ReplaceUser(_ context.Context, user domain.User) error {
	m.replaced = &user
	return nil
}

package usecase

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"budget-review/internal/core/domain"
)

// memRepo is an in-memory AccountRepository and ReviewRepository.
type memRepo struct {
	mu       sync.Mutex
	clients  map[string]domain.Client
	accounts []domain.ClientAccount
	budgets  []domain.CustomBudget
	reviews  map[string]*domain.BudgetReview
	nextID   int64
	// saveErr, when set, can fail SaveReview for a given review.
	saveErr func(*domain.BudgetReview) error
	// events records cleanup and save calls in order.
	events []string
}

func newMemRepo() *memRepo {
	return &memRepo{clients: map[string]domain.Client{}, reviews: map[string]*domain.BudgetReview{}}
}

func (m *memRepo) addAccount(acc domain.ClientAccount) *domain.ClientAccount {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.clients[acc.ClientID]; !ok {
		m.clients[acc.ClientID] = domain.Client{ID: acc.ClientID, Name: "Client " + acc.ClientID, Active: true}
	}
	acc.ID = int64(len(m.accounts) + 1)
	acc.IsActive = true
	m.accounts = append(m.accounts, acc)
	return &m.accounts[len(m.accounts)-1]
}

func reviewKey(k domain.ReviewKey) string {
	return fmt.Sprintf("%s|%d|%s|%s", k.ClientID, k.AccountRowID, k.Platform, k.ReviewDate.Format(domain.DateLayout))
}

func (m *memRepo) GetClient(_ context.Context, clientID string) (*domain.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.clients[clientID]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (m *memRepo) GetAccount(_ context.Context, clientID, accountID string, platform domain.Platform) (*domain.ClientAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accounts {
		if a.ClientID == clientID && a.AccountID == accountID && a.Platform == platform && a.IsActive {
			return &a, nil
		}
	}
	return nil, nil
}

func (m *memRepo) GetPrimaryAccount(_ context.Context, clientID string, platform domain.Platform) (*domain.ClientAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accounts {
		if a.ClientID == clientID && a.Platform == platform && a.IsPrimary {
			return &a, nil
		}
	}
	return nil, nil
}

func (m *memRepo) ListActiveAccounts(_ context.Context, clientIDs []string, platform domain.Platform) ([]domain.ClientAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.ClientAccount
	for _, a := range m.accounts {
		if a.Platform == platform && a.IsActive && slices.Contains(clientIDs, a.ClientID) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memRepo) FindActiveCustomBudget(_ context.Context, clientID string, day time.Time) (*domain.CustomBudget, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var found *domain.CustomBudget
	for i := range m.budgets {
		b := m.budgets[i]
		if b.ClientID == clientID && b.AppliesOn(day) && (found == nil || b.CreatedAt.After(found.CreatedAt)) {
			found = &b
		}
	}
	return found, nil
}

func (m *memRepo) FindReview(_ context.Context, key domain.ReviewKey) (*domain.BudgetReview, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reviews[reviewKey(key)]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (m *memRepo) SaveReview(_ context.Context, review *domain.BudgetReview, cache domain.AccountCache) error {
	if m.saveErr != nil {
		if err := m.saveErr(review); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, "save:"+review.ClientID)
	k := reviewKey(review.ReviewKey)
	if existing, ok := m.reviews[k]; ok {
		review.ID = existing.ID
		review.CreatedAt = existing.CreatedAt
	} else {
		m.nextID++
		review.ID = m.nextID
	}
	cp := *review
	m.reviews[k] = &cp
	for i := range m.accounts {
		if m.accounts[i].ID == cache.AccountRowID {
			m.accounts[i].ApplyCache(cache)
		}
	}
	return nil
}

func (m *memRepo) CleanupStale(_ context.Context, platform domain.Platform, day time.Time, scope domain.ReviewScope) (domain.CleanupResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, "cleanup")
	var res domain.CleanupResult
	today := day.Format(domain.DateLayout)
	for k, r := range m.reviews {
		if r.Platform != platform {
			continue
		}
		if len(scope.ClientIDs) > 0 && !slices.Contains(scope.ClientIDs, r.ClientID) {
			continue
		}
		switch date := r.ReviewDate.Format(domain.DateLayout); {
		case date < today:
			delete(m.reviews, k)
			res.StaleDeleted++
		case date == today && !r.WarningIgnoredOn(day):
			delete(m.reviews, k)
			res.DuplicatesDeleted++
		}
	}
	return res, nil
}

func (m *memRepo) UpdateWarning(_ context.Context, review *domain.BudgetReview) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reviews[reviewKey(review.ReviewKey)]
	if !ok || r.ID != review.ID {
		return &domain.NotFoundError{Entity: "review", ID: fmt.Sprint(review.ID)}
	}
	r.WarningIgnored = review.WarningIgnored
	r.WarningIgnoredDate = review.WarningIgnoredDate
	r.NeedsAdjustment = review.NeedsAdjustment
	return nil
}

func (m *memRepo) reviewCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.reviews)
}

func (m *memRepo) accountByRow(id int64) domain.ClientAccount {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accounts {
		if a.ID == id {
			return a
		}
	}
	return domain.ClientAccount{}
}

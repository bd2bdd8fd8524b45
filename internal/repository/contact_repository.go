package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/khairuladnan/StudentMS_Backend/internal/constants"
	"github.com/khairuladnan/StudentMS_Backend/internal/models"
	"github.com/khairuladnan/StudentMS_Backend/internal/utils"
)

// ContactRepository defines methods for interacting with the contact book.
type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	GetByID(ctx context.Context, id int64) (*models.Contact, error)
	List(ctx context.Context) ([]*models.Contact, error)
	Update(ctx context.Context, contact *models.Contact) error
	Delete(ctx context.Context, id int64) error
}

// InMemoryContactRepository keeps the contact book in process memory. The
// contact book is demo data and does not survive restarts, so it lives
// behind the same repository interface without a table.
type InMemoryContactRepository struct {
	mu       sync.RWMutex
	contacts map[int64]*models.Contact
	nextID   int64
}

// NewContactRepository creates a contact repository seeded with the default
// contact book.
func NewContactRepository() ContactRepository {
	repo := &InMemoryContactRepository{
		contacts: make(map[int64]*models.Contact),
		nextID:   1,
	}

	seed := []struct {
		name  string
		phone string
	}{
		{"Khairul Adnan", "01123346677"},
		{"Siti Huda", "0139974545"},
		{"Liau Kai Ze", "0162703913"},
	}
	for _, s := range seed {
		_ = repo.Create(context.Background(), &models.Contact{
			Name:  s.name,
			Phone: s.phone,
		})
	}

	return repo
}

// Create adds a contact and assigns its ID.
func (r *InMemoryContactRepository) Create(_ context.Context, contact *models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	contact.ID = r.nextID
	contact.CreatedAt = now
	contact.UpdatedAt = now
	r.nextID++

	stored := *contact
	r.contacts[contact.ID] = &stored

	return nil
}

// GetByID retrieves a contact by ID.
func (r *InMemoryContactRepository) GetByID(_ context.Context, id int64) (*models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contact, ok := r.contacts[id]
	if !ok {
		return nil, utils.NewNotFoundError(constants.MsgContactNotFound)
	}

	copied := *contact
	return &copied, nil
}

// List retrieves every contact ordered by ID.
func (r *InMemoryContactRepository) List(_ context.Context) ([]*models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contacts := make([]*models.Contact, 0, len(r.contacts))
	for _, contact := range r.contacts {
		copied := *contact
		contacts = append(contacts, &copied)
	}

	sort.Slice(contacts, func(i, j int) bool {
		return contacts[i].ID < contacts[j].ID
	})

	return contacts, nil
}

// Update replaces a contact's details.
func (r *InMemoryContactRepository) Update(_ context.Context, contact *models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.contacts[contact.ID]
	if !ok {
		return utils.NewNotFoundError(constants.MsgContactNotFound)
	}

	existing.Name = contact.Name
	existing.Phone = contact.Phone
	existing.UpdatedAt = time.Now()
	contact.CreatedAt = existing.CreatedAt
	contact.UpdatedAt = existing.UpdatedAt

	return nil
}

// Delete removes a contact.
func (r *InMemoryContactRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.contacts[id]; !ok {
		return utils.NewNotFoundError(constants.MsgContactNotFound)
	}

	delete(r.contacts, id)
	return nil
}

package services

import (
	"context"
	"time"

	"github.com/emrekoca/penmark/internal/core/domain"
	"github.com/emrekoca/penmark/internal/core/ports"
	"github.com/emrekoca/penmark/internal/core/token"
	"github.com/google/uuid"
)

type keyService struct {
	repo ports.Repository
	now  func() time.Time
}

// NewKeyService creates the credential issuance service.
func NewKeyService(repo ports.Repository) ports.KeyService {
	return &keyService{repo: repo, now: time.Now}
}

// Issue creates a new API key for a site and returns the plaintext secret
// exactly once. Validation happens before any entropy is consumed or any
// row is written.
func (s *keyService) Issue(ctx context.Context, siteID, name, expiresAt string) (*domain.IssuedKey, error) {
	if name == "" {
		return nil, domain.E(domain.KindInvalidInput, "key name is required")
	}

	now := s.now().UTC()
	var expiry *time.Time
	if expiresAt != "" {
		t, err := domain.ParseExpiry(expiresAt, now)
		if err != nil {
			return nil, err
		}
		expiry = &t
	}

	site, err := s.repo.GetSiteByID(ctx, siteID)
	if err != nil {
		return nil, domain.StoreFailure("look up site", err)
	}
	if site == nil {
		return nil, domain.E(domain.KindSiteNotFound, "site not found")
	}

	secret, err := token.Generate()
	if err != nil {
		return nil, domain.StoreFailure("generate secret", err)
	}

	key := &domain.APIKey{
		ID:        uuid.New().String(),
		SiteID:    site.ID,
		Name:      name,
		KeyDigest: token.Digest(secret),
		ExpiresAt: expiry,
		CreatedAt: now,
	}
	if err := s.repo.CreateAPIKey(ctx, key); err != nil {
		return nil, domain.StoreFailure("create api key", err)
	}

	return &domain.IssuedKey{
		ID:        key.ID,
		ApiKey:    secret,
		Name:      key.Name,
		SiteID:    key.SiteID,
		ExpiresAt: key.ExpiresAt,
		CreatedAt: key.CreatedAt,
	}, nil
}

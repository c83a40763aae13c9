package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/emrekoca/penmark/internal/core/domain"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB starts a disposable PostgreSQL container and applies the
// embedded migrations. Integration tests are skipped in -short mode.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("penmark_test"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	db, err := sql.Open("pgx", connStr)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return db
}

func TestPostgresIntegration(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresRepository(db)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	site := &domain.Site{ID: uuid.New().String(), Name: "blog-a", CreatedAt: now, UpdatedAt: now}
	if err := repo.CreateSite(ctx, site); err != nil {
		t.Fatalf("failed to create site: %v", err)
	}

	t.Run("SiteRoundTrip", func(t *testing.T) {
		got, err := repo.GetSiteByName(ctx, "blog-a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil || got.ID != site.ID {
			t.Errorf("unexpected site: %+v", got)
		}

		byID, err := repo.GetSiteByID(ctx, site.ID)
		if err != nil || byID == nil || byID.Name != "blog-a" {
			t.Errorf("lookup by ID failed: %+v %v", byID, err)
		}

		missing, err := repo.GetSiteByName(ctx, "no-such-site")
		if err != nil || missing != nil {
			t.Errorf("expected (nil, nil) for missing site, got %+v %v", missing, err)
		}
	})

	t.Run("DuplicateSiteNameRejected", func(t *testing.T) {
		dup := &domain.Site{ID: uuid.New().String(), Name: "blog-a", CreatedAt: now, UpdatedAt: now}
		if err := repo.CreateSite(ctx, dup); err == nil {
			t.Error("expected unique constraint violation on duplicate name")
		}
	})

	t.Run("APIKeyRoundTrip", func(t *testing.T) {
		expires := now.Add(48 * time.Hour)
		key := &domain.APIKey{
			ID: uuid.New().String(), SiteID: site.ID, Name: "ci",
			KeyDigest: "digest-1", ExpiresAt: &expires, CreatedAt: now,
		}
		if err := repo.CreateAPIKey(ctx, key); err != nil {
			t.Fatalf("failed to create key: %v", err)
		}

		got, err := repo.GetAPIKeyByDigest(ctx, "digest-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil || got.ID != key.ID {
			t.Fatalf("unexpected key: %+v", got)
		}
		if got.ExpiresAt == nil || !got.ExpiresAt.Equal(expires) {
			t.Errorf("expected expiry %v, got %v", expires, got.ExpiresAt)
		}

		missing, err := repo.GetAPIKeyByDigest(ctx, "no-such-digest")
		if err != nil || missing != nil {
			t.Errorf("expected (nil, nil) for unknown digest, got %+v %v", missing, err)
		}
	})

	t.Run("DuplicateDigestRejected", func(t *testing.T) {
		key := &domain.APIKey{ID: uuid.New().String(), SiteID: site.ID, Name: "ci2", KeyDigest: "digest-1", CreatedAt: now}
		if err := repo.CreateAPIKey(ctx, key); err == nil {
			t.Error("expected unique constraint violation on duplicate digest")
		}
	})

	t.Run("ArticleRoundTrip", func(t *testing.T) {
		article := &domain.Article{
			ArticleMetadata: domain.ArticleMetadata{
				ID: uuid.New().String(), SiteID: site.ID, Language: domain.LangEN, Slug: "hello",
				Title: "Hello", Excerpt: "intro", Date: "2026-08-29", Status: domain.StatusPublished,
				CreatedAt: now, UpdatedAt: now,
			},
			Content: "# Hello\n\nbody",
		}
		if err := repo.CreateArticle(ctx, article); err != nil {
			t.Fatalf("failed to create article: %v", err)
		}

		got, err := repo.GetArticle(ctx, site.ID, domain.LangEN, "hello")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil || got.Content != article.Content {
			t.Errorf("unexpected article: %+v", got)
		}

		// Same slug under a different language is a separate article.
		zh := *article
		zh.ID = uuid.New().String()
		zh.Language = domain.LangZHCN
		if err := repo.CreateArticle(ctx, &zh); err != nil {
			t.Errorf("expected same slug in another language to insert, got %v", err)
		}

		dup := *article
		dup.ID = uuid.New().String()
		if err := repo.CreateArticle(ctx, &dup); err == nil {
			t.Error("expected unique constraint violation on duplicate (site, language, slug)")
		}
	})

	t.Run("ListArticles", func(t *testing.T) {
		articles, total, err := repo.ListArticles(ctx, domain.ArticleFilter{
			SiteID: site.ID, Status: domain.StatusPublished, Page: 1, Limit: 20,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 2 || len(articles) != 2 {
			t.Errorf("expected 2 published articles, got total=%d len=%d", total, len(articles))
		}

		enOnly, total, err := repo.ListArticles(ctx, domain.ArticleFilter{
			SiteID: site.ID, Status: domain.StatusPublished, Language: domain.LangEN, Page: 1, Limit: 20,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 1 || len(enOnly) != 1 || enOnly[0].Language != domain.LangEN {
			t.Errorf("unexpected en filter result: total=%d %+v", total, enOnly)
		}
	})
}

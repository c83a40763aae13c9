package repository

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/emrekoca/penmark/internal/core/domain"
)

// PostgresRepository implements ports.Repository using PostgreSQL.
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates and returns a new PostgresRepository instance.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetAPIKeyByDigest(ctx context.Context, digest string) (*domain.APIKey, error) {
	query := `SELECT id, site_id, name, key_digest, expires_at, created_at FROM api_keys WHERE key_digest = $1`
	var k domain.APIKey
	var expiresAt sql.NullTime
	errRow := r.db.QueryRowContext(ctx, query, digest).Scan(&k.ID, &k.SiteID, &k.Name, &k.KeyDigest, &expiresAt, &k.CreatedAt)
	if errors.Is(errRow, sql.ErrNoRows) {
		return nil, nil
	}
	if errRow != nil {
		return nil, errRow
	}
	if expiresAt.Valid {
		t := expiresAt.Time
		k.ExpiresAt = &t
	}
	return &k, nil
}

func (r *PostgresRepository) CreateAPIKey(ctx context.Context, key *domain.APIKey) error {
	query := `INSERT INTO api_keys (id, site_id, name, key_digest, expires_at, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, key.ID, key.SiteID, key.Name, key.KeyDigest, key.ExpiresAt, key.CreatedAt)
	return err
}

func (r *PostgresRepository) CreateSite(ctx context.Context, site *domain.Site) error {
	query := `INSERT INTO sites (id, name, description, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, site.ID, site.Name, site.Description, site.CreatedAt, site.UpdatedAt)
	return err
}

func (r *PostgresRepository) GetSiteByID(ctx context.Context, id string) (*domain.Site, error) {
	return r.getSite(ctx, `SELECT id, name, description, created_at, updated_at FROM sites WHERE id = $1`, id)
}

func (r *PostgresRepository) GetSiteByName(ctx context.Context, name string) (*domain.Site, error) {
	return r.getSite(ctx, `SELECT id, name, description, created_at, updated_at FROM sites WHERE name = $1`, name)
}

func (r *PostgresRepository) getSite(ctx context.Context, query, arg string) (*domain.Site, error) {
	var s domain.Site
	errRow := r.db.QueryRowContext(ctx, query, arg).Scan(&s.ID, &s.Name, &s.Description, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(errRow, sql.ErrNoRows) {
		return nil, nil
	}
	if errRow != nil {
		return nil, errRow
	}
	return &s, nil
}

func (r *PostgresRepository) ListSites(ctx context.Context) ([]domain.Site, error) {
	query := `SELECT id, name, description, created_at, updated_at FROM sites ORDER BY created_at ASC`
	rows, errQuery := r.db.QueryContext(ctx, query)
	if errQuery != nil {
		return nil, errQuery
	}
	defer func() {
		if errClose := rows.Close(); errClose != nil {
			log.Printf("failed to close rows: %v", errClose)
		}
	}()

	var sites []domain.Site
	for rows.Next() {
		var s domain.Site
		if errScan := rows.Scan(&s.ID, &s.Name, &s.Description, &s.CreatedAt, &s.UpdatedAt); errScan != nil {
			return nil, errScan
		}
		sites = append(sites, s)
	}
	return sites, rows.Err()
}

func (r *PostgresRepository) CreateArticle(ctx context.Context, article *domain.Article) error {
	tx, errTx := r.db.BeginTx(ctx, nil)
	if errTx != nil {
		return errTx
	}
	defer func() {
		if errRollback := tx.Rollback(); errRollback != nil && !errors.Is(errRollback, sql.ErrTxDone) {
			log.Printf("failed to rollback transaction: %v", errRollback)
		}
	}()

	metaQuery := `INSERT INTO articles_metadata (id, site_id, language, slug, title, excerpt, date, status, created_at, updated_at)
			      VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, errExec := tx.ExecContext(ctx, metaQuery, article.ID, article.SiteID, string(article.Language), article.Slug,
		article.Title, article.Excerpt, article.Date, string(article.Status), article.CreatedAt, article.UpdatedAt)
	if errExec != nil {
		return errExec
	}

	contentQuery := `INSERT INTO articles_content (article_id, content, updated_at) VALUES ($1, $2, $3)`
	if _, errExec = tx.ExecContext(ctx, contentQuery, article.ID, article.Content, article.UpdatedAt); errExec != nil {
		return errExec
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetArticle(ctx context.Context, siteID string, lang domain.Language, slug string) (*domain.Article, error) {
	query := `SELECT m.id, m.site_id, m.language, m.slug, m.title, m.excerpt, m.date, m.status, m.created_at, m.updated_at,
	                 COALESCE(c.content, '')
	          FROM articles_metadata m
	          LEFT JOIN articles_content c ON c.article_id = m.id
	          WHERE m.site_id = $1 AND m.language = $2 AND m.slug = $3`
	var a domain.Article
	errRow := r.db.QueryRowContext(ctx, query, siteID, string(lang), slug).Scan(
		&a.ID, &a.SiteID, &a.Language, &a.Slug, &a.Title, &a.Excerpt, &a.Date, &a.Status,
		&a.CreatedAt, &a.UpdatedAt, &a.Content)
	if errors.Is(errRow, sql.ErrNoRows) {
		return nil, nil
	}
	if errRow != nil {
		return nil, errRow
	}
	return &a, nil
}

func (r *PostgresRepository) ListArticles(ctx context.Context, filter domain.ArticleFilter) ([]domain.ArticleMetadata, int, error) {
	offset := (filter.Page - 1) * filter.Limit
	selectCols := `SELECT id, site_id, language, slug, title, excerpt, date, status, created_at, updated_at
	              FROM articles_metadata`

	var countQuery, listQuery string
	var countArgs, listArgs []any
	if filter.Language != "" {
		countQuery = `SELECT COUNT(*) FROM articles_metadata WHERE site_id = $1 AND status = $2 AND language = $3`
		countArgs = []any{filter.SiteID, string(filter.Status), string(filter.Language)}
		listQuery = selectCols + ` WHERE site_id = $1 AND status = $2 AND language = $3 ORDER BY date DESC LIMIT $4 OFFSET $5`
		listArgs = append(countArgs, filter.Limit, offset)
	} else {
		countQuery = `SELECT COUNT(*) FROM articles_metadata WHERE site_id = $1 AND status = $2`
		countArgs = []any{filter.SiteID, string(filter.Status)}
		listQuery = selectCols + ` WHERE site_id = $1 AND status = $2 ORDER BY date DESC LIMIT $3 OFFSET $4`
		listArgs = append(countArgs, filter.Limit, offset)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, errQuery := r.db.QueryContext(ctx, listQuery, listArgs...)
	if errQuery != nil {
		return nil, 0, errQuery
	}
	defer func() {
		if errClose := rows.Close(); errClose != nil {
			log.Printf("failed to close rows: %v", errClose)
		}
	}()

	var articles []domain.ArticleMetadata
	for rows.Next() {
		var a domain.ArticleMetadata
		if errScan := rows.Scan(&a.ID, &a.SiteID, &a.Language, &a.Slug, &a.Title, &a.Excerpt, &a.Date,
			&a.Status, &a.CreatedAt, &a.UpdatedAt); errScan != nil {
			return nil, 0, errScan
		}
		articles = append(articles, a)
	}
	return articles, total, rows.Err()
}

func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/career-launch/backend/internal/models"
)

// ErrNotFound is returned when a slug lookup yields no entity. Callers treat
// it as a normal outcome, not an exceptional one.
var ErrNotFound = errors.New("catalog: not found")

// Repository reads booths and sessions from PostgreSQL. The catalog is
// read-only at runtime; content is loaded by migrations.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a catalog repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const boothColumns = `slug, name, industry, pathways, tier, post_secondary, has_prizes,
	description, video_url, video_key, engagement_activity, session_slides,
	associated_session_slug, contact_email, website, position, created_at`

func scanBooth(row pgx.Row) (*models.Booth, error) {
	var b models.Booth
	err := row.Scan(&b.Slug, &b.Name, &b.Industry, &b.Pathways, &b.Tier, &b.PostSecondary,
		&b.HasPrizes, &b.Description, &b.VideoURL, &b.VideoKey, &b.EngagementActivity,
		&b.SessionSlides, &b.AssociatedSessionSlug, &b.ContactEmail, &b.Website,
		&b.Position, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// GetBoothBySlug returns one booth or ErrNotFound.
func (r *Repository) GetBoothBySlug(ctx context.Context, slug string) (*models.Booth, error) {
	return scanBooth(r.pool.QueryRow(ctx, `SELECT `+boothColumns+` FROM booths WHERE slug = $1`, slug))
}

// ListBooths returns the full booth collection in source order.
func (r *Repository) ListBooths(ctx context.Context) ([]models.Booth, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+boothColumns+` FROM booths ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []models.Booth
	for rows.Next() {
		b, err := scanBooth(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *b)
	}
	return list, rows.Err()
}

const sessionColumns = `slug, title, industry, description, speaker, duration_minutes,
	video_url, video_key, booth_slug, position, created_at`

func scanSession(row pgx.Row) (*models.Session, error) {
	var s models.Session
	err := row.Scan(&s.Slug, &s.Title, &s.Industry, &s.Description, &s.Speaker,
		&s.DurationMinutes, &s.VideoURL, &s.VideoKey, &s.BoothSlug, &s.Position, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// GetSessionBySlug returns one session or ErrNotFound.
func (r *Repository) GetSessionBySlug(ctx context.Context, slug string) (*models.Session, error) {
	return scanSession(r.pool.QueryRow(ctx, `SELECT `+sessionColumns+` FROM sessions WHERE slug = $1`, slug))
}

// ListSessions returns the full session collection in source order.
func (r *Repository) ListSessions(ctx context.Context) ([]models.Session, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+sessionColumns+` FROM sessions ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []models.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *s)
	}
	return list, rows.Err()
}

// ListSessionsByBooth returns the sessions associated with a booth.
func (r *Repository) ListSessionsByBooth(ctx context.Context, boothSlug string) ([]models.Session, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+sessionColumns+` FROM sessions WHERE booth_slug = $1 ORDER BY position`, boothSlug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []models.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *s)
	}
	return list, rows.Err()
}

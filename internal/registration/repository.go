package registration

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/career-launch/backend/internal/models"
)

// Repository persists submissions and serves the board/school lookup data
// behind the form's dependent dropdowns. It also implements Sink.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a registration repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Submit implements Sink by inserting the submission.
func (r *Repository) Submit(ctx context.Context, sub models.Submission) error {
	const q = `INSERT INTO submissions
		(id, session_slug, user_type, first_name, email, board_id, school_id, class_size, grade_level, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(ctx, q, sub.ID, sub.SessionSlug, sub.UserType, sub.FirstName,
		sub.Email, sub.BoardID, sub.SchoolID, sub.ClassSize, sub.GradeLevel, sub.CreatedAt)
	return err
}

// GetSubmissionByID returns one submission.
func (r *Repository) GetSubmissionByID(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	const q = `SELECT id, session_slug, user_type, first_name, email, board_id, school_id,
		class_size, grade_level, confirmed_at, created_at FROM submissions WHERE id = $1`
	var sub models.Submission
	err := r.pool.QueryRow(ctx, q, id).Scan(&sub.ID, &sub.SessionSlug, &sub.UserType,
		&sub.FirstName, &sub.Email, &sub.BoardID, &sub.SchoolID, &sub.ClassSize,
		&sub.GradeLevel, &sub.ConfirmedAt, &sub.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// MarkConfirmed sets confirmed_at once the confirmation email has gone out.
func (r *Repository) MarkConfirmed(ctx context.Context, id uuid.UUID) error {
	const q = `UPDATE submissions SET confirmed_at = NOW() WHERE id = $1 AND confirmed_at IS NULL`
	_, err := r.pool.Exec(ctx, q, id)
	return err
}

// CountBySession returns how many submissions a session has received.
func (r *Repository) CountBySession(ctx context.Context, sessionSlug string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM submissions WHERE session_slug = $1`, sessionSlug).Scan(&n)
	return n, err
}

// ListBoards returns all school boards in name order.
func (r *Repository) ListBoards(ctx context.Context) ([]models.Board, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM boards ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []models.Board
	for rows.Next() {
		var b models.Board
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// ListSchoolsByBoard returns a board's schools in name order.
func (r *Repository) ListSchoolsByBoard(ctx context.Context, boardID string) ([]models.School, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, board_id, name FROM schools WHERE board_id = $1 ORDER BY name`, boardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []models.School
	for rows.Next() {
		var s models.School
		if err := rows.Scan(&s.ID, &s.BoardID, &s.Name); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

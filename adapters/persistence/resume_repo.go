package persistence

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-builder/internal/domain/resume"
	"github.com/khoahotran/resume-builder/pkg/apperror"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

type postgresResumeRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresResumeRepo(db *pgxpool.Pool, logger logger.Logger) resume.Repository {
	return &postgresResumeRepo{db: db, logger: logger}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const resumeColumns = "id, owner_id, title, data, template, theme, created_at, updated_at"

func scanResume(row pgx.Row, l logger.Logger) (*resume.Resume, error) {
	r := &resume.Resume{}
	var dataBytes, themeBytes []byte

	err := row.Scan(
		&r.ID,
		&r.OwnerID,
		&r.Title,
		&dataBytes,
		&r.Template,
		&themeBytes,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("resume", "")
		}
		return nil, apperror.NewInternal("failed to scan resume row", err)
	}

	if err := json.Unmarshal(dataBytes, &r.Data); err != nil {
		return nil, apperror.NewInternal("failed to unmarshal resume data", err)
	}
	if len(themeBytes) > 0 {
		if err := json.Unmarshal(themeBytes, &r.Theme); err != nil {
			l.Warn("Failed to unmarshal resume theme", zap.String("resume_id", r.ID.String()), zap.Error(err))
			r.Theme = resume.Theme{}
		}
	}
	return r, nil
}

func scanResumes(rows pgx.Rows, l logger.Logger) ([]*resume.Resume, error) {
	defer rows.Close()
	resumes := make([]*resume.Resume, 0)

	for rows.Next() {
		r, err := scanResume(rows, l)
		if err != nil {
			return nil, err
		}
		resumes = append(resumes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating resume rows", err)
	}
	return resumes, nil
}

func marshalResume(r *resume.Resume) (data, theme []byte, err error) {
	data, err = json.Marshal(r.Data)
	if err != nil {
		return nil, nil, apperror.NewInternal("failed to marshal resume data", err)
	}
	theme, err = json.Marshal(r.Theme)
	if err != nil {
		return nil, nil, apperror.NewInternal("failed to marshal resume theme", err)
	}
	return data, theme, nil
}

func (r *postgresResumeRepo) Save(ctx context.Context, res *resume.Resume) error {
	dataBytes, themeBytes, err := marshalResume(res)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO resumes (id, owner_id, title, data, template, theme, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = r.db.Exec(ctx, query,
		res.ID, res.OwnerID, res.Title, dataBytes, res.Template, themeBytes,
		res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save resume", err)
	}
	return nil
}

// Update rewrites the whole record; resumes are never partially persisted.
func (r *postgresResumeRepo) Update(ctx context.Context, res *resume.Resume) error {
	dataBytes, themeBytes, err := marshalResume(res)
	if err != nil {
		return err
	}

	query := `
		UPDATE resumes SET
			title = $2, data = $3, template = $4, theme = $5, updated_at = $6
		WHERE id = $1 AND owner_id = $7
	`
	cmdTag, err := r.db.Exec(ctx, query,
		res.ID, res.Title, dataBytes, res.Template, themeBytes, res.UpdatedAt,
		res.OwnerID,
	)
	if err != nil {
		return apperror.NewInternal("failed to update resume", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("resume", res.ID.String())
	}
	return nil
}

func (r *postgresResumeRepo) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	query := `DELETE FROM resumes WHERE id = $1 AND owner_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to delete resume", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("resume", id.String())
	}
	return nil
}

func (r *postgresResumeRepo) FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*resume.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE id = $1 AND owner_id = $2`
	res, err := scanResume(r.db.QueryRow(ctx, query, id, ownerID), r.logger)
	if err != nil && errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.NewNotFound("resume", id.String())
	}
	return res, err
}

func (r *postgresResumeRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*resume.Resume, error) {
	builder := psql.Select(resumeColumns).
		From("resumes").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("updated_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list resumes query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query resumes by owner", err)
	}

	return scanResumes(rows, r.logger)
}

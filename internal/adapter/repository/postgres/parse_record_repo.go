package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcos-nsantos/geocoord-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/geocoord-backend/internal/domain"
	"github.com/marcos-nsantos/geocoord-backend/internal/domain/entity"
	"github.com/marcos-nsantos/geocoord-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/geocoord-backend/internal/pkg/pagination"
)

const (
	insertParseRecordQuery = `
		INSERT INTO parse_records (id, user_id, input, location, precision_deg, globe, notation, created_at)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326)::geography, $6, $7, $8, $9)
	`
	selectParseRecordColumns = `
		SELECT id, user_id, input,
			   ST_Y(location::geometry) as lat, ST_X(location::geometry) as lng,
			   precision_deg, globe, notation, created_at
		FROM parse_records
	`
)

type ParseRecordRepo struct {
	pool *pgxpool.Pool
}

func NewParseRecordRepo(pool *pgxpool.Pool) *ParseRecordRepo {
	return &ParseRecordRepo{pool: pool}
}

func (r *ParseRecordRepo) Create(ctx context.Context, record *entity.ParseRecord) error {
	_, err := r.pool.Exec(ctx, insertParseRecordQuery, insertArgs(record)...)
	if err != nil {
		return fmt.Errorf("inserting parse record: %w", err)
	}
	return nil
}

func (r *ParseRecordRepo) BatchCreate(ctx context.Context, records []entity.ParseRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for i := range records {
		batch.Queue(insertParseRecordQuery, insertArgs(&records[i])...)
	}

	results := tx.SendBatch(ctx, batch)
	for range records {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("inserting parse record: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("closing batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (r *ParseRecordRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ParseRecord, error) {
	query := selectParseRecordColumns + `WHERE id = $1`

	record, err := scanParseRecord(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrParseRecordNotFound
		}
		return nil, fmt.Errorf("querying parse record: %w", err)
	}
	return record, nil
}

func (r *ParseRecordRepo) List(ctx context.Context, userID uuid.UUID, params repository.ParseRecordListParams) ([]entity.ParseRecord, *pagination.Info, error) {
	whereClause, args := buildFilter(userID, params.ParseRecordFilter)
	argNum := len(args) + 1

	// Count total
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM parse_records WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, nil, fmt.Errorf("counting parse records: %w", err)
	}

	query := fmt.Sprintf(`%s
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, selectParseRecordColumns, whereClause, argNum, argNum+1)
	args = append(args, params.Pagination.Limit(), params.Pagination.Offset())

	records, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}

	pageInfo := params.Pagination.Info(total)
	return records, pageInfo, nil
}

func (r *ParseRecordRepo) ListAll(ctx context.Context, userID uuid.UUID, filter repository.ParseRecordFilter) ([]entity.ParseRecord, error) {
	whereClause, args := buildFilter(userID, filter)
	query := fmt.Sprintf(`%s
		WHERE %s
		ORDER BY created_at ASC
	`, selectParseRecordColumns, whereClause)

	return r.query(ctx, query, args...)
}

func (r *ParseRecordRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM parse_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting parse record: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrParseRecordNotFound
	}
	return nil
}

func (r *ParseRecordRepo) query(ctx context.Context, query string, args ...any) ([]entity.ParseRecord, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying parse records: %w", err)
	}
	defer rows.Close()

	var records []entity.ParseRecord
	for rows.Next() {
		record, err := scanParseRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning parse record: %w", err)
		}
		records = append(records, *record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating parse records: %w", err)
	}
	return records, nil
}

func buildFilter(userID uuid.UUID, filter repository.ParseRecordFilter) (string, []any) {
	conditions := []string{"user_id = $1"}
	args := []any{userID}
	argNum := 2

	if filter.BoundingBox != nil {
		bb := filter.BoundingBox
		conditions = append(conditions, fmt.Sprintf(`
			ST_Intersects(
				location,
				ST_MakeEnvelope($%d, $%d, $%d, $%d, 4326)::geography
			)
		`, argNum, argNum+1, argNum+2, argNum+3))
		args = append(args, bb.MinLng, bb.MinLat, bb.MaxLng, bb.MaxLat)
		argNum += 4
	}

	if filter.Notation != "" {
		conditions = append(conditions, fmt.Sprintf("notation = $%d", argNum))
		args = append(args, filter.Notation)
	}

	return strings.Join(conditions, " AND "), args
}

func insertArgs(record *entity.ParseRecord) []any {
	c := record.Coordinate
	return []any{
		record.ID, record.UserID, record.Input,
		c.Longitude, c.Latitude, c.Precision, c.Globe,
		record.Notation, record.CreatedAt,
	}
}

func scanParseRecord(row pgx.Row) (*entity.ParseRecord, error) {
	var record entity.ParseRecord
	var coord valueobject.GlobeCoordinate

	err := row.Scan(
		&record.ID, &record.UserID, &record.Input,
		&coord.Latitude, &coord.Longitude, &coord.Precision, &coord.Globe,
		&record.Notation, &record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Coordinate = &coord
	return &record, nil
}

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-dataset-loader/internal/logger"
	"github.com/MKhiriev/go-dataset-loader/models"
)

// stageChunkSize bounds the rows of a single INSERT so that SQLite stays
// below its bound-variable limit.
const stageChunkSize = 200

type stagedItemRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewStagedItemRepository(db *DB, logger *logger.Logger) StagedItemRepository {
	return &stagedItemRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *stagedItemRepository) Stage(ctx context.Context, items []models.StagedItem) (int, error) {
	log := logger.ContextOrDefault(ctx, r.logger)

	if len(items) == 0 {
		return 0, nil
	}

	rows := make([]stagedRow, 0, len(items))
	for _, item := range items {
		payload, err := json.Marshal(item.Item)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrEncodingItem, err)
		}
		rows = append(rows, stagedRow{
			refKind:     item.Ref.Kind().String(),
			refValue:    item.Ref.Value(),
			contentHash: item.ContentHash,
			item:        string(payload),
		})
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "stagedItemRepository.Stage").Msg("failed to begin transaction")
		return 0, r.wrapDBError(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	now := r.now()
	staged := 0
	for start := 0; start < len(rows); start += stageChunkSize {
		end := min(start+stageChunkSize, len(rows))

		query, args, err := buildStageQuery(r.builder(), rows[start:end], now)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).
				Str("func", "stagedItemRepository.Stage").
				Int("rows", end-start).
				Msg("failed to insert staged items")
			return 0, r.wrapDBError(ErrExecutingStatement, err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return 0, r.wrapDBError(ErrExecutingStatement, err)
		}
		staged += int(affected)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "stagedItemRepository.Stage").Msg("failed to commit transaction")
		return 0, r.wrapDBError(ErrCommitingTransaction, err)
	}

	log.Debug().
		Str("func", "stagedItemRepository.Stage").
		Int("received", len(items)).
		Int("staged", staged).
		Msg("items staged")

	return staged, nil
}

func (r *stagedItemRepository) Pending(ctx context.Context, limit int) ([]models.StagedItem, error) {
	log := logger.ContextOrDefault(ctx, r.logger)

	if limit <= 0 {
		return nil, nil
	}

	query, args, err := buildPendingQuery(r.builder(), limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "stagedItemRepository.Pending").Msg("failed to query pending items")
		return nil, r.wrapDBError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.StagedItem
	for rows.Next() {
		item, err := scanStagedItem(rows)
		if err != nil {
			log.Err(err).Str("func", "stagedItemRepository.Pending").Msg("failed to scan staged item")
			return nil, err
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, r.wrapDBError(ErrScanningRows, err)
	}

	return items, nil
}

func (r *stagedItemRepository) MarkUploaded(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := buildMarkUploadedQuery(r.builder(), ids, r.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "stagedItemRepository.MarkUploaded", query, args)
}

func (r *stagedItemRepository) MarkFailed(ctx context.Context, ids []int64, maxAttempts int) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := buildMarkFailedQuery(r.builder(), ids, maxAttempts, r.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "stagedItemRepository.MarkFailed", query, args)
}

func (r *stagedItemRepository) Requeue(ctx context.Context) (int64, error) {
	query, args, err := buildRequeueQuery(r.builder(), r.now())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execCount(ctx, "stagedItemRepository.Requeue", query, args)
}

func (r *stagedItemRepository) CountByStatus(ctx context.Context) (map[models.StagedStatus]int, error) {
	query, args, err := buildCountByStatusQuery(r.builder())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.wrapDBError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	counts := map[models.StagedStatus]int{
		models.StagedPending:  0,
		models.StagedUploaded: 0,
		models.StagedFailed:   0,
	}
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err = rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		counts[models.StagedStatus(status)] = count
	}
	if err = rows.Err(); err != nil {
		return nil, r.wrapDBError(ErrScanningRows, err)
	}

	return counts, nil
}

func (r *stagedItemRepository) PurgeUploaded(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := buildPurgeUploadedQuery(r.builder(), before.UTC())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execCount(ctx, "stagedItemRepository.PurgeUploaded", query, args)
}

func (r *stagedItemRepository) exec(ctx context.Context, fn, query string, args []any) error {
	_, err := r.execCount(ctx, fn, query, args)
	return err
}

func (r *stagedItemRepository) execCount(ctx context.Context, fn, query string, args []any) (int64, error) {
	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		logger.ContextOrDefault(ctx, r.logger).Err(err).Str("func", fn).Msg("failed to execute statement")
		return 0, r.wrapDBError(ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, r.wrapDBError(ErrExecutingStatement, err)
	}

	return affected, nil
}

func scanStagedItem(rows *sql.Rows) (models.StagedItem, error) {
	var (
		item     models.StagedItem
		refKind  string
		refValue string
		payload  []byte
		status   string
	)

	err := rows.Scan(
		&item.ID,
		&refKind,
		&refValue,
		&item.ContentHash,
		&payload,
		&status,
		&item.Attempts,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return models.StagedItem{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if err = json.Unmarshal(payload, &item.Item); err != nil {
		return models.StagedItem{}, fmt.Errorf("%w: staged item %d: %w", ErrEncodingItem, item.ID, err)
	}

	item.Ref = refFromColumns(refKind, refValue)
	item.Status = models.StagedStatus(status)

	return item, nil
}

func refFromColumns(kind, value string) models.DatasetRef {
	switch models.ParseDatasetRefKind(kind) {
	case models.DatasetRefByName:
		return models.ByName(value)
	case models.DatasetRefByID:
		return models.ByID(value)
	default:
		return models.DatasetRef{}
	}
}

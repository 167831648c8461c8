package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-dataset-loader/models"
)

const (
	stagedItemsTable = "staged_items"

	onConflictSkip = "ON CONFLICT (ref_kind, ref_value, content_hash) DO NOTHING"
)

var stagedItemColumns = []string{
	"id", "ref_kind", "ref_value", "content_hash", "item",
	"status", "attempts", "created_at", "updated_at",
}

// stagedRow is a staged item ready to be written.
type stagedRow struct {
	refKind     string
	refValue    string
	contentHash string
	item        string
}

func buildStageQuery(b sq.StatementBuilderType, rows []stagedRow, now time.Time) (string, []any, error) {
	insert := b.Insert(stagedItemsTable).
		Columns("ref_kind", "ref_value", "content_hash", "item", "status", "attempts", "created_at", "updated_at")

	for _, r := range rows {
		insert = insert.Values(r.refKind, r.refValue, r.contentHash, r.item, string(models.StagedPending), 0, now, now)
	}

	return insert.Suffix(onConflictSkip).ToSql()
}

func buildPendingQuery(b sq.StatementBuilderType, limit int) (string, []any, error) {
	return b.Select(stagedItemColumns...).
		From(stagedItemsTable).
		Where(sq.Eq{"status": string(models.StagedPending)}).
		OrderBy("id ASC").
		Limit(uint64(limit)).
		ToSql()
}

func buildMarkUploadedQuery(b sq.StatementBuilderType, ids []int64, now time.Time) (string, []any, error) {
	return b.Update(stagedItemsTable).
		Set("status", string(models.StagedUploaded)).
		Set("updated_at", now).
		Where(sq.Eq{"id": ids}).
		ToSql()
}

// buildMarkFailedQuery counts one more attempt; the CASE reads the old
// attempts value, so an item fails on the attempt that reaches maxAttempts.
func buildMarkFailedQuery(b sq.StatementBuilderType, ids []int64, maxAttempts int, now time.Time) (string, []any, error) {
	return b.Update(stagedItemsTable).
		Set("attempts", sq.Expr("attempts + 1")).
		Set("status", sq.Expr("CASE WHEN attempts + 1 >= ? THEN ? ELSE status END", maxAttempts, string(models.StagedFailed))).
		Set("updated_at", now).
		Where(sq.Eq{"id": ids, "status": string(models.StagedPending)}).
		ToSql()
}

func buildRequeueQuery(b sq.StatementBuilderType, now time.Time) (string, []any, error) {
	return b.Update(stagedItemsTable).
		Set("status", string(models.StagedPending)).
		Set("attempts", 0).
		Set("updated_at", now).
		Where(sq.Eq{"status": string(models.StagedFailed)}).
		ToSql()
}

func buildCountByStatusQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("status", "COUNT(*)").
		From(stagedItemsTable).
		GroupBy("status").
		ToSql()
}

func buildPurgeUploadedQuery(b sq.StatementBuilderType, before time.Time) (string, []any, error) {
	return b.Delete(stagedItemsTable).
		Where(sq.And{
			sq.Eq{"status": string(models.StagedUploaded)},
			sq.Lt{"updated_at": before},
		}).
		ToSql()
}

package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/phrazzld/catalog-api/internal/store"
)

// record is one row of a document table.
type record[D any] struct {
	ID  string
	Doc D
}

// documentTable stores documents of type D as JSONB in table.
// table is always one of the package constants, never user input.
type documentTable[D any] struct {
	db       store.DBTX
	table    string
	entity   string
	notFound error
}

func (t documentTable[D]) parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q is not a valid id", t.notFound, id)
	}
	return parsed, nil
}

func (t documentTable[D]) list(ctx context.Context) ([]record[D], error) {
	query := fmt.Sprintf(`SELECT id::text, doc FROM %s ORDER BY created_at, id`, t.table)

	rows, err := t.db.QueryContext(ctx, query)
	if err != nil {
		return nil, store.NewStoreError(t.entity, "list", "query failed", MapError(err))
	}
	defer rows.Close()

	out := make([]record[D], 0)
	for rows.Next() {
		rec, err := t.scan(rows.Scan)
		if err != nil {
			return nil, store.NewStoreError(t.entity, "list", "scan failed", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError(t.entity, "list", "iteration failed", MapError(err))
	}
	return out, nil
}

func (t documentTable[D]) insert(ctx context.Context, doc D) (string, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s document: %w", t.entity, err)
	}

	id := uuid.New()
	query := fmt.Sprintf(`INSERT INTO %s (id, doc) VALUES ($1, $2::jsonb)`, t.table)
	if _, err := t.db.ExecContext(ctx, query, id, string(raw)); err != nil {
		return "", store.NewStoreError(t.entity, "create", "insert failed", MapError(err))
	}
	return id.String(), nil
}

// merge shallow-merges patch into the stored document and returns the result.
// A nil patch is a plain lookup.
func (t documentTable[D]) merge(ctx context.Context, id string, patch any) (record[D], error) {
	parsed, err := t.parseID(id)
	if err != nil {
		return record[D]{}, err
	}

	var (
		query string
		args  []any
	)
	if patch == nil {
		query = fmt.Sprintf(`SELECT id::text, doc FROM %s WHERE id = $1`, t.table)
		args = []any{parsed}
	} else {
		raw, err := json.Marshal(patch)
		if err != nil {
			return record[D]{}, fmt.Errorf("failed to encode %s patch: %w", t.entity, err)
		}
		query = fmt.Sprintf(`UPDATE %s SET doc = doc || $2::jsonb WHERE id = $1 RETURNING id::text, doc`, t.table)
		args = []any{parsed, string(raw)}
	}

	rec, err := t.scan(t.db.QueryRowContext(ctx, query, args...).Scan)
	if err != nil {
		mapped := MapError(err)
		if IsNotFoundError(mapped) {
			return record[D]{}, fmt.Errorf("%w: %v", t.notFound, err)
		}
		return record[D]{}, store.NewStoreError(t.entity, "update", "update failed", mapped)
	}
	return rec, nil
}

func (t documentTable[D]) delete(ctx context.Context, id string) error {
	parsed, err := t.parseID(id)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, t.table)
	result, err := t.db.ExecContext(ctx, query, parsed)
	if err != nil {
		return store.NewStoreError(t.entity, "delete", "delete failed", MapError(err))
	}
	if err := CheckRowsAffected(result, t.entity); err != nil {
		if IsNotFoundError(err) {
			return t.notFound
		}
		return err
	}
	return nil
}

func (t documentTable[D]) scan(scan func(dest ...any) error) (record[D], error) {
	var (
		rec record[D]
		raw []byte
	)
	if err := scan(&rec.ID, &raw); err != nil {
		return rec, err
	}
	if err := json.Unmarshal(raw, &rec.Doc); err != nil {
		return rec, fmt.Errorf("failed to decode %s document: %w", t.entity, err)
	}
	return rec, nil
}

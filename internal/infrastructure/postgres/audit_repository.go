package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo historial append-only en audit_records.
type AuditRepo struct {
	q Querier
}

func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

func (r *AuditRepo) Append(ctx context.Context, rec *entity.AuditRecord) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO audit_records (id, product_name, product_key, operation, amount, staff, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rec.ID, rec.ProductName, entity.NormalizeName(rec.ProductName), rec.Operation, rec.Amount, rec.Staff, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit record: %w", err)
	}
	return nil
}

// List filtra por subcadena de staff (ILIKE) y por producto, más recientes primero.
func (r *AuditRepo) List(ctx context.Context, f repository.AuditFilter) ([]*entity.AuditRecord, error) {
	var (
		where []string
		args  []any
	)
	if f.Staff != "" {
		args = append(args, "%"+escapeLike(f.Staff)+"%")
		where = append(where, fmt.Sprintf("staff ILIKE $%d", len(args)))
	}
	if f.Product != "" {
		args = append(args, entity.NormalizeName(f.Product))
		where = append(where, fmt.Sprintf("product_key = $%d", len(args)))
	}

	query := `SELECT id, product_name, operation, amount, staff, created_at FROM audit_records`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit records: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.AuditRecord, 0)
	for rows.Next() {
		var a entity.AuditRecord
		if err := rows.Scan(&a.ID, &a.ProductName, &a.Operation, &a.Amount, &a.Staff, &a.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

package mongodb

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type auditDocument struct {
	ID          string               `bson:"_id"`
	ProductName string               `bson:"product_name"`
	ProductKey  string               `bson:"product_key"`
	Operation   string               `bson:"operation"`
	Amount      primitive.Decimal128 `bson:"amount"`
	Staff       string               `bson:"staff"`
	CreatedAt   time.Time            `bson:"created_at"`
}

// AuditRepository historial append-only en la colección audit_records.
type AuditRepository struct {
	coll *mongo.Collection
}

var _ repository.AuditRepository = (*AuditRepository)(nil)

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(CollectionAudit)}
}

func (r *AuditRepository) Append(ctx context.Context, rec *entity.AuditRecord) error {
	amount, err := toDecimal128(rec.Amount)
	if err != nil {
		return err
	}
	_, err = r.coll.InsertOne(ctx, auditDocument{
		ID:          rec.ID,
		ProductName: rec.ProductName,
		ProductKey:  entity.NormalizeName(rec.ProductName),
		Operation:   rec.Operation,
		Amount:      amount,
		Staff:       rec.Staff,
		CreatedAt:   rec.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("insert audit record: %w", err)
	}
	return nil
}

func (r *AuditRepository) List(ctx context.Context, f repository.AuditFilter) ([]*entity.AuditRecord, error) {
	filter := bson.M{}
	if f.Staff != "" {
		filter["staff"] = bson.M{"$regex": regexp.QuoteMeta(f.Staff), "$options": "i"}
	}
	if f.Product != "" {
		filter["product_key"] = entity.NormalizeName(f.Product)
	}

	cursor, err := r.coll.Find(ctx, filter, pageOptions(f.Limit, f.Offset))
	if err != nil {
		return nil, fmt.Errorf("list audit records: %w", err)
	}
	defer cursor.Close(ctx)

	out := make([]*entity.AuditRecord, 0)
	for cursor.Next(ctx) {
		var doc auditDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		amount, err := fromDecimal128(doc.Amount)
		if err != nil {
			return nil, err
		}
		out = append(out, &entity.AuditRecord{
			ID:          doc.ID,
			ProductName: doc.ProductName,
			Operation:   doc.Operation,
			Amount:      amount,
			Staff:       doc.Staff,
			CreatedAt:   doc.CreatedAt,
		})
	}
	return out, cursor.Err()
}

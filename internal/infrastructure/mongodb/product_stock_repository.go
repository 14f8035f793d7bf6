package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/stockwatch-api/internal/domain"
	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type productDocument struct {
	ID        string               `bson:"_id"`
	Name      string               `bson:"name"`
	NameKey   string               `bson:"name_key"`
	Quantity  primitive.Decimal128 `bson:"quantity"`
	Version   int64                `bson:"version"`
	CreatedAt time.Time            `bson:"created_at"`
	UpdatedAt time.Time            `bson:"updated_at"`
}

func (d *productDocument) toEntity() (*entity.ProductStock, error) {
	qty, err := fromDecimal128(d.Quantity)
	if err != nil {
		return nil, err
	}
	return &entity.ProductStock{
		ID:        d.ID,
		Name:      d.Name,
		NameKey:   d.NameKey,
		Quantity:  qty,
		Version:   d.Version,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

// ProductStockRepository implementación con MongoDB del puerto repository.ProductStockRepository.
// El compare-and-swap se hace filtrando por version en el mismo UpdateOne.
type ProductStockRepository struct {
	coll *mongo.Collection
}

var _ repository.ProductStockRepository = (*ProductStockRepository)(nil)

// NewProductStockRepository construye el repositorio sobre la colección products.
func NewProductStockRepository(db *mongo.Database) *ProductStockRepository {
	return &ProductStockRepository{coll: db.Collection(CollectionProducts)}
}

func (r *ProductStockRepository) FindByNameKey(ctx context.Context, nameKey string) (*entity.ProductStock, error) {
	var doc productDocument
	err := r.coll.FindOne(ctx, bson.M{"name_key": nameKey}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	return doc.toEntity()
}

func (r *ProductStockRepository) Create(ctx context.Context, p *entity.ProductStock) error {
	qty, err := toDecimal128(p.Quantity)
	if err != nil {
		return err
	}
	_, err = r.coll.InsertOne(ctx, productDocument{
		ID:        p.ID,
		Name:      p.Name,
		NameKey:   p.NameKey,
		Quantity:  qty,
		Version:   p.Version,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	})
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductStockRepository) UpdateQuantity(ctx context.Context, id string, expectedVersion int64, quantity decimal.Decimal) error {
	qty, err := toDecimal128(quantity)
	if err != nil {
		return err
	}
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "version": expectedVersion},
		bson.M{
			"$set": bson.M{"quantity": qty, "updated_at": time.Now().UTC()},
			"$inc": bson.M{"version": 1},
		},
	)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	if res.MatchedCount == 1 {
		return nil
	}
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("count product: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return domain.ErrConflict
}

func (r *ProductStockRepository) List(ctx context.Context) ([]*entity.ProductStock, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*entity.ProductStock
	for cursor.Next(ctx) {
		var doc productDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		p, err := doc.toEntity()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, cursor.Err()
}

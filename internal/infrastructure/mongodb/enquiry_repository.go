package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// enquiryDocument alertas y consultas comparten colección; kind distingue la variante.
type enquiryDocument struct {
	ID                string                `bson:"_id"`
	Kind              string                `bson:"kind"`
	ProductName       string                `bson:"product_name"`
	Quantity          primitive.Decimal128  `bson:"quantity"`
	ResultingQuantity *primitive.Decimal128 `bson:"resulting_quantity,omitempty"`
	Severity          string                `bson:"severity,omitempty"`
	Message           string                `bson:"message"`
	StaffUsername     string                `bson:"staff_username"`
	StaffName         string                `bson:"staff_name,omitempty"`
	StaffEmail        string                `bson:"staff_email,omitempty"`
	CreatedAt         time.Time             `bson:"created_at"`
}

// EnquiryRepository colección enquiries.
type EnquiryRepository struct {
	coll *mongo.Collection
}

var _ repository.EnquiryRepository = (*EnquiryRepository)(nil)

func NewEnquiryRepository(db *mongo.Database) *EnquiryRepository {
	return &EnquiryRepository{coll: db.Collection(CollectionEnquiries)}
}

func (r *EnquiryRepository) Create(ctx context.Context, e *entity.Enquiry) error {
	qty, err := toDecimal128(e.Quantity)
	if err != nil {
		return err
	}
	doc := enquiryDocument{
		ID:            e.ID,
		Kind:          e.Kind,
		ProductName:   e.ProductName,
		Quantity:      qty,
		Severity:      e.Severity,
		Message:       e.Message,
		StaffUsername: e.StaffUsername,
		StaffName:     e.StaffName,
		StaffEmail:    e.StaffEmail,
		CreatedAt:     e.CreatedAt,
	}
	if e.ResultingQuantity.Valid {
		rq, err := toDecimal128(e.ResultingQuantity.Decimal)
		if err != nil {
			return err
		}
		doc.ResultingQuantity = &rq
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert enquiry: %w", err)
	}
	return nil
}

func (r *EnquiryRepository) List(ctx context.Context, limit, offset int) ([]*entity.Enquiry, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, pageOptions(limit, offset))
	if err != nil {
		return nil, fmt.Errorf("list enquiries: %w", err)
	}
	defer cursor.Close(ctx)

	out := make([]*entity.Enquiry, 0)
	for cursor.Next(ctx) {
		var doc enquiryDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		e, err := doc.toEntity()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, cursor.Err()
}

func (d *enquiryDocument) toEntity() (*entity.Enquiry, error) {
	qty, err := fromDecimal128(d.Quantity)
	if err != nil {
		return nil, err
	}
	e := &entity.Enquiry{
		ID:            d.ID,
		Kind:          d.Kind,
		ProductName:   d.ProductName,
		Quantity:      qty,
		Severity:      d.Severity,
		Message:       d.Message,
		StaffUsername: d.StaffUsername,
		StaffName:     d.StaffName,
		StaffEmail:    d.StaffEmail,
		CreatedAt:     d.CreatedAt,
	}
	if d.ResultingQuantity != nil {
		rq, err := fromDecimal128(*d.ResultingQuantity)
		if err != nil {
			return nil, err
		}
		e.ResultingQuantity = decimal.NewNullDecimal(rq)
	}
	return e, nil
}

package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/stockwatch-api/internal/domain"
	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type staffDocument struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	Phone        string    `bson:"phone,omitempty"`
	Email        string    `bson:"email"`
	Username     string    `bson:"username"`
	UsernameKey  string    `bson:"username_key"`
	PasswordHash string    `bson:"password_hash"`
	Role         string    `bson:"role"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func (d *staffDocument) toEntity() *entity.Staff {
	return &entity.Staff{
		ID:           d.ID,
		Name:         d.Name,
		Phone:        d.Phone,
		Email:        d.Email,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		Role:         d.Role,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// StaffRepository colección staff. username_key y email tienen índice único.
type StaffRepository struct {
	coll *mongo.Collection
}

var _ repository.StaffRepository = (*StaffRepository)(nil)

func NewStaffRepository(db *mongo.Database) *StaffRepository {
	return &StaffRepository{coll: db.Collection(CollectionStaff)}
}

func (r *StaffRepository) Create(ctx context.Context, s *entity.Staff) error {
	_, err := r.coll.InsertOne(ctx, staffDocument{
		ID:           s.ID,
		Name:         s.Name,
		Phone:        s.Phone,
		Email:        strings.ToLower(s.Email),
		Username:     s.Username,
		UsernameKey:  strings.ToLower(s.Username),
		PasswordHash: s.PasswordHash,
		Role:         s.Role,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	})
	if mongo.IsDuplicateKeyError(err) {
		if strings.Contains(err.Error(), "uniq_email") {
			return domain.ErrEmailAlreadyExists
		}
		return domain.ErrUsernameTaken
	}
	if err != nil {
		return fmt.Errorf("insert staff: %w", err)
	}
	return nil
}

func (r *StaffRepository) FindByUsername(ctx context.Context, username string) (*entity.Staff, error) {
	return r.findOne(ctx, bson.M{"username_key": strings.ToLower(username)})
}

func (r *StaffRepository) FindByEmail(ctx context.Context, email string) (*entity.Staff, error) {
	return r.findOne(ctx, bson.M{"email": strings.ToLower(email)})
}

func (r *StaffRepository) List(ctx context.Context, limit, offset int) ([]*entity.Staff, error) {
	opts := options.Find().SetSort(bson.D{{Key: "username_key", Value: 1}})
	if offset > 0 {
		opts.SetSkip(int64(offset))
	}
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []staffDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]*entity.Staff, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toEntity())
	}
	return out, nil
}

func (r *StaffRepository) findOne(ctx context.Context, filter bson.M) (*entity.Staff, error) {
	var doc staffDocument
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find staff: %w", err)
	}
	return doc.toEntity(), nil
}

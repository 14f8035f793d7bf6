package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
	"github.com/jhoicas/stockwatch-api/internal/infrastructure/memory"
	"github.com/jhoicas/stockwatch-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/stockwatch-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stockwatch-api/pkg/config"
	"github.com/jhoicas/stockwatch-api/pkg/logger"
)

// Repositories puertos de persistencia del backend elegido.
type Repositories struct {
	Products  repository.ProductStockRepository
	Audit     repository.AuditRepository
	Enquiries repository.EnquiryRepository
	Staff     repository.StaffRepository
	Driver    string

	close func(context.Context) error
}

// Close libera las conexiones del backend.
func (r *Repositories) Close(ctx context.Context) error {
	if r.close == nil {
		return nil
	}
	return r.close(ctx)
}

// Open conecta al backend configurado en STORE_DRIVER y devuelve sus repositorios.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Repositories, error) {
	switch cfg.Store.Driver {
	case config.StoreMongo:
		client, db, err := mongodb.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("MongoDB conectado")
		return &Repositories{
			Products:  mongodb.NewProductStockRepository(db),
			Audit:     mongodb.NewAuditRepository(db),
			Enquiries: mongodb.NewEnquiryRepository(db),
			Staff:     mongodb.NewStaffRepository(db),
			Driver:    config.StoreMongo,
			close:     client.Disconnect,
		}, nil

	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Str("database", cfg.DB.DBName).Msg("PostgreSQL conectado")
		return &Repositories{
			Products:  postgres.NewProductStockRepository(pool),
			Audit:     postgres.NewAuditRepository(pool),
			Enquiries: postgres.NewEnquiryRepository(pool),
			Staff:     postgres.NewStaffRepository(pool),
			Driver:    config.StorePostgres,
			close: func(context.Context) error {
				pool.Close()
				return nil
			},
		}, nil

	case config.StoreMemory:
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		return FromMemory(memory.NewStore()), nil
	}
	return nil, fmt.Errorf("store: driver desconocido %q", cfg.Store.Driver)
}

// FromMemory envuelve un almacén en memoria (tests y STORE_DRIVER=memory).
func FromMemory(m *memory.Store) *Repositories {
	return &Repositories{
		Products:  m.Products,
		Audit:     m.Audit,
		Enquiries: m.Enquiries,
		Staff:     m.Staff,
		Driver:    config.StoreMemory,
	}
}

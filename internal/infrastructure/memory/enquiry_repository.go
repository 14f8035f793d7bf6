package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
)

// EnquiryRepository alertas y consultas en memoria.
type EnquiryRepository struct {
	mu        sync.RWMutex
	enquiries []*entity.Enquiry
}

var _ repository.EnquiryRepository = (*EnquiryRepository)(nil)

func NewEnquiryRepository() *EnquiryRepository {
	return &EnquiryRepository{}
}

func (r *EnquiryRepository) Create(_ context.Context, enquiry *entity.Enquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *enquiry
	r.enquiries = append(r.enquiries, &cp)
	return nil
}

func (r *EnquiryRepository) List(_ context.Context, limit, offset int) ([]*entity.Enquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Enquiry, 0, len(r.enquiries))
	for i := len(r.enquiries) - 1; i >= 0; i-- {
		cp := *r.enquiries[i]
		out = append(out, &cp)
	}
	return page(out, limit, offset), nil
}

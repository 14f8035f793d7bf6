package enquiry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stockwatch-api/internal/application/dto"
	"github.com/jhoicas/stockwatch-api/internal/application/notify"
	"github.com/jhoicas/stockwatch-api/internal/application/ports"
	"github.com/jhoicas/stockwatch-api/internal/domain"
	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	domaininv "github.com/jhoicas/stockwatch-api/internal/domain/inventory"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
	"github.com/jhoicas/stockwatch-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// StaffDirectory resuelve empleados por username (lo implementa StaffRepository).
type StaffDirectory interface {
	FindByUsername(ctx context.Context, username string) (*entity.Staff, error)
}

// Sender entrega notificaciones sin propagar errores (lo implementa notify.Notifier).
type Sender interface {
	Send(ctx context.Context, msg ports.Message) notify.Result
}

// StaffEnquiryInput consulta de producto enviada por un empleado.
type StaffEnquiryInput struct {
	Product  string
	Quantity decimal.Decimal
	Message  string
}

// Store persiste alertas de stock bajo y consultas de empleados en una sola colección.
type Store struct {
	repo      repository.EnquiryRepository
	staff     StaffDirectory
	sender    Sender
	recipient string
	log       *logger.Logger
	now       func() time.Time
}

// NewStore construye el almacén de consultas. recipient es el buzón que recibe las consultas.
func NewStore(repo repository.EnquiryRepository, staff StaffDirectory, sender Sender, recipient string, log *logger.Logger) *Store {
	return &Store{
		repo:      repo,
		staff:     staff,
		sender:    sender,
		recipient: recipient,
		log:       log.Component("enquiry"),
		now:       time.Now,
	}
}

// RecordLowStockAlert persiste una alerta ya construida por el monitor de umbral.
func (s *Store) RecordLowStockAlert(ctx context.Context, alert *entity.Enquiry) error {
	if alert == nil || alert.Kind != entity.EnquiryKindLowStockAlert {
		return domain.ErrInvalidInput
	}
	if alert.ID == "" {
		alert.ID = uuid.New().String()
	}
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = s.now().UTC()
	}
	if !alert.Valid() {
		return domain.ErrInvalidInput
	}
	return s.repo.Create(ctx, alert)
}

// RecordStaffEnquiry resuelve al empleado de la sesión, guarda una copia de su nombre y email,
// persiste la consulta y avisa al buzón de alertas. Un fallo de entrega no falla la consulta.
func (s *Store) RecordStaffEnquiry(ctx context.Context, username string, in StaffEnquiryInput) (*entity.Enquiry, error) {
	if strings.TrimSpace(username) == "" {
		return nil, domain.ErrUnauthorized
	}
	product := strings.TrimSpace(in.Product)
	message := strings.TrimSpace(in.Message)
	if product == "" || message == "" || !domaininv.ValidAmount(in.Quantity) {
		return nil, domain.ErrInvalidInput
	}

	member, err := s.staff.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, domain.ErrUserNotFound
	}

	e := &entity.Enquiry{
		ID:            uuid.New().String(),
		Kind:          entity.EnquiryKindStaffEnquiry,
		ProductName:   product,
		Quantity:      in.Quantity,
		Message:       message,
		StaffUsername: member.Username,
		StaffName:     member.Name,
		StaffEmail:    member.Email,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}

	res := s.sender.Send(ctx, ports.Message{
		To:      s.recipient,
		Subject: fmt.Sprintf("Consulta de producto: %s", e.ProductName),
		Body: fmt.Sprintf("%s (%s) solicita %s unidades de %s.\n\n%s",
			nonEmpty(e.StaffName, e.StaffUsername), e.StaffEmail, e.Quantity.String(), e.ProductName, e.Message),
		ReplyTo: e.StaffEmail,
	})
	if !res.Delivered() {
		s.log.Warn().Str("enquiry_id", e.ID).Str("reason", res.Reason).Msg("consulta guardada sin notificación")
	}
	return e, nil
}

// ListAll devuelve alertas y consultas, las más recientes primero.
func (s *Store) ListAll(ctx context.Context, page dto.PageRequest) ([]dto.EnquiryResponse, error) {
	page.DefaultPage()
	list, err := s.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EnquiryResponse, 0, len(list))
	for _, e := range list {
		out = append(out, dto.ToEnquiryResponse(e))
	}
	return out, nil
}

func nonEmpty(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

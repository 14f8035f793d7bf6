package inventory

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stockwatch-api/internal/application/ports"
	"github.com/jhoicas/stockwatch-api/internal/domain"
	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	domaininv "github.com/jhoicas/stockwatch-api/internal/domain/inventory"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
	"github.com/jhoicas/stockwatch-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// DefaultMaxAttempts intentos de compare-and-swap antes de devolver domain.ErrConflict.
const DefaultMaxAttempts = 3

// MutationInput entrada de una mutación de stock.
type MutationInput struct {
	Name   string
	Amount decimal.Decimal
	Staff  string // username de la sesión; vacío = anónimo
}

// MutationResult producto actualizado, operación aplicada y alerta disparada (si la hubo).
type MutationResult struct {
	Product   *entity.ProductStock
	Operation string
	Alert     *entity.Enquiry
}

// Ledger es el dueño exclusivo de la cantidad de cada producto y orquesta los efectos
// secundarios de cada mutación, en este orden:
//
//	validar → persistir cantidad (CAS) → auditoría → umbral (solo salidas)
//
// Solo los errores de validación y de la persistencia inicial se devuelven al caller;
// auditoría, alerta y notificación son best-effort y no deshacen la cantidad persistida.
type Ledger struct {
	repo        repository.ProductStockRepository
	audit       AuditAppender
	monitor     ThresholdEvaluator
	metrics     ports.MetricsRecorder
	log         *logger.Logger
	maxAttempts int
	now         func() time.Time
}

// NewLedger construye el ledger. maxAttempts < 1 usa DefaultMaxAttempts.
func NewLedger(
	repo repository.ProductStockRepository,
	audit AuditAppender,
	monitor ThresholdEvaluator,
	metrics ports.MetricsRecorder,
	log *logger.Logger,
	maxAttempts int,
) *Ledger {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &Ledger{
		repo:        repo,
		audit:       audit,
		monitor:     monitor,
		metrics:     metrics,
		log:         log.Component("ledger"),
		maxAttempts: maxAttempts,
		now:         time.Now,
	}
}

// AddOrIncrease crea el producto con quantity = amount (Add) o suma amount si ya existe (Increase).
// Nunca evalúa el umbral.
func (l *Ledger) AddOrIncrease(ctx context.Context, in MutationInput) (*MutationResult, error) {
	name, key, err := validate(in)
	if err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= l.maxAttempts; attempt++ {
		current, err := l.repo.FindByNameKey(ctx, key)
		if err != nil {
			return nil, err
		}

		if current == nil {
			now := l.now().UTC()
			created := &entity.ProductStock{
				ID:        uuid.New().String(),
				Name:      name,
				NameKey:   key,
				Quantity:  in.Amount,
				Version:   1,
				CreatedAt: now,
				UpdatedAt: now,
			}
			err := l.repo.Create(ctx, created)
			if errors.Is(err, domain.ErrDuplicate) {
				// Otro request creó el producto entre la lectura y el insert: reintentar como Increase.
				l.logRetry(key, attempt, err)
				continue
			}
			if err != nil {
				return nil, err
			}
			return l.afterMutation(ctx, created, entity.OperationAdd, in), nil
		}

		sum := current.Quantity.Add(in.Amount)
		if !domaininv.ValidAmount(sum) {
			return nil, domain.ErrInvalidInput
		}
		updated, err := l.swap(ctx, current, sum)
		if errors.Is(err, domain.ErrConflict) {
			l.logRetry(key, attempt, err)
			continue
		}
		if err != nil {
			return nil, err
		}
		return l.afterMutation(ctx, updated, entity.OperationIncrease, in), nil
	}
	return nil, domain.ErrConflict
}

// Increase suma amount a un producto existente. domain.ErrNotFound si no existe.
func (l *Ledger) Increase(ctx context.Context, in MutationInput) (*MutationResult, error) {
	_, key, err := validate(in)
	if err != nil {
		return nil, err
	}
	updated, err := l.mutate(ctx, key, func(p *entity.ProductStock) (decimal.Decimal, error) {
		sum := p.Quantity.Add(in.Amount)
		if !domaininv.ValidAmount(sum) {
			return decimal.Zero, domain.ErrInvalidInput
		}
		return sum, nil
	})
	if err != nil {
		return nil, err
	}
	return l.afterMutation(ctx, updated, entity.OperationIncrease, in), nil
}

// Decrease resta amount de un producto existente. domain.ErrNotFound si no existe,
// domain.ErrInsufficientStock si amount > cantidad actual (sin escribir nada).
// Tras persistir, evalúa el umbral de stock bajo.
func (l *Ledger) Decrease(ctx context.Context, in MutationInput) (*MutationResult, error) {
	_, key, err := validate(in)
	if err != nil {
		return nil, err
	}
	updated, err := l.mutate(ctx, key, func(p *entity.ProductStock) (decimal.Decimal, error) {
		if in.Amount.GreaterThan(p.Quantity) {
			return decimal.Zero, domain.ErrInsufficientStock
		}
		return p.Quantity.Sub(in.Amount), nil
	})
	if err != nil {
		return nil, err
	}
	return l.afterMutation(ctx, updated, entity.OperationDecrease, in), nil
}

// List devuelve todos los productos en el orden natural del almacenamiento.
func (l *Ledger) List(ctx context.Context) ([]*entity.ProductStock, error) {
	return l.repo.List(ctx)
}

// mutate lee, calcula la nueva cantidad con fn y la escribe con compare-and-swap,
// reintentando ante conflictos hasta maxAttempts.
func (l *Ledger) mutate(ctx context.Context, key string, fn func(p *entity.ProductStock) (decimal.Decimal, error)) (*entity.ProductStock, error) {
	for attempt := 1; attempt <= l.maxAttempts; attempt++ {
		current, err := l.repo.FindByNameKey(ctx, key)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, domain.ErrNotFound
		}
		qty, err := fn(current)
		if err != nil {
			return nil, err
		}
		updated, err := l.swap(ctx, current, qty)
		if errors.Is(err, domain.ErrConflict) {
			l.logRetry(key, attempt, err)
			continue
		}
		if err != nil {
			return nil, err
		}
		return updated, nil
	}
	return nil, domain.ErrConflict
}

func (l *Ledger) swap(ctx context.Context, current *entity.ProductStock, qty decimal.Decimal) (*entity.ProductStock, error) {
	if qty.IsNegative() {
		return nil, domain.ErrInsufficientStock
	}
	if err := l.repo.UpdateQuantity(ctx, current.ID, current.Version, qty); err != nil {
		return nil, err
	}
	updated := *current
	updated.Quantity = qty
	updated.Version = current.Version + 1
	updated.UpdatedAt = l.now().UTC()
	return &updated, nil
}

// afterMutation ejecuta la cola de efectos secundarios. La cantidad ya está persistida,
// así que la cola no se cancela si el cliente se desconecta.
func (l *Ledger) afterMutation(ctx context.Context, p *entity.ProductStock, op string, in MutationInput) *MutationResult {
	ctx = context.WithoutCancel(ctx)
	l.metrics.ObserveStockMutation(op)

	l.audit.Append(ctx, p.Name, op, in.Amount, in.Staff)

	res := &MutationResult{Product: p, Operation: op}
	if op == entity.OperationDecrease && l.monitor != nil {
		res.Alert = l.monitor.Evaluate(ctx, ThresholdInput{
			Product:       p.Name,
			NewQuantity:   p.Quantity,
			AmountRemoved: in.Amount,
			Staff:         in.Staff,
		})
	}
	return res
}

func (l *Ledger) logRetry(key string, attempt int, err error) {
	l.log.Warn().Err(err).
		Str("product_key", key).
		Int("attempt", attempt).
		Int("max_attempts", l.maxAttempts).
		Msg("conflicto de concurrencia, reintentando")
}

// validate devuelve el nombre limpio y su clave normalizada.
func validate(in MutationInput) (name, key string, err error) {
	name = strings.TrimSpace(in.Name)
	key = entity.NormalizeName(name)
	if key == "" || !domaininv.ValidAmount(in.Amount) {
		return "", "", domain.ErrInvalidInput
	}
	return name, key, nil
}

package inventory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/girochef/girochef-api/internal/application/dto"
	"github.com/girochef/girochef-api/internal/application/store"
	"github.com/girochef/girochef-api/internal/domain"
	"github.com/girochef/girochef-api/internal/domain/entity"
	"github.com/girochef/girochef-api/internal/domain/inventory"
	"github.com/girochef/girochef-api/internal/domain/repository"
	"github.com/girochef/girochef-api/pkg/logger"
)

// OutputUseCase registra, edita y elimina salidas de stock manteniendo la cantidad
// de cada insumo consistente con las salidas registradas contra él. Cada comando
// se aplica completo sobre el almacén; luego se anota en el diario de movimientos.
type OutputUseCase struct {
	store     *store.Store
	movements repository.StockMovementRepository
	log       *logger.Logger
}

// NewOutputUseCase construye el caso de uso. movements puede ser nil (sin diario).
func NewOutputUseCase(s *store.Store, movements repository.StockMovementRepository, log *logger.Logger) *OutputUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &OutputUseCase{store: s, movements: movements, log: log.Named("outputs")}
}

// List devuelve las salidas de la empresa (más recientes primero) filtradas por
// nombre de insumo o motivo.
func (uc *OutputUseCase) List(companyID, search string) []entity.ProductOutput {
	var out []entity.ProductOutput
	uc.store.View(func(st *store.State) {
		for _, o := range st.Outputs[companyID] {
			if search != "" && !containsFold(o.ProductName, search) && !containsFold(o.Reason, search) {
				continue
			}
			out = append(out, o)
		}
	})
	return out
}

// Get devuelve una salida o nil si no existe.
func (uc *OutputUseCase) Get(companyID, id string) *entity.ProductOutput {
	var out *entity.ProductOutput
	uc.store.View(func(st *store.State) {
		if i := outputIndex(st, companyID, id); i >= 0 {
			o := st.Outputs[companyID][i]
			out = &o
		}
	})
	return out
}

// validate revisa motivo y fecha. La cantidad no se valida aquí: una cantidad no
// positiva convierte el comando en un no-op, no en un error.
func (uc *OutputUseCase) validate(in *dto.OutputRequest) error {
	if in.Reason == "" {
		in.Reason = entity.OutputReasonWaste
	}
	if !entity.ValidOutputReason(in.Reason) {
		return domain.InvalidInput("reason inválido: %q", in.Reason)
	}
	if strings.TrimSpace(in.Date) == "" {
		in.Date = uc.store.Now().Format(entity.DateLayout)
		return nil
	}
	if _, err := time.Parse(entity.DateLayout, in.Date); err != nil {
		return domain.InvalidInput("date debe tener formato AAAA-MM-DD")
	}
	return nil
}

// Register registra una salida. Con un insumo inexistente o cantidad no positiva no
// hace nada y devuelve Applied=false. El stock se descuenta con piso en cero.
func (uc *OutputUseCase) Register(ctx context.Context, companyID string, in dto.OutputRequest) (dto.OutputResult, error) {
	if err := uc.validate(&in); err != nil {
		return dto.OutputResult{}, err
	}
	if !in.Quantity.IsPositive() {
		return dto.OutputResult{}, nil
	}
	var (
		out     entity.ProductOutput
		applied bool
		journal []*entity.StockMovement
	)
	err := uc.store.Update(ctx, func(tx *store.Tx) error {
		i := tx.ProductIndex(companyID, in.ProductID)
		if i < 0 {
			return nil
		}
		p := &tx.Products[companyID][i]
		out = entity.ProductOutput{
			ID:            uuid.New().String(),
			ProductID:     p.ID,
			ProductName:   p.Name,
			Quantity:      in.Quantity,
			Unit:          p.Unit,
			Reason:        in.Reason,
			Date:          in.Date,
			EstimatedCost: inventory.EstimatedCost(in.Quantity, p.Cost),
		}
		before := p.Quantity
		p.Quantity = inventory.Withdraw(p.Quantity, in.Quantity)
		tx.Outputs[companyID] = append([]entity.ProductOutput{out}, tx.Outputs[companyID]...)
		tx.Touch(companyID, store.KeyProducts, store.KeyOutputs)
		journal = append(journal, uc.movement(companyID, p.ID, out.ID, entity.MovementRegister, p.Quantity.Sub(before), p.Quantity))
		applied = true
		return nil
	})
	if err != nil || !applied {
		return dto.OutputResult{}, err
	}
	uc.record(ctx, journal)
	return dto.OutputResult{Applied: true, Output: &out}, nil
}

// Edit reemplaza una salida reconciliando el stock. Mismo insumo: se ajusta por
// (anterior − nueva). Insumo distinto: el anterior recupera lo retirado y el nuevo
// pierde la cantidad nueva. En este camino no hay piso en cero. Salida o insumo
// nuevo inexistentes, o cantidad no positiva: no-op con Applied=false.
func (uc *OutputUseCase) Edit(ctx context.Context, companyID, id string, in dto.OutputRequest) (dto.OutputResult, error) {
	if err := uc.validate(&in); err != nil {
		return dto.OutputResult{}, err
	}
	if !in.Quantity.IsPositive() {
		return dto.OutputResult{}, nil
	}
	var (
		out     entity.ProductOutput
		applied bool
		journal []*entity.StockMovement
	)
	err := uc.store.Update(ctx, func(tx *store.Tx) error {
		oi := outputIndex(tx.State, companyID, id)
		if oi < 0 {
			return nil
		}
		pi := tx.ProductIndex(companyID, in.ProductID)
		if pi < 0 {
			return nil
		}
		old := tx.Outputs[companyID][oi]
		target := tx.Products[companyID][pi]

		for _, d := range inventory.EditDeltas(old.ProductID, old.Quantity, in.ProductID, in.Quantity) {
			i := tx.ProductIndex(companyID, d.ProductID)
			if i < 0 {
				continue
			}
			p := &tx.Products[companyID][i]
			p.Quantity = p.Quantity.Add(d.Amount)
			journal = append(journal, uc.movement(companyID, p.ID, id, movementKind(d.Kind), d.Amount, p.Quantity))
		}

		out = entity.ProductOutput{
			ID:            id,
			ProductID:     target.ID,
			ProductName:   target.Name,
			Quantity:      in.Quantity,
			Unit:          target.Unit,
			Reason:        in.Reason,
			Date:          in.Date,
			EstimatedCost: inventory.EstimatedCost(in.Quantity, target.Cost),
		}
		tx.Outputs[companyID][oi] = out
		tx.Touch(companyID, store.KeyProducts, store.KeyOutputs)
		applied = true
		return nil
	})
	if err != nil || !applied {
		return dto.OutputResult{}, err
	}
	uc.record(ctx, journal)
	return dto.OutputResult{Applied: true, Output: &out}, nil
}

// Delete elimina una salida devolviendo al insumo toda la cantidad retirada, sin
// tope. Si el insumo ya no existe solo se elimina la salida. Salida inexistente:
// no-op con Applied=false.
func (uc *OutputUseCase) Delete(ctx context.Context, companyID, id string) (dto.OutputResult, error) {
	var (
		out     entity.ProductOutput
		applied bool
		journal []*entity.StockMovement
	)
	err := uc.store.Update(ctx, func(tx *store.Tx) error {
		oi := outputIndex(tx.State, companyID, id)
		if oi < 0 {
			return nil
		}
		out = tx.Outputs[companyID][oi]
		if i := tx.ProductIndex(companyID, out.ProductID); i >= 0 {
			p := &tx.Products[companyID][i]
			p.Quantity = inventory.Restore(p.Quantity, out.Quantity)
			journal = append(journal, uc.movement(companyID, p.ID, id, entity.MovementDeleteRestore, out.Quantity, p.Quantity))
		}
		list := tx.Outputs[companyID]
		tx.Outputs[companyID] = append(list[:oi], list[oi+1:]...)
		tx.Touch(companyID, store.KeyProducts, store.KeyOutputs)
		applied = true
		return nil
	})
	if err != nil || !applied {
		return dto.OutputResult{}, err
	}
	uc.record(ctx, journal)
	return dto.OutputResult{Applied: true, Output: &out}, nil
}

func (uc *OutputUseCase) movement(companyID, productID, outputID, kind string, delta, after decimal.Decimal) *entity.StockMovement {
	return &entity.StockMovement{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		ProductID:     productID,
		OutputID:      outputID,
		Kind:          kind,
		Delta:         delta,
		QuantityAfter: after,
		CreatedAt:     uc.store.Now(),
	}
}

// record anota los movimientos en el diario. Un fallo se registra en el log: el
// comando ya quedó aplicado en el almacén.
func (uc *OutputUseCase) record(ctx context.Context, journal []*entity.StockMovement) {
	if uc.movements == nil {
		return
	}
	for _, m := range journal {
		if err := uc.movements.Create(context.WithoutCancel(ctx), m); err != nil {
			uc.log.Warn().Err(err).Str("product_id", m.ProductID).Str("kind", m.Kind).Msg("no se pudo anotar el movimiento de stock")
		}
	}
}

func movementKind(deltaKind string) string {
	switch deltaKind {
	case inventory.DeltaRestore:
		return entity.MovementEditRestore
	case inventory.DeltaApply:
		return entity.MovementEditApply
	default:
		return entity.MovementEditReconcile
	}
}

func outputIndex(st *store.State, companyID, id string) int {
	for i, o := range st.Outputs[companyID] {
		if o.ID == id {
			return i
		}
	}
	return -1
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// WasteByProduct suma el costo de desperdicio por insumo, de mayor a menor.
func (uc *OutputUseCase) WasteByProduct(companyID string) []dto.WasteByProduct {
	totals := map[string]*dto.WasteByProduct{}
	uc.store.View(func(st *store.State) {
		for _, o := range st.Outputs[companyID] {
			if o.Reason != entity.OutputReasonWaste {
				continue
			}
			w, ok := totals[o.ProductID]
			if !ok {
				w = &dto.WasteByProduct{ProductID: o.ProductID, ProductName: o.ProductName, Quantity: decimal.Zero, Cost: decimal.Zero}
				totals[o.ProductID] = w
			}
			w.Quantity = w.Quantity.Add(o.Quantity)
			w.Cost = w.Cost.Add(o.EstimatedCost)
		}
	})
	out := make([]dto.WasteByProduct, 0, len(totals))
	for _, w := range totals {
		out = append(out, *w)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Cost.Cmp(out[j].Cost); c != 0 {
			return c > 0
		}
		return out[i].ProductName < out[j].ProductName
	})
	return out
}

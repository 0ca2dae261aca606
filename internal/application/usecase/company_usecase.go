package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/girochef/girochef-api/internal/application/dto"
	"github.com/girochef/girochef-api/internal/application/store"
	"github.com/girochef/girochef-api/internal/domain"
	"github.com/girochef/girochef-api/internal/domain/entity"
)

// CompanyUseCase casos de uso de empresas (restaurantes) y de la empresa activa.
type CompanyUseCase struct {
	store *store.Store
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(s *store.Store) *CompanyUseCase {
	return &CompanyUseCase{store: s}
}

// List devuelve todas las empresas.
func (uc *CompanyUseCase) List() []entity.Company {
	var out []entity.Company
	uc.store.View(func(st *store.State) {
		out = append(out, st.Companies...)
	})
	return out
}

// Get devuelve una empresa por ID o nil si no existe.
func (uc *CompanyUseCase) Get(id string) *entity.Company {
	var out *entity.Company
	uc.store.View(func(st *store.State) {
		if c, ok := st.Company(id); ok {
			out = &c
		}
	})
	return out
}

// Active devuelve la empresa activa.
func (uc *CompanyUseCase) Active() entity.Company {
	var out entity.Company
	uc.store.View(func(st *store.State) {
		out, _ = st.ActiveCompany()
	})
	return out
}

// Resolve devuelve id si corresponde a una empresa existente; si no, la empresa activa.
func (uc *CompanyUseCase) Resolve(id string) entity.Company {
	var out entity.Company
	uc.store.View(func(st *store.State) {
		if c, ok := st.Company(id); ok && id != "" {
			out = c
			return
		}
		out, _ = st.ActiveCompany()
	})
	return out
}

// DefaultLogo URL de logo generada a partir del nombre.
func DefaultLogo(name string) string {
	seed := strings.Join(strings.Fields(strings.ToLower(name)), "")
	return fmt.Sprintf("https://picsum.photos/seed/%s/200", seed)
}

// Create registra una empresa y la deja activa.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*entity.Company, error) {
	if err := requireText("name", in.Name); err != nil {
		return nil, err
	}
	if err := requireText("category", in.Category); err != nil {
		return nil, err
	}
	c := entity.Company{
		ID:          newID(),
		Name:        strings.TrimSpace(in.Name),
		Category:    strings.TrimSpace(in.Category),
		Logo:        in.Logo,
		Description: in.Description,
	}
	if c.Logo == "" {
		c.Logo = DefaultLogo(c.Name)
	}
	err := uc.store.Update(ctx, func(tx *store.Tx) error {
		tx.Companies = append(tx.Companies, c)
		tx.ActiveCompanyID = c.ID
		tx.Touch(c.ID, store.KeyCompanies, store.KeySelectedCompany)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Update modifica los datos de una empresa. Devuelve nil, nil si no existe.
func (uc *CompanyUseCase) Update(ctx context.Context, id string, in dto.UpdateCompanyRequest) (*entity.Company, error) {
	if in.Name != nil {
		if err := requireText("name", *in.Name); err != nil {
			return nil, err
		}
	}
	if in.Category != nil {
		if err := requireText("category", *in.Category); err != nil {
			return nil, err
		}
	}
	var out *entity.Company
	err := uc.store.Update(ctx, func(tx *store.Tx) error {
		for i := range tx.Companies {
			c := &tx.Companies[i]
			if c.ID != id {
				continue
			}
			if in.Name != nil {
				c.Name = strings.TrimSpace(*in.Name)
			}
			if in.Category != nil {
				c.Category = strings.TrimSpace(*in.Category)
			}
			if in.Logo != nil {
				c.Logo = *in.Logo
			}
			if in.Description != nil {
				c.Description = *in.Description
			}
			cp := *c
			out = &cp
			tx.Touch(id, store.KeyCompanies, store.KeySelectedCompany)
			return nil
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Select cambia la empresa activa. Devuelve nil, nil si no existe.
func (uc *CompanyUseCase) Select(ctx context.Context, id string) (*entity.Company, error) {
	var out *entity.Company
	err := uc.store.Update(ctx, func(tx *store.Tx) error {
		c, ok := tx.Company(id)
		if !ok {
			return nil
		}
		tx.ActiveCompanyID = id
		tx.Touch(id, store.KeySelectedCompany)
		out = &c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina una empresa. Nunca deja el sistema sin empresas: si es la única
// devuelve domain.ErrLastCompany sin cambiar nada. Los datos de la partición se
// conservan. La primera empresa restante pasa a ser la activa.
func (uc *CompanyUseCase) Delete(ctx context.Context, id string) error {
	return uc.store.Update(ctx, func(tx *store.Tx) error {
		idx := -1
		for i, c := range tx.Companies {
			if c.ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return domain.ErrNotFound
		}
		if len(tx.Companies) == 1 {
			return domain.ErrLastCompany
		}
		tx.Companies = append(tx.Companies[:idx], tx.Companies[idx+1:]...)
		tx.ActiveCompanyID = tx.Companies[0].ID
		tx.Touch(id, store.KeyCompanies, store.KeySelectedCompany)
		return nil
	})
}

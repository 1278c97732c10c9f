package usecase

import (
	"context"

	"github.com/tu-usuario/mini-erp/internal/application/dto"
	"github.com/tu-usuario/mini-erp/internal/domain/entity"
	"github.com/tu-usuario/mini-erp/internal/domain/repository"
)

// ListCompaniesLimit ventana máxima del listado de empresas.
const ListCompaniesLimit = 50

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	store repository.DocumentStore
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(store repository.DocumentStore) *CompanyUseCase {
	return &CompanyUseCase{store: store}
}

// Create valida y persiste una empresa nueva. El id lo asigna el store.
// No hay verificación de duplicados: cada create inserta un documento.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CreatedResponse, error) {
	company := &entity.Company{
		Name:     in.Name,
		Industry: in.Industry,
		Country:  in.Country,
		Modules:  in.Modules,
	}
	company.Normalize()
	if err := company.Validate(); err != nil {
		return nil, err
	}
	id, err := uc.store.CreateDocument(ctx, repository.CollectionCompany, company)
	if err != nil {
		return nil, err
	}
	return &dto.CreatedResponse{ID: id, Message: "Company created"}, nil
}

// List devuelve hasta 50 empresas en orden natural, con "_id" en string.
// No se garantiza read-your-writes contra un create inmediatamente anterior.
func (uc *CompanyUseCase) List(ctx context.Context) ([]repository.Document, error) {
	docs, err := uc.store.GetDocuments(ctx, repository.CollectionCompany, ListCompaniesLimit)
	if err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []repository.Document{}
	}
	return docs, nil
}

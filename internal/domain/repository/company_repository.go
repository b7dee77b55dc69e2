package repository

import (
	"context"

	"github.com/jhoicas/cartera-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	GetByCode(ctx context.Context, code string) (*entity.Company, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Company, error)
}

// ProductRepository define el puerto de consulta de productos pensionales.
// El afiliado resuelve su administradora a través de su producto.
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)
}

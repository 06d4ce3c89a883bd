package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// List devuelve todos los productos ordenados por created_at descendente.
	List(ctx context.Context) ([]*entity.Product, error)
	// Create inserta el producto y lo completa con los valores asignados por la base (created_at).
	Create(ctx context.Context, product *entity.Product) error
}

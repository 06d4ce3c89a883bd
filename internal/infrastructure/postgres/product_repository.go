package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, categoria, nombre, precio, imagen, creado_por, created_at`

// ProductRepo implementación del puerto ProductRepository sobre la tabla productos.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// List devuelve todos los productos, más recientes primero.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM productos ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Product, 0)
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Categoria, &p.Nombre, &p.Precio, &p.Imagen, &p.CreadoPor, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return list, nil
}

// Create inserta el producto y recupera la fila tal como quedó (created_at lo asigna la base).
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO productos (id, categoria, nombre, precio, imagen, creado_por)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + productColumns
	err := r.q.QueryRow(ctx, query,
		product.ID, product.Categoria, product.Nombre, product.Precio, product.Imagen, product.CreadoPor,
	).Scan(
		&product.ID, &product.Categoria, &product.Nombre, &product.Precio, &product.Imagen,
		&product.CreadoPor, &product.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo: listar (público) y dar de alta (protegido).
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List devuelve todos los productos, más recientes primero. Nunca devuelve nil sin error.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Create valida la entrada, convierte el precio a número y persiste el producto a nombre de creatorID.
// Devuelve domain.ErrMissingFields o domain.ErrInvalidPrice ante entrada inválida.
func (uc *ProductUseCase) Create(ctx context.Context, creatorID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	categoria := cleanText(in.Categoria)
	nombre := cleanText(in.Nombre)
	imagen := strings.TrimSpace(in.Imagen)
	rawPrice := strings.TrimSpace(string(in.Precio))
	if categoria == "" || nombre == "" || rawPrice == "" || imagen == "" {
		return nil, domain.ErrMissingFields
	}
	precio, err := decimal.NewFromString(rawPrice)
	if err != nil {
		return nil, domain.ErrInvalidPrice
	}

	product := &entity.Product{
		ID:        uuid.New().String(),
		Categoria: categoria,
		Nombre:    nombre,
		Precio:    precio,
		Imagen:    imagen,
		CreadoPor: creatorID,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// cleanText recorta espacios y normaliza a NFC para que "café" compuesto y descompuesto coincidan.
func cleanText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Categoria: p.Categoria,
		Nombre:    p.Nombre,
		Precio:    p.Precio.InexactFloat64(),
		Imagen:    p.Imagen,
		CreadoPor: p.CreadoPor,
		CreatedAt: p.CreatedAt,
	}
}

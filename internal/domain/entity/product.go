package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la tienda (tabla productos).
// Solo se crea desde el endpoint de alta; este servicio nunca lo modifica ni lo borra.
type Product struct {
	ID        string
	Categoria string
	Nombre    string
	Precio    decimal.Decimal
	Imagen    string
	CreadoPor string // id del usuario autenticado que lo dio de alta
	CreatedAt time.Time
}

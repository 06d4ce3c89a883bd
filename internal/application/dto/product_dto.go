package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// PriceInput conserva el precio tal como llegó: el frontend lo envía como número o como texto ("2.50").
// La conversión a número la hace el caso de uso.
type PriceInput string

// UnmarshalJSON acepta número, string o null.
func (p *PriceInput) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*p = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = PriceInput(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("precio: se esperaba número o texto: %w", err)
	}
	*p = PriceInput(n.String())
	return nil
}

// CreateProductRequest entrada para dar de alta un producto.
type CreateProductRequest struct {
	Categoria string     `json:"categoria" example:"bebidas"`
	Nombre    string     `json:"nombre" example:"Cola"`
	Precio    PriceInput `json:"precio" swaggertype:"string" example:"2.50"`
	Imagen    string     `json:"imagen" example:"cola.png"`
}

// ProductResponse salida de un producto. Precio se serializa como número JSON.
type ProductResponse struct {
	ID        string    `json:"id"`
	Categoria string    `json:"categoria"`
	Nombre    string    `json:"nombre"`
	Precio    float64   `json:"precio"`
	Imagen    string    `json:"imagen"`
	CreadoPor string    `json:"creado_por"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductListEnvelope documenta la respuesta de GET /api/products.
type ProductListEnvelope struct {
	Success bool              `json:"success" example:"true"`
	Data    []ProductResponse `json:"data"`
}

// ProductEnvelope documenta la respuesta de POST /api/products.
type ProductEnvelope struct {
	Success bool            `json:"success" example:"true"`
	Data    ProductResponse `json:"data"`
}

// ErrorEnvelope documenta las respuestas de error.
type ErrorEnvelope struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"Unauthorized"`
}

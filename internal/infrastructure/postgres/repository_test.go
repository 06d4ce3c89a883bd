package postgres

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// fakeQuerier responde con filas fijas y guarda la última consulta.
type fakeQuerier struct {
	rows [][]any
	err  error

	sql  string
	args []any
}

func (q *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.sql, q.args = sql, args
	return pgconn.CommandTag{}, q.err
}

func (q *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.sql, q.args = sql, args
	if q.err != nil {
		return nil, q.err
	}
	return &fakeRows{rows: q.rows, pos: -1}, nil
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.sql, q.args = sql, args
	if q.err != nil {
		return fakeRow{err: q.err}
	}
	if len(q.rows) == 0 {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{values: q.rows[0]}
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(r.values, dest)
}

type fakeRows struct {
	rows [][]any
	pos  int
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	r.pos++
	return r.pos < len(r.rows)
}

func (r *fakeRows) Scan(dest ...any) error { return assign(r.rows[r.pos], dest) }

func (r *fakeRows) Values() ([]any, error) { return r.rows[r.pos], nil }

func assign(values, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("scan: %d valores para %d destinos", len(values), len(dest))
	}
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(values[i]))
	}
	return nil
}

func productRow(id string, createdAt time.Time) []any {
	return []any{id, "bebidas", "Cola", decimal.RequireFromString("2.50"), "cola.png", "u-1", createdAt}
}

func TestRoleRepo_GetRole(t *testing.T) {
	t.Run("sin fila devuelve vacío", func(t *testing.T) {
		q := &fakeQuerier{}
		role, err := NewRoleRepository(q).GetRole(context.Background(), "u-1")
		require.NoError(t, err)
		assert.Empty(t, role)
		assert.Equal(t, []any{"u-1"}, q.args)
	})

	t.Run("una fila", func(t *testing.T) {
		q := &fakeQuerier{rows: [][]any{{"admin"}}}
		role, err := NewRoleRepository(q).GetRole(context.Background(), "u-1")
		require.NoError(t, err)
		assert.Equal(t, "admin", role)
	})

	t.Run("varias filas no elige ninguna", func(t *testing.T) {
		q := &fakeQuerier{rows: [][]any{{"viewer"}, {"admin"}}}
		role, err := NewRoleRepository(q).GetRole(context.Background(), "u-1")
		assert.ErrorIs(t, err, ErrMultipleRoles)
		assert.Empty(t, role)
	})

	t.Run("error de la base", func(t *testing.T) {
		q := &fakeQuerier{err: errors.New("connection refused")}
		_, err := NewRoleRepository(q).GetRole(context.Background(), "u-1")
		assert.ErrorContains(t, err, "connection refused")
	})
}

func TestProductRepo_List(t *testing.T) {
	t0 := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	q := &fakeQuerier{rows: [][]any{productRow("p-2", t0.Add(time.Hour)), productRow("p-1", t0)}}

	list, err := NewProductRepository(q).List(context.Background())

	require.NoError(t, err)
	assert.Contains(t, q.sql, "ORDER BY created_at DESC")
	require.Len(t, list, 2)
	assert.Equal(t, "p-2", list[0].ID)
	assert.True(t, list[0].Precio.Equal(decimal.RequireFromString("2.5")))
	assert.Equal(t, t0, list[1].CreatedAt)
}

func TestProductRepo_List_VacioNoEsNil(t *testing.T) {
	list, err := NewProductRepository(&fakeQuerier{}).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestProductRepo_Create_LeeCreatedAtDeReturning(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	q := &fakeQuerier{rows: [][]any{productRow("p-1", createdAt)}}
	p := &entity.Product{
		ID: "p-1", Categoria: "bebidas", Nombre: "Cola",
		Precio: decimal.RequireFromString("2.50"), Imagen: "cola.png", CreadoPor: "u-1",
	}

	require.NoError(t, NewProductRepository(q).Create(context.Background(), p))

	assert.Contains(t, q.sql, "RETURNING")
	assert.Len(t, q.args, 6)
	assert.Equal(t, createdAt, p.CreatedAt)
}

func TestProductRepo_Create_Errores(t *testing.T) {
	dup := &fakeQuerier{err: &pgconn.PgError{Code: "23505"}}
	err := NewProductRepository(dup).Create(context.Background(), &entity.Product{ID: "p-1"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	other := &fakeQuerier{err: errors.New("permission denied for table productos")}
	err = NewProductRepository(other).Create(context.Background(), &entity.Product{ID: "p-1"})
	assert.NotErrorIs(t, err, domain.ErrDuplicate)
	assert.ErrorContains(t, err, "insert product")
}

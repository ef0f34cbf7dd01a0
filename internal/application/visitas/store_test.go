package visitas_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ServiCampo-api/internal/application/dto"
	"github.com/jhoicas/ServiCampo-api/internal/application/visitas"
	"github.com/jhoicas/ServiCampo-api/internal/domain"
	"github.com/jhoicas/ServiCampo-api/internal/domain/entity"
)

type memRepo struct {
	mu    sync.Mutex
	datos map[string][]byte
}

func newMemRepo() *memRepo { return &memRepo{datos: make(map[string][]byte)} }

func (r *memRepo) Save(_ context.Context, clave string, datos []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.datos[clave] = append([]byte(nil), datos...)
	return nil
}

func (r *memRepo) Load(_ context.Context, clave string) ([]byte, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.datos[clave]
	return d, ok, nil
}

func nuevoStore(t *testing.T) *visitas.Store {
	t.Helper()
	s, err := visitas.NewStore(context.Background(), newMemRepo())
	require.NoError(t, err)
	return s
}

func visitaDePrueba() dto.CreateVisitaRequest {
	return dto.CreateVisitaRequest{
		Tipo:          "Mantenimiento Preventivo",
		ClienteID:     "CLI-001",
		ClienteNombre: "Industrias Acme S.A.",
		TecnicoID:     "TEC-001",
		TecnicoNombre: "Juan Técnico",
		Fecha:         "2026-03-02",
		HoraEntrada:   "09:00",
		HoraSalida:    "11:00",
		Diagnostico:   "Sin observaciones.",
		Inventario: []dto.LineaInventarioRequest{
			{Item: "Filtro de aire", Cantidad: decimal.NewFromInt(2), PrecioUnit: decimal.NewFromInt(15000)},
			{Item: "Aceite lubricante 5L", Cantidad: decimal.NewFromInt(1), PrecioUnit: decimal.NewFromInt(25000)},
		},
	}
}

// Vector de aceptación: 2×15000 + 1×25000 = 55000; IVA 19% = 10450; total 65450.
func TestCreate_TotalesDerivadosEnServidor(t *testing.T) {
	s := nuevoStore(t)

	visita, err := s.Create(context.Background(), visitaDePrueba())
	require.NoError(t, err)

	require.Len(t, visita.Inventario, 2)
	assert.True(t, visita.Inventario[0].Total.Equal(decimal.NewFromInt(30000)),
		"total de línea = cantidad × precioUnit, got %s", visita.Inventario[0].Total)
	assert.True(t, visita.Inventario[1].Total.Equal(decimal.NewFromInt(25000)))
	assert.True(t, visita.Subtotal.Equal(decimal.NewFromInt(55000)), "subtotal %s", visita.Subtotal)
	assert.True(t, visita.IVA.Equal(decimal.NewFromInt(10450)), "iva %s", visita.IVA)
	assert.True(t, visita.Total.Equal(decimal.NewFromInt(65450)), "total %s", visita.Total)

	// Invariante general: total = subtotal + iva.
	assert.True(t, visita.Total.Equal(visita.Subtotal.Add(visita.IVA)))
}

func TestCreate_SinInventario_TotalesEnCero(t *testing.T) {
	s := nuevoStore(t)
	in := visitaDePrueba()
	in.Inventario = nil

	visita, err := s.Create(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, visita.Subtotal.IsZero())
	assert.True(t, visita.IVA.IsZero())
	assert.True(t, visita.Total.IsZero())
}

func TestCreate_FuerzaEstadoCompletadaYStamp(t *testing.T) {
	s := nuevoStore(t)
	antes := time.Now()

	visita, err := s.Create(context.Background(), visitaDePrueba())
	require.NoError(t, err)

	assert.Equal(t, entity.VisitaCompletada, visita.Estado)
	assert.False(t, visita.CreatedAt.Before(antes.Add(-time.Second)), "createdAt debe estamparse al crear")
	assert.Equal(t, "VIS-004", visita.ID, "la semilla trae 3 visitas")
	assert.Equal(t, fmt.Sprintf("ORD-%d-004", time.Now().Year()), visita.OrdenID)
}

func TestNextOrdenID(t *testing.T) {
	s := nuevoStore(t)
	year := time.Now().Year()

	assert.Equal(t, fmt.Sprintf("ORD-%d-004", year), s.NextOrdenID())

	// Consultar no consume el número; crear sí lo avanza.
	assert.Equal(t, fmt.Sprintf("ORD-%d-004", year), s.NextOrdenID())
	_, err := s.Create(context.Background(), visitaDePrueba())
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("ORD-%d-005", year), s.NextOrdenID())
}

func TestGetByID_NoExiste(t *testing.T) {
	s := nuevoStore(t)
	_, err := s.GetByID("VIS-999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListCompletadas_SemillaEnOrden(t *testing.T) {
	s := nuevoStore(t)
	lista := s.ListCompletadas()
	require.Len(t, lista, 3)
	assert.Equal(t, "VIS-001", lista[0].ID)
	assert.Equal(t, "VIS-003", lista[2].ID)
	for _, v := range lista {
		assert.Equal(t, entity.VisitaCompletada, v.Estado)
		assert.True(t, v.Total.Equal(v.Subtotal.Add(v.IVA)), "invariante de totales en %s", v.ID)
	}
}

func TestUpdate_CorreccionSinInventarioNoTocaTotales(t *testing.T) {
	s := nuevoStore(t)
	diag := "Diagnóstico corregido tras revisión."

	visita, err := s.Update(context.Background(), "VIS-001", dto.UpdateVisitaRequest{Diagnostico: &diag})
	require.NoError(t, err)

	assert.Equal(t, diag, visita.Diagnostico)
	assert.True(t, visita.Subtotal.Equal(decimal.NewFromInt(55000)))
	assert.True(t, visita.Total.Equal(decimal.NewFromInt(65450)))
	assert.Equal(t, entity.VisitaCompletada, visita.Estado)
}

func TestUpdate_InventarioNuevoRecalculaTotales(t *testing.T) {
	s := nuevoStore(t)
	inventario := []dto.LineaInventarioRequest{
		{Item: "Empaquetadura", Cantidad: decimal.NewFromInt(4), PrecioUnit: decimal.NewFromInt(10000)},
	}

	visita, err := s.Update(context.Background(), "VIS-001", dto.UpdateVisitaRequest{Inventario: &inventario})
	require.NoError(t, err)

	assert.True(t, visita.Subtotal.Equal(decimal.NewFromInt(40000)), "subtotal %s", visita.Subtotal)
	assert.True(t, visita.IVA.Equal(decimal.NewFromInt(7600)), "iva %s", visita.IVA)
	assert.True(t, visita.Total.Equal(decimal.NewFromInt(47600)), "total %s", visita.Total)
}

func TestUpdate_NoExiste_NoAlteraColeccion(t *testing.T) {
	s := nuevoStore(t)
	antes := len(s.ListCompletadas())
	diag := "no importa"

	_, err := s.Update(context.Background(), "VIS-999", dto.UpdateVisitaRequest{Diagnostico: &diag})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, s.ListCompletadas(), antes)
}

func TestCatalogos(t *testing.T) {
	s := nuevoStore(t)

	assert.Len(t, s.Tecnicos(), 3)
	assert.Len(t, s.Clientes(), 5)
	assert.Contains(t, s.TiposInspeccion(), "Certificación")

	tec, err := s.GetTecnicoByID("TEC-002")
	require.NoError(t, err)
	assert.Equal(t, "Pedro Martínez", tec.Nombre)

	cli, err := s.GetClienteByID("CLI-004")
	require.NoError(t, err)
	assert.Equal(t, "Transportes Unidos", cli.Nombre)

	_, err = s.GetTecnicoByID("TEC-999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El estado sobrevive a una reconstrucción del store desde el snapshot,
// incluido el contador monotónico.
func TestStore_RestauradoDesdeSnapshot(t *testing.T) {
	repo := newMemRepo()
	ctx := context.Background()

	s, err := visitas.NewStore(ctx, repo)
	require.NoError(t, err)
	creada, err := s.Create(ctx, visitaDePrueba())
	require.NoError(t, err)

	restaurado, err := visitas.NewStore(ctx, repo)
	require.NoError(t, err)
	visita, err := restaurado.GetByID(creada.ID)
	require.NoError(t, err)
	assert.True(t, visita.Total.Equal(creada.Total))

	otra, err := restaurado.Create(ctx, visitaDePrueba())
	require.NoError(t, err)
	assert.NotEqual(t, creada.ID, otra.ID)
	assert.NotEqual(t, creada.OrdenID, otra.OrdenID)
}

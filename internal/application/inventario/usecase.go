// Package inventario contiene el caso de uso de los reportes de inventario
// conciliado y valorizado: el consolidado actual y la serie diaria detallada.
package inventario

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/iserv/inventario-obras/internal/application/dto"
	"github.com/iserv/inventario-obras/internal/domain"
	"github.com/iserv/inventario-obras/internal/domain/entity"
	"github.com/iserv/inventario-obras/internal/domain/reconcile"
	"github.com/iserv/inventario-obras/internal/domain/repository"
	"github.com/iserv/inventario-obras/pkg/format"
)

// UseCase orquesta una corrida del motor: carga las cinco fuentes en paralelo,
// las entrega cerradas e inmutables al paquete reconcile y arma los DTOs de
// salida con precios, grupos y nombres de proyecto resueltos.
type UseCase struct {
	snapshots repository.SnapshotRepository
	inbound   repository.InboundRepository
	outbound  repository.OutboundRepository
	projects  repository.ProjectRepository
	catalog   repository.CatalogRepository
	loc       *time.Location // zona horaria del día calendario (nil = UTC)
}

// NewUseCase construye el caso de uso. loc define el día calendario de los
// buckets diarios; nil equivale a UTC.
func NewUseCase(
	snapshots repository.SnapshotRepository,
	inbound repository.InboundRepository,
	outbound repository.OutboundRepository,
	projects repository.ProjectRepository,
	catalog repository.CatalogRepository,
	loc *time.Location,
) *UseCase {
	return &UseCase{
		snapshots: snapshots,
		inbound:   inbound,
		outbound:  outbound,
		projects:  projects,
		catalog:   catalog,
		loc:       loc,
	}
}

// sources es la foto cerrada de las cinco fuentes para una corrida.
type sources struct {
	snapshots []entity.SnapshotRecord
	inbound   []entity.InboundTransaction
	outbound  []entity.OutboundTransaction
	projects  map[int]string
	catalog   []entity.CatalogEntry
}

// loadSources carga los tres libros y los dos directorios en paralelo
// (llamadas independientes, misma técnica que el dashboard financiero).
// La conciliación no arranca hasta tener las cinco fuentes completas.
func (uc *UseCase) loadSources(ctx context.Context) (*sources, error) {
	type snapshotResult struct {
		rows []entity.SnapshotRecord
		err  error
	}
	type inboundResult struct {
		rows []entity.InboundTransaction
		err  error
	}
	type outboundResult struct {
		rows []entity.OutboundTransaction
		err  error
	}
	type projectResult struct {
		rows []entity.Project
		err  error
	}
	type catalogResult struct {
		rows []entity.CatalogEntry
		err  error
	}

	snapCh := make(chan snapshotResult, 1)
	inCh := make(chan inboundResult, 1)
	outCh := make(chan outboundResult, 1)
	projCh := make(chan projectResult, 1)
	catCh := make(chan catalogResult, 1)

	go func() {
		rows, err := uc.snapshots.ListAll(ctx)
		snapCh <- snapshotResult{rows, err}
	}()
	go func() {
		rows, err := uc.inbound.ListAll(ctx)
		inCh <- inboundResult{rows, err}
	}()
	go func() {
		rows, err := uc.outbound.ListAll(ctx)
		outCh <- outboundResult{rows, err}
	}()
	go func() {
		rows, err := uc.projects.ListAll(ctx)
		projCh <- projectResult{rows, err}
	}()
	go func() {
		rows, err := uc.catalog.ListAll(ctx)
		catCh <- catalogResult{rows, err}
	}()

	snap := <-snapCh
	in := <-inCh
	out := <-outCh
	proj := <-projCh
	cat := <-catCh

	if snap.err != nil {
		return nil, fmt.Errorf("%w: foto base: %w", domain.ErrSourceLoad, snap.err)
	}
	if in.err != nil {
		return nil, fmt.Errorf("%w: ingresos: %w", domain.ErrSourceLoad, in.err)
	}
	if out.err != nil {
		return nil, fmt.Errorf("%w: salidas: %w", domain.ErrSourceLoad, out.err)
	}
	if proj.err != nil {
		return nil, fmt.Errorf("%w: proyectos: %w", domain.ErrSourceLoad, proj.err)
	}
	if cat.err != nil {
		return nil, fmt.Errorf("%w: catálogo maestro: %w", domain.ErrSourceLoad, cat.err)
	}

	names := make(map[int]string, len(proj.rows))
	for _, p := range proj.rows {
		names[p.ID] = p.Name
	}

	return &sources{
		snapshots: snap.rows,
		inbound:   in.rows,
		outbound:  out.rows,
		projects:  names,
		catalog:   cat.rows,
	}, nil
}

// ConsolidatedReport calcula el inventario neto actual valorizado por
// (proyecto, producto) y le anexa la fila sintética de gran total.
//
// Orden: nombre de proyecto ascendente (colación española, nils al final) y
// valor total descendente dentro del proyecto; el gran total siempre al final.
func (uc *UseCase) ConsolidatedReport(
	ctx context.Context,
	req dto.InventoryReportRequest,
) (*dto.ConsolidatedReportDTO, error) {
	src, err := uc.loadSources(ctx)
	if err != nil {
		return nil, err
	}

	base, cutoff := reconcile.BuildBaseline(src.snapshots)
	prices := reconcile.MedianPrices(src.inbound)
	catalog := reconcile.BuildCatalog(src.snapshots, src.catalog)

	reconciled := reconcile.Consolidate(
		base,
		reconcile.AggregateInflows(src.inbound, cutoff),
		reconcile.AggregateOutflows(src.outbound),
	)

	rows := make([]dto.ConsolidatedRowDTO, 0, len(reconciled))
	totalQty := decimal.Zero
	totalValue := decimal.Zero

	for _, r := range reconciled {
		// la vista de reporte solo retiene saldos positivos; el neto negativo
		// ya quedó calculado por el conciliador
		if !r.Net.IsPositive() {
			continue
		}
		name, hasName := src.projects[r.Key.ProjectID]
		if !matchProject(req.Project, r.Key.ProjectID, name) {
			continue
		}

		price := prices[r.Key.Product] // ausente = cero = "sin precio"
		qty := r.Net.Round(0)
		value := r.Net.Mul(price).Round(2)

		row := dto.ConsolidatedRowDTO{
			Group:       strPtr(catalog.Resolve(r.Key.Product)),
			Product:     strPtr(r.Key.Product),
			NetQuantity: qty,
			MedianPrice: decPtr(price),
			TotalValue:  value,
		}
		if hasName {
			row.ProjectName = strPtr(name)
		}
		rows = append(rows, row)

		totalQty = totalQty.Add(qty)
		totalValue = totalValue.Add(value)
	}

	sortConsolidated(rows)

	// fila de gran total: llaves de orden y precio en nil, siempre de última
	rows = append(rows, dto.ConsolidatedRowDTO{
		NetQuantity: totalQty,
		TotalValue:  totalValue.Round(2),
		GrandTotal:  true,
	})

	return &dto.ConsolidatedReportDTO{
		RunID:       uuid.New(),
		GeneratedAt: time.Now().UTC(),
		Rows:        rows,
	}, nil
}

// DetailedReport construye la serie diaria de saldo acumulado con el detalle
// crudo de ingresos y salidas de cada día de actividad.
func (uc *UseCase) DetailedReport(
	ctx context.Context,
	req dto.InventoryReportRequest,
) (*dto.DetailedReportDTO, error) {
	src, err := uc.loadSources(ctx)
	if err != nil {
		return nil, err
	}

	base, cutoff := reconcile.BuildBaseline(src.snapshots)
	prices := reconcile.MedianPrices(src.inbound)
	catalog := reconcile.BuildCatalog(src.snapshots, src.catalog)

	series := reconcile.DailySeries(
		base,
		reconcile.AggregateInflowsDaily(src.inbound, cutoff, uc.loc),
		reconcile.AggregateOutflowsDaily(src.outbound, uc.loc),
	)

	rows := make([]dto.DetailedRowDTO, 0, len(series))
	for _, r := range series {
		name, hasName := src.projects[r.Key.ProjectID]
		if !matchProject(req.Project, r.Key.ProjectID, name) {
			continue
		}

		price := prices[r.Key.Product]
		row := dto.DetailedRowDTO{
			ProjectID:      r.Key.ProjectID,
			Date:           r.Day.Format("2006-01-02"),
			Product:        r.Key.Product,
			Group:          catalog.Resolve(r.Key.Product),
			NetMovement:    r.Net,
			RunningBalance: r.Running,
			UnitPrice:      price,
			RowValue:       r.Running.Mul(price).Round(2),
		}
		if hasName {
			row.ProjectName = strPtr(name)
		}
		if b, ok := base[r.Key]; ok {
			row.BaseQuantity = b.Quantity
			row.BaseUnit = b.Unit
			row.Reference = b.Reference
			row.BaseSnapshotDate = b.CapturedAt
		}
		if in := r.Inflow; in != nil {
			row.InflowQuantity = decPtr(in.Quantity)
			// las facturas electrónicas traen códigos UNECE (94, NAR, MTR...)
			row.InflowUnit = strPtr(format.Unit(in.Unit))
			validated := in.Validated
			row.ManuallyValidated = &validated
			row.InflowTxCount = in.Count
			first, last := in.First, in.Last
			row.FirstInflowTS = &first
			row.LastInflowTS = &last
		}
		if out := r.Outflow; out != nil {
			row.OutflowQuantity = decPtr(out.Quantity)
			row.OutflowUnit = strPtr(out.Unit)
			row.OutflowTxCount = out.Count
			first, last := out.First, out.Last
			row.FirstOutflowTS = &first
			row.LastOutflowTS = &last
		}
		rows = append(rows, row)
	}

	return &dto.DetailedReportDTO{
		RunID:       uuid.New(),
		GeneratedAt: time.Now().UTC(),
		Rows:        rows,
	}, nil
}

// sortConsolidated ordena por nombre de proyecto ascendente con colación
// española (nil al final) y valor descendente como desempate.
func sortConsolidated(rows []dto.ConsolidatedRowDTO) {
	col := collate.New(language.Spanish)
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].ProjectName, rows[j].ProjectName
		switch {
		case a == nil && b != nil:
			return false
		case a != nil && b == nil:
			return true
		case a != nil && b != nil && *a != *b:
			return col.CompareString(*a, *b) < 0
		}
		return rows[i].TotalValue.GreaterThan(rows[j].TotalValue)
	})
}

// matchProject aplica el filtro opcional: un número compara contra project_id,
// cualquier otro texto busca como fragmento del nombre sin distinguir
// mayúsculas (equivalente a ILIKE '%filtro%').
func matchProject(filter string, projectID int, name string) bool {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return true
	}
	if id, err := strconv.Atoi(filter); err == nil {
		return id == projectID
	}
	return strings.Contains(strings.ToUpper(name), strings.ToUpper(filter))
}

func strPtr(s string) *string { return &s }

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

package postgres_test

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clasificador/internal/application/usecase"
	"github.com/jhoicas/clasificador/internal/domain"
	"github.com/jhoicas/clasificador/internal/domain/entity"
	"github.com/jhoicas/clasificador/internal/domain/repository"
	"github.com/jhoicas/clasificador/internal/infrastructure/postgres"
)

// Requiere una base desechable: TEST_DATABASE_URL=postgres://... go test ./internal/infrastructure/postgres/
func openTestDB(t *testing.T) (*pgxpool.Pool, *postgres.Catalog) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	require.NoError(t, postgres.MigrateUp(dsn))

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	catalog, err := postgres.LoadCatalog("")
	require.NoError(t, err)
	return pool, catalog
}

type hierarchyFixture struct {
	unit, root, middle, leaf int64
}

// seedHierarchy crea raíz -> intermedia -> hoja con nombres únicos por ejecución.
func seedHierarchy(t *testing.T, pool *pgxpool.Pool, catalog *postgres.Catalog) hierarchyFixture {
	t.Helper()
	ctx := context.Background()
	sfx := uuid.NewString()[:8]
	classes := postgres.NewClassificationRepository(pool, catalog)

	var f hierarchyFixture
	var err error
	f.unit, err = postgres.NewUnitRepository(pool, catalog).Create(ctx, &entity.Unit{ShortName: "kg", Name: "Kilogramo", Code: "T" + sfx})
	require.NoError(t, err)

	f.root, err = classes.Create(ctx, &entity.Classification{ShortName: "R" + sfx, Name: "Raíz", UnitID: f.unit})
	require.NoError(t, err)
	f.middle, err = classes.Create(ctx, &entity.Classification{ShortName: "M" + sfx, Name: "Intermedia", UnitID: f.unit, ParentID: &f.root})
	require.NoError(t, err)
	f.leaf, err = classes.Create(ctx, &entity.Classification{ShortName: "H" + sfx, Name: "Hoja", UnitID: f.unit, ParentID: &f.middle})
	require.NoError(t, err)
	return f
}

func TestIntegration_FindChildrenIncluyeLaClase(t *testing.T) {
	pool, catalog := openTestDB(t)
	f := seedHierarchy(t, pool, catalog)

	refs, err := postgres.NewClassificationRepository(pool, catalog).FindChildren(context.Background(), f.root)
	require.NoError(t, err)
	require.Len(t, refs, 3)
	assert.Equal(t, f.root, refs[0].ID)
	assert.Equal(t, f.middle, refs[1].ID)
	assert.Equal(t, f.leaf, refs[2].ID)
}

func TestIntegration_ChangeParentRechazaCiclo(t *testing.T) {
	pool, catalog := openTestDB(t)
	f := seedHierarchy(t, pool, catalog)
	classes := usecase.NewClassificationUseCase(
		postgres.NewClassificationRepository(pool, catalog), postgres.NewTxRunner(pool, catalog))

	err := classes.ChangeParent(context.Background(), f.root, f.leaf)
	assert.ErrorIs(t, err, domain.ErrCycle)

	err = classes.ChangeParent(context.Background(), f.leaf, f.root)
	assert.NoError(t, err)
}

func TestIntegration_TriggerRechazaCicloSinConsultaPrevia(t *testing.T) {
	pool, catalog := openTestDB(t)
	f := seedHierarchy(t, pool, catalog)

	err := postgres.NewTxRunner(pool, catalog).RunHierarchy(context.Background(), func(repo repository.HierarchyRepository) error {
		return repo.SetParent(context.Background(), f.root, f.middle)
	})
	assert.ErrorIs(t, err, domain.ErrCycle)

	var ruleErr *domain.RuleError
	require.ErrorAs(t, err, &ruleErr)
	assert.Contains(t, ruleErr.Message, "ciclo")
}

func TestIntegration_ProductoSoloEnClaseTerminal(t *testing.T) {
	pool, catalog := openTestDB(t)
	f := seedHierarchy(t, pool, catalog)
	ctx := context.Background()
	productRepo := postgres.NewProductRepository(pool, catalog)
	products := usecase.NewProductUseCase(productRepo, postgres.NewTxRunner(pool, catalog))

	_, err := productRepo.Create(ctx, &entity.Product{ShortName: "P", Name: "Producto", ClassID: f.root})
	assert.ErrorIs(t, err, domain.ErrNonTerminalClass)

	id, err := productRepo.Create(ctx, &entity.Product{ShortName: "P", Name: "Producto", ClassID: f.leaf})
	require.NoError(t, err)

	assert.ErrorIs(t, products.ChangeClass(ctx, id, f.middle), domain.ErrNonTerminalClass)

	list, err := products.ByClass(ctx, f.leaf)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)

	// Una clase con productos no admite subclases.
	_, err = postgres.NewClassificationRepository(pool, catalog).Create(ctx,
		&entity.Classification{ShortName: "X" + uuid.NewString()[:8], Name: "Sub", UnitID: f.unit, ParentID: &f.leaf})
	assert.ErrorIs(t, err, domain.ErrNonTerminalClass)
}

func TestIntegration_ListAllYReferenciaInvalida(t *testing.T) {
	pool, catalog := openTestDB(t)
	f := seedHierarchy(t, pool, catalog)
	ctx := context.Background()

	data, err := postgres.NewTableRepository(pool, catalog).ListAll(ctx, "classification")
	require.NoError(t, err)
	assert.Equal(t, []string{"id_class", "short_name", "name", "id_unit", "id_main_class"}, data.Columns)
	assert.GreaterOrEqual(t, len(data.Rows), 3)

	_, err = postgres.NewProductRepository(pool, catalog).Create(ctx,
		&entity.Product{ShortName: "P", Name: "Producto", ClassID: f.leaf + 1_000_000})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}

// Alta de producto y alta de subclase sobre la misma hoja en paralelo: a lo sumo una
// puede ganar, nunca ambas.
func TestIntegration_AltasConcurrentesRespetanClaseTerminal(t *testing.T) {
	pool, catalog := openTestDB(t)
	f := seedHierarchy(t, pool, catalog)
	ctx := context.Background()
	classes := postgres.NewClassificationRepository(pool, catalog)
	products := postgres.NewProductRepository(pool, catalog)

	for i := 0; i < 50; i++ {
		sfx := uuid.NewString()[:8]
		leaf, err := classes.Create(ctx, &entity.Classification{ShortName: "C" + sfx, Name: "Hoja", UnitID: f.unit, ParentID: &f.root})
		require.NoError(t, err)

		var wg sync.WaitGroup
		var productErr, classErr error
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, productErr = products.Create(ctx, &entity.Product{ShortName: "P" + sfx, Name: "Producto", ClassID: leaf})
		}()
		go func() {
			defer wg.Done()
			_, classErr = classes.Create(ctx, &entity.Classification{ShortName: "S" + sfx, Name: "Sub", UnitID: f.unit, ParentID: &leaf})
		}()
		wg.Wait()

		assert.False(t, productErr == nil && classErr == nil, "iteración %d: ambas altas confirmadas", i)
		for _, err := range []error{productErr, classErr} {
			if err != nil {
				assert.ErrorIs(t, err, domain.ErrNonTerminalClass)
			}
		}
	}

	var broken int
	err := pool.QueryRow(ctx,
		`SELECT count(*) FROM product p WHERE (SELECT count(*) FROM find_children(p.id_class)) > 1`).Scan(&broken)
	require.NoError(t, err)
	assert.Zero(t, broken)
}

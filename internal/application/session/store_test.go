package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restocker-api/internal/application/session"
	"github.com/jhoicas/restocker-api/internal/domain"
	"github.com/jhoicas/restocker-api/internal/domain/entity"
)

func compareTable() entity.InventoryTable {
	return entity.InventoryTable{
		Variant: entity.VariantCompare,
		Rows: []entity.InventoryRow{
			{Company: "Acme", Product: "A"},
			{Company: "Globex", Product: "A"},
			{Company: "Initech", Product: "B"},
		},
	}
}

func TestStore_CreateYGet(t *testing.T) {
	store := session.NewStore(5, time.Hour)

	sess := store.Create("stock.csv", entity.InventoryTable{Variant: entity.VariantSingle})
	require.NotEmpty(t, sess.ID)
	assert.Empty(t, sess.Selected)

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "stock.csv", got.FileName)
	assert.Equal(t, 1, store.Len())
}

func TestStore_CompareSeleccionaDosPrimeras(t *testing.T) {
	store := session.NewStore(5, time.Hour)

	sess := store.Create("empresas.xlsx", compareTable())

	assert.Equal(t, []string{"Acme", "Globex", "Initech"}, sess.Companies)
	assert.Equal(t, []string{"Acme", "Globex"}, sess.Selected)
	assert.Equal(t, 2, sess.View().Len())
	assert.Equal(t, 3, sess.Table.Len(), "la tabla completa no se toca")
}

func TestStore_Select(t *testing.T) {
	store := session.NewStore(5, time.Hour)
	sess := store.Create("empresas.xlsx", compareTable())

	companies := []string{"Initech"}
	updated, err := store.Select(sess.ID, companies)
	require.NoError(t, err)
	companies[0] = "mutado"

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Initech"}, got.Selected, "la selección se copia")
	assert.Equal(t, updated.Selected, got.Selected)
	require.Equal(t, 1, got.View().Len())
	assert.Equal(t, "Initech", got.View().Rows[0].Company)
}

func TestStore_SelectErrores(t *testing.T) {
	store := session.NewStore(5, time.Hour)
	single := store.Create("stock.csv", entity.InventoryTable{Variant: entity.VariantSingle})
	compare := store.Create("empresas.xlsx", compareTable())

	_, err := store.Select(single.ID, []string{"Acme"})
	assert.ErrorIs(t, err, domain.ErrNotCompareMode)

	_, err = store.Select(compare.ID, []string{"Acme", "Umbrella"})
	assert.ErrorIs(t, err, domain.ErrUnknownCompany)
	assert.Contains(t, err.Error(), "Umbrella")

	_, err = store.Select("no-existe", nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_Delete(t *testing.T) {
	store := session.NewStore(5, time.Hour)
	sess := store.Create("stock.csv", entity.InventoryTable{Variant: entity.VariantSingle})

	require.NoError(t, store.Delete(sess.ID))
	assert.ErrorIs(t, store.Delete(sess.ID), domain.ErrNotFound)

	_, err := store.Get(sess.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_CapacidadMaxima(t *testing.T) {
	store := session.NewStore(2, time.Hour)
	first := store.Create("a.csv", entity.InventoryTable{})
	store.Create("b.csv", entity.InventoryTable{})
	store.Create("c.csv", entity.InventoryTable{})

	assert.Equal(t, 2, store.Len())
	_, err := store.Get(first.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "la sesión más antigua se descarta")
}

func TestStore_Expira(t *testing.T) {
	store := session.NewStore(5, 20*time.Millisecond)
	sess := store.Create("a.csv", entity.InventoryTable{})

	time.Sleep(60 * time.Millisecond)

	_, err := store.Get(sess.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

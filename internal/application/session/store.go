// Package session guarda en memoria las tablas subidas mientras dura la sesión interactiva.
// Nada se persiste: al expirar o reiniciar el proceso las sesiones desaparecen.
package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/jhoicas/restocker-api/internal/domain"
	"github.com/jhoicas/restocker-api/internal/domain/entity"
	"github.com/jhoicas/restocker-api/internal/domain/inventory"
)

// Session un archivo subido y su tabla derivada.
// Se trata como valor inmutable: cada cambio de selección guarda una copia nueva.
type Session struct {
	ID        string
	FileName  string
	Table     entity.InventoryTable // tabla completa derivada
	Companies []string              // empresas distintas (modo compare)
	Selected  []string              // empresas seleccionadas (modo compare)
	CreatedAt time.Time
}

// View tabla que ven los gráficos y el modelo: completa en single, filtrada en compare.
func (s Session) View() entity.InventoryTable {
	if s.Table.Variant != entity.VariantCompare {
		return s.Table
	}
	return inventory.FilterByCompanies(s.Table, s.Selected)
}

// Store sesiones en memoria con TTL y tamaño máximo (LRU, seguro para uso concurrente).
type Store struct {
	lru *expirable.LRU[string, Session]
	now func() time.Time
}

// NewStore construye el almacén.
func NewStore(maxSize int, ttl time.Duration) *Store {
	return &Store{
		lru: expirable.NewLRU[string, Session](maxSize, nil, ttl),
		now: time.Now,
	}
}

// Create registra una sesión nueva para la tabla. En modo compare preselecciona
// las dos primeras empresas del archivo.
func (s *Store) Create(fileName string, table entity.InventoryTable) Session {
	sess := Session{
		ID:        uuid.NewString(),
		FileName:  fileName,
		Table:     table,
		CreatedAt: s.now(),
	}
	if table.Variant == entity.VariantCompare {
		sess.Companies = inventory.DistinctCompanies(table)
		sess.Selected = inventory.DefaultSelection(table)
	}
	s.lru.Add(sess.ID, sess)
	return sess
}

// Get devuelve la sesión o domain.ErrNotFound si no existe o expiró.
func (s *Store) Get(id string) (Session, error) {
	sess, ok := s.lru.Get(id)
	if !ok {
		return Session{}, fmt.Errorf("%w: sesión %s", domain.ErrNotFound, id)
	}
	return sess, nil
}

// Select reemplaza la selección de empresas de una sesión compare.
// Nombres que no existen en el archivo se rechazan con ErrUnknownCompany.
func (s *Store) Select(id string, companies []string) (Session, error) {
	sess, err := s.Get(id)
	if err != nil {
		return Session{}, err
	}
	if sess.Table.Variant != entity.VariantCompare {
		return Session{}, domain.ErrNotCompareMode
	}
	if unknown := inventory.UnknownCompanies(sess.Table, companies); len(unknown) > 0 {
		return Session{}, fmt.Errorf("%w: %v", domain.ErrUnknownCompany, unknown)
	}
	selected := make([]string, len(companies))
	copy(selected, companies)
	sess.Selected = selected
	s.lru.Add(id, sess)
	return sess, nil
}

// Delete descarta la sesión. Devuelve ErrNotFound si no existía.
func (s *Store) Delete(id string) error {
	if !s.lru.Remove(id) {
		return fmt.Errorf("%w: sesión %s", domain.ErrNotFound, id)
	}
	return nil
}

// Len sesiones vigentes.
func (s *Store) Len() int {
	return s.lru.Len()
}

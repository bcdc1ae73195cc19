package ports

import (
	"io"

	"github.com/jhoicas/restocker-api/internal/domain/entity"
)

// SheetReader lee un archivo subido (xlsx/csv) y devuelve la hoja como texto.
type SheetReader interface {
	Read(filename string, src io.Reader) (*entity.RawSheet, error)
}

// Package spreadsheet lee archivos de inventario (.xlsx y .csv) a una hoja cruda de texto.
// No interpreta tipos: la validación de columnas y números vive en la capa de aplicación.
package spreadsheet

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jhoicas/restocker-api/internal/application/ports"
	"github.com/jhoicas/restocker-api/internal/domain"
	"github.com/jhoicas/restocker-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que Reader implementa SheetReader.
var _ ports.SheetReader = (*Reader)(nil)

// Reader lee la primera hoja de un .xlsx o un .csv.
type Reader struct {
	csvEncoding encoding.Encoding
}

// NewReader construye el lector. csvEncoding: "utf-8" (defecto), "windows-1252" o "iso-8859-1".
func NewReader(csvEncoding string) (*Reader, error) {
	enc, err := lookupEncoding(csvEncoding)
	if err != nil {
		return nil, err
	}
	return &Reader{csvEncoding: enc}, nil
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1, nil
	default:
		return nil, fmt.Errorf("spreadsheet: CSV_ENCODING no soportado %q", name)
	}
}

// Read detecta el formato por la extensión del nombre de archivo.
func (r *Reader) Read(filename string, src io.Reader) (*entity.RawSheet, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return r.readXLSX(src)
	case ".csv", ".txt":
		return r.readCSV(src)
	default:
		return nil, fmt.Errorf("%w: %q (use .xlsx o .csv)", domain.ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

func (r *Reader) readXLSX(src io.Reader) (*entity.RawSheet, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("%w: no es un libro xlsx válido: %v", domain.ErrUnsupportedFormat, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: el libro no tiene hojas", domain.ErrInvalidInput)
	}

	// RawCellValue evita que el formato de celda (miles, moneda) llegue al parser numérico.
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: leer hoja %q: %w", sheets[0], err)
	}
	return toSheet(rows)
}

func (r *Reader) readCSV(src io.Reader) (*entity.RawSheet, error) {
	var fallback transform.Transformer = transform.Nop
	if r.csvEncoding != nil {
		fallback = r.csvEncoding.NewDecoder()
	}
	// BOMOverride descarta el BOM UTF-8/16 si existe; si no, aplica la codificación configurada.
	br := bufio.NewReader(transform.NewReader(src, unicode.BOMOverride(fallback)))
	head, _ := br.Peek(4096)

	cr := csv.NewReader(br)
	cr.Comma = detectDelimiter(head)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: CSV mal formado: %v", domain.ErrInvalidInput, err)
	}
	return toSheet(rows)
}

// detectDelimiter elige entre ',', ';' y tabulador según la primera línea.
func detectDelimiter(sample []byte) rune {
	line := sample
	if i := bytes.IndexByte(sample, '\n'); i >= 0 {
		line = sample[:i]
	}
	best, bestCount := ',', bytes.Count(line, []byte{','})
	for _, d := range []rune{';', '\t'} {
		if n := bytes.Count(line, []byte(string(d))); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}

// toSheet separa el encabezado, descarta filas totalmente vacías y completa filas cortas.
func toSheet(rows [][]string) (*entity.RawSheet, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: el archivo está vacío", domain.ErrInvalidInput)
	}
	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}

	records := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		rec := make([]string, len(header))
		copy(rec, row)
		records = append(records, rec)
	}
	return &entity.RawSheet{Header: header, Records: records}, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/clasificador/internal/application/usecase"
	"github.com/jhoicas/clasificador/internal/domain"
	"github.com/jhoicas/clasificador/internal/domain/entity"
)

var _ usecase.TableEncoder = (*CSVEncoder)(nil)

// DefaultCharset se usa cuando no se pide ninguno.
const DefaultCharset = "utf-8"

// charsets soportados además de UTF-8. Los nombres siguen las etiquetas IANA.
var charsets = map[string]encoding.Encoding{
	"windows-1251": charmap.Windows1251,
	"koi8-r":       charmap.KOI8R,
	"iso-8859-1":   charmap.ISO8859_1,
}

// Charsets devuelve los charsets aceptados, UTF-8 primero.
func Charsets() []string {
	names := make([]string, 0, len(charsets)+1)
	for name := range charsets {
		names = append(names, name)
	}
	sort.Strings(names)
	return append([]string{DefaultCharset}, names...)
}

// CSVEncoder escribe una tabla como CSV (encabezado + filas) en el charset pedido.
type CSVEncoder struct {
	Comma rune
}

// NewCSVEncoder crea el codificador con separador coma.
func NewCSVEncoder() *CSVEncoder {
	return &CSVEncoder{Comma: ','}
}

// EncodeTable escribe data en w. Un carácter que no existe en el charset destino
// es error: no se sustituye en silencio.
func (e *CSVEncoder) EncodeTable(w io.Writer, data *entity.TableData, charset string) error {
	enc, err := lookupCharset(charset)
	if err != nil {
		return err
	}
	out := w
	var tw *transform.Writer
	if enc != nil {
		tw = transform.NewWriter(w, enc.NewEncoder())
		out = tw
	}

	cw := csv.NewWriter(out)
	if e.Comma != 0 {
		cw.Comma = e.Comma
	}
	if err := cw.Write(data.Columns); err != nil {
		return fmt.Errorf("csv: encabezado: %w", err)
	}
	for _, row := range data.StringRows() {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csv: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csv (%s): %w", charsetName(charset), err)
	}
	if tw != nil {
		if err := tw.Close(); err != nil {
			return fmt.Errorf("csv (%s): %w", charsetName(charset), err)
		}
	}
	return nil
}

// lookupCharset devuelve nil para UTF-8.
func lookupCharset(name string) (encoding.Encoding, error) {
	name = charsetName(name)
	if name == DefaultCharset || name == "utf8" {
		return nil, nil
	}
	enc, ok := charsets[name]
	if !ok {
		return nil, fmt.Errorf("%w: charset %q no soportado (use %s)", domain.ErrInvalidInput, name, strings.Join(Charsets(), ", "))
	}
	return enc, nil
}

func charsetName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultCharset
	}
	return name
}

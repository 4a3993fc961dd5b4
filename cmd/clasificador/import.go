package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/spf13/cobra"

	"github.com/jhoicas/clasificador/internal/domain"
	"github.com/jhoicas/clasificador/internal/domain/entity"
)

// Filas de importación. Los valores se leen como texto y los valida RecordUseCase,
// igual que los que llegan desde el formulario de alta.
type classificationRow struct {
	ShortName   string `csv:"short_name"`
	Name        string `csv:"name"`
	UnitID      string `csv:"id_unit"`
	MainClassID string `csv:"id_main_class,omitempty"`
}

type productRow struct {
	ShortName string `csv:"short_name"`
	Name      string `csv:"name"`
	ClassID   string `csv:"id_class"`
}

type unitRow struct {
	ShortName string `csv:"short_name"`
	Name      string `csv:"name"`
	Code      string `csv:"code"`
}

func (r classificationRow) fields() map[string]string {
	return map[string]string{"short_name": r.ShortName, "name": r.Name, "id_unit": r.UnitID, "id_main_class": r.MainClassID}
}

func (r productRow) fields() map[string]string {
	return map[string]string{"short_name": r.ShortName, "name": r.Name, "id_class": r.ClassID}
}

func (r unitRow) fields() map[string]string {
	return map[string]string{"short_name": r.ShortName, "name": r.Name, "code": r.Code}
}

type importRow interface{ fields() map[string]string }

// readImport decodifica el CSV de la tabla. La cabecera debe traer todos los
// campos de alta salvo id_main_class, que puede faltar (clases raíz).
func readImport(r io.Reader, table string) ([]map[string]string, error) {
	def, ok := entity.LookupTable(table)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownTable, table)
	}
	dec, err := csvutil.NewDecoder(csv.NewReader(r))
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: archivo vacío", domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("leer cabecera: %w", err)
	}
	header := make(map[string]bool, len(dec.Header()))
	for _, h := range dec.Header() {
		header[h] = true
	}
	var missing []string
	for _, f := range def.Fields {
		if !header[f] && f != "id_main_class" {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: faltan columnas %s", domain.ErrInvalidInput, strings.Join(missing, ", "))
	}

	switch table {
	case "classification":
		return decodeRows[classificationRow](dec)
	case "product":
		return decodeRows[productRow](dec)
	default:
		return decodeRows[unitRow](dec)
	}
}

func decodeRows[T importRow](dec *csvutil.Decoder) ([]map[string]string, error) {
	var rows []T
	if err := dec.Decode(&rows); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	out := make([]map[string]string, len(rows))
	for i, r := range rows {
		out[i] = r.fields()
	}
	return out, nil
}

var importCmd = &cobra.Command{
	Use:   "import <tabla> <archivo.csv>",
	Short: "Agregar registros en lote desde un CSV con cabecera",
	Long: `Cada fila se agrega con el mismo procedimiento que "add". La importación se
detiene en la primera fila rechazada; las anteriores quedan guardadas.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[1])
		if err != nil {
			return err
		}
		defer f.Close()

		rows, err := readImport(f, args[0])
		if err != nil {
			return err
		}
		return withServices(cmd.Context(), func(svc *services) error {
			for i, fields := range rows {
				out, err := svc.records.Add(cmd.Context(), args[0], fields)
				if err != nil {
					// +2: la cabecera es la fila 1
					return fmt.Errorf("fila %d: %w (%d registros agregados)", i+2, err, i)
				}
				log.Debug().Str("table", out.Table).Int64("id", out.ID).Msg("registro importado")
			}
			printSuccess(cmd.OutOrStdout(), fmt.Sprintf("%d registros agregados a %s", len(rows), args[0]))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}

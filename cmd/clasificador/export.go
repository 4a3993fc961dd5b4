package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/clasificador/internal/infrastructure/export"
)

var (
	charset string
	outPath string
)

var exportCmd = &cobra.Command{
	Use:   "export <tabla>",
	Short: "Exportar una tabla a CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(cmd.Context(), func(svc *services) error {
			return writeOutput(cmd, outPath, func(w io.Writer) error {
				return svc.export.CSV(cmd.Context(), args[0], charset, w)
			})
		})
	},
}

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Exportar la jerarquía de clases a XML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withServices(cmd.Context(), func(svc *services) error {
			return writeOutput(cmd, outPath, func(w io.Writer) error {
				return svc.export.Tree(cmd.Context(), w)
			})
		})
	},
}

var reportCmd = &cobra.Command{
	Use:   "report <tabla>",
	Short: "Generar el informe PDF de una tabla",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := outPath
		if path == "" {
			path = args[0] + ".pdf"
		}
		return withServices(cmd.Context(), func(svc *services) error {
			pdf, err := svc.export.Report(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, pdf, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", path, err)
			}
			printSuccess(cmd.OutOrStdout(), "Informe escrito en "+path)
			return nil
		})
	},
}

// writeOutput escribe en el archivo indicado, o en stdout si path está vacío o es "-".
// Si la escritura falla no deja un archivo a medias.
func writeOutput(cmd *cobra.Command, path string, fn func(io.Writer) error) error {
	if path == "" || path == "-" {
		return fn(cmd.OutOrStdout())
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("crear %s: %w", path, err)
	}
	if err := fn(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cerrar %s: %w", path, err)
	}
	log.Info().Str("file", path).Msg("exportación escrita")
	return nil
}

func init() {
	exportCmd.Flags().StringVar(&charset, "charset", export.DefaultCharset, fmt.Sprintf("codificación de salida %v", export.Charsets()))
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "archivo de salida (por defecto stdout)")
	treeCmd.Flags().StringVarP(&outPath, "out", "o", "", "archivo de salida (por defecto stdout)")
	reportCmd.Flags().StringVarP(&outPath, "out", "o", "", "archivo de salida (por defecto <tabla>.pdf)")

	rootCmd.AddCommand(exportCmd, treeCmd, reportCmd)
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Listar las tablas administrables y sus campos de alta",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withServices(cmd.Context(), func(svc *services) error {
			var rows [][]string
			for _, t := range svc.tables.Tables() {
				rows = append(rows, []string{t.Name, t.Title, t.Key, strings.Join(t.Fields, ", ")})
			}
			printTable(cmd.OutOrStdout(), []string{"tabla", "título", "clave", "campos"}, rows)
			return nil
		})
	},
}

var listCmd = &cobra.Command{
	Use:   "list <tabla>",
	Short: "Mostrar el contenido de una tabla",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(cmd.Context(), func(svc *services) error {
			data, err := svc.tables.List(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if data.Empty() {
				printMuted(out, fmt.Sprintf("La tabla %s está vacía.", data.Table))
				return nil
			}
			printTable(out, data.Columns, data.StringRows())
			printMuted(out, fmt.Sprintf("%d registros", data.Count))
			return nil
		})
	},
}

var addCmd = &cobra.Command{
	Use:   "add <tabla> campo=valor...",
	Short: "Agregar un registro (create_class, create_product o create_unit)",
	Example: `  clasificador add unit short_name=kg name=Kilogramo code=166
  clasificador add classification short_name=ALI name=Alimentos id_unit=1 id_main_class=
  clasificador add product short_name=AG name=Agua id_class=4`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fields, err := parseAssignments(args[1:])
		if err != nil {
			return err
		}
		return withServices(cmd.Context(), func(svc *services) error {
			out, err := svc.records.Add(cmd.Context(), args[0], fields)
			if err != nil {
				return err
			}
			log.Info().Str("table", out.Table).Int64("id", out.ID).Msg("registro agregado")
			printSuccess(cmd.OutOrStdout(), out.Message)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(tablesCmd, listCmd, addCmd)
}

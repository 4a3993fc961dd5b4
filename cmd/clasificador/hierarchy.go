package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	classID   int64
	productID int64
	parentID  int64
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Buscar los productos de una clase",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withServices(cmd.Context(), func(svc *services) error {
			list, err := svc.products.ByClass(cmd.Context(), classID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(list) == 0 {
				printMuted(out, "Productos no encontrados.")
				return nil
			}
			rows := make([][]string, len(list))
			for i, p := range list {
				rows[i] = []string{strconv.FormatInt(p.ID, 10), p.ShortName, p.Name}
			}
			printTable(out, []string{"id_product", "short_name", "name"}, rows)
			return nil
		})
	},
}

var childrenCmd = &cobra.Command{
	Use:   "children",
	Short: "Buscar una clase y todos sus descendientes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withServices(cmd.Context(), func(svc *services) error {
			list, err := svc.classes.Children(cmd.Context(), classID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(list) == 0 {
				printMuted(out, fmt.Sprintf("La clase %d no existe.", classID))
				return nil
			}
			rows := make([][]string, len(list))
			for i, c := range list {
				rows[i] = []string{strconv.FormatInt(c.ID, 10), c.ShortName}
			}
			printTable(out, []string{"id_class", "short_name"}, rows)
			return nil
		})
	},
}

var changeClassCmd = &cobra.Command{
	Use:   "change-class",
	Short: "Mover un producto a otra clase (solo clases terminales)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withServices(cmd.Context(), func(svc *services) error {
			if err := svc.products.ChangeClass(cmd.Context(), productID, classID); err != nil {
				return err
			}
			log.Info().Int64("id_product", productID).Int64("id_class", classID).Msg("clase de producto cambiada")
			printSuccess(cmd.OutOrStdout(), fmt.Sprintf("El producto %d ahora pertenece a la clase %d", productID, classID))
			return nil
		})
	},
}

var changeParentCmd = &cobra.Command{
	Use:   "change-parent",
	Short: "Cambiar la clase padre de una clase (rechaza ciclos)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withServices(cmd.Context(), func(svc *services) error {
			if err := svc.classes.ChangeParent(cmd.Context(), classID, parentID); err != nil {
				return err
			}
			log.Info().Int64("id_class", classID).Int64("id_main_class", parentID).Msg("clase padre cambiada")
			printSuccess(cmd.OutOrStdout(), fmt.Sprintf("La clase %d ahora depende de la clase %d", classID, parentID))
			return nil
		})
	},
}

func init() {
	productsCmd.Flags().Int64Var(&classID, "class", 0, "id_class (requerido)")
	_ = productsCmd.MarkFlagRequired("class")

	childrenCmd.Flags().Int64Var(&classID, "class", 0, "id_class (requerido)")
	_ = childrenCmd.MarkFlagRequired("class")

	changeClassCmd.Flags().Int64Var(&productID, "product", 0, "id_product (requerido)")
	changeClassCmd.Flags().Int64Var(&classID, "class", 0, "nueva id_class (requerido)")
	_ = changeClassCmd.MarkFlagRequired("product")
	_ = changeClassCmd.MarkFlagRequired("class")

	changeParentCmd.Flags().Int64Var(&classID, "class", 0, "id_class (requerido)")
	changeParentCmd.Flags().Int64Var(&parentID, "parent", 0, "nueva id_main_class (requerido)")
	_ = changeParentCmd.MarkFlagRequired("class")
	_ = changeParentCmd.MarkFlagRequired("parent")

	rootCmd.AddCommand(productsCmd, childrenCmd, changeClassCmd, changeParentCmd)
}

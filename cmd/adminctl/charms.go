package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RaikyD/charms-admin/internal/application"
)

var (
	charmsPage   int
	charmsSearch struct {
		name, minPrice, maxPrice, category string
	}
)

var charmsCmd = &cobra.Command{
	Use:   "charms",
	Short: "Browse and delete catalogue charms",
}

var charmsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List charms, optionally filtered",
	RunE: func(cmd *cobra.Command, _ []string) error {
		filter, err := application.ParseCharmFilter(charmsSearch.name, charmsSearch.minPrice, charmsSearch.maxPrice, charmsSearch.category)
		if err != nil {
			return err
		}
		if err := sess.charms.Load(cmd.Context()); err != nil {
			return err
		}
		sess.charms.SetFilter(filter)
		if charmsPage > 1 && !sess.charms.SetPage(charmsPage) {
			return fmt.Errorf("page %d is out of range", charmsPage)
		}

		view := sess.charms.CurrentPage()
		if view.TotalItems == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Không tìm thấy Charm phù hợp.")
			return nil
		}
		tw := table(cmd.OutOrStdout())
		fmt.Fprintln(tw, "ID\tNAME\tPRICE\tCATEGORY\tSTATUS")
		for _, c := range view.Items {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n", c.ID, c.Name, c.Price, c.CategoryID, c.Status)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Trang %d / %d\n", view.Page, view.TotalPages)
		return nil
	},
}

var charmsDeleteCmd = &cobra.Command{
	Use:   "delete <charm-id>",
	Short: "Delete a charm",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return sess.charms.Delete(cmd.Context(), id)
	},
}

func init() {
	f := charmsListCmd.Flags()
	f.IntVarP(&charmsPage, "page", "p", 1, "page to show")
	f.StringVar(&charmsSearch.name, "name", "", "name substring")
	f.StringVar(&charmsSearch.minPrice, "min-price", "", "lowest price")
	f.StringVar(&charmsSearch.maxPrice, "max-price", "", "highest price")
	f.StringVar(&charmsSearch.category, "category", "", "charm category id")
	charmsCmd.AddCommand(charmsListCmd, charmsDeleteCmd)
}

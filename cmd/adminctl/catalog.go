package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RaikyD/charms-admin/internal/domain"
	"github.com/RaikyD/charms-admin/internal/format"
)

var (
	stockType string
	stockPage int
)

var revenueCmd = &cobra.Command{
	Use:   "revenue [day|week|month|year]",
	Short: "Show revenue for a period against the previous one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		period := ""
		if len(args) == 1 {
			period = args[0]
		}
		snap, err := sess.revenue.Load(cmd.Context(), period)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Tổng doanh thu: %s (%s%%)\n", format.VND(snap.Total), snap.PercentageChange.StringFixed(2))
		if snap.Item2 != nil {
			fmt.Fprintf(out, "Khác: %s\n", format.VND(*snap.Item2))
		}
		tw := table(out)
		fmt.Fprintln(tw, "LABEL\tCURRENT\tPREVIOUS")
		for _, b := range snap.Bars {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", b.Label, format.VND(b.Current), format.VND(b.Previous))
		}
		return tw.Flush()
	},
}

var stockCmd = &cobra.Command{
	Use:   "stock",
	Short: "Inspect and adjust bracelet and charm stock",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setup(cmd, args); err != nil {
			return err
		}
		t, err := domain.ParseStockType(stockType)
		if err != nil {
			return err
		}
		return sess.stock.SwitchType(cmd.Context(), t)
	},
}

var stockListCmd = &cobra.Command{
	Use:   "list",
	Short: "List inventory of the selected product family",
	RunE: func(cmd *cobra.Command, _ []string) error {
		sess.stock.SetPage(stockPage)
		view := sess.stock.CurrentPage()
		tw := table(cmd.OutOrStdout())
		fmt.Fprintln(tw, "ID\tNAME\tSTOCK\tQUANTITY\tPRICE")
		for _, it := range view.Items {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%s\n", it.ID, it.Name, it.Stock, it.Quantity, format.VND(it.Price))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: page %d/%d\n", sess.stock.ActiveType().Label(), view.Page, view.TotalPages)
		return nil
	},
}

func stockChangeCmd(use, short string, allowNew bool, op func(*cobra.Command, int64, string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <product-id> <quantity>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id int64
			if !allowNew || args[0] != "0" {
				var err error
				if id, err = parseID(args[0]); err != nil {
					return err
				}
			}
			return op(cmd, id, args[1])
		},
	}
}

var reviewsCmd = &cobra.Command{
	Use:   "reviews",
	Short: "List and moderate customer reviews",
}

var reviewsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List customer reviews",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := sess.reviews.Load(cmd.Context()); err != nil {
			return err
		}
		tw := table(cmd.OutOrStdout())
		fmt.Fprintln(tw, "ID\tUSER\tPRODUCT\tRATING\tDATE\tCOMMENT")
		for _, r := range sess.reviews.Rows() {
			fmt.Fprintf(tw, "%d\t%s\t%s #%d\t%d\t%s\t%s\n", r.ID, r.Reviewer, r.ProductKind, r.ProductID, r.Rating, r.ReviewDate, r.Comment)
		}
		return tw.Flush()
	},
}

var reviewsDeleteCmd = &cobra.Command{
	Use:   "delete <review-id>",
	Short: "Delete a review",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return sess.reviews.Delete(cmd.Context(), id)
	},
}

func init() {
	stockCmd.PersistentFlags().StringVarP(&stockType, "type", "t", string(domain.StockBracelet), "product family: BRACELET or CHARM")
	stockListCmd.Flags().IntVarP(&stockPage, "page", "p", 1, "page to show")
	stockCmd.AddCommand(
		stockListCmd,
		stockChangeCmd("add", "Receive warehouse stock (product 0 for a new entry)", true, func(cmd *cobra.Command, id int64, qty string) error {
			return sess.stock.AddStock(cmd.Context(), id, qty)
		}),
		stockChangeCmd("distribute", "Move warehouse stock to the storefront", false, func(cmd *cobra.Command, id int64, qty string) error {
			return sess.stock.Distribute(cmd.Context(), id, qty)
		}),
		stockChangeCmd("set", "Overwrite the storefront quantity", false, func(cmd *cobra.Command, id int64, qty string) error {
			return sess.stock.UpdateQuantity(cmd.Context(), id, qty)
		}),
	)
	reviewsCmd.AddCommand(reviewsListCmd, reviewsDeleteCmd)
}

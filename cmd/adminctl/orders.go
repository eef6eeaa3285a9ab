package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/RaikyD/charms-admin/internal/application"
	"github.com/RaikyD/charms-admin/internal/domain"
)

var ordersPage int

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List and reconcile orders",
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show one page of orders, delivered or paid first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := sess.orders.Refresh(cmd.Context()); err != nil {
			return err
		}
		sess.orders.SetPage(ordersPage)
		view := sess.orders.CurrentPage()

		tw := table(cmd.OutOrStdout())
		fmt.Fprintln(tw, "ID\tADDRESS\tPHONE\tTOTAL\tPAYMENT\tSHIPPER\tDELIVERY\tPAID")
		for _, o := range view.Items {
			shipper := "-"
			if o.ShipperID != nil {
				shipper = strconv.FormatInt(*o.ShipperID, 10)
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				o.ID, o.Address, o.PhoneNumber, o.Total, o.PaymentMethod, shipper, o.DeliveryLabel, o.PaymentLabel)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "page %d/%d, %d orders\n", view.Page, view.TotalPages, view.TotalItems)
		return nil
	},
}

var ordersShowCmd = &cobra.Command{
	Use:   "show <order-id>",
	Short: "Show the detail of one order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if _, err := sess.orders.LoadOrders(cmd.Context()); err != nil {
			return err
		}
		ord, ok := sess.orders.Select(id)
		if !ok {
			return fmt.Errorf("order %d not found", id)
		}
		d := application.NewOrderDetail(ord)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Đơn hàng #%d\n", d.ID)
		fmt.Fprintf(out, "Khách hàng: %s\nĐịa chỉ: %s\nSĐT: %s\nNgày đặt: %s\n", d.UserName, d.Address, d.PhoneNumber, d.OrderDate)
		fmt.Fprintf(out, "Thanh toán: %s\nTổng tiền: %s\nGiảm giá: %s\nGiao hàng: %s\n", d.PaymentMethod, d.Total, d.Discount, d.DeliveryLabel)
		if d.Note != "" {
			fmt.Fprintf(out, "Ghi chú: %s\n", d.Note)
		}
		for _, it := range d.Items {
			fmt.Fprintf(out, "  - %s #%d x%d\n", it.Kind, it.ProductID, it.Quantity)
		}
		return nil
	},
}

var ordersAssignCmd = &cobra.Command{
	Use:   "assign <order-id> <shipper-id>",
	Short: "Assign an order to a shipper",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		orderID, err := parseID(args[0])
		if err != nil {
			return err
		}
		shipperID, err := parseID(args[1])
		if err != nil {
			return err
		}
		return sess.orders.Assign(cmd.Context(), orderID, shipperID)
	},
}

// The mirrored counterpart status starts at 0 in a fresh process, as on a
// freshly loaded page.
var ordersDeliveryCmd = &cobra.Command{
	Use:   "delivery <order-id> <status 0-4>",
	Short: "Set the delivery status of an order",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, status, err := parseStatusArgs(args)
		if err != nil {
			return err
		}
		ds := domain.DeliveryStatus(status)
		if !ds.Valid() {
			return fmt.Errorf("unknown delivery status %d", status)
		}
		if _, err := sess.orders.LoadOrders(cmd.Context()); err != nil {
			return err
		}
		return sess.orders.UpdateDelivery(cmd.Context(), id, ds)
	},
}

var ordersPaymentCmd = &cobra.Command{
	Use:   "payment <order-id> <status 0-2>",
	Short: "Set the payment status of an order",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, status, err := parseStatusArgs(args)
		if err != nil {
			return err
		}
		ps := domain.PaymentStatus(status)
		if !ps.Valid() {
			return fmt.Errorf("unknown payment status %d", status)
		}
		if _, err := sess.orders.LoadOrders(cmd.Context()); err != nil {
			return err
		}
		return sess.orders.UpdatePayment(cmd.Context(), id, ps)
	},
}

var ordersDeleteCmd = &cobra.Command{
	Use:   "delete <order-id>",
	Short: "Delete an order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return sess.orders.Delete(cmd.Context(), id)
	},
}

func init() {
	ordersListCmd.Flags().IntVarP(&ordersPage, "page", "p", 1, "page to show")
	ordersCmd.AddCommand(ordersListCmd, ordersShowCmd, ordersAssignCmd, ordersDeliveryCmd, ordersPaymentCmd, ordersDeleteCmd)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

func parseStatusArgs(args []string) (int64, int, error) {
	id, err := parseID(args[0])
	if err != nil {
		return 0, 0, err
	}
	status, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid status %q", args[1])
	}
	return id, status, nil
}

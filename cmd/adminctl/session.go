package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/RaikyD/charms-admin/internal/application"
	"github.com/RaikyD/charms-admin/internal/config"
	"github.com/RaikyD/charms-admin/internal/domain"
	"github.com/RaikyD/charms-admin/internal/gateway"
	"github.com/RaikyD/charms-admin/internal/logger"
	"github.com/RaikyD/charms-admin/internal/notify"
)

// session holds the consoles built for one invocation.
type session struct {
	orders  *application.OrdersConsole
	revenue *application.RevenueView
	stock   *application.StockConsole
	reviews *application.ReviewsConsole
	charms  *application.CharmsConsole
}

var sess *session

// printer shows notifications as they are raised, the way toasts would.
type printer struct {
	out io.Writer
}

func (p printer) Publish(_ context.Context, n domain.Notification) error {
	_, err := fmt.Fprintf(p.out, "[%s] %s\n", n.Level, n.Message)
	return err
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logger.Init(cfg.LOG_LEVEL, "console")

	gw := gateway.NewClient(cfg.GATEWAY_BASE_URL, cfg.GATEWAY_TIMEOUT, gateway.WithToken(cfg.GATEWAY_TOKEN))
	fanout := notify.NewFanout(notify.NewJournal(0))
	fanout.Add("stderr", printer{out: cmd.ErrOrStderr()})

	sess = &session{
		orders:  application.NewOrdersConsole(gw, fanout, cfg.PAGE_SIZE),
		revenue: application.NewRevenueView(gw, nil, fanout),
		stock:   application.NewStockConsole(gw, fanout, cfg.PAGE_SIZE),
		reviews: application.NewReviewsConsole(gw, fanout),
		charms:  application.NewCharmsConsole(gw, fanout, cfg.PAGE_SIZE),
	}
	return nil
}

func table(w io.Writer) *tabwriter.Writer {
	if w == nil {
		w = os.Stdout
	}
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

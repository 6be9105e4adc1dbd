package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/marquee-ooh/marquee/internal/app"
	"github.com/marquee-ooh/marquee/internal/campaign"
	"github.com/marquee-ooh/marquee/internal/contracts"
	"github.com/marquee-ooh/marquee/internal/inventory"
	"github.com/marquee-ooh/marquee/internal/mockdata"
	"github.com/marquee-ooh/marquee/internal/observability"
	"github.com/marquee-ooh/marquee/internal/quotation"
	"github.com/marquee-ooh/marquee/internal/rates"
	"github.com/marquee-ooh/marquee/internal/shared"
)

func main() {
	_ = godotenv.Load()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)
	metrics := observability.NewMetrics()

	table, err := loadRates(cfg)
	if err != nil {
		logger.Error("load rate table", slog.Any("error", err))
		os.Exit(1)
	}

	screens, err := mockdata.Screens()
	if err != nil {
		logger.Error("load screens", slog.Any("error", err))
		os.Exit(1)
	}
	rules, err := mockdata.PricingRules()
	if err != nil {
		logger.Error("load pricing rules", slog.Any("error", err))
		os.Exit(1)
	}
	contractSeed, err := mockdata.Contracts()
	if err != nil {
		logger.Error("load contracts", slog.Any("error", err))
		os.Exit(1)
	}

	screenRepo := inventory.NewMemoryRepository(screens)
	contractRepo := contracts.NewMemoryRepository(contractSeed)
	ruleRepo := campaign.NewMemoryRuleRepository(rules)

	quoteService := quotation.NewService(
		quotation.NewMemoryRepository(),
		quotation.NewEngine(table, logger, metrics),
	)
	campaignService := campaign.NewService(
		campaign.NewMemoryRepository(),
		ruleRepo,
		screenRepo,
		contractRepo,
		campaign.NewEngine(logger, metrics),
	)

	ctx := context.Background()

	quote, err := quoteService.Create(ctx, quotation.CreateQuotationRequest{
		ClientName: "Al Dana Trading",
		Agency:     "Horizon Media",
		Items: []quotation.CreateLineItemReq{
			{Section: "Billboards", Category: "Signature", Duration: "4W", Qty: 12},
			{Section: "Billboards", Category: "Residential", Duration: "2W", Qty: 10},
			{Section: "DOOH", Category: "DOOH", Duration: "1W", Qty: 8},
		},
	})
	if err != nil {
		logger.Error("create quotation", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("quotation priced",
		slog.String("client", quote.ClientName),
		slog.String("gross", shared.FormatAmount(cfg.Currency, quote.Totals.Gross)),
		slog.String("net", shared.FormatAmount(cfg.Currency, quote.Totals.Net)),
	)

	camp, err := campaignService.Create(ctx, campaign.CreateCampaignRequest{
		Name:       "Spring Launch",
		TenantName: "Al Dana Trading",
		StartDate:  time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, time.April, 14, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		logger.Error("create campaign", slog.Any("error", err))
		os.Exit(1)
	}
	if _, err := campaignService.AddBooking(ctx, camp.ID, campaign.AddBookingRequest{
		ScreenID: "SCR-002",
		Quantity: 1,
		Segments: []string{"17:00", "18:00", "19:00"},
	}); err != nil {
		logger.Error("add booking", slog.Any("error", err))
		os.Exit(1)
	}

	estimate, err := campaignService.Estimate(ctx, camp.ID)
	if err != nil {
		logger.Error("estimate campaign", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("campaign estimated",
		slog.String("campaign", camp.Name),
		slog.String("total_price", shared.FormatAmount(cfg.Currency, estimate.TotalPrice)),
		slog.Int64("total_impressions", estimate.TotalImpressions),
	)
}

func loadRates(cfg *app.Config) (*rates.Table, error) {
	if cfg.RatesPath != "" {
		return rates.LoadTable(cfg.RatesPath)
	}
	return rates.DefaultTable()
}

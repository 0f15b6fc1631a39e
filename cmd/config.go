package cmd

import (
	"time"

	"github.com/shopspring/decimal"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	VATRate             decimal.Decimal
	Currency            string
	SRID                int
	SubscriberOrderType string
	FreeOrderTypes      []string

	// GeometryProvider is "postgis" or "planar".
	GeometryProvider       string
	PricingGeometryTimeout time.Duration
	PricingWorkers         int

	NotifyWorkers   int
	NotifyQueueSize int
	NotifyTimeout   time.Duration
	OperatorsEmail  string

	CatalogCacheSize int
	CatalogCacheTTL  time.Duration

	ArchiveSchedule   string
	DownloadRetention time.Duration
}

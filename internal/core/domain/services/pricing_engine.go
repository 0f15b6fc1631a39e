package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/pricing"
	"geoshop/internal/core/domain/model/product"
	"geoshop/internal/core/ports"

	"github.com/shopspring/decimal"
)

// squareMetersPerHectare converts provider areas to the unit prices are quoted in.
var squareMetersPerHectare = decimal.NewFromInt(10_000)

// Reason explains a PriceResult.
type Reason int

const (
	ReasonCalculated Reason = iota + 1
	// ReasonManual covers MANUAL pricings and rules that cannot be applied
	// automatically.
	ReasonManual
	ReasonAboveMaxPrice
	ReasonUnknownType
	ReasonGeometryUnavailable
)

func (r Reason) String() string {
	switch r {
	case ReasonCalculated:
		return "calculated"
	case ReasonManual:
		return "manual"
	case ReasonAboveMaxPrice:
		return "above_max_price"
	case ReasonUnknownType:
		return "unknown_type"
	case ReasonGeometryUnavailable:
		return "geometry_unavailable"
	default:
		return "unknown"
	}
}

// PriceResult is the outcome of a pricing evaluation. When Defined is false
// an operator has to quote the item by hand and Price and BaseFee are zero
// values.
type PriceResult struct {
	Price   kernel.Money
	BaseFee kernel.Money
	Defined bool
	Reason  Reason
	// Detail is the offending code for ReasonUnknownType.
	Detail string
}

func undefined(reason Reason) PriceResult {
	return PriceResult{Reason: reason}
}

// PricingEngine computes the price of a product over a polygon.
type PricingEngine struct {
	geometry ports.GeometryProvider
	layers   ports.PricingLayerReader
	catalog  ports.ProductCatalog
	timeout  time.Duration
	logger   *slog.Logger
}

// NewPricingEngine wires an engine. timeout bounds each individual geometry
// or layer call; zero disables the bound.
func NewPricingEngine(
	geometry ports.GeometryProvider,
	layers ports.PricingLayerReader,
	catalog ports.ProductCatalog,
	timeout time.Duration,
	logger *slog.Logger,
) *PricingEngine {
	return &PricingEngine{
		geometry: geometry,
		layers:   layers,
		catalog:  catalog,
		timeout:  timeout,
		logger:   logger.With("component", "PricingEngine"),
	}
}

// Evaluate prices p over polygon. It never fails: anything that prevents an
// automatic price degrades to an undefined result.
func (e *PricingEngine) Evaluate(ctx context.Context, p *product.Product, polygon kernel.Geometry) PriceResult {
	return e.evaluate(ctx, p, polygon, true)
}

func (e *PricingEngine) evaluate(
	ctx context.Context,
	p *product.Product,
	polygon kernel.Geometry,
	expandGroups bool,
) PriceResult {
	pr := p.Pricing()
	log := e.logger.With("product_id", p.ID().String(), "pricing", pr.Code())

	var (
		amount  kernel.Money
		baseFee = pr.BaseFeeOrZero()
		err     error
	)

	switch rule := pr.Rule().(type) {
	case pricing.FreeRule:
		amount, _ = kernel.ZeroMoney(pr.Currency())

	case pricing.SingleRule:
		amount = rule.UnitPrice

	case pricing.ByNumberObjectsRule:
		var count int
		if count, err = e.countObjects(ctx, pr, polygon); err != nil {
			log.Warn("counting pricing objects failed", "error", err)
			return undefined(ReasonGeometryUnavailable)
		}
		amount = rule.UnitPrice.Mul(decimal.NewFromInt(int64(count)))

	case pricing.ByAreaRule:
		var area float64
		if area, err = e.area(ctx, polygon); err != nil {
			log.Warn("computing area failed", "error", err)
			return undefined(ReasonGeometryUnavailable)
		}
		amount = rule.UnitPrice.Mul(hectares(area))

	case pricing.FromPricingLayerRule:
		var res *PriceResult
		if amount, res = e.layerAmount(ctx, pr, polygon, log); res != nil {
			return *res
		}

	case pricing.FromChildrenOfGroupRule:
		if !expandGroups {
			log.Warn("nested product group is not priced")
			return undefined(ReasonManual)
		}
		var res *PriceResult
		if amount, baseFee, res = e.childrenAmount(ctx, p, polygon, log); res != nil {
			return *res
		}

	case pricing.ManualRule:
		return undefined(ReasonManual)

	case pricing.IncompleteRule:
		log.Warn("pricing is missing a value", "missing", rule.Missing)
		return undefined(ReasonManual)

	case pricing.UnknownRule:
		log.Warn("unknown pricing type", "code", rule.Code)
		return PriceResult{Reason: ReasonUnknownType, Detail: rule.Code}

	default:
		log.Error("unhandled pricing rule", "rule", fmt.Sprintf("%T", rule))
		return undefined(ReasonUnknownType)
	}

	return e.bound(pr, amount.Round(), baseFee.Round(), log)
}

// bound applies the min and max of the pricing. Below min the price is
// raised to min; above max an operator must quote.
func (e *PricingEngine) bound(pr *pricing.Pricing, amount, baseFee kernel.Money, log *slog.Logger) PriceResult {
	if minPrice := pr.MinPrice(); minPrice != nil {
		cmp, err := amount.Compare(*minPrice)
		if err != nil {
			log.Warn("min price is not comparable", "error", err)
			return undefined(ReasonManual)
		}
		if cmp < 0 {
			amount = minPrice.Round()
		}
	}
	if maxPrice := pr.MaxPrice(); maxPrice != nil {
		cmp, err := amount.Compare(*maxPrice)
		if err != nil {
			log.Warn("max price is not comparable", "error", err)
			return undefined(ReasonManual)
		}
		if cmp > 0 {
			return undefined(ReasonAboveMaxPrice)
		}
	}
	return PriceResult{Price: amount, BaseFee: baseFee, Defined: true, Reason: ReasonCalculated}
}

func (e *PricingEngine) countObjects(ctx context.Context, pr *pricing.Pricing, polygon kernel.Geometry) (int, error) {
	candidates, err := e.findLayer(ctx, pr.ID(), polygon)
	if err != nil {
		return 0, err
	}
	geoms := make([]kernel.Geometry, 0, len(candidates))
	for _, c := range candidates {
		geoms = append(geoms, c.Geom())
	}

	cctx, cancel := e.withTimeout(ctx)
	defer cancel()
	return e.geometry.CountWithin(cctx, geoms, polygon)
}

func (e *PricingEngine) layerAmount(
	ctx context.Context,
	pr *pricing.Pricing,
	polygon kernel.Geometry,
	log *slog.Logger,
) (kernel.Money, *PriceResult) {
	total, _ := kernel.ZeroMoney(pr.Currency())
	fail := func(reason Reason) (kernel.Money, *PriceResult) {
		res := undefined(reason)
		return kernel.Money{}, &res
	}

	zones, err := e.findLayer(ctx, pr.ID(), polygon)
	if err != nil {
		log.Warn("loading pricing layer failed", "error", err)
		return fail(ReasonGeometryUnavailable)
	}

	for _, zone := range zones {
		unit := zone.UnitPrice()
		if unit == nil || !zone.Geom().IsPolygonal() {
			continue
		}

		inter, ok, err := e.intersection(ctx, zone.Geom(), polygon)
		if err != nil {
			log.Warn("zone intersection failed", "zone", zone.Name(), "error", err)
			return fail(ReasonGeometryUnavailable)
		}
		if !ok {
			continue
		}
		area, err := e.area(ctx, inter)
		if err != nil {
			log.Warn("zone area failed", "zone", zone.Name(), "error", err)
			return fail(ReasonGeometryUnavailable)
		}

		if total, err = total.Add(unit.Mul(hectares(area))); err != nil {
			log.Warn("zone price is in another currency", "zone", zone.Name(), "error", err)
			return fail(ReasonManual)
		}
	}
	return total, nil
}

func (e *PricingEngine) childrenAmount(
	ctx context.Context,
	group *product.Product,
	polygon kernel.Geometry,
	log *slog.Logger,
) (kernel.Money, kernel.Money, *PriceResult) {
	currency := group.Pricing().Currency()
	total, _ := kernel.ZeroMoney(currency)
	fee := total
	fail := func(res PriceResult) (kernel.Money, kernel.Money, *PriceResult) {
		return kernel.Money{}, kernel.Money{}, &res
	}

	children, err := e.children(ctx, group.ID())
	if err != nil {
		log.Warn("loading group children failed", "error", err)
		return fail(undefined(ReasonGeometryUnavailable))
	}

	for _, child := range children {
		if !child.IsExpandable() {
			continue
		}
		hit, err := e.covers(ctx, child, polygon)
		if err != nil {
			log.Warn("child intersection failed", "child_id", child.ID().String(), "error", err)
			return fail(undefined(ReasonGeometryUnavailable))
		}
		if !hit {
			continue
		}

		res := e.evaluate(ctx, child, polygon, false)
		if !res.Defined {
			return fail(res)
		}

		if total, err = total.Add(res.Price); err != nil {
			log.Warn("child price is in another currency", "child_id", child.ID().String(), "error", err)
			return fail(undefined(ReasonManual))
		}
		if cmp, err := res.BaseFee.Compare(fee); err == nil && cmp > 0 {
			fee = res.BaseFee
		}
	}
	return total, fee, nil
}

// IntersectsOrder tells whether a product is relevant to the polygon.
// Products without a geometry are available everywhere.
func (e *PricingEngine) IntersectsOrder(ctx context.Context, p *product.Product, polygon kernel.Geometry) (bool, error) {
	return e.covers(ctx, p, polygon)
}

func (e *PricingEngine) covers(ctx context.Context, p *product.Product, polygon kernel.Geometry) (bool, error) {
	geom := p.Geom()
	if geom == nil {
		return true, nil
	}
	cctx, cancel := e.withTimeout(ctx)
	defer cancel()
	return e.geometry.Intersects(cctx, *geom, polygon)
}

func (e *PricingEngine) children(ctx context.Context, groupID kernel.UUID) ([]*product.Product, error) {
	cctx, cancel := e.withTimeout(ctx)
	defer cancel()
	return e.catalog.Children(cctx, groupID)
}

func (e *PricingEngine) findLayer(ctx context.Context, pricingID kernel.UUID, polygon kernel.Geometry) ([]*pricing.Geometry, error) {
	cctx, cancel := e.withTimeout(ctx)
	defer cancel()
	return e.layers.FindIntersecting(cctx, pricingID, polygon)
}

func (e *PricingEngine) area(ctx context.Context, g kernel.Geometry) (float64, error) {
	cctx, cancel := e.withTimeout(ctx)
	defer cancel()
	return e.geometry.Area(cctx, g)
}

func (e *PricingEngine) intersection(ctx context.Context, a, b kernel.Geometry) (kernel.Geometry, bool, error) {
	cctx, cancel := e.withTimeout(ctx)
	defer cancel()
	return e.geometry.Intersection(cctx, a, b)
}

func (e *PricingEngine) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, e.timeout)
}

func hectares(area float64) decimal.Decimal {
	if area <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(area).Div(squareMetersPerHectare)
}

package dashboard

import (
	"context"
	"fmt"

	"github.com/kirbygold/goldsuite/internal/fixtures"
	"github.com/kirbygold/goldsuite/internal/viewstate"
)

// choice is one segmented-control button. Submitting it dispatches the
// action Name=Value to the current page.
type choice struct {
	Name   string
	Value  string
	Label  string
	Icon   string
	Active bool
}

type option struct {
	value, label, icon string
}

func choices[T ~string](name string, current T, opts []option) []choice {
	out := make([]choice, len(opts))
	for i, o := range opts {
		out[i] = choice{
			Name:   name,
			Value:  o.value,
			Label:  o.label,
			Icon:   o.icon,
			Active: o.value == string(current),
		}
	}
	return out
}

var (
	assetOptions = []option{
		{"gold", "الذهب", "🟡"},
		{"silver", "الفضة", "⚪"},
		{"watches", "الساعات", "⌚"},
	}
	chartAssetOptions = []option{
		{"gold", "الذهب", "🟡"},
		{"silver", "الفضة", "⚪"},
		{"watch", "الساعات", "⌚"},
	}
	lockFilterOptions = []option{
		{"all", "الكل", ""},
		{"pending", "قيد الانتظار", ""},
		{"active", "فعّالة", ""},
		{"completed", "مكتملة", ""},
	}
	walletTabOptions = []option{
		{"overview", "نظرة عامة", ""},
		{"gold", "الذهب", ""},
		{"silver", "الفضة", ""},
		{"watch", "الساعات", ""},
	}
	productFilterOptions = []option{
		{"all", "الكل", ""},
		{"gold", "ذهب", "🟡"},
		{"silver", "فضة", "⚪"},
		{"watch", "ساعات", "⌚"},
	}
	viewModeOptions = []option{
		{"grid", "شبكة", ""},
		{"list", "قائمة", ""},
	}
	listingKindOptions = []option{
		{"traders", "تجار الجملة", ""},
		{"jewelers", "محلات الصياغة / الساعات", ""},
	}
)

func timeframeOptions() []option {
	var opts []option
	for _, tf := range viewstate.Timeframes() {
		opts = append(opts, option{value: string(tf), label: string(tf)})
	}
	return opts
}

type livePricesContent struct {
	Tabs    []choice
	Tab     viewstate.AssetClass
	Gold    []fixtures.Quote
	Silver  []fixtures.Quote
	Watches []fixtures.WatchIndex
}

type chartsContent struct {
	Assets     []choice
	Timeframes []choice
	Stats      []fixtures.MiniStat
}

type priceLocksContent struct {
	Filters []choice
	Locks   []fixtures.PriceLock
}

type walletContent struct {
	Cards    []fixtures.WalletCard
	Tabs     []choice
	Holdings fixtures.Table
	Ledger   fixtures.Table
}

type marketplaceContent struct {
	Filters  []choice
	Views    []choice
	Grid     bool
	Products []fixtures.Product
	Upload   *uploadContent
}

type uploadContent struct {
	Step viewstate.WizardStep
	Form fixtures.UploadForm
}

type directoryContent struct {
	Kinds   []choice
	Title   string
	Entries []directoryCard
}

type directoryCard struct {
	fixtures.DirectoryEntry
	Type string
}

// pageContent builds the page-specific template data for state.
func (d *Dashboard) pageContent(ctx context.Context, c *fixtures.Catalog, state viewstate.PageState) (any, error) {
	switch st := state.(type) {
	case *viewstate.StaticState:
		return c, nil

	case *viewstate.LivePricesState:
		return livePricesContent{
			Tabs:    choices(viewstate.ActionTab, st.Tab, assetOptions),
			Tab:     st.Tab,
			Gold:    c.Gold,
			Silver:  c.Silver,
			Watches: c.Watches,
		}, nil

	case *viewstate.ChartsState:
		return chartsContent{
			Assets:     choices(viewstate.ActionAsset, st.Asset, chartAssetOptions),
			Timeframes: choices(viewstate.ActionTimeframe, st.Timeframe, timeframeOptions()),
			Stats:      c.ChartStats,
		}, nil

	case *viewstate.PriceLocksState:
		// The selected filter does not narrow the list.
		return priceLocksContent{
			Filters: choices(viewstate.ActionFilter, st.Filter, lockFilterOptions),
			Locks:   c.Locks,
		}, nil

	case *viewstate.WalletState:
		return walletContent{
			Cards:    c.Wallet.Cards,
			Tabs:     choices(viewstate.ActionTab, st.Tab, walletTabOptions),
			Holdings: c.Wallet.Holdings[string(st.Tab)],
			Ledger:   c.Wallet.Ledger,
		}, nil

	case *viewstate.MarketplaceState:
		products, err := d.source.Products(ctx, fixtures.ProductType(st.Filter.Type()))
		if err != nil {
			return nil, fmt.Errorf("loading products: %w", err)
		}
		mc := marketplaceContent{
			Filters:  choices(viewstate.ActionFilter, st.Filter, productFilterOptions),
			Views:    choices(viewstate.ActionView, st.View, viewModeOptions),
			Grid:     st.View == viewstate.ViewGrid,
			Products: products,
		}
		if st.UploadOpen() {
			mc.Upload = &uploadContent{Step: st.Upload.Step(), Form: c.UploadForm}
		}
		return mc, nil

	case *viewstate.DirectoryState:
		dc := directoryContent{Kinds: choices(viewstate.ActionKind, st.Kind, listingKindOptions)}
		jewelers := st.Kind == viewstate.ListingJewelers
		if jewelers {
			dc.Title = "محلات الصياغة والساعات"
		} else {
			dc.Title = "تجار الجملة الموثوقين"
		}
		for _, e := range c.Directory {
			card := directoryCard{DirectoryEntry: e, Type: e.TraderType}
			if jewelers {
				card.Type = e.JewelerType
			}
			dc.Entries = append(dc.Entries, card)
		}
		return dc, nil

	default:
		return nil, fmt.Errorf("no content for page state %T", state)
	}
}

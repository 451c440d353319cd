package viewstate

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownAction is returned when a page does not own the named selector.
	ErrUnknownAction = errors.New("unknown action")
	// ErrInvalidValue is returned when a selector value is outside its closed set.
	ErrInvalidValue = errors.New("invalid value")
)

// Action is a page-local UI event: set selector Name to Value.
type Action struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Action names understood by the page states.
const (
	ActionTab       = "tab"
	ActionAsset     = "asset"
	ActionTimeframe = "timeframe"
	ActionFilter    = "filter"
	ActionView      = "view"
	ActionKind      = "kind"
	ActionUpload    = "upload"
	ActionWizard    = "wizard"
)

// PageState is the ephemeral state owned by one mounted page. The set of
// implementations is closed; NewPageState is the only constructor.
type PageState interface {
	Page() PageID
	Apply(Action) error
	isPageState()
}

// NewPageState returns the default state for a freshly mounted page.
func NewPageState(p PageID) (PageState, error) {
	switch p {
	case PageDashboard, PageMetaTrader, PageMap, PageSettings:
		return &StaticState{page: p}, nil
	case PageLivePrices:
		return &LivePricesState{Tab: AssetGold}, nil
	case PageCharts:
		return &ChartsState{Asset: ChartGold, Timeframe: Timeframe1D}, nil
	case PagePriceLocks:
		return &PriceLocksState{Filter: LockActive}, nil
	case PageWallet:
		return &WalletState{Tab: WalletOverview}, nil
	case PageMarketplace:
		return &MarketplaceState{Filter: ProductsAll, View: ViewGrid}, nil
	case PageDirectory:
		return &DirectoryState{Kind: ListingTraders}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPage, p)
	}
}

func parseChoice[T ~string](raw string, allowed []T) (T, error) {
	for _, v := range allowed {
		if string(v) == raw {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %q", ErrInvalidValue, raw)
}

func unknownAction(p PageID, a Action) error {
	return fmt.Errorf("%w: %s has no %q selector", ErrUnknownAction, p, a.Name)
}

// StaticState is used by pages without local selectors.
type StaticState struct {
	page PageID
}

func (s *StaticState) Page() PageID { return s.page }

func (s *StaticState) Apply(a Action) error { return unknownAction(s.page, a) }

func (*StaticState) isPageState() {}

// AssetClass is the live-prices tab.
type AssetClass string

const (
	AssetGold    AssetClass = "gold"
	AssetSilver  AssetClass = "silver"
	AssetWatches AssetClass = "watches"
)

var assetClasses = []AssetClass{AssetGold, AssetSilver, AssetWatches}

// LivePricesState selects which quote table is shown.
type LivePricesState struct {
	Tab AssetClass `json:"tab"`
}

func (*LivePricesState) Page() PageID { return PageLivePrices }

func (s *LivePricesState) Apply(a Action) error {
	if a.Name != ActionTab {
		return unknownAction(PageLivePrices, a)
	}
	v, err := parseChoice(a.Value, assetClasses)
	if err != nil {
		return err
	}
	s.Tab = v
	return nil
}

func (*LivePricesState) isPageState() {}

// ChartAsset is the instrument shown on the charts page.
type ChartAsset string

const (
	ChartGold   ChartAsset = "gold"
	ChartSilver ChartAsset = "silver"
	ChartWatch  ChartAsset = "watch"
)

// Timeframe is the candle period shown on the charts page.
type Timeframe string

const (
	Timeframe1H Timeframe = "1H"
	Timeframe4H Timeframe = "4H"
	Timeframe1D Timeframe = "1D"
	Timeframe1W Timeframe = "1W"
)

var (
	chartAssets = []ChartAsset{ChartGold, ChartSilver, ChartWatch}
	timeframes  = []Timeframe{Timeframe1H, Timeframe4H, Timeframe1D, Timeframe1W}
)

// Timeframes returns the selectable timeframes in display order.
func Timeframes() []Timeframe {
	out := make([]Timeframe, len(timeframes))
	copy(out, timeframes)
	return out
}

// ChartsState holds two independent selectors. The chart itself is a
// placeholder, so no combination changes the rendered data.
type ChartsState struct {
	Asset     ChartAsset `json:"asset"`
	Timeframe Timeframe  `json:"timeframe"`
}

func (*ChartsState) Page() PageID { return PageCharts }

func (s *ChartsState) Apply(a Action) error {
	switch a.Name {
	case ActionAsset:
		v, err := parseChoice(a.Value, chartAssets)
		if err != nil {
			return err
		}
		s.Asset = v
	case ActionTimeframe:
		v, err := parseChoice(a.Value, timeframes)
		if err != nil {
			return err
		}
		s.Timeframe = v
	default:
		return unknownAction(PageCharts, a)
	}
	return nil
}

func (*ChartsState) isPageState() {}

// LockFilter is the status filter on the price-locks page.
type LockFilter string

const (
	LockAll       LockFilter = "all"
	LockPending   LockFilter = "pending"
	LockActive    LockFilter = "active"
	LockCompleted LockFilter = "completed"
)

var lockFilters = []LockFilter{LockAll, LockPending, LockActive, LockCompleted}

// PriceLocksState records the selected status filter. The lock list is
// rendered in full regardless of the filter.
type PriceLocksState struct {
	Filter LockFilter `json:"filter"`
}

func (*PriceLocksState) Page() PageID { return PagePriceLocks }

func (s *PriceLocksState) Apply(a Action) error {
	if a.Name != ActionFilter {
		return unknownAction(PagePriceLocks, a)
	}
	v, err := parseChoice(a.Value, lockFilters)
	if err != nil {
		return err
	}
	s.Filter = v
	return nil
}

func (*PriceLocksState) isPageState() {}

// WalletTab selects the holdings table on the wallet page.
type WalletTab string

const (
	WalletOverview WalletTab = "overview"
	WalletGold     WalletTab = "gold"
	WalletSilver   WalletTab = "silver"
	WalletWatch    WalletTab = "watch"
)

var walletTabs = []WalletTab{WalletOverview, WalletGold, WalletSilver, WalletWatch}

// WalletState selects one of the four holdings tables.
type WalletState struct {
	Tab WalletTab `json:"tab"`
}

func (*WalletState) Page() PageID { return PageWallet }

func (s *WalletState) Apply(a Action) error {
	if a.Name != ActionTab {
		return unknownAction(PageWallet, a)
	}
	v, err := parseChoice(a.Value, walletTabs)
	if err != nil {
		return err
	}
	s.Tab = v
	return nil
}

func (*WalletState) isPageState() {}

// ProductFilter narrows the marketplace listing by product type.
type ProductFilter string

const (
	ProductsAll    ProductFilter = "all"
	ProductsGold   ProductFilter = "gold"
	ProductsSilver ProductFilter = "silver"
	ProductsWatch  ProductFilter = "watch"
)

var productFilters = []ProductFilter{ProductsAll, ProductsGold, ProductsSilver, ProductsWatch}

// Type returns the product type to filter by, or "" for all products.
func (f ProductFilter) Type() string {
	if f == ProductsAll {
		return ""
	}
	return string(f)
}

// ViewMode is the marketplace layout.
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

var viewModes = []ViewMode{ViewGrid, ViewList}

// Upload modal actions.
const (
	UploadOpen  = "open"
	UploadClose = "close"
)

// Wizard actions.
const (
	WizardContinue = "continue"
	WizardPreview  = "preview"
	WizardBack     = "back"
	WizardPublish  = "publish"
)

// MarketplaceState owns the product filter, layout and the upload modal.
// Upload is nil while the modal is closed.
type MarketplaceState struct {
	Filter ProductFilter `json:"filter"`
	View   ViewMode      `json:"view"`
	Upload *Wizard       `json:"upload,omitempty"`
}

func (*MarketplaceState) Page() PageID { return PageMarketplace }

// UploadOpen reports whether the upload modal is visible.
func (s *MarketplaceState) UploadOpen() bool { return s.Upload != nil }

func (s *MarketplaceState) Apply(a Action) error {
	switch a.Name {
	case ActionFilter:
		v, err := parseChoice(a.Value, productFilters)
		if err != nil {
			return err
		}
		s.Filter = v
	case ActionView:
		v, err := parseChoice(a.Value, viewModes)
		if err != nil {
			return err
		}
		s.View = v
	case ActionUpload:
		switch a.Value {
		case UploadOpen:
			s.Upload = NewWizard()
		case UploadClose:
			s.Upload = nil
		default:
			return fmt.Errorf("%w: %q", ErrInvalidValue, a.Value)
		}
	case ActionWizard:
		return s.applyWizard(a.Value)
	default:
		return unknownAction(PageMarketplace, a)
	}
	return nil
}

func (s *MarketplaceState) applyWizard(move string) error {
	if s.Upload == nil {
		return fmt.Errorf("%w: upload modal is closed", ErrInvalidTransition)
	}
	switch move {
	case WizardContinue:
		return s.Upload.Continue()
	case WizardPreview:
		return s.Upload.Preview()
	case WizardBack:
		return s.Upload.Back()
	case WizardPublish:
		if !s.Upload.CanPublish() {
			return fmt.Errorf("%w: publish from %s", ErrInvalidTransition, s.Upload.Step())
		}
		// The entered product is discarded.
		s.Upload = nil
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidValue, move)
	}
}

func (*MarketplaceState) isPageState() {}

// ListingKind selects the directory heading.
type ListingKind string

const (
	ListingTraders  ListingKind = "traders"
	ListingJewelers ListingKind = "jewelers"
)

var listingKinds = []ListingKind{ListingTraders, ListingJewelers}

// DirectoryState toggles between the traders and jewelers labels. The
// underlying entries are the same for both.
type DirectoryState struct {
	Kind ListingKind `json:"kind"`
}

func (*DirectoryState) Page() PageID { return PageDirectory }

func (s *DirectoryState) Apply(a Action) error {
	if a.Name != ActionKind {
		return unknownAction(PageDirectory, a)
	}
	v, err := parseChoice(a.Value, listingKinds)
	if err != nil {
		return err
	}
	s.Kind = v
	return nil
}

func (*DirectoryState) isPageState() {}

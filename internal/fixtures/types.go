package fixtures

import "github.com/shopspring/decimal"

// ProductType is the kind of item listed on the marketplace.
type ProductType string

const (
	ProductGold   ProductType = "gold"
	ProductSilver ProductType = "silver"
	ProductWatch  ProductType = "watch"
)

// Valid reports whether t is a known product type.
func (t ProductType) Valid() bool {
	switch t {
	case ProductGold, ProductSilver, ProductWatch:
		return true
	}
	return false
}

// Label is the card label for the product type.
func (t ProductType) Label() string {
	switch t {
	case ProductGold:
		return "ذهب"
	case ProductSilver:
		return "فضة"
	default:
		return "ساعة فاخرة"
	}
}

// ShortLabel is the row label for the product type.
func (t ProductType) ShortLabel() string {
	if t == ProductWatch {
		return "ساعة"
	}
	return t.Label()
}

// LockStatus is the lifecycle state of a price-lock request.
type LockStatus string

const (
	LockPending   LockStatus = "pending"
	LockActive    LockStatus = "active"
	LockCompleted LockStatus = "completed"
)

// Label returns the badge text for the status.
func (s LockStatus) Label() string {
	switch s {
	case LockPending:
		return "قيد الانتظار"
	case LockActive:
		return "فعّالة"
	default:
		return "مكتملة"
	}
}

// Valid reports whether s is a known status.
func (s LockStatus) Valid() bool {
	switch s {
	case LockPending, LockActive, LockCompleted:
		return true
	}
	return false
}

// Catalog is the complete set of literal data shown by the dashboard.
type Catalog struct {
	Dashboard  Dashboard        `yaml:"dashboard" json:"dashboard"`
	Ticker     []TickerItem     `yaml:"ticker" json:"ticker"`
	Gold       []Quote          `yaml:"gold" json:"gold"`
	Silver     []Quote          `yaml:"silver" json:"silver"`
	Watches    []WatchIndex     `yaml:"watches" json:"watches"`
	ChartStats []MiniStat       `yaml:"chart_stats" json:"chart_stats"`
	OrderBook  []OrderBookEntry `yaml:"order_book" json:"order_book"`
	Positions  []Position       `yaml:"positions" json:"positions"`
	TradeForm  TradeForm        `yaml:"trade_form" json:"trade_form"`
	Locks      []PriceLock      `yaml:"locks" json:"locks"`
	Shops      []Shop           `yaml:"shops" json:"shops"`
	Wallet     Wallet           `yaml:"wallet" json:"wallet"`
	Products   []Product        `yaml:"products" json:"products"`
	UploadForm UploadForm       `yaml:"upload_form" json:"upload_form"`
	Directory  []DirectoryEntry `yaml:"directory" json:"directory"`
	Settings   Settings         `yaml:"settings" json:"settings"`
}

// Dashboard is the landing page content.
type Dashboard struct {
	Stats    []StatCard   `yaml:"stats" json:"stats"`
	Activity []string     `yaml:"activity" json:"activity"`
	Summary  []WalletLine `yaml:"summary" json:"summary"`
	Mood     []MiniStat   `yaml:"mood" json:"mood"`
}

// StatCard is a headline number with a trend.
type StatCard struct {
	Label  string          `yaml:"label" json:"label"`
	Value  decimal.Decimal `yaml:"value" json:"value"`
	Suffix string          `yaml:"suffix" json:"suffix"`
	Trend  string          `yaml:"trend" json:"trend"`
	Down   bool            `yaml:"down" json:"down"`
}

// WalletLine is one row of the dashboard wallet summary.
type WalletLine struct {
	Label    string          `yaml:"label" json:"label"`
	Value    decimal.Decimal `yaml:"value" json:"value"`
	Currency string          `yaml:"currency" json:"currency"`
}

// MiniStat is a label/value pair.
type MiniStat struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
}

// TickerItem is one entry of the scrolling market ticker.
type TickerItem struct {
	Instrument string          `yaml:"instrument" json:"instrument"`
	Price      decimal.Decimal `yaml:"price" json:"price"`
	Change     decimal.Decimal `yaml:"change" json:"change"`
}

// Quote is a bid/ask row for a gold karat or silver fineness.
type Quote struct {
	Grade   string          `yaml:"grade" json:"grade"`
	Bid     decimal.Decimal `yaml:"bid" json:"bid"`
	Ask     decimal.Decimal `yaml:"ask" json:"ask"`
	Change  decimal.Decimal `yaml:"change" json:"change"`
	Updated string          `yaml:"updated" json:"updated"`
}

// WatchIndex is a luxury watch price index.
type WatchIndex struct {
	Name    string          `yaml:"name" json:"name"`
	Value   decimal.Decimal `yaml:"value" json:"value"`
	Daily   decimal.Decimal `yaml:"daily" json:"daily"`
	Monthly decimal.Decimal `yaml:"monthly" json:"monthly"`
}

// OrderBookEntry is one trader offer.
type OrderBookEntry struct {
	Trader   string          `yaml:"trader" json:"trader"`
	Side     string          `yaml:"side" json:"side"`
	Price    decimal.Decimal `yaml:"price" json:"price"`
	Quantity string          `yaml:"quantity" json:"quantity"`
	City     string          `yaml:"city" json:"city"`
}

// Position is an open trade.
type Position struct {
	Symbol     string          `yaml:"symbol" json:"symbol"`
	Side       string          `yaml:"side" json:"side"`
	Quantity   string          `yaml:"quantity" json:"quantity"`
	EntryPrice decimal.Decimal `yaml:"entry_price" json:"entry_price"`
	PnL        decimal.Decimal `yaml:"pnl" json:"pnl"`
}

// TradeForm lists the choices of the quick order form.
type TradeForm struct {
	Instruments []string `yaml:"instruments" json:"instruments"`
	Sides       []string `yaml:"sides" json:"sides"`
}

// PriceLock is a price-lock request between a trader and a shop.
type PriceLock struct {
	Trader    string          `yaml:"trader" json:"trader"`
	Client    string          `yaml:"client" json:"client"`
	Metal     string          `yaml:"metal" json:"metal"`
	Quantity  string          `yaml:"quantity" json:"quantity"`
	Price     decimal.Decimal `yaml:"price" json:"price"`
	Status    LockStatus      `yaml:"status" json:"status"`
	ExpiresIn string          `yaml:"expires_in" json:"expires_in"`
}

// Shop is a nearby store listed under the map.
type Shop struct {
	Name     string `yaml:"name" json:"name"`
	Kind     string `yaml:"kind" json:"kind"`
	City     string `yaml:"city" json:"city"`
	Distance string `yaml:"distance" json:"distance"`
	Status   string `yaml:"status" json:"status"`
}

// Wallet is the wallet page content.
type Wallet struct {
	Cards    []WalletCard     `yaml:"cards" json:"cards"`
	Holdings map[string]Table `yaml:"holdings" json:"holdings"`
	Ledger   Table            `yaml:"ledger" json:"ledger"`
}

// WalletCard is a wallet total with its daily change.
type WalletCard struct {
	Label    string          `yaml:"label" json:"label"`
	Value    decimal.Decimal `yaml:"value" json:"value"`
	Currency string          `yaml:"currency" json:"currency"`
	Change   decimal.Decimal `yaml:"change" json:"change"`
}

// Table is a plain text grid.
type Table struct {
	Columns []string   `yaml:"columns" json:"columns"`
	Rows    [][]string `yaml:"rows" json:"rows"`
}

// Product is a marketplace listing. Description is markdown.
type Product struct {
	ID          string          `yaml:"id" json:"id"`
	Type        ProductType     `yaml:"type" json:"type"`
	Jeweler     string          `yaml:"jeweler" json:"jeweler"`
	Title       string          `yaml:"title" json:"title"`
	Price       decimal.Decimal `yaml:"price" json:"price"`
	Currency    string          `yaml:"currency" json:"currency"`
	City        string          `yaml:"city" json:"city"`
	AIEnhanced  bool            `yaml:"ai_enhanced" json:"ai_enhanced"`
	Featured    bool            `yaml:"featured" json:"featured"`
	Description string          `yaml:"description" json:"description"`
}

// UploadForm lists the choices of the product upload form.
type UploadForm struct {
	Types      []string `yaml:"types" json:"types"`
	Currencies []string `yaml:"currencies" json:"currencies"`
}

// DirectoryEntry is a directory card. The type label depends on which
// listing kind is selected. Bio is markdown.
type DirectoryEntry struct {
	Name        string          `yaml:"name" json:"name"`
	City        string          `yaml:"city" json:"city"`
	Rating      decimal.Decimal `yaml:"rating" json:"rating"`
	Locks       string          `yaml:"locks" json:"locks"`
	TraderType  string          `yaml:"trader_type" json:"trader_type"`
	JewelerType string          `yaml:"jeweler_type" json:"jeweler_type"`
	Bio         string          `yaml:"bio" json:"bio"`
}

// Settings is the settings page content.
type Settings struct {
	Fields  []FieldGroup  `yaml:"fields" json:"fields"`
	Toggles []ToggleGroup `yaml:"toggles" json:"toggles"`
}

// FieldGroup is a titled list of read-only fields.
type FieldGroup struct {
	Title  string     `yaml:"title" json:"title"`
	Fields []MiniStat `yaml:"fields" json:"fields"`
}

// ToggleGroup is a titled list of switches.
type ToggleGroup struct {
	Title   string   `yaml:"title" json:"title"`
	Toggles []Toggle `yaml:"toggles" json:"toggles"`
}

// Toggle is a displayed on/off preference.
type Toggle struct {
	Label   string `yaml:"label" json:"label"`
	Enabled bool   `yaml:"enabled" json:"enabled"`
}

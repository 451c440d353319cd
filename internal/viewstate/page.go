package viewstate

import (
	"errors"
	"fmt"
)

// PageID identifies one of the top-level views reachable from the sidebar.
type PageID string

const (
	PageDashboard   PageID = "dashboard"
	PageLivePrices  PageID = "live-prices"
	PageCharts      PageID = "charts"
	PageMetaTrader  PageID = "metatrader"
	PagePriceLocks  PageID = "price-locks"
	PageMap         PageID = "map"
	PageWallet      PageID = "wallet"
	PageMarketplace PageID = "marketplace"
	PageDirectory   PageID = "directory"
	PageSettings    PageID = "settings"
)

// ErrUnknownPage is returned when a page identifier is not one of the known pages.
var ErrUnknownPage = errors.New("unknown page")

// NavItem is a single sidebar entry.
type NavItem struct {
	ID      PageID `json:"id"`
	Label   string `json:"label"`
	Section string `json:"section"`
	Badge   string `json:"badge,omitempty"`
}

// NavSection groups sidebar entries under a heading.
type NavSection struct {
	Name  string    `json:"name"`
	Items []NavItem `json:"items"`
}

const (
	sectionGeneral = "عام"
	sectionTrading = "التداول"
	sectionNetwork = "الشبكة"
	sectionFinance = "المالية"
	sectionSystem  = "النظام"

	badgeNew = "جديد"
)

var sectionOrder = []string{sectionGeneral, sectionTrading, sectionNetwork, sectionFinance, sectionSystem}

var navigation = []NavItem{
	{ID: PageDashboard, Label: "لوحة التحكم", Section: sectionGeneral},

	{ID: PageLivePrices, Label: "الأسعار اللحظية", Section: sectionTrading},
	{ID: PageCharts, Label: "الرسوم البيانية", Section: sectionTrading},
	{ID: PageMetaTrader, Label: "واجهة MetaTrader", Section: sectionTrading},
	{ID: PagePriceLocks, Label: "تثبيت الأسعار", Section: sectionTrading, Badge: badgeNew},

	{ID: PageMap, Label: "الخريطة و المحلات", Section: sectionNetwork},
	{ID: PageDirectory, Label: "دليل التجار و الصاغة", Section: sectionNetwork},

	{ID: PageMarketplace, Label: "سوق المنتجات", Section: sectionFinance, Badge: badgeNew},
	{ID: PageWallet, Label: "المحفظة", Section: sectionFinance},

	{ID: PageSettings, Label: "الإعدادات", Section: sectionSystem},
}

// Navigation returns a copy of the sidebar entries in declaration order.
func Navigation() []NavItem {
	out := make([]NavItem, len(navigation))
	copy(out, navigation)
	return out
}

// NavSections returns the sidebar grouped by section in display order.
// Sections without entries are omitted.
func NavSections() []NavSection {
	var sections []NavSection
	for _, name := range sectionOrder {
		var items []NavItem
		for _, item := range navigation {
			if item.Section == name {
				items = append(items, item)
			}
		}
		if len(items) == 0 {
			continue
		}
		sections = append(sections, NavSection{Name: name, Items: items})
	}
	return sections
}

// AllPages returns every page identifier in the order they appear in the sidebar.
func AllPages() []PageID {
	var pages []PageID
	for _, s := range NavSections() {
		for _, item := range s.Items {
			pages = append(pages, item.ID)
		}
	}
	return pages
}

// Valid reports whether p is a known page identifier.
func (p PageID) Valid() bool {
	_, ok := lookupNav(p)
	return ok
}

// Label returns the sidebar label for p, or the raw identifier if unknown.
func (p PageID) Label() string {
	if item, ok := lookupNav(p); ok {
		return item.Label
	}
	return string(p)
}

// ParsePageID converts s into a PageID.
func ParsePageID(s string) (PageID, error) {
	p := PageID(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPage, s)
	}
	return p, nil
}

func lookupNav(p PageID) (NavItem, bool) {
	for _, item := range navigation {
		if item.ID == p {
			return item, true
		}
	}
	return NavItem{}, false
}

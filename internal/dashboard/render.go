package dashboard

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/kirbygold/goldsuite/internal/fixtures"
	"github.com/kirbygold/goldsuite/internal/money"
	"github.com/kirbygold/goldsuite/internal/viewstate"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageTemplates names the content template of every page. newRenderer fails
// if a page is missing, so each PageID renders through exactly one file.
var pageTemplates = map[viewstate.PageID]string{
	viewstate.PageDashboard:   "page_dashboard.html",
	viewstate.PageLivePrices:  "page_live_prices.html",
	viewstate.PageCharts:      "page_charts.html",
	viewstate.PageMetaTrader:  "page_metatrader.html",
	viewstate.PagePriceLocks:  "page_price_locks.html",
	viewstate.PageMap:         "page_map.html",
	viewstate.PageWallet:      "page_wallet.html",
	viewstate.PageMarketplace: "page_marketplace.html",
	viewstate.PageDirectory:   "page_directory.html",
	viewstate.PageSettings:    "page_settings.html",
}

var sharedTemplates = []string{"templates/layout.html", "templates/partials.html"}

type renderer struct {
	login *template.Template
	pages map[viewstate.PageID]*template.Template
}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)
}

func newRenderer(md goldmark.Markdown) (*renderer, error) {
	base, err := template.New("base").Funcs(templateFuncs(md)).ParseFS(templateFS, sharedTemplates...)
	if err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}

	r := &renderer{pages: make(map[viewstate.PageID]*template.Template)}

	r.login, err = parseOnto(base, "login.html")
	if err != nil {
		return nil, err
	}
	for _, p := range viewstate.AllPages() {
		name, ok := pageTemplates[p]
		if !ok {
			return nil, fmt.Errorf("no template for page %s", p)
		}
		t, err := parseOnto(base, name)
		if err != nil {
			return nil, err
		}
		r.pages[p] = t
	}
	return r, nil
}

func parseOnto(base *template.Template, name string) (*template.Template, error) {
	t, err := base.Clone()
	if err != nil {
		return nil, fmt.Errorf("cloning layout for %s: %w", name, err)
	}
	if _, err := t.ParseFS(templateFS, "templates/"+name); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return t, nil
}

func templateFuncs(md goldmark.Markdown) template.FuncMap {
	return template.FuncMap{
		"amount":    money.Amount,
		"price":     money.Price,
		"signed":    money.Signed,
		"percent":   money.Percent,
		"magnitude": money.Magnitude,
		"arrow":     money.Arrow,
		"down":      money.Down,
		"act": func(name, value, class, label string) actionButton {
			return actionButton{Name: name, Value: value, Class: class, Label: label}
		},
		"markdown": func(src string) (template.HTML, error) {
			var buf bytes.Buffer
			if err := md.Convert([]byte(src), &buf); err != nil {
				return "", err
			}
			return template.HTML(buf.String()), nil
		},
	}
}

// actionButton is a single form button dispatching Name=Value.
type actionButton struct {
	Name, Value, Class, Label string
}

// frame is the data passed to the layout.
type frame struct {
	View    viewstate.View
	Nav     []navSection
	Ticker  []fixtures.TickerItem
	Content any

	// Login screen only.
	Username   string
	LoginError string
	Password   string
}

type navSection struct {
	Name  string
	Items []navLink
}

type navLink struct {
	viewstate.NavItem
	Active bool
}

func navFor(current viewstate.PageID) []navSection {
	var out []navSection
	for _, s := range viewstate.NavSections() {
		sec := navSection{Name: s.Name}
		for _, item := range s.Items {
			sec.Items = append(sec.Items, navLink{NavItem: item, Active: item.ID == current})
		}
		out = append(out, sec)
	}
	return out
}

// render writes the HTML for view with the given status.
func (d *Dashboard) render(w http.ResponseWriter, r *http.Request, status int, view viewstate.View, login frame) {
	buf, err := d.renderView(r.Context(), view, login)
	if err != nil {
		d.logger.Error().Err(err).Str("page", string(view.Page)).Msg("rendering view")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func (d *Dashboard) renderView(ctx context.Context, view viewstate.View, login frame) (*bytes.Buffer, error) {
	var buf bytes.Buffer
	if view.Screen == viewstate.ScreenLogin {
		login.View = view
		login.Password = d.auth.Password
		if err := d.views.login.ExecuteTemplate(&buf, "login", login); err != nil {
			return nil, err
		}
		return &buf, nil
	}

	c, err := d.source.Catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading fixtures: %w", err)
	}
	content, err := d.pageContent(ctx, c, view.State)
	if err != nil {
		return nil, err
	}

	t, ok := d.views.pages[view.Page]
	if !ok {
		return nil, fmt.Errorf("%w: %q", viewstate.ErrUnknownPage, view.Page)
	}
	f := frame{
		View:    view,
		Nav:     navFor(view.Page),
		Ticker:  c.Ticker,
		Content: content,
	}
	if err := t.ExecuteTemplate(&buf, "app", f); err != nil {
		return nil, err
	}
	return &buf, nil
}

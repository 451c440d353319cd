package fixtures

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kirbygold/goldsuite/internal/db"
	"github.com/kirbygold/goldsuite/internal/progress"
)

// ErrNotSeeded is returned when the database holds no fixture data.
var ErrNotSeeded = errors.New("fixture database is not seeded")

// SQLSource serves fixtures seeded into SQLite. Products live in their own
// table; every other section is stored as a JSON document.
type SQLSource struct {
	db *db.DB
}

// NewSQLSource creates a SQLSource backed by the given database.
func NewSQLSource(database *db.DB) *SQLSource {
	return &SQLSource{db: database}
}

type section struct {
	name  string
	value any
}

// sections lists the JSON-stored parts of c. The pointers are used both to
// encode on seed and to decode on read.
func sections(c *Catalog) []section {
	return []section{
		{"dashboard", &c.Dashboard},
		{"ticker", &c.Ticker},
		{"gold", &c.Gold},
		{"silver", &c.Silver},
		{"watches", &c.Watches},
		{"chart_stats", &c.ChartStats},
		{"order_book", &c.OrderBook},
		{"positions", &c.Positions},
		{"trade_form", &c.TradeForm},
		{"locks", &c.Locks},
		{"shops", &c.Shops},
		{"wallet", &c.Wallet},
		{"upload_form", &c.UploadForm},
		{"directory", &c.Directory},
		{"settings", &c.Settings},
	}
}

// Seed replaces the stored fixtures with c. Products without an ID get one.
func (s *SQLSource) Seed(ctx context.Context, c *Catalog, report progress.Reporter) error {
	if err := c.Validate(); err != nil {
		return err
	}
	secs := sections(c)
	report.Start(len(secs) + len(c.Products))
	defer report.Finish()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning seed: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM products`); err != nil {
		return fmt.Errorf("clearing products: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM fixture_sections`); err != nil {
		return fmt.Errorf("clearing sections: %w", err)
	}

	step := 0
	for _, sec := range secs {
		body, err := json.Marshal(sec.value)
		if err != nil {
			return fmt.Errorf("marshalling %s: %w", sec.name, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO fixture_sections (name, body) VALUES (?, ?)`, sec.name, string(body)); err != nil {
			return fmt.Errorf("inserting %s: %w", sec.name, err)
		}
		step++
		report.Update(step, sec.name)
	}

	for i, p := range c.Products {
		if p.ID == "" {
			p.ID = uuid.New().String()
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO products (
				id, position, type, jeweler, title, price, currency,
				city, ai_enhanced, featured, description
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, i, string(p.Type), p.Jeweler, p.Title, p.Price.String(), p.Currency,
			p.City, p.AIEnhanced, p.Featured, p.Description,
		); err != nil {
			return fmt.Errorf("inserting product %s: %w", p.Title, err)
		}
		step++
		report.Update(step, p.Title)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed: %w", err)
	}
	return nil
}

func (s *SQLSource) Catalog(ctx context.Context) (*Catalog, error) {
	bodies, err := s.sectionBodies(ctx)
	if err != nil {
		return nil, err
	}
	if len(bodies) == 0 {
		return nil, ErrNotSeeded
	}

	var c Catalog
	for _, sec := range sections(&c) {
		body, ok := bodies[sec.name]
		if !ok {
			continue
		}
		if err := json.Unmarshal([]byte(body), sec.value); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", sec.name, err)
		}
	}

	c.Products, err = s.Products(ctx, "")
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *SQLSource) sectionBodies(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, body FROM fixture_sections`)
	if err != nil {
		return nil, fmt.Errorf("querying sections: %w", err)
	}
	defer rows.Close()

	bodies := map[string]string{}
	for rows.Next() {
		var name, body string
		if err := rows.Scan(&name, &body); err != nil {
			return nil, fmt.Errorf("scanning section: %w", err)
		}
		bodies[name] = body
	}
	return bodies, rows.Err()
}

func (s *SQLSource) Products(ctx context.Context, t ProductType) ([]Product, error) {
	query := `SELECT id, type, jeweler, title, price, currency, city, ai_enhanced, featured, description
		FROM products`
	var args []any
	if t != "" {
		if !t.Valid() {
			return nil, fmt.Errorf("unknown product type %q", t)
		}
		query += ` WHERE type = ?`
		args = append(args, string(t))
	}
	query += ` ORDER BY position`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func scanProduct(rows *sql.Rows) (Product, error) {
	var (
		p     Product
		typ   string
		price string
	)
	if err := rows.Scan(&p.ID, &typ, &p.Jeweler, &p.Title, &price, &p.Currency,
		&p.City, &p.AIEnhanced, &p.Featured, &p.Description); err != nil {
		return Product{}, fmt.Errorf("scanning product: %w", err)
	}
	p.Type = ProductType(typ)

	d, err := decimal.NewFromString(price)
	if err != nil {
		return Product{}, fmt.Errorf("product %s price %q: %w", p.ID, price, err)
	}
	p.Price = d
	return p, nil
}

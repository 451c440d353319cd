package dashboard

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/kirbygold/goldsuite/internal/feed"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

const writeWait = 10 * time.Second

// quotesMessage is the outgoing WebSocket message format.
type quotesMessage struct {
	Type   string       `json:"type"` // "quotes" or "error"
	Quotes []feed.Quote `json:"quotes,omitempty"`
	Error  string       `json:"error,omitempty"`
}

// handlePriceStream pushes a quote snapshot on connect and then every
// interval until the client goes away. It never touches view state.
func (d *Dashboard) handlePriceStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		d.logger.Warn().Err(err).Msg("websocket upgrade")
		return
	}
	defer conn.Close()

	// Drain client frames so close messages are processed.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					d.logger.Debug().Err(err).Msg("websocket read")
				}
				return
			}
		}
	}()

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	ctx := r.Context()
	for {
		if err := d.pushQuotes(conn, r); err != nil {
			d.logger.Debug().Err(err).Msg("websocket write")
			return
		}
		select {
		case <-closed:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (d *Dashboard) pushQuotes(conn *websocket.Conn, r *http.Request) error {
	msg := quotesMessage{Type: "quotes"}
	quotes, err := d.feed.Quotes(r.Context())
	if err != nil {
		d.logger.Error().Err(err).Msg("loading quotes")
		msg = quotesMessage{Type: "error", Error: "quotes unavailable"}
	} else {
		msg.Quotes = quotes
	}
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(msg)
}

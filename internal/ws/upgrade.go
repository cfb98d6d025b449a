package ws

import (
	"net/http"
	"strings"
	"time"

	"pointtrail/config"
	"pointtrail/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const writeWait = 10 * time.Second

// UpgradeTimelineWS authenticates the JWT (query param for browser WebSocket
// clients, Authorization header otherwise) and streams the user's new ledger
// entries as they are recorded.
func UpgradeTimelineWS(cfg *config.JWTConfig, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			token = strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		}
		claims, err := auth.ParseAccessToken(cfg, token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		client := &Client{UserID: claims.UserID, Send: make(chan []byte, 16)}
		hub.Register(client)
		go writePump(conn, client)
		go readPump(conn, client)
	}
}

func writePump(conn *websocket.Conn, client *Client) {
	defer conn.Close()
	for msg := range client.Send {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			client.Close()
			return
		}
	}
}

// readPump discards inbound frames; its job is noticing the peer went away.
func readPump(conn *websocket.Conn, client *Client) {
	defer conn.Close()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			client.Close()
			return
		}
	}
}

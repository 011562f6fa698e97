// internals/realtime/hub.go
package realtime

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/fasthttp/websocket"
	"github.com/google/uuid"
)

// Event satu perubahan tabel yang dipush ke client.
// Client yang menerima event tinggal re-fetch list-nya.
type Event struct {
	Table     string `json:"table"`
	Operation string `json:"event"` // insert | update | delete
	StudentID string `json:"student_id,omitempty"`
}

// Client satu koneksi websocket + scope langganannya.
type Client struct {
	ID     uuid.UUID
	Conn   *websocket.Conn
	Send   chan []byte
	Tables map[string]bool
	UserID string
	Role   string
}

// subscribed cek apakah event ini untuk client tsb.
// Event enrollments yang membawa student_id hanya dikirim ke student
// yang bersangkutan atau admin.
func (c *Client) subscribed(ev Event) bool {
	if len(c.Tables) > 0 && !c.Tables[ev.Table] {
		return false
	}
	if ev.StudentID != "" && c.Role != "admin" && c.UserID != ev.StudentID {
		return false
	}
	return true
}

// Hub mengelola seluruh client dan broadcast perubahan tabel.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan Event
	mutex      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Event, 64),
	}
}

// Run loop utama hub; jalankan sekali di goroutine saat boot.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.mutex.Unlock()

		case client := <-h.unregister:
			h.removeClient(client)

		case ev := <-h.broadcast:
			h.deliver(ev)
		}
	}
}

func (h *Hub) removeClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.Send)
	}
}

// deliver kirim event ke semua client yang subscribe.
// Setelah unregister, client tidak pernah menerima event lagi:
// delete dari map terjadi sebelum close(Send), dan deliver hanya
// melihat map di bawah lock yang sama.
func (h *Hub) deliver(ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		log.Printf("[ERROR] realtime marshal: %v", err)
		return
	}

	h.mutex.RLock()
	defer h.mutex.RUnlock()
	for client := range h.clients {
		if !client.subscribed(ev) {
			continue
		}
		select {
		case client.Send <- payload:
		default:
			// client lambat; jangan blok broadcast
			log.Printf("[WARNING] realtime: drop event untuk client %s", client.ID)
		}
	}
}

// Register masukkan client baru (dipakai handler websocket & test).
func (h *Hub) Register(c *Client) { h.register <- c }

// Unregister keluarkan client; idempoten untuk client yang sudah keluar.
func (h *Hub) Unregister(c *Client) { h.unregister <- c }

// Broadcast publish perubahan tabel. Non-blocking; kalau buffer penuh
// event dibuang (client toh akan re-fetch pada event berikutnya).
func (h *Hub) Broadcast(table, operation, studentID string) {
	select {
	case h.broadcast <- Event{Table: table, Operation: operation, StudentID: studentID}:
	default:
		log.Printf("[WARNING] realtime: buffer penuh, event %s/%s dibuang", table, operation)
	}
}

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// WritePump tulis event + ping berkala ke koneksi.
func (c *Client) WritePump(h *Hub) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ReadPump hanya untuk deteksi close/pong; client tidak mengirim data.
func (c *Client) ReadPump(h *Hub) {
	defer func() {
		h.Unregister(c)
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(512)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			return
		}
	}
}

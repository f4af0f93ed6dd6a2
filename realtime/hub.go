package realtime

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	EventCreateComment = "createComment"
	EventRemoveComment = "removeComment"
)

// client wraps a connection with a write lock: gorilla/websocket supports at
// most one concurrent writer per connection.
type client struct {
	conn *websocket.Conn
	mut  sync.Mutex
}

func (cl *client) write(msg []byte) error {
	cl.mut.Lock()
	defer cl.mut.Unlock()
	return cl.conn.WriteMessage(websocket.TextMessage, msg)
}

// Hub fans comment events out to websocket clients subscribed to a post.
// Delivery is fire-and-forget: a dead connection is dropped, never retried.
type Hub struct {
	rooms map[string]map[*client]bool
	mut   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*client]bool),
	}
}

// DefaultHub is the process-wide hub the comment controller publishes to.
var DefaultHub = NewHub()

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type clientMessage struct {
	Action string `json:"action"`
	PostID string `json:"postId"`
}

type serverEvent struct {
	Event   string      `json:"event"`
	PostID  string      `json:"postId"`
	Payload interface{} `json:"payload"`
}

func (h *Hub) HandleWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		fmt.Println("Failed to upgrade connection:", err)
		return
	}
	defer conn.Close()

	cl := &client{conn: conn}
	h.readLoop(cl)
	h.dropClient(cl)
}

func (h *Hub) readLoop(cl *client) {
	for {
		_, msg, err := cl.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				break
			}
			fmt.Println("Read error:", err)
			break
		}

		var parsed clientMessage
		if err := json.Unmarshal(msg, &parsed); err != nil {
			fmt.Println("Error parsing JSON:", err)
			continue
		}

		switch parsed.Action {
		case "subscribe":
			h.subscribe(parsed.PostID, cl)
		case "unsubscribe":
			h.unsubscribe(parsed.PostID, cl)
		}
	}
}

func (h *Hub) subscribe(postID string, cl *client) {
	h.mut.Lock()
	defer h.mut.Unlock()
	room, ok := h.rooms[postID]
	if !ok {
		room = make(map[*client]bool)
		h.rooms[postID] = room
	}
	room[cl] = true
}

func (h *Hub) unsubscribe(postID string, cl *client) {
	h.mut.Lock()
	defer h.mut.Unlock()
	if room, ok := h.rooms[postID]; ok {
		delete(room, cl)
		if len(room) == 0 {
			delete(h.rooms, postID)
		}
	}
}

// Broadcast sends an event to every subscriber of the post's room.
func (h *Hub) Broadcast(postID, event string, payload interface{}) {
	msg, err := json.Marshal(serverEvent{Event: event, PostID: postID, Payload: payload})
	if err != nil {
		fmt.Println("Error marshalling event:", err)
		return
	}

	h.mut.Lock()
	defer h.mut.Unlock()
	for cl := range h.rooms[postID] {
		go h.send(cl, msg)
	}
}

// SubscriberCount reports how many connections are in the post's room.
func (h *Hub) SubscriberCount(postID string) int {
	h.mut.Lock()
	defer h.mut.Unlock()
	return len(h.rooms[postID])
}

func (h *Hub) send(cl *client, msg []byte) {
	if err := cl.write(msg); err != nil {
		fmt.Println("Write error:", err)
		h.dropClient(cl)
	}
}

func (h *Hub) dropClient(cl *client) {
	h.mut.Lock()
	defer h.mut.Unlock()
	for postID, room := range h.rooms {
		delete(room, cl)
		if len(room) == 0 {
			delete(h.rooms, postID)
		}
	}
}

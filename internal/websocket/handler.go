package websocket

import (
	"github.com/gofiber/websocket/v2"
)

// ServeWs registers a dashboard connection with the hub and starts its pumps.
func ServeWs(hub *Hub, c *websocket.Conn) {
	client := &Client{Hub: hub, Conn: c, Send: make(chan []byte, 256)}
	client.Hub.register <- client

	go client.writePump()
	client.readPump() // runs in the handler's goroutine
}

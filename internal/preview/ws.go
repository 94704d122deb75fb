package preview

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/ipedrax/pitch-perfect/internal/deck"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleLogSocket streams session log entries: first the backlog, then
// live entries as they are appended. The client sends nothing; a read
// error means it went away.
func (s *Server) handleLogSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("preview: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	entries, cancel := s.sessionLog.Tail()
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case entry, ok := <-entries:
			if !ok {
				return
			}
			if err := writeEntry(conn, entry); err != nil {
				return
			}
		case <-done:
			return
		case <-r.Context().Done():
			return
		}
	}
}

func writeEntry(conn *websocket.Conn, entry deck.LogEntry) error {
	if err := conn.WriteJSON(entry); err != nil {
		log.Printf("preview: websocket write: %v", err)
		return err
	}
	return nil
}

// Package server pushes per-tick congestion summaries to websocket clients.
// Summaries are small JSON documents; rendered frames are never transmitted.
package server

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"gridlock/internal/core"
)

const (
	// Time allowed to write a message to a peer.
	writeWait = 10 * time.Second
)

var upgrader = websocket.Upgrader{}

// Summary is one tick's congestion digest.
type Summary struct {
	Tick          int     `json:"tick"`
	Mode          string  `json:"mode"`
	CellsWithMass int     `json:"cellsWithMass"`
	MeanLevel     float64 `json:"meanLevel"`
	PeakLevel     float64 `json:"peakLevel"`
	ReplayFrames  int     `json:"replayFrames"`
}

// Summarize digests a grid snapshot into a Summary using the road overlay's
// effective-density normalization.
func Summarize(tick int, grid *core.Grid, th core.Thresholds, mode core.RenderMode, frames int) Summary {
	s := Summary{Tick: tick, Mode: "live", ReplayFrames: frames}
	if mode == core.ModeReplay {
		s.Mode = "replay"
	}
	if grid == nil {
		return s
	}
	for _, m := range grid.Mass {
		if m > 0 {
			s.CellsWithMass++
		}
	}
	denom := th.DensityRange()
	sum := 0.0
	for _, idx := range grid.RoadCells {
		eff := grid.Mass[idx] + th.CommuterEquivKg*grid.CommuterLoad[idx]
		level := (eff - th.OnsetThreshold) / denom
		if level < 0 {
			level = 0
		}
		sum += level
		if level > s.PeakLevel {
			s.PeakLevel = level
		}
	}
	if len(grid.RoadCells) > 0 {
		s.MeanLevel = sum / float64(len(grid.RoadCells))
	}
	return s
}

// Server broadcasts summaries to every connected websocket client.
type Server struct {
	addr string

	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

// New creates a server that will listen on addr.
func New(addr string) *Server {
	return &Server{addr: addr, conns: map[*websocket.Conn]bool{}}
}

// Handler returns the HTTP handler exposing the /ws endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWS)
	return mux
}

// Start begins serving the websocket endpoint in a background goroutine.
func (s *Server) Start() {
	handler := s.Handler()
	go func() {
		if err := http.ListenAndServe(s.addr, handler); err != nil {
			log.Printf("telemetry server stopped: %v", err)
		}
	}()
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}
	s.mu.Lock()
	s.conns[ws] = true
	s.mu.Unlock()
}

// Publish sends a summary to every client, dropping connections that fail.
func (s *Server) Publish(sum Summary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ws := range s.conns {
		_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
		if err := ws.WriteJSON(sum); err != nil {
			delete(s.conns, ws)
			ws.Close()
		}
	}
}

// ClientCount reports how many clients are connected.
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

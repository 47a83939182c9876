package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/coder/websocket"
)

// webServer creates the http server with the progress and field endpoints,
// initializes the websocket endpoint and returns the net.Listener accepting
// websocket connections.
func webServer(ctx context.Context, addr string, fs *fieldScheduler) (*WebsocketListener, *http.Server) {
	l := NewWSListener(ctx, addr+"/ws")
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(l))
	mux.HandleFunc("GET /progress", progressHandler(fs))
	mux.HandleFunc("GET /fields/{row}/{col}", fieldHandler(fs))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://%s", addr)
	return l, srv
}

// websocketHandler handles the http ws endpoint
// if websocket is succesfully initialized it is passed to WebsocketListener so it can be accepted
func websocketHandler(l *WebsocketListener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"},
		})
		if err != nil {
			log.Println(err)
			return
		}

		conn := websocket.NetConn(l.ctx, c, websocket.MessageBinary)
		select {
		case l.ch <- conn:
		case <-l.ctx.Done():
			c.Close(websocket.StatusGoingAway, "server shutting down")
		}
	}
}

func progressHandler(fs *fieldScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(fs.report()); err != nil {
			log.Printf("progress: %v", err)
		}
	}
}

func fieldHandler(fs *fieldScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		row, err1 := strconv.Atoi(r.PathValue("row"))
		col, err2 := strconv.Atoi(r.PathValue("col"))
		if err1 != nil || err2 != nil {
			http.Error(w, "row and col must be integers", http.StatusBadRequest)
			return
		}

		f, ok, _ := fs.finishedField(row, col)
		if !ok {
			http.Error(w, fmt.Sprintf("field %d_%d not rendered", row, col), http.StatusNotFound)
			return
		}

		data, err := f.PNG()
		if err != nil {
			log.Printf("field %d_%d: %v", row, col, err)
			http.Error(w, "encoding failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		if _, err := w.Write(data); err != nil {
			log.Printf("field %d_%d: %v", row, col, err)
		}
	}
}

// WebsocketListener implements net.Listener
// it hands out websocket connections accepted by websocketHandler as net.Conn
type WebsocketListener struct {
	ch     chan net.Conn
	ctx    context.Context
	cancel context.CancelFunc
	addr   wsAddr
}

func NewWSListener(ctx context.Context, addr string) *WebsocketListener {
	ctx, cancel := context.WithCancel(ctx)
	return &WebsocketListener{
		ch:     make(chan net.Conn),
		ctx:    ctx,
		cancel: cancel,
		addr:   wsAddr{addr: addr},
	}
}

func (l *WebsocketListener) Accept() (net.Conn, error) {
	select {
	case c := <-l.ch:
		return c, nil
	case <-l.ctx.Done():
		return nil, net.ErrClosed
	}
}

func (l *WebsocketListener) Addr() net.Addr {
	return l.addr
}

func (l *WebsocketListener) Close() error {
	l.cancel()
	return nil
}

// wsAddrs implements net.Addr
type wsAddr struct {
	addr string
}

func (a wsAddr) Network() string {
	return "ws"
}

func (a wsAddr) String() string {
	return a.addr
}

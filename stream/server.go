// Package stream serves effect sessions to browser canvases as JSON draw-op frames over websocket.
package stream

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/cyberfx/effect"
	"github.com/lixenwraith/cyberfx/parameter"
)

const (
	writeWait     = 5 * time.Second
	frameBacklog  = 4
	maxSurfaceDim = 4096
)

var errBadRequest = errors.New("bad request")

// Config tunes a Server
type Config struct {
	Logger        *log.Logger
	FrameInterval time.Duration
	MaxDuration   time.Duration
	// Durations resolves the run time when a client omits one
	Durations func(effect.Kind) time.Duration
}

// Server exposes the effect catalogue and per-connection sessions
type Server struct {
	cfg      Config
	logger   *log.Logger
	upgrader websocket.Upgrader
}

// NewServer creates a server, zero config fields take defaults
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = parameter.FrameUpdateInterval
	}
	if cfg.MaxDuration <= 0 {
		cfg.MaxDuration = time.Minute
	}
	if cfg.Durations == nil {
		cfg.Durations = effect.Kind.DefaultDuration
	}
	return &Server{
		cfg:    cfg,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 16 * 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Handler routes /effects and /ws
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/effects", s.handleEffects)
	mux.HandleFunc("/ws", s.handleSession)
	return mux
}

type effectInfo struct {
	Name       string   `json:"name"`
	DurationMs int64    `json:"duration_ms"`
	Phases     []string `json:"phases"`
}

func (s *Server) handleEffects(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	kinds := effect.Kinds()
	out := make([]effectInfo, 0, len(kinds))
	for _, k := range kinds {
		info := effectInfo{Name: k.String(), DurationMs: s.cfg.Durations(k).Milliseconds()}
		for _, ph := range k.Phases() {
			info.Phases = append(info.Phases, ph.Name)
		}
		out = append(out, info)
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		s.logger.Printf("encode effect list: %v", err)
	}
}

// request is a parsed /ws query
type request struct {
	kind     effect.Kind
	duration time.Duration
	width    float64
	height   float64
	seed     int64
	seeded   bool
}

func (s *Server) parseRequest(r *http.Request) (request, error) {
	q := r.URL.Query()
	k, err := effect.ParseKind(q.Get("effect"))
	if err != nil {
		return request{}, err
	}
	req := request{kind: k, duration: s.cfg.Durations(k)}

	if v := q.Get("duration"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms <= 0 {
			return request{}, fmt.Errorf("%w: duration %q", errBadRequest, v)
		}
		req.duration = min(time.Duration(ms)*time.Millisecond, s.cfg.MaxDuration)
	}
	for _, dim := range []struct {
		key string
		dst *float64
	}{{"w", &req.width}, {"h", &req.height}} {
		v := q.Get(dim.key)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 || f > maxSurfaceDim {
			return request{}, fmt.Errorf("%w: %s %q", errBadRequest, dim.key, v)
		}
		*dim.dst = f
	}
	if v := q.Get("seed"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return request{}, fmt.Errorf("%w: seed %q", errBadRequest, v)
		}
		req.seed, req.seeded = seed, true
	}
	return req, nil
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("upgrade failed for %v: %v", req.kind, err)
		return
	}
	defer conn.Close()

	newSession(s, conn, req).run()
}

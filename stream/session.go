package stream

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/cyberfx/effect"
	"github.com/lixenwraith/cyberfx/engine"
	"github.com/lixenwraith/cyberfx/render"
)

// Message is one server-to-client payload
type Message struct {
	Type      string      `json:"type"` // start, frame or end
	Effect    string      `json:"effect,omitempty"`
	Width     float64     `json:"w,omitempty"`
	Height    float64     `json:"h,omitempty"`
	Duration  int64       `json:"duration_ms,omitempty"`
	Frame     int         `json:"frame,omitempty"`
	ElapsedMs float64     `json:"elapsed_ms,omitempty"`
	Progress  float64     `json:"progress,omitempty"`
	Phase     string      `json:"phase,omitempty"`
	Ops       []render.Op `json:"ops,omitempty"`
	Reason    string      `json:"reason,omitempty"`
}

// clientMessage is the only thing a client may send
type clientMessage struct {
	Type string `json:"type"` // cancel
}

// session pumps one effect's frames to one connection
type session struct {
	srv    *Server
	conn   *websocket.Conn
	req    request
	rec    *render.Recorder
	frames chan []byte
	gone   chan struct{}
}

func newSession(srv *Server, conn *websocket.Conn, req request) *session {
	return &session{
		srv:    srv,
		conn:   conn,
		req:    req,
		rec:    render.NewRecorder(req.width, req.height),
		frames: make(chan []byte, frameBacklog),
		gone:   make(chan struct{}),
	}
}

// hook runs under the loop's frame lock, it hands the frame to the writer or waits for it
func (s *session) hook(t engine.Timing, _ render.Surface) {
	data, err := json.Marshal(Message{
		Type:      "frame",
		Frame:     t.Frame,
		ElapsedMs: t.Ms(),
		Progress:  t.Progress,
		Phase:     s.req.kind.Phases().Name(t.Progress),
		Ops:       s.rec.Take(),
	})
	if err != nil {
		s.srv.logger.Printf("marshal frame: %v", err)
		return
	}
	select {
	case s.frames <- data:
	case <-s.gone:
	}
}

func (s *session) run() {
	opts := []effect.Option{
		effect.WithFrameInterval(s.srv.cfg.FrameInterval),
		effect.WithLogger(s.srv.logger),
		effect.WithFrameHook(s.hook),
		effect.WithoutRun(),
	}
	if s.req.seeded {
		opts = append(opts, effect.WithSeed(s.req.seed))
	}
	loop, err := effect.LaunchKind(s.rec, s.req.kind, s.req.duration, opts...)
	if err != nil {
		s.srv.logger.Printf("launch %v: %v", s.req.kind, err)
		return
	}

	w, h := s.rec.Size()
	if !s.send(Message{Type: "start", Effect: s.req.kind.String(), Width: w, Height: h, Duration: s.req.duration.Milliseconds()}) {
		loop.Cancel()
		return
	}

	engine.Go(s.srv.logger, func() { s.readPump(loop) }, nil)
	loop.Run(s.srv.cfg.FrameInterval)

	for {
		select {
		case data := <-s.frames:
			if !s.write(data) {
				close(s.gone)
				loop.Cancel()
				return
			}
		case <-loop.Done():
			s.settle(loop)
			s.send(Message{Type: "end", Reason: loop.Reason().String()})
			close(s.gone)
			s.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
			return
		}
	}
}

// settle forwards frames until the loop's last hook has returned, so the final clear is delivered
func (s *session) settle(loop *engine.Loop) {
	settled := make(chan struct{})
	go func() {
		loop.Sync()
		close(settled)
	}()
	for {
		select {
		case data := <-s.frames:
			s.write(data)
		case <-settled:
			s.drain()
			return
		}
	}
}

// drain flushes frames already queued
func (s *session) drain() {
	for {
		select {
		case data := <-s.frames:
			if !s.write(data) {
				return
			}
		default:
			return
		}
	}
}

// readPump cancels the loop when the client asks or disconnects
func (s *session) readPump(loop *engine.Loop) {
	for {
		_, payload, err := s.conn.ReadMessage()
		if err != nil {
			loop.Cancel()
			return
		}
		var msg clientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			s.srv.logger.Printf("discarding malformed message: %v", err)
			continue
		}
		if msg.Type == "cancel" {
			loop.Cancel()
		}
	}
}

func (s *session) send(m Message) bool {
	data, err := json.Marshal(m)
	if err != nil {
		s.srv.logger.Printf("marshal %s: %v", m.Type, err)
		return false
	}
	return s.write(data)
}

func (s *session) write(data []byte) bool {
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteMessage(websocket.TextMessage, data) == nil
}

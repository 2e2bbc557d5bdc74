package render

// OpKind names a recorded drawing call
type OpKind string

const (
	OpClear  OpKind = "clear"
	OpFill   OpKind = "fill"
	OpRect   OpKind = "rect"
	OpLine   OpKind = "line"
	OpCircle OpKind = "circle"
	OpRing   OpKind = "ring"
	OpText   OpKind = "text"
)

// Op is one recorded drawing call, field use depends on Kind
// rect: X,Y,W,H  line: X,Y,X2,Y2,W  circle: X,Y,R  ring: X,Y,R,W  text: X,Y,Text,Size,Align
type Op struct {
	Kind  OpKind  `json:"k"`
	X     float64 `json:"x,omitempty"`
	Y     float64 `json:"y,omitempty"`
	X2    float64 `json:"x2,omitempty"`
	Y2    float64 `json:"y2,omitempty"`
	W     float64 `json:"w,omitempty"`
	H     float64 `json:"h,omitempty"`
	R     float64 `json:"r,omitempty"`
	Size  float64 `json:"s,omitempty"`
	Text  string  `json:"t,omitempty"`
	Align Align   `json:"a,omitempty"`
	Color Color   `json:"c"`
}

// Recorder is a Surface that logs drawing calls instead of rasterizing them
// Not safe for concurrent use, callers serialize through the owning loop
type Recorder struct {
	w, h   float64
	ops    []Op
	total  int
	clears int
}

// NewRecorder creates a recorder reporting the given pixel extent
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{w: w, h: h}
}

func (r *Recorder) Size() (float64, float64) {
	return r.w, r.h
}

func (r *Recorder) SetSize(w, h float64) {
	r.w, r.h = w, h
}

func (r *Recorder) record(op Op) {
	r.ops = append(r.ops, op)
	r.total++
}

func (r *Recorder) Clear() {
	r.clears++
	r.record(Op{Kind: OpClear})
}

func (r *Recorder) Fill(c Color) {
	r.record(Op{Kind: OpFill, Color: c})
}

func (r *Recorder) FillRect(x, y, w, h float64, c Color) {
	r.record(Op{Kind: OpRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) Line(x0, y0, x1, y1, width float64, c Color) {
	r.record(Op{Kind: OpLine, X: x0, Y: y0, X2: x1, Y2: y1, W: width, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c Color) {
	r.record(Op{Kind: OpCircle, X: cx, Y: cy, R: radius, Color: c})
}

func (r *Recorder) StrokeCircle(cx, cy, radius, width float64, c Color) {
	r.record(Op{Kind: OpRing, X: cx, Y: cy, R: radius, W: width, Color: c})
}

func (r *Recorder) Text(x, y float64, s string, size float64, align Align, c Color) {
	r.record(Op{Kind: OpText, X: x, Y: y, Text: s, Size: size, Align: align, Color: c})
}

// Ops returns the calls recorded since the last Take
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Take returns and forgets the pending calls, totals are kept
func (r *Recorder) Take() []Op {
	ops := r.ops
	r.ops = nil
	return ops
}

// Total returns the number of calls ever recorded
func (r *Recorder) Total() int {
	return r.total
}

// Clears returns the number of Clear calls ever recorded
func (r *Recorder) Clears() int {
	return r.clears
}

// Count returns how many pending calls have the given kind
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Texts returns the strings of pending text calls in order
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

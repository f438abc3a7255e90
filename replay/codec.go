package replay

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"unicode/utf8"
)

// Magic opens every replay file.
const Magic = "DMRP"

var (
	// ErrBadMagic is returned when decoding data that is not a replay.
	ErrBadMagic = errors.New("replay: bad magic")
	// ErrTooLarge is returned when a string or list does not fit its length prefix.
	ErrTooLarge = errors.New("replay: field too large")
	// ErrInvalidString is returned when a string field is not valid UTF-8.
	ErrInvalidString = errors.New("replay: invalid UTF-8 string")
)

var order = binary.LittleEndian

// Encode writes r in the binary replay format:
//
//	magic "DMRP"
//	version    string
//	timestamp  i64
//	duration   f64
//	stage      string
//	characters u16 count, strings
//	winner     string
//	checksum   u32
//	frames     u32 count, then per frame:
//	  number u32
//	  inputs u16 count, (player u8, buttons u32, stick_x f32, stick_y f32)
//	  positions u16 count, (id u32, x f32, y f32)
//	  healths f32 per position
//	  meters  f32 per position
//
// Strings are a u16 byte length followed by UTF-8. All integers are
// little-endian.
func Encode(w io.Writer, r *Replay) error {
	e := &encoder{w: bufio.NewWriter(w)}
	e.bytes([]byte(Magic))
	e.str(r.Meta.Version)
	e.u64(uint64(r.Meta.Timestamp))
	e.u64(math.Float64bits(r.Meta.Duration))
	e.str(r.Meta.Stage)
	e.count(len(r.Meta.Characters))
	for _, c := range r.Meta.Characters {
		e.str(c)
	}
	e.str(r.Meta.Winner)
	e.u32(r.Meta.Checksum)

	if uint64(len(r.Frames)) > math.MaxUint32 {
		return fmt.Errorf("replay: %d frames: %w", len(r.Frames), ErrTooLarge)
	}
	e.u32(uint32(len(r.Frames)))
	for _, f := range r.Frames {
		e.frame(f)
	}
	if e.err != nil {
		return fmt.Errorf("replay: encode: %w", e.err)
	}
	return e.w.Flush()
}

// Marshal encodes r into a byte slice.
func Marshal(r *Replay) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads one replay.
func Decode(rd io.Reader) (*Replay, error) {
	d := &decoder{r: bufio.NewReader(rd)}
	magic := d.bytes(len(Magic))
	if d.err != nil {
		return nil, fmt.Errorf("replay: decode: %w", d.err)
	}
	if string(magic) != Magic {
		return nil, ErrBadMagic
	}

	r := &Replay{}
	r.Meta.Version = d.str()
	r.Meta.Timestamp = int64(d.u64())
	r.Meta.Duration = math.Float64frombits(d.u64())
	r.Meta.Stage = d.str()
	if n := int(d.u16()); n > 0 && d.err == nil {
		r.Meta.Characters = make([]string, n)
		for i := range r.Meta.Characters {
			r.Meta.Characters[i] = d.str()
		}
	}
	r.Meta.Winner = d.str()
	r.Meta.Checksum = d.u32()

	n := d.u32()
	if d.err == nil && n > 0 {
		r.Frames = make([]Frame, 0, min(n, DefaultMaxFrames))
		for i := uint32(0); i < n && d.err == nil; i++ {
			r.Frames = append(r.Frames, d.frame())
		}
	}
	if d.err != nil {
		return nil, fmt.Errorf("replay: decode: %w", d.err)
	}
	return r, nil
}

// Unmarshal decodes a replay from data.
func Unmarshal(data []byte) (*Replay, error) {
	return Decode(bytes.NewReader(data))
}

type encoder struct {
	w   *bufio.Writer
	buf [8]byte
	err error
}

func (e *encoder) bytes(b []byte) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.Write(b)
}

func (e *encoder) u16(v uint16) {
	order.PutUint16(e.buf[:2], v)
	e.bytes(e.buf[:2])
}

func (e *encoder) u32(v uint32) {
	order.PutUint32(e.buf[:4], v)
	e.bytes(e.buf[:4])
}

func (e *encoder) u64(v uint64) {
	order.PutUint64(e.buf[:8], v)
	e.bytes(e.buf[:8])
}

func (e *encoder) f32(v float32) {
	e.u32(math.Float32bits(v))
}

func (e *encoder) count(n int) {
	if n > math.MaxUint16 {
		if e.err == nil {
			e.err = fmt.Errorf("%d entries: %w", n, ErrTooLarge)
		}
		return
	}
	e.u16(uint16(n))
}

func (e *encoder) str(s string) {
	if e.err == nil && !utf8.ValidString(s) {
		e.err = ErrInvalidString
		return
	}
	e.count(len(s))
	e.bytes([]byte(s))
}

func (e *encoder) frame(f Frame) {
	e.u32(f.Number)
	e.count(len(f.Inputs))
	for _, in := range f.Inputs {
		e.bytes([]byte{in.PlayerID})
		e.u32(in.Buttons)
		e.f32(in.StickX)
		e.f32(in.StickY)
	}
	e.count(len(f.Entities))
	for _, ent := range f.Entities {
		e.u32(ent.ID)
		e.f32(ent.X)
		e.f32(ent.Y)
	}
	for _, ent := range f.Entities {
		e.f32(ent.Health)
	}
	for _, ent := range f.Entities {
		e.f32(ent.Meter)
	}
}

type decoder struct {
	r   *bufio.Reader
	buf [8]byte
	err error
}

func (d *decoder) bytes(n int) []byte {
	if d.err != nil {
		return nil
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(d.r, b); err != nil {
		d.err = err
		return nil
	}
	return b
}

func (d *decoder) fill(n int) []byte {
	if d.err != nil {
		return d.buf[:n]
	}
	if _, err := io.ReadFull(d.r, d.buf[:n]); err != nil {
		d.err = err
		clear(d.buf[:])
	}
	return d.buf[:n]
}

func (d *decoder) u8() uint8 {
	return d.fill(1)[0]
}

func (d *decoder) u16() uint16 {
	return order.Uint16(d.fill(2))
}

func (d *decoder) u32() uint32 {
	return order.Uint32(d.fill(4))
}

func (d *decoder) u64() uint64 {
	return order.Uint64(d.fill(8))
}

func (d *decoder) f32() float32 {
	return math.Float32frombits(d.u32())
}

func (d *decoder) str() string {
	n := int(d.u16())
	if d.err != nil || n == 0 {
		return ""
	}
	b := d.bytes(n)
	if d.err != nil {
		return ""
	}
	if !utf8.Valid(b) {
		d.err = ErrInvalidString
		return ""
	}
	return string(b)
}

func (d *decoder) frame() Frame {
	f := Frame{Number: d.u32()}
	if n := int(d.u16()); n > 0 && d.err == nil {
		f.Inputs = make([]InputSnapshot, n)
		for i := range f.Inputs {
			f.Inputs[i] = InputSnapshot{
				PlayerID: d.u8(),
				Buttons:  d.u32(),
				StickX:   d.f32(),
				StickY:   d.f32(),
			}
		}
	}
	if n := int(d.u16()); n > 0 && d.err == nil {
		f.Entities = make([]EntitySnapshot, n)
		for i := range f.Entities {
			f.Entities[i].ID = d.u32()
			f.Entities[i].X = d.f32()
			f.Entities[i].Y = d.f32()
		}
		for i := range f.Entities {
			f.Entities[i].Health = d.f32()
		}
		for i := range f.Entities {
			f.Entities[i].Meter = d.f32()
		}
	}
	return f
}

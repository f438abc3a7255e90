// Package replay records per-tick snapshots of a match, checksums them and
// reads and writes the binary replay format.
package replay

// InputSnapshot is the folded input of one source for one tick.
type InputSnapshot struct {
	PlayerID uint8
	Buttons  uint32 // held | pressed<<16
	StickX   float32
	StickY   float32
}

// EntitySnapshot is the observable state of one fighter after a tick.
type EntitySnapshot struct {
	ID     uint32
	X      float32
	Y      float32
	Health float32
	Meter  float32
}

// Frame is everything captured after one tick.
type Frame struct {
	Number   uint32
	Inputs   []InputSnapshot
	Entities []EntitySnapshot
}

// Metadata describes a finished recording.
type Metadata struct {
	Version    string
	Timestamp  int64   // UNIX seconds when recording started
	Duration   float64 // seconds of simulated time
	Stage      string
	Characters []string
	Winner     string
	Checksum   uint32
}

// Replay is a finished recording.
type Replay struct {
	Meta   Metadata
	Frames []Frame
}

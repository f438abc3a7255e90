package replay

import (
	"errors"
	"fmt"
)

// ErrChecksumMismatch is returned when recomputing a replay's checksum does
// not give the stored value.
var ErrChecksumMismatch = errors.New("replay: checksum mismatch")

// FrameChecksum is the wrapping 32-bit sum of a frame's number, its input
// fields and its truncated positions.
func FrameChecksum(f Frame) uint32 {
	sum := f.Number
	for _, in := range f.Inputs {
		sum += uint32(in.PlayerID)
		sum += in.Buttons
		sum += uint32(int32(in.StickX))
		sum += uint32(int32(in.StickY))
	}
	for _, e := range f.Entities {
		sum += e.ID
		sum += uint32(int32(e.X))
		sum += uint32(int32(e.Y))
	}
	return sum
}

// Checksum folds every frame checksum.
func Checksum(frames []Frame) uint32 {
	var sum uint32
	for _, f := range frames {
		sum += FrameChecksum(f)
	}
	return sum
}

// Verify recomputes the checksum of r and compares it with the stored one.
func Verify(r *Replay) error {
	if got := Checksum(r.Frames); got != r.Meta.Checksum {
		return fmt.Errorf("replay: verify: stored %08x, computed %08x: %w", r.Meta.Checksum, got, ErrChecksumMismatch)
	}
	return nil
}

package replay

// Player walks the frames of a replay one tick at a time.
type Player struct {
	replay  *Replay
	cursor  int
	playing bool
}

func NewPlayer(r *Replay) *Player {
	return &Player{replay: r}
}

// Start rewinds to the first frame and starts playback.
func (p *Player) Start() {
	p.cursor = 0
	p.playing = len(p.replay.Frames) > 0
}

// Next yields the frame under the cursor and advances. Playback stops by
// itself after the last frame.
func (p *Player) Next() (Frame, bool) {
	if !p.playing || p.cursor >= len(p.replay.Frames) {
		p.playing = false
		return Frame{}, false
	}
	f := p.replay.Frames[p.cursor]
	p.cursor++
	if p.cursor >= len(p.replay.Frames) {
		p.playing = false
	}
	return f, true
}

// Seek moves the cursor, clamped to the recording. Seeking onto a frame
// resumes playback, even after it stopped at the end.
func (p *Player) Seek(frame int) {
	p.cursor = min(max(frame, 0), len(p.replay.Frames))
	p.playing = p.cursor < len(p.replay.Frames)
}

func (p *Player) Playing() bool {
	return p.playing
}

func (p *Player) Cursor() int {
	return p.cursor
}

func (p *Player) Len() int {
	return len(p.replay.Frames)
}

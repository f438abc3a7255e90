package components

import (
	"github.com/automoto/doomerang-brawl/input"
	"github.com/yohamta/donburi"
)

// InputSourceData binds a fighter to a host input source.
// Frame is this tick's folded input; Commands holds recent press edges for
// command matching.
type InputSourceData struct {
	Player   uint8
	Frame    input.Frame
	Commands *input.Buffer
}

var InputSource = donburi.NewComponentType[InputSourceData]()

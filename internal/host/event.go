// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package host

import "fmt"

// EventKind identifies a platform event.
type EventKind int

// Event types
const (
	EventQuit EventKind = iota
	EventResize
	EventKeyDown
	EventWheel
	EventMouseDown
	EventMouseMove
)

func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventResize:
		return "resize"
	case EventKeyDown:
		return "key-down"
	case EventWheel:
		return "wheel"
	case EventMouseDown:
		return "mouse-down"
	case EventMouseMove:
		return "mouse-move"
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// Event is a raw event as reported by a Platform. Only the fields
// relevant to the kind are set.
type Event struct {
	Kind    EventKind
	W, H    int     // EventResize: new size in pixels
	Key     Key     // EventKeyDown
	WheelY  float64 // EventWheel: positive is away from the user
	Flipped bool    // EventWheel: the platform reports inverted wheel direction
	Button  Button  // EventMouseDown
	X, Y    float64 // EventMouseDown, EventMouseMove
}

// Key is a platform independent key code.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeySpace
	KeyBackspace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyF
	KeyG
	KeyQ
	KeyZ
)

var keyNames = map[Key]string{
	KeyUnknown:   "unknown",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeySpace:     "Space",
	KeyBackspace: "BackSpace",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "Prior",
	KeyPageDown:  "Next",
	KeyF:         "F",
	KeyG:         "G",
	KeyQ:         "Q",
	KeyZ:         "Z",
}

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// Button identifies a pointer button.
type Button int

const (
	ButtonUnknown Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	}
	return "unknown"
}

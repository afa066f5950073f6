package slcan

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Frame is a classic CAN frame as carried over the serial line: an
// identifier, a data/remote flag and up to 8 payload bytes. Frames are
// plain values and compare with ==.
type Frame struct {
	id     Identifier
	remote bool
	dlc    uint8
	data   [8]byte
}

// NewFrame returns a data frame carrying up to 8 payload bytes.
func NewFrame(id Identifier, data []byte) (Frame, error) {
	if len(data) > 8 {
		return Frame{}, fmt.Errorf("payload length %d: %w", len(data), ErrPayloadLength)
	}
	f := Frame{id: id, dlc: uint8(len(data))}
	copy(f.data[:], data)
	return f, nil
}

// NewRemoteFrame returns a remote transmission request for a frame of
// dlc bytes. Remote frames carry no payload of their own.
func NewRemoteFrame(id Identifier, dlc int) (Frame, error) {
	if dlc < 0 || dlc > 8 {
		return Frame{}, fmt.Errorf("remote DLC %d: %w", dlc, ErrPayloadLength)
	}
	return Frame{id: id, remote: true, dlc: uint8(dlc)}, nil
}

// ID returns the frame identifier.
func (f Frame) ID() Identifier { return f.id }

// IsRemote reports whether the frame is a remote transmission request.
func (f Frame) IsRemote() bool { return f.remote }

// DLC returns the data length code: the payload length for data frames,
// the requested length for remote frames.
func (f Frame) DLC() int { return int(f.dlc) }

// Data returns the payload of a data frame, nil for remote frames.
func (f Frame) Data() []byte {
	if f.remote {
		return nil
	}
	return f.data[:f.dlc]
}

var (
	green  = color.New(color.FgGreen).SprintfFunc()
	red    = color.New(color.FgRed).SprintfFunc()
	yellow = color.New(color.FgHiBlue).SprintfFunc()
)

func (f Frame) String() string {
	var out strings.Builder

	if f.remote {
		out.WriteString("<r> || ")
	} else {
		out.WriteString("<d> || ")
	}

	out.WriteString(f.id.String() + " || ")
	out.WriteString(strconv.Itoa(f.DLC()) + " || ")

	var hexView strings.Builder
	for i, b := range f.Data() {
		hexView.WriteString(fmt.Sprintf("%02X", b))
		if i != f.DLC()-1 {
			hexView.WriteString(" ")
		}
	}
	out.WriteString(fmt.Sprintf("%-23s", hexView.String()))

	out.WriteString(" || ")
	out.WriteString(onlyPrintable(f.Data()))
	return out.String()
}

// ColorString renders the frame like String with ANSI colors for
// terminal log output.
func (f Frame) ColorString() string {
	var out strings.Builder

	if f.remote {
		out.WriteString("<r> || ")
	} else {
		out.WriteString("<d> || ")
	}

	out.WriteString(green("%s", f.id.String()) + " || ")
	out.WriteString(strconv.Itoa(f.DLC()) + " || ")

	var hexView strings.Builder
	for i, b := range f.Data() {
		hexView.WriteString(fmt.Sprintf("%02X", b))
		if i != f.DLC()-1 {
			hexView.WriteString(" ")
		}
	}
	out.WriteString(red(fmt.Sprintf("%-23s", hexView.String())))

	out.WriteString(" || ")
	out.WriteString(yellow(onlyPrintable(f.Data())))
	return out.String()
}

func onlyPrintable(data []byte) string {
	var out strings.Builder
	for _, b := range data {
		if b < 32 || b > 127 {
			out.WriteString("·")
		} else {
			out.WriteByte(b)
		}
	}
	return out.String()
}

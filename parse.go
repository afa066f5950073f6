package slcan

import (
	"encoding/hex"
	"fmt"
	"strconv"
)

// Parse decodes one line (terminator already stripped) into a Frame,
// Command or Status value. Hex fields accept either case; all other
// layout is enforced exactly: wrong length, stray bytes or a bad digit
// return a typed error and never a partial message.
func Parse(line []byte) (Message, error) {
	if len(line) == 0 {
		return nil, fmt.Errorf("empty line: %w", ErrInvalidLength)
	}
	switch line[0] {
	case 't':
		return parseFrame(line, false, false)
	case 'T':
		return parseFrame(line, true, false)
	case 'r':
		return parseFrame(line, false, true)
	case 'R':
		return parseFrame(line, true, true)
	case 'O':
		if len(line) != 1 {
			return nil, fmt.Errorf("open command %q: %w", line, ErrInvalidLength)
		}
		return Open, nil
	case 'C':
		if len(line) != 1 {
			return nil, fmt.Errorf("close command %q: %w", line, ErrInvalidLength)
		}
		return Close, nil
	case 'S':
		if len(line) != 2 {
			return nil, fmt.Errorf("bitrate command %q: %w", line, ErrInvalidLength)
		}
		if line[1] < '0' || line[1] > '8' {
			return nil, fmt.Errorf("bitrate index %q: %w", line[1], ErrUnknownCommand)
		}
		return SetBitrate(Bitrate(line[1] - '0')), nil
	case 's':
		if len(line) != 5 {
			return nil, fmt.Errorf("timing command %q: %w", line, ErrInvalidLength)
		}
		var btr [2]byte
		if _, err := hex.Decode(btr[:], line[1:]); err != nil {
			return nil, fmt.Errorf("timing registers %q: %w", line[1:], ErrMalformedHex)
		}
		return SetTiming(btr[0], btr[1]), nil
	case 'F':
		switch len(line) {
		case 1:
			return RequestStatus, nil
		case 3:
			// Device side reply: status byte as two hex digits.
			flags, err := strconv.ParseUint(string(line[1:]), 16, 8)
			if err != nil {
				return nil, fmt.Errorf("status flags %q: %w", line[1:], ErrMalformedHex)
			}
			return Status(flags), nil
		default:
			return nil, fmt.Errorf("status command %q: %w", line, ErrInvalidLength)
		}
	case 'V':
		if len(line) != 1 {
			return nil, fmt.Errorf("version command %q: %w", line, ErrInvalidLength)
		}
		return RequestVersion, nil
	case 'N':
		if len(line) != 1 {
			return nil, fmt.Errorf("serial number command %q: %w", line, ErrInvalidLength)
		}
		return RequestSerialNumber, nil
	case 'Z':
		if len(line) != 2 {
			return nil, fmt.Errorf("timestamp command %q: %w", line, ErrInvalidLength)
		}
		switch line[1] {
		case '0':
			return SetTimestamp(false), nil
		case '1':
			return SetTimestamp(true), nil
		default:
			return nil, fmt.Errorf("timestamp flag %q: %w", line[1], ErrUnknownCommand)
		}
	default:
		return nil, fmt.Errorf("command %q: %w", line[0], ErrUnknownCommand)
	}
}

func parseFrame(line []byte, extended, remote bool) (Message, error) {
	idLen := 3
	if extended {
		idLen = 8
	}
	if len(line) < 1+idLen+1 {
		return nil, fmt.Errorf("frame line %q: %w", line, ErrInvalidLength)
	}

	raw, err := strconv.ParseUint(string(line[1:1+idLen]), 16, 32)
	if err != nil {
		return nil, fmt.Errorf("identifier %q: %w", line[1:1+idLen], ErrMalformedHex)
	}
	var id Identifier
	if extended {
		id, err = ExtendedID(uint32(raw))
	} else {
		id, err = StandardID(uint32(raw))
	}
	if err != nil {
		return nil, err
	}

	dlcDigit := line[1+idLen]
	if dlcDigit < '0' || dlcDigit > '9' {
		return nil, fmt.Errorf("DLC digit %q: %w", dlcDigit, ErrMalformedHex)
	}
	dlc := int(dlcDigit - '0')
	if dlc > 8 {
		return nil, fmt.Errorf("DLC %d: %w", dlc, ErrPayloadLength)
	}

	if remote {
		if len(line) != 1+idLen+1 {
			return nil, fmt.Errorf("remote frame line %q: %w", line, ErrInvalidLength)
		}
		f, err := NewRemoteFrame(id, dlc)
		if err != nil {
			return nil, err
		}
		return f, nil
	}

	// Data frames carry exactly 2*DLC payload digits, nothing else.
	if len(line) != 1+idLen+1+2*dlc {
		return nil, fmt.Errorf("frame line %q: DLC %d: %w", line, dlc, ErrInvalidLength)
	}
	var data [8]byte
	if _, err := hex.Decode(data[:dlc], line[1+idLen+1:]); err != nil {
		return nil, fmt.Errorf("payload %q: %w", line[1+idLen+1:], ErrMalformedHex)
	}
	f, err := NewFrame(id, data[:dlc])
	if err != nil {
		return nil, err
	}
	return f, nil
}

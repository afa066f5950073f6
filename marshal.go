package slcan

func (f Frame) appendLine(dst []byte) []byte {
	switch {
	case f.remote && f.id.extended:
		dst = append(dst, 'R')
	case f.remote:
		dst = append(dst, 'r')
	case f.id.extended:
		dst = append(dst, 'T')
	default:
		dst = append(dst, 't')
	}

	// Identifier, fixed width: 3 hex digits for 11-bit, 8 for 29-bit.
	if f.id.extended {
		for shift := 28; shift >= 0; shift -= 4 {
			dst = append(dst, hextable[(f.id.raw>>shift)&0x0F])
		}
	} else {
		dst = append(dst,
			hextable[(f.id.raw>>8)&0x0F],
			hextable[(f.id.raw>>4)&0x0F],
			hextable[f.id.raw&0x0F])
	}

	dst = append(dst, '0'+f.dlc)

	if !f.remote {
		for _, b := range f.data[:f.dlc] {
			dst = appendHexByte(dst, b)
		}
	}

	return append(dst, CR)
}

func (c Command) appendLine(dst []byte) []byte {
	switch c.Kind {
	case CmdOpen:
		dst = append(dst, 'O')
	case CmdClose:
		dst = append(dst, 'C')
	case CmdSetBitrate:
		dst = append(dst, 'S', '0'+byte(c.Bitrate))
	case CmdSetTiming:
		dst = append(dst, 's')
		dst = appendHexByte(dst, c.BTR0)
		dst = appendHexByte(dst, c.BTR1)
	case CmdStatus:
		dst = append(dst, 'F')
	case CmdVersion:
		dst = append(dst, 'V')
	case CmdSerialNumber:
		dst = append(dst, 'N')
	case CmdTimestamp:
		if c.TimestampOn {
			dst = append(dst, 'Z', '1')
		} else {
			dst = append(dst, 'Z', '0')
		}
	}
	return append(dst, CR)
}

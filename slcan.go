package slcan

// CR terminates every SLCAN line. No line feed is sent or expected.
const CR = 0x0D

// MaxLineLen is the longest valid line excluding the terminator: an
// extended data frame with 8 payload bytes ('T' + 8 identifier digits +
// 1 DLC digit + 16 payload digits).
const MaxLineLen = 26

// Message is anything that travels as one SLCAN line: a Frame, a
// Command or a Status report.
type Message interface {
	appendLine(dst []byte) []byte
}

// Marshal renders a message as a complete CR-terminated line.
func Marshal(m Message) []byte {
	return m.appendLine(make([]byte, 0, MaxLineLen+1))
}

const hextable = "0123456789ABCDEF"

func appendHexByte(dst []byte, b byte) []byte {
	return append(dst, hextable[b>>4], hextable[b&0x0F])
}

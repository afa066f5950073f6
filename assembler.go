package slcan

// Assembler reassembles CR-terminated lines from an arbitrarily chunked
// byte stream. The transport makes no chunking guarantee, so a single
// Feed may complete zero, one or several lines. The zero value is ready
// for use. An Assembler is not safe for concurrent use; give each
// reader its own instance.
type Assembler struct {
	buf [MaxLineLen]byte
	n   int
}

// Feed absorbs the next chunk of raw bytes and returns every line the
// chunk completed, in order, with the terminator stripped. Returned
// lines are copies and stay valid across later Feed calls. Empty lines
// (a bare CR) are skipped.
//
// If accumulation reaches MaxLineLen before a terminator is seen, the
// partial line is discarded and ErrBufferOverflow reported; the byte
// that overflowed starts the next line, so one oversized or corrupted
// line never stalls the ones after it. Lines completed within the same
// chunk are still returned alongside the error.
func (a *Assembler) Feed(p []byte) ([][]byte, error) {
	var lines [][]byte
	var err error
	for _, b := range p {
		if b == CR {
			if a.n == 0 {
				continue
			}
			line := make([]byte, a.n)
			copy(line, a.buf[:a.n])
			lines = append(lines, line)
			a.n = 0
			continue
		}
		if a.n == len(a.buf) {
			a.n = 0
			err = ErrBufferOverflow
		}
		a.buf[a.n] = b
		a.n++
	}
	return lines, err
}

// Reset discards any partially accumulated line.
func (a *Assembler) Reset() {
	a.n = 0
}

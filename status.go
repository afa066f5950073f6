package slcan

import "errors"

// Status is the controller status byte a device reports in reply to a
// status query, one flag bit per error condition (SJA1000 layout).
type Status byte

const (
	StatusRxFifoFull Status = 1 << iota
	StatusTxFifoFull
	StatusErrorWarning
	StatusDataOverrun
	statusUnused
	StatusErrorPassive
	StatusArbitrationLost
	StatusBusError
)

// Err returns the highest-priority error condition set in the status
// byte, or nil if the controller reports no error.
func (s Status) Err() error {
	switch {
	case s&StatusRxFifoFull != 0:
		return errors.New("CAN receive FIFO queue full")
	case s&StatusTxFifoFull != 0:
		return errors.New("CAN transmit FIFO queue full")
	case s&StatusErrorWarning != 0:
		return errors.New("error warning (EI)")
	case s&StatusDataOverrun != 0:
		return errors.New("data overrun (DOI)")
	case s&StatusErrorPassive != 0:
		return errors.New("error passive (EPI)")
	case s&StatusArbitrationLost != 0:
		return errors.New("arbitration lost (ALI)")
	case s&StatusBusError != 0:
		return errors.New("bus error (BEI)")
	}
	return nil
}

func (s Status) appendLine(dst []byte) []byte {
	dst = append(dst, 'F')
	dst = appendHexByte(dst, byte(s))
	return append(dst, CR)
}

// Package slcan implements the serial line CAN (SLCAN, also known as
// Lawicel) ASCII protocol: CAN frames and channel control commands are
// encoded as single text lines terminated by a carriage return.
//
// The package is a pure codec. It converts between Frame/Command values
// and line bytes, and reassembles lines from an arbitrarily chunked byte
// stream, but performs no I/O itself. The serial port (or any other
// transport) is owned entirely by the caller, which makes the codec
// usable from both blocking and non-blocking read loops.
package slcan

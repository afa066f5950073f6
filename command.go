package slcan

// Bitrate is a standard SLCAN bitrate index, 'S' command parameter.
type Bitrate byte

const (
	Bitrate10k Bitrate = iota
	Bitrate20k
	Bitrate50k
	Bitrate100k
	Bitrate125k
	Bitrate250k
	Bitrate500k
	Bitrate800k
	Bitrate1M
)

type CommandKind int

const (
	CmdOpen CommandKind = iota
	CmdClose
	CmdSetBitrate
	CmdSetTiming
	CmdStatus
	CmdVersion
	CmdSerialNumber
	CmdTimestamp
)

// Command is a channel control command. The closed set of kinds mirrors
// the Lawicel command letters; each kind carries at most one parameter.
type Command struct {
	Kind        CommandKind
	Bitrate     Bitrate // CmdSetBitrate
	BTR0, BTR1  byte    // CmdSetTiming
	TimestampOn bool    // CmdTimestamp
}

// Parameterless commands, ready to marshal.
var (
	Open                = Command{Kind: CmdOpen}
	Close               = Command{Kind: CmdClose}
	RequestStatus       = Command{Kind: CmdStatus}
	RequestVersion      = Command{Kind: CmdVersion}
	RequestSerialNumber = Command{Kind: CmdSerialNumber}
)

// SetBitrate returns the 'S' command selecting one of the standard
// bitrate indexes.
func SetBitrate(rate Bitrate) Command {
	return Command{Kind: CmdSetBitrate, Bitrate: rate}
}

// SetTiming returns the 's' command programming the controller BTR0/BTR1
// registers directly, for bitrates the 'S' table does not cover.
func SetTiming(btr0, btr1 byte) Command {
	return Command{Kind: CmdSetTiming, BTR0: btr0, BTR1: btr1}
}

// SetTimestamp returns the 'Z' command switching receive timestamps on
// or off.
func SetTimestamp(on bool) Command {
	return Command{Kind: CmdTimestamp, TimestampOn: on}
}

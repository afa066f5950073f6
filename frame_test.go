package slcan

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func mustStandardID(t *testing.T, id uint32) Identifier {
	t.Helper()
	sid, err := StandardID(id)
	if err != nil {
		t.Fatalf("StandardID(0x%X): %v", id, err)
	}
	return sid
}

func mustExtendedID(t *testing.T, id uint32) Identifier {
	t.Helper()
	eid, err := ExtendedID(id)
	if err != nil {
		t.Fatalf("ExtendedID(0x%X): %v", id, err)
	}
	return eid
}

func mustFrame(t *testing.T, id Identifier, data []byte) Frame {
	t.Helper()
	f, err := NewFrame(id, data)
	if err != nil {
		t.Fatalf("NewFrame: %v", err)
	}
	return f
}

func mustRemoteFrame(t *testing.T, id Identifier, dlc int) Frame {
	t.Helper()
	f, err := NewRemoteFrame(id, dlc)
	if err != nil {
		t.Fatalf("NewRemoteFrame: %v", err)
	}
	return f
}

func TestIdentifierRange(t *testing.T) {
	if _, err := StandardID(0x7FF); err != nil {
		t.Fatalf("StandardID(0x7FF): %v", err)
	}
	if _, err := StandardID(0x800); !errors.Is(err, ErrIdentifierRange) {
		t.Fatalf("StandardID(0x800): got %v, want ErrIdentifierRange", err)
	}
	if _, err := ExtendedID(0x1FFFFFFF); err != nil {
		t.Fatalf("ExtendedID(0x1FFFFFFF): %v", err)
	}
	if _, err := ExtendedID(0x20000000); !errors.Is(err, ErrIdentifierRange) {
		t.Fatalf("ExtendedID(0x20000000): got %v, want ErrIdentifierRange", err)
	}
}

func TestIdentifierString(t *testing.T) {
	if got := mustStandardID(t, 0x123).String(); got != "0x123" {
		t.Fatalf("standard String: got %q", got)
	}
	if got := mustExtendedID(t, 0x123).String(); got != "0x00000123" {
		t.Fatalf("extended String: got %q", got)
	}
}

func TestNewFrame(t *testing.T) {
	id := mustStandardID(t, 0x123)

	f := mustFrame(t, id, []byte{0xDE, 0xAD})
	if f.DLC() != 2 {
		t.Fatalf("DLC: got %d, want 2", f.DLC())
	}
	if !bytes.Equal(f.Data(), []byte{0xDE, 0xAD}) {
		t.Fatalf("Data: got % X", f.Data())
	}
	if f.IsRemote() {
		t.Fatal("data frame reported as remote")
	}
	if f.ID() != id {
		t.Fatalf("ID: got %v", f.ID())
	}

	if _, err := NewFrame(id, make([]byte, 9)); !errors.Is(err, ErrPayloadLength) {
		t.Fatalf("9-byte payload: got %v, want ErrPayloadLength", err)
	}
}

func TestNewRemoteFrame(t *testing.T) {
	id := mustStandardID(t, 0x123)

	f := mustRemoteFrame(t, id, 8)
	if !f.IsRemote() {
		t.Fatal("remote frame not marked remote")
	}
	if f.DLC() != 8 {
		t.Fatalf("DLC: got %d, want 8", f.DLC())
	}
	if f.Data() != nil {
		t.Fatalf("remote frame carries data: % X", f.Data())
	}

	if _, err := NewRemoteFrame(id, 9); !errors.Is(err, ErrPayloadLength) {
		t.Fatalf("DLC 9: got %v, want ErrPayloadLength", err)
	}
}

func TestFrameString(t *testing.T) {
	f := mustFrame(t, mustStandardID(t, 0x123), []byte{0xDE, 0xAD})
	s := f.String()
	if !strings.Contains(s, "0x123") || !strings.Contains(s, "DE AD") {
		t.Fatalf("unexpected String: %q", s)
	}
}

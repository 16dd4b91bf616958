package interrupts

import (
	"testing"

	"github.com/thelolagemann/gomeboy-core/internal/types"
)

func newService() (*Service, *types.IOTable) {
	io := &types.IOTable{}
	return NewService(io), io
}

func TestService_Vector(t *testing.T) {
	vectorsByFlag := map[uint8]uint16{
		VBlankFlag: 0x40,
		LCDFlag:    0x48,
		TimerFlag:  0x50,
		SerialFlag: 0x58,
		JoypadFlag: 0x60,
	}
	for flag, want := range vectorsByFlag {
		s, _ := newService()
		s.Enable = 0x1F
		s.Request(flag)
		if got := s.Vector(); got != want {
			t.Errorf("flag %05b: expected vector 0x%02X, got 0x%02X", flag, want, got)
		}
		if s.Flag != 0 {
			t.Errorf("flag %05b: expected flag to be cleared, got %05b", flag, s.Flag)
		}
	}
}

func TestService_Priority(t *testing.T) {
	s, _ := newService()
	s.Enable = VBlankFlag | JoypadFlag
	s.Request(JoypadFlag)
	s.Request(VBlankFlag)

	if got := s.Vector(); got != VBlankVector {
		t.Errorf("expected v-blank to be serviced first, got 0x%02X", got)
	}
	if s.Flag != JoypadFlag {
		t.Errorf("expected only the v-blank bit to be cleared, got %05b", s.Flag)
	}
	if got := s.Vector(); got != JoypadVector {
		t.Errorf("expected joypad next, got 0x%02X", got)
	}
}

func TestService_DisabledSource(t *testing.T) {
	s, _ := newService()
	s.Enable = TimerFlag
	s.Request(VBlankFlag)

	if s.HasInterrupts() {
		t.Errorf("expected no deliverable interrupts")
	}
	if got := s.Vector(); got != 0 {
		t.Errorf("expected no vector, got 0x%02X", got)
	}
	if s.Flag != VBlankFlag {
		t.Errorf("expected request to stay pending, got %05b", s.Flag)
	}
}

func TestService_Registers(t *testing.T) {
	s, io := newService()
	io.Write(types.IF, 0xFF)
	if s.Flag != 0x1F {
		t.Errorf("expected IF write to keep 5 bits, got %08b", s.Flag)
	}
	s.Flag = VBlankFlag
	if v, _ := io.Read(types.IF); v != 0xE1 {
		t.Errorf("expected IF to read 0xE1, got 0x%02X", v)
	}
}

func TestService_GlobalEnable(t *testing.T) {
	s, _ := newService()
	if s.GloballyEnabled() {
		t.Errorf("expected IME to start cleared")
	}
	s.SetGloballyEnabled(true)
	if !s.GloballyEnabled() {
		t.Errorf("expected IME to be set")
	}
	s.Reset()
	if s.GloballyEnabled() || s.Flag != 0 || s.Enable != 0 {
		t.Errorf("expected reset to clear everything")
	}
}

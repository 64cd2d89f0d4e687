package action

import "testing"

func TestAction_String(t *testing.T) {
	tests := map[string]struct {
		action Action
		want   string
	}{
		"transmit_4": {Transmit4, "transmit_4"},
		"transmit_6": {Transmit6, "transmit_6"},
		"push_4_4":   {Push4_4, "push_4_4"},
		"push_6_6":   {Push6_6, "push_6_6"},
		"pop_4_6":    {Pop4_6, "pop_4_6"},
		"unknown":    {Action(255), "action(255)"},
	}
	for name, test := range tests {
		if got := test.action.String(); got != test.want {
			t.Errorf("%s: got %q, want %q", name, got, test.want)
		}
	}
}

func TestProtocol_String(t *testing.T) {
	if got, want := Protocol4.String(), "4"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := Protocol6.String(), "6"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTransmit(t *testing.T) {
	if got := Transmit(Protocol4); got != Transmit4 {
		t.Errorf("got %v, want transmit_4", got)
	}
	if got := Transmit(Protocol6); got != Transmit6 {
		t.Errorf("got %v, want transmit_6", got)
	}
}

func TestPush(t *testing.T) {
	tests := map[string]struct {
		below, top Protocol
		want       Action
	}{
		"4_4": {Protocol4, Protocol4, Push4_4},
		"4_6": {Protocol4, Protocol6, Push4_6},
		"6_4": {Protocol6, Protocol4, Push6_4},
		"6_6": {Protocol6, Protocol6, Push6_6},
	}
	for name, test := range tests {
		if got := Push(test.below, test.top); got != test.want {
			t.Errorf("%s: got %v, want %v", name, got, test.want)
		}
	}
}

func TestPop(t *testing.T) {
	// below,top convention: the first argument is the revealed cell, the
	// second is the discarded one.
	tests := map[string]struct {
		below, top Protocol
		want       Action
	}{
		"4_4": {Protocol4, Protocol4, Pop4_4},
		"4_6": {Protocol4, Protocol6, Pop4_6},
		"6_4": {Protocol6, Protocol4, Pop6_4},
		"6_6": {Protocol6, Protocol6, Pop6_6},
	}
	for name, test := range tests {
		if got := Pop(test.below, test.top); got != test.want {
			t.Errorf("%s: got %v, want %v", name, got, test.want)
		}
	}
}

func TestAction_AcceptsTop(t *testing.T) {
	tests := map[string]struct {
		action      Action
		acceptsTop4 bool
		acceptsTop6 bool
	}{
		"transmit_4": {Transmit4, true, false},
		"transmit_6": {Transmit6, false, true},
		"push_4_4":   {Push4_4, true, false},
		"push_4_6":   {Push4_6, true, false},
		"push_6_4":   {Push6_4, false, true},
		"push_6_6":   {Push6_6, false, true},
		"pop_4_4":    {Pop4_4, true, false},
		"pop_4_6":    {Pop4_6, false, true},
		"pop_6_4":    {Pop6_4, true, false},
		"pop_6_6":    {Pop6_6, false, true},
	}
	for name, test := range tests {
		if got := test.action.AcceptsTop4(); got != test.acceptsTop4 {
			t.Errorf("%s: AcceptsTop4() = %v, want %v", name, got, test.acceptsTop4)
		}
		if got := test.action.AcceptsTop6(); got != test.acceptsTop6 {
			t.Errorf("%s: AcceptsTop6() = %v, want %v", name, got, test.acceptsTop6)
		}
	}
}

func TestSet_AddHas(t *testing.T) {
	s := NewSet(Transmit4, Push4_6)
	if !s.Has(Transmit4) {
		t.Error("expected Transmit4 in set")
	}
	if !s.Has(Push4_6) {
		t.Error("expected Push4_6 in set")
	}
	if s.Has(Transmit6) {
		t.Error("did not expect Transmit6 in set")
	}

	var empty Set
	if empty.Has(Transmit4) {
		t.Error("zero-value Set should have nothing")
	}
	added := empty.Add(Pop6_6)
	if !added.Has(Pop6_6) {
		t.Error("Add should return a set with the action present")
	}
	if empty.Has(Pop6_6) {
		t.Error("Add must not mutate the receiver")
	}
}

func TestSet_String(t *testing.T) {
	var empty Set
	if got, want := empty.String(), "{}"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	s := NewSet(Transmit4, Transmit6)
	if got, want := s.String(), "{transmit_4, transmit_6}"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAll_FixedOrder(t *testing.T) {
	want := [numActions]Action{
		Transmit4, Transmit6,
		Push4_4, Push4_6, Push6_4, Push6_6,
		Pop4_4, Pop4_6, Pop6_4, Pop6_6,
	}
	if All != want {
		t.Errorf("All order changed: got %v, want %v", All, want)
	}
}

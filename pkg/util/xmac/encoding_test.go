package xmac

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestJSONRoundTrip(t *testing.T) {
	type asset struct {
		MAC Addr `json:"mac"`
	}

	in := asset{MAC: MustParse("01-23-45-67-89-ab")}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() unexpected error = %v", err)
	}
	if want := `{"mac":"01-23-45-67-89-ab"}`; string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	var out asset
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() unexpected error = %v", err)
	}
	if out.MAC != in.MAC {
		t.Errorf("round trip = %v, want %v", out.MAC, in.MAC)
	}
}

func TestUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Addr
		wantErr error
	}{
		{"valid", `"01-23-45-67-89-ab"`, MustParse("01-23-45-67-89-ab"), nil},
		{"null", `null`, Addr{}, nil},
		{"empty_string", `""`, Addr{}, nil},
		{"wrong_separator", `"01:23:45:67:89:ab"`, Addr{}, ErrInvalidFormat},
		{"not_a_string", `42`, Addr{}, ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Addr
			err := a.UnmarshalJSON([]byte(tt.input))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("UnmarshalJSON(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if err == nil && a != tt.want {
				t.Errorf("UnmarshalJSON(%s) = %v, want %v", tt.input, a, tt.want)
			}
		})
	}
}

func TestTextRoundTrip(t *testing.T) {
	a := MustParse("01-0b-19-00-00-00")
	text, err := a.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error = %v", err)
	}

	var b Addr
	if err := b.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText() unexpected error = %v", err)
	}
	if b != a {
		t.Errorf("round trip = %v, want %v", b, a)
	}
}

func TestNilReceiver(t *testing.T) {
	var a *Addr
	if err := a.UnmarshalText([]byte("01-23-45-67-89-ab")); !errors.Is(err, ErrNilReceiver) {
		t.Errorf("UnmarshalText on nil receiver error = %v, want ErrNilReceiver", err)
	}
	if err := a.UnmarshalJSON([]byte(`"01-23-45-67-89-ab"`)); !errors.Is(err, ErrNilReceiver) {
		t.Errorf("UnmarshalJSON on nil receiver error = %v, want ErrNilReceiver", err)
	}
}

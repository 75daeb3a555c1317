package netcalc

import (
	"errors"
	"strings"
	"testing"
)

func TestBinaryStringRoundTrip(t *testing.T) {
	addresses := []string{
		"0.0.0.0",
		"255.255.255.255",
		"172.25.14.32",
		"10.0.0.1",
		"192.168.100.200",
		"1.2.3.4",
	}

	for _, addr := range addresses {
		bits, err := ToBinaryString(addr)
		if err != nil {
			t.Fatalf("ToBinaryString(%q): %v", addr, err)
		}
		if len(bits) != 32 {
			t.Fatalf("ToBinaryString(%q): got %d characters, want 32", addr, len(bits))
		}
		back, err := FromBinaryString(bits)
		if err != nil {
			t.Fatalf("FromBinaryString(%q): %v", bits, err)
		}
		if back != addr {
			t.Errorf("round trip of %q: got %q", addr, back)
		}
	}
}

func FuzzAddressRoundTrip(f *testing.F) {
	f.Add(uint32(0))
	f.Add(uint32(0xFFFFFFFF))
	f.Add(uint32(0xAC190E20))
	f.Fuzz(func(t *testing.T, v uint32) {
		addr := FormatAddress(v)
		parsed, err := ParseAddress(addr)
		if err != nil {
			t.Fatalf("ParseAddress(%q): %v", addr, err)
		}
		if parsed != v {
			t.Fatalf("round trip of %#x: got %#x", v, parsed)
		}
	})
}

func TestToBinaryStringOrdering(t *testing.T) {
	bits, err := ToBinaryString("255.0.0.1")
	if err != nil {
		t.Fatalf("ToBinaryString: %v", err)
	}
	want := "11111111" + "00000000" + "00000000" + "00000001"
	if bits != want {
		t.Errorf("got %q, want %q", bits, want)
	}
}

func TestToBinaryStringRejectsInvalidAddresses(t *testing.T) {
	for _, addr := range []string{
		"999.1.1.1",
		"1.2.3",
		"1.2.3.4.5",
		"1.2.3.256",
		"a.b.c.d",
		"",
	} {
		_, err := ToBinaryString(addr)
		if !errors.Is(err, ErrInvalidAddress) {
			t.Errorf("ToBinaryString(%q): expected ErrInvalidAddress, got %v", addr, err)
		}
	}
}

func TestFromBinaryStringRejectsBadInput(t *testing.T) {
	cases := []string{
		"",
		strings.Repeat("1", 31),
		strings.Repeat("1", 33),
		strings.Repeat("1", 31) + "2",
		strings.Repeat("0", 16) + "x" + strings.Repeat("0", 15),
	}
	for _, bits := range cases {
		_, err := FromBinaryString(bits)
		if !errors.Is(err, ErrInvalidBitString) {
			t.Errorf("FromBinaryString(%q): expected ErrInvalidBitString, got %v", bits, err)
		}
	}
}

func TestSubnetMaskShape(t *testing.T) {
	for prefix := 0; prefix <= 32; prefix++ {
		dotted, err := SubnetMask(prefix)
		if err != nil {
			t.Fatalf("SubnetMask(%d): %v", prefix, err)
		}
		bits, err := ToBinaryString(dotted)
		if err != nil {
			t.Fatalf("ToBinaryString(%q): %v", dotted, err)
		}
		want := strings.Repeat("1", prefix) + strings.Repeat("0", 32-prefix)
		if bits != want {
			t.Errorf("SubnetMask(%d) = %q, bit pattern %q, want %q", prefix, dotted, bits, want)
		}
	}
}

func TestSubnetMaskKnownValues(t *testing.T) {
	cases := []struct {
		prefix int
		want   string
	}{
		{0, "0.0.0.0"},
		{8, "255.0.0.0"},
		{24, "255.255.255.0"},
		{27, "255.255.255.224"},
		{32, "255.255.255.255"},
	}
	for _, tc := range cases {
		got, err := SubnetMask(tc.prefix)
		if err != nil {
			t.Fatalf("SubnetMask(%d): %v", tc.prefix, err)
		}
		if got != tc.want {
			t.Errorf("SubnetMask(%d) = %q, want %q", tc.prefix, got, tc.want)
		}
	}
}

func TestSubnetMaskRejectsOutOfRangePrefix(t *testing.T) {
	for _, prefix := range []int{-1, 33, 64} {
		_, err := SubnetMask(prefix)
		if !errors.Is(err, ErrInvalidPrefixLength) {
			t.Errorf("SubnetMask(%d): expected ErrInvalidPrefixLength, got %v", prefix, err)
		}
	}
}

func TestNetworkAddress(t *testing.T) {
	cases := []struct {
		address string
		prefix  int
		want    string
	}{
		{"172.25.14.32", 27, "172.25.14.32"}, // already aligned on the /27 boundary
		{"172.25.14.57", 27, "172.25.14.32"},
		{"10.1.2.3", 8, "10.0.0.0"},
		{"192.168.1.130", 25, "192.168.1.128"},
		{"1.2.3.4", 0, "0.0.0.0"},
		{"1.2.3.4", 32, "1.2.3.4"},
	}
	for _, tc := range cases {
		got, err := NetworkAddress(tc.address, tc.prefix)
		if err != nil {
			t.Fatalf("NetworkAddress(%q, %d): %v", tc.address, tc.prefix, err)
		}
		if got != tc.want {
			t.Errorf("NetworkAddress(%q, %d) = %q, want %q", tc.address, tc.prefix, got, tc.want)
		}
	}
}

func TestGatewayAddress(t *testing.T) {
	cases := []struct {
		address string
		prefix  int
		want    string
	}{
		{"172.25.14.32", 27, "172.25.14.33"},
		{"172.25.14.57", 27, "172.25.14.33"},
		{"10.20.30.40", 24, "10.20.30.1"},
		{"192.168.0.0", 16, "192.168.0.1"},
	}
	for _, tc := range cases {
		got, err := GatewayAddress(tc.address, tc.prefix)
		if err != nil {
			t.Fatalf("GatewayAddress(%q, %d): %v", tc.address, tc.prefix, err)
		}
		if got != tc.want {
			t.Errorf("GatewayAddress(%q, %d) = %q, want %q", tc.address, tc.prefix, got, tc.want)
		}
	}
}

func TestGatewayAddressRejectsHostOnlyPrefixes(t *testing.T) {
	for _, prefix := range []int{31, 32} {
		_, err := GatewayAddress("10.0.0.0", prefix)
		if !errors.Is(err, ErrInvalidPrefixLength) {
			t.Errorf("GatewayAddress(/%d): expected ErrInvalidPrefixLength, got %v", prefix, err)
		}
	}
}

func TestParseCIDR(t *testing.T) {
	c, err := ParseCIDR("172.25.14.32/27")
	if err != nil {
		t.Fatalf("ParseCIDR: %v", err)
	}
	if c.Address() != "172.25.14.32" || c.Bits != 27 {
		t.Fatalf("unexpected cidr: %v", c)
	}
	if c.String() != "172.25.14.32/27" {
		t.Errorf("String() = %q", c.String())
	}
	if got := c.SubnetMask(); got != "255.255.255.224" {
		t.Errorf("SubnetMask() = %q", got)
	}
	if got := c.NetworkAddress(); got != "172.25.14.32" {
		t.Errorf("NetworkAddress() = %q", got)
	}
	gw, err := c.GatewayAddress()
	if err != nil {
		t.Fatalf("GatewayAddress: %v", err)
	}
	if gw != "172.25.14.33" {
		t.Errorf("GatewayAddress() = %q", gw)
	}
}

func TestParseCIDRErrors(t *testing.T) {
	cases := []struct {
		input string
		want  error
	}{
		{"999.1.1.1/24", ErrInvalidAddress},
		{"10.0.0.1/33", ErrInvalidPrefixLength},
		{"10.0.0.1/-1", ErrInvalidPrefixLength},
		{"10.0.0.1", ErrInvalidPrefixLength},
		{"10.0.0/24", ErrInvalidAddress},
		{"10.0.0.1/abc", ErrInvalidPrefixLength},
	}
	for _, tc := range cases {
		_, err := ParseCIDR(tc.input)
		if !errors.Is(err, tc.want) {
			t.Errorf("ParseCIDR(%q): expected %v, got %v", tc.input, tc.want, err)
		}
	}
}

// Package netcalc implements the IPv4 CIDR arithmetic used to derive the
// static network configuration of provisioned machines: subnet mask, network
// address and default gateway (first usable host) from an address plus
// prefix length.
//
// Addresses are held as native uint32 values; dotted-decimal and binary
// string forms exist only at the parse/format boundary.
package netcalc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidAddress      = errors.New("invalid ipv4 address")
	ErrInvalidPrefixLength = errors.New("invalid prefix length")
	ErrInvalidBitString    = errors.New("invalid bit string")
)

// CIDR is an IPv4 address paired with a prefix length, parsed from the
// a.b.c.d/n notation.
type CIDR struct {
	Addr uint32
	Bits int
}

// ParseCIDR parses a.b.c.d/n, validating octet and prefix value ranges
// independently of any shape checks the caller may have done.
func ParseCIDR(s string) (CIDR, error) {
	addrStr, bitsStr, found := strings.Cut(s, "/")
	if !found {
		return CIDR{}, fmt.Errorf("%w: missing prefix length in %q", ErrInvalidPrefixLength, s)
	}

	addr, err := ParseAddress(addrStr)
	if err != nil {
		return CIDR{}, err
	}

	bits, err := strconv.Atoi(bitsStr)
	if err != nil || bits < 0 || bits > 32 {
		return CIDR{}, fmt.Errorf("%w: %q", ErrInvalidPrefixLength, bitsStr)
	}

	return CIDR{Addr: addr, Bits: bits}, nil
}

// String uses the CIDR format a.b.c.d/n.
func (c CIDR) String() string {
	return fmt.Sprintf("%s/%d", FormatAddress(c.Addr), c.Bits)
}

// Address returns the dotted-decimal form of the address part.
func (c CIDR) Address() string {
	return FormatAddress(c.Addr)
}

// SubnetMask returns the dotted-decimal mask with c.Bits leading ones.
func (c CIDR) SubnetMask() string {
	return FormatAddress(mask(c.Bits))
}

// NetworkAddress returns the address with all host bits zeroed.
func (c CIDR) NetworkAddress() string {
	return FormatAddress(c.Addr & mask(c.Bits))
}

// GatewayAddress returns the network address with the lowest host bit set
// to 1, the first-usable-host convention. Prefix lengths above 30 are
// rejected: a /31 or /32 has no distinct usable host range.
func (c CIDR) GatewayAddress() (string, error) {
	if c.Bits > 30 {
		return "", fmt.Errorf("%w: no usable host range in /%d", ErrInvalidPrefixLength, c.Bits)
	}
	return FormatAddress(c.Addr&mask(c.Bits) | 1), nil
}

// ParseAddress parses a dotted-decimal IPv4 address into its 32-bit value.
// The address must have exactly four octets, each in [0,255].
func ParseAddress(s string) (uint32, error) {
	parts := strings.SplitN(s, ".", 5)
	if len(parts) != 4 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}

	var v uint32
	for _, part := range parts {
		octet, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
		}
		v = v<<8 | uint32(octet)
	}
	return v, nil
}

// FormatAddress renders a 32-bit value as dotted decimal, most-significant
// octet first.
func FormatAddress(v uint32) string {
	return fmt.Sprintf("%d.%d.%d.%d", byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// ToBinaryString converts a dotted-decimal address into a 32-character
// string of '0'/'1', each octet zero-padded to 8 bits.
func ToBinaryString(address string) (string, error) {
	v, err := ParseAddress(address)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(32)
	for i := 31; i >= 0; i-- {
		b.WriteByte('0' + byte(v>>i&1))
	}
	return b.String(), nil
}

// FromBinaryString converts a 32-character binary string back into dotted
// decimal. Anything other than exactly 32 '0'/'1' characters fails; the
// input is never truncated or padded.
func FromBinaryString(bits string) (string, error) {
	if len(bits) != 32 {
		return "", fmt.Errorf("%w: length %d", ErrInvalidBitString, len(bits))
	}

	var v uint32
	for i := 0; i < 32; i++ {
		switch bits[i] {
		case '0':
			v <<= 1
		case '1':
			v = v<<1 | 1
		default:
			return "", fmt.Errorf("%w: character %q at offset %d", ErrInvalidBitString, bits[i], i)
		}
	}
	return FormatAddress(v), nil
}

// SubnetMask returns the dotted-decimal mask of prefixLength leading ones
// followed by zeros.
func SubnetMask(prefixLength int) (string, error) {
	if prefixLength < 0 || prefixLength > 32 {
		return "", fmt.Errorf("%w: %d", ErrInvalidPrefixLength, prefixLength)
	}
	return FormatAddress(mask(prefixLength)), nil
}

// NetworkAddress masks off the host bits of address, keeping the first
// prefixLength bits.
func NetworkAddress(address string, prefixLength int) (string, error) {
	v, err := ParseAddress(address)
	if err != nil {
		return "", err
	}
	if prefixLength < 0 || prefixLength > 32 {
		return "", fmt.Errorf("%w: %d", ErrInvalidPrefixLength, prefixLength)
	}
	return FormatAddress(v & mask(prefixLength)), nil
}

// GatewayAddress returns the first usable host address of the subnet
// containing address. See CIDR.GatewayAddress for the /31 and /32 policy.
func GatewayAddress(address string, prefixLength int) (string, error) {
	v, err := ParseAddress(address)
	if err != nil {
		return "", err
	}
	if prefixLength < 0 || prefixLength > 32 {
		return "", fmt.Errorf("%w: %d", ErrInvalidPrefixLength, prefixLength)
	}
	return CIDR{Addr: v, Bits: prefixLength}.GatewayAddress()
}

func mask(bits int) uint32 {
	// Over-shifting a uint32 by 32 yields 0 in Go, so bits == 0 falls out
	// naturally.
	return 0xFFFFFFFF << (32 - bits)
}

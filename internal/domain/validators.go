package domain

import (
	"fmt"
	"net/netip"

	"go4.org/netipx"
)

// validateUsableHost checks that the address part of an a.b.c.d/n string is
// a usable host within its own subnet, i.e. neither the network nor the
// broadcast address.
func validateUsableHost(cidr string) error {
	prefix, err := netip.ParsePrefix(cidr)
	if err != nil {
		return fmt.Errorf("invalid cidr")
	}
	return validateIPInSubnet(prefix.Masked(), prefix.Addr())
}

func validateIPInSubnet(p netip.Prefix, ip netip.Addr) error {
	if !p.Contains(ip) {
		return fmt.Errorf("ip not in subnet")
	}

	if ip.Is4() && p.Bits() != 31 { // special case /31 point to point links as those are tehnically both broadcast and network
		r := netipx.RangeOfPrefix(p)
		if r.From() == ip || r.To() == ip {
			return fmt.Errorf("network or broadcast ip")
		}
	}
	return nil
}

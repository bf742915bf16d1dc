package netutils

import (
	"net"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseNetwork parses an IPv4 network. Besides "addr/len" it accepts a
// dotted netmask or hostmask after the slash, and a bare address as a /32.
// Host bits must not be set.
func ParseNetwork(s string) (*net.IPNet, error) {
	parts := strings.Split(s, "/")
	if len(parts) > 2 {
		return nil, errors.Wrapf(ErrInputFailure, "%q is not an IPv4 network", s)
	}

	ip, err := parseIPv4(parts[0])
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse network %q", s)
	}

	mask := net.CIDRMask(net.IPv4len*8, net.IPv4len*8)
	if len(parts) == 2 {
		mask, err = parseMask(parts[1])
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse network %q", s)
		}
	}

	if !ip.Mask(mask).Equal(ip) {
		return nil, errors.Wrapf(ErrInputFailure, "%q has host bits set", s)
	}
	return &net.IPNet{IP: ip, Mask: mask}, nil
}

// parseIPv4 returns the 4-byte form of a dotted-decimal address
func parseIPv4(s string) (net.IP, error) {
	// IPv4-mapped IPv6 text would otherwise pass To4
	if strings.Contains(s, ":") {
		return nil, errors.Wrapf(ErrInputFailure, "%q is not an IPv4 address", s)
	}
	ip := net.ParseIP(s).To4()
	if ip == nil {
		return nil, errors.Wrapf(ErrInputFailure, "%q is not an IPv4 address", s)
	}
	return ip, nil
}

func parseMask(s string) (net.IPMask, error) {
	if isDigits(s) {
		ones, err := strconv.Atoi(s)
		if err != nil || ones > net.IPv4len*8 {
			return nil, errors.Wrapf(ErrInputFailure, "invalid prefix length %q", s)
		}
		return net.CIDRMask(ones, net.IPv4len*8), nil
	}

	ip, err := parseIPv4(s)
	if err != nil {
		return nil, errors.Wrapf(ErrInputFailure, "invalid netmask %q", s)
	}
	mask := net.IPMask(ip)
	if _, bits := mask.Size(); bits != 0 {
		return mask, nil
	}

	// Not a netmask, try it as a hostmask
	inverted := make(net.IPMask, net.IPv4len)
	for i := range mask {
		inverted[i] = ^mask[i]
	}
	if _, bits := inverted.Size(); bits != 0 {
		return inverted, nil
	}
	return nil, errors.Wrapf(ErrInputFailure, "invalid netmask %q", s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

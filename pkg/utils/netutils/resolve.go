package netutils

import (
	"encoding/binary"
	"math/big"
	"net"
	"regexp"
	"strings"

	"github.com/apparentlymart/go-cidr/cidr"
	"github.com/choria-io/go-validator/ipv4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// offsetPattern is a decimal integer with an optional sign. Single
// underscores may group the digits, as in 1_000_000.
var offsetPattern = regexp.MustCompile(`^[+-]?[0-9]+(_[0-9]+)*$`)

// Result is the outcome of ResolveOffset. Found is false when the target
// lies past the last address of the network.
type Result struct {
	Address string
	Found   bool
}

// ResolveOffset returns the address <offset> positions after startAddr in the
// ascending enumeration of network. The offset may be arbitrarily large; the
// target position must not fall below the network address.
func (n *NetImpl) ResolveOffset(network, startAddr, offset string) (Result, error) {
	ipnet, err := ParseNetwork(network)
	if err != nil {
		return Result{}, err
	}

	start, err := parseStartAddr(startAddr)
	if err != nil {
		return Result{}, err
	}
	if !ipnet.Contains(start) {
		return Result{}, errors.Wrapf(ErrInputFailure, "%s is not in %s", startAddr, ipnet)
	}

	k, err := parseOffset(offset)
	if err != nil {
		return Result{}, err
	}

	first, _ := cidr.AddressRange(ipnet)
	base := binary.BigEndian.Uint32(first.To4())
	startIndex := binary.BigEndian.Uint32(start) - base
	target := new(big.Int).Add(new(big.Int).SetUint64(uint64(startIndex)), k)
	if target.Sign() < 0 {
		return Result{}, errors.Wrapf(ErrInputFailure, "index %s moves before the start of %s", k, ipnet)
	}

	count := new(big.Int).SetUint64(cidr.AddressCount(ipnet))
	if target.Cmp(count) >= 0 {
		zap.S().Debugf("position %s is past the end of %s (%s addresses)", target, ipnet, count)
		return Result{}, nil
	}

	// 0 <= target < count <= 2^32, so base+target stays within uint32
	ip := make(net.IP, net.IPv4len)
	binary.BigEndian.PutUint32(ip, base+uint32(target.Uint64()))
	zap.S().Debugf("%s is at position %d of %s, position %s is %s", startAddr, startIndex, ipnet, target, ip)
	return Result{Address: ip.String(), Found: true}, nil
}

func parseOffset(s string) (*big.Int, error) {
	trimmed := strings.TrimSpace(s)
	if !offsetPattern.MatchString(trimmed) {
		return nil, errors.Wrapf(ErrInputFailure, "index %q is not an integer", s)
	}
	k, ok := new(big.Int).SetString(strings.ReplaceAll(trimmed, "_", ""), 10)
	if !ok {
		return nil, errors.Wrapf(ErrInputFailure, "index %q is not an integer", s)
	}
	return k, nil
}

// parseStartAddr only accepts the canonical dotted-decimal spelling, which is
// the only spelling that appears in an enumeration of the network.
func parseStartAddr(s string) (net.IP, error) {
	if ok, err := ipv4.ValidateString(s); !ok {
		return nil, errors.Wrapf(ErrInputFailure, "start address %q: %v", s, err)
	}
	ip, err := parseIPv4(s)
	if err != nil {
		return nil, err
	}
	if ip.String() != s {
		return nil, errors.Wrapf(ErrInputFailure, "start address %q is not in canonical form %s", s, ip)
	}
	return ip, nil
}

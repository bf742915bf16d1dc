package netutils

import (
	"net"

	"github.com/apparentlymart/go-cidr/cidr"
	"github.com/choria-io/go-validator/ipv6"
	"github.com/pkg/errors"

	"github.com/ovn-org/ovn-fake-multinode/pkg/utils/constants"
)

// ErrInputFailure is the cause of every error returned for bad user input.
// Callers only ever need to tell it apart from nothing at all.
var ErrInputFailure = errors.New("invalid input")

type NetImpl struct{}

type NetInterface interface {
	ResolveOffset(string, string, string) (Result, error)
	AddrConv(string, int) (string, error)
	IPType(string) string
	IsIPv6(string) bool
	NetworkInfo(string) (NetInfo, error)
}

// NetInfo describes an IPv4 network as rendered by `advanced info`
type NetInfo struct {
	Network      string
	Netmask      string
	PrefixLength int
	First        string
	Last         string
	Count        uint64
}

func New() NetInterface {
	return &NetImpl{}
}

// AddrConv generates <pos> th IP from hostCIDR
func (n *NetImpl) AddrConv(hostCIDR string, pos int) (string, error) {

	_, ipnet, errCidr := net.ParseCIDR(hostCIDR)
	if errCidr != nil {
		return "", errCidr
	}
	ip, errPos := cidr.Host(ipnet, pos)
	if errPos != nil {
		return "", errPos
	}
	return ip.String(), nil
}

// IPType returns "IP" if s is an IP address, "DNS" otherwise
func (n *NetImpl) IPType(s string) string {
	if net.ParseIP(s) == nil {
		// nil means that IP could not be parsed so it must be a hostname i.e. DNS name
		return constants.IPTypeDNS
	}
	return constants.IPTypeIP
}

// IsIPv6 returns true if s is an IPv6 address
func (n *NetImpl) IsIPv6(s string) bool {
	isIPv6, _ := ipv6.ValidateString(s)
	return isIPv6
}

// NetworkInfo returns the boundaries and size of an IPv4 network
func (n *NetImpl) NetworkInfo(network string) (NetInfo, error) {
	ipnet, err := ParseNetwork(network)
	if err != nil {
		return NetInfo{}, err
	}
	first, last := cidr.AddressRange(ipnet)
	ones, _ := ipnet.Mask.Size()
	return NetInfo{
		Network:      ipnet.String(),
		Netmask:      net.IP(ipnet.Mask).String(),
		PrefixLength: ones,
		First:        first.String(),
		Last:         last.String(),
		Count:        cidr.AddressCount(ipnet),
	}, nil
}

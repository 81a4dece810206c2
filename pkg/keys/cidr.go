package keys

import (
	"fmt"
	"net"
	"strings"
)

// sub-keys of a CIDR: the IP version first, then one sub-key per network bit
const (
	V4   = "v4"
	V6   = "v6"
	Zero = "0"
	One  = "1"
)

// CIDR handles network prefixes such as "10.0.0.0/8" or "2001:db8::/32".
// Keys must be in canonical form; Parse returns it.
//
//	"192.168.0.0/16" -> ["v4" "1" "1" "0" "0" "0" "0" "0" "0" "1" "0" "1" "0" "1" "0" "0" "0"]
func CIDR() Codec[string] {
	return Codec[string]{
		Name:  "cidr",
		Parse: ParseCIDR,
		Format: func(key string) string {
			return key
		},
		Split:  SplitCIDR,
		Concat: ConcatCIDR,
	}
}

// ParseCIDR validates raw and returns its canonical network form,
// e.g. "10.1.2.3/8" becomes "10.0.0.0/8".
func ParseCIDR(raw string) (string, error) {
	_, ipnet, err := net.ParseCIDR(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("invalid CIDR key %q: %w", raw, err)
	}
	return ipnet.String(), nil
}

// SplitCIDR converts a CIDR into its version sub-key followed by its network bits.
// It panics if key is not a valid CIDR: validate keys with ParseCIDR first.
func SplitCIDR(key string) []string {
	_, ipnet, err := net.ParseCIDR(key)
	if err != nil {
		panic("[BUG] SplitCIDR: invalid CIDR " + key + ": validate the input with ParseCIDR before calling SplitCIDR")
	}

	version := V4
	if len(ipnet.Mask) == net.IPv6len {
		version = V6
	}

	bits := CIDRToBits(ipnet)
	subkeys := make([]string, 0, len(bits)+1)
	subkeys = append(subkeys, version)
	for _, bit := range bits {
		if bit == 1 {
			subkeys = append(subkeys, One)
		} else {
			subkeys = append(subkeys, Zero)
		}
	}
	return subkeys
}

// ConcatCIDR rebuilds the canonical CIDR string from SplitCIDR sub-keys.
// An empty sequence, the trie root, yields "".
func ConcatCIDR(subkeys []string) string {
	if len(subkeys) == 0 {
		return ""
	}
	bits := make([]int, 0, len(subkeys)-1)
	for _, subkey := range subkeys[1:] {
		if subkey == One {
			bits = append(bits, 1)
		} else {
			bits = append(bits, 0)
		}
	}
	return BitsToCIDR(bits, subkeys[0] == V6).String()
}

// BitsToCIDR converts a slice of binary bits into the network they prefix.
// The IP is padded with zero bits and the mask covers exactly len(bits) bits,
// so an empty slice gives 0.0.0.0/0 (or ::/0 for IPv6).
func BitsToCIDR(bits []int, ipV6 bool) *net.IPNet {
	maxBytes := net.IPv4len
	if ipV6 {
		maxBytes = net.IPv6len
	}

	ipBytes := make([]byte, 0, maxBytes)
	maskBytes := make([]byte, 0, maxBytes)
	currentBit := 0

	for iByte := 0; iByte < maxBytes; iByte++ {
		var ipByte byte
		var maskByte byte
		for i := 0; i < 8; i++ {
			if currentBit < len(bits) {
				ipByte = ipByte<<1 | byte(bits[currentBit])
				maskByte = maskByte<<1 | 1
				currentBit++
			} else {
				ipByte = ipByte << 1
				maskByte = maskByte << 1
			}
		}
		ipBytes = append(ipBytes, ipByte)
		maskBytes = append(maskBytes, maskByte)
	}

	return &net.IPNet{
		IP:   net.IP(ipBytes),
		Mask: net.IPMask(maskBytes),
	}
}

// CIDRToBits returns the network bits of ipnet up to its mask length.
func CIDRToBits(ipnet *net.IPNet) []int {
	if ipnet == nil {
		panic("[BUG] CIDRToBits: IPNet is nil: validate the input before calling CIDRToBits")
	}

	maskSize, _ := ipnet.Mask.Size()
	ip := ipnet.IP
	if len(ipnet.Mask) == net.IPv4len {
		ip = ip.To4()
	}

	path := make([]int, maskSize)
	for i := range path {
		// most significant bit of each byte first
		path[i] = int(ip[i/8]>>(7-i%8)) & 1
	}
	return path
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

package aspen

import "net/netip"

// ipAddressMatch implements the IpAddress family (§4.4.6): V must be an
// IpAddr; allowed elements are CIDR blocks, or bare addresses widened to a
// host-mask CIDR. All four variants are meaningful here.
func ipAddressMatch(req Request, v PolicyVersion, allowed StringOrList, value SessionValue, vr variant) (bool, error) {
	if value.IsNull() {
		return vr.ifExists(), nil
	}
	addr, ok := value.AsIPAddr()
	if !ok {
		return false, nil
	}

	for _, el := range allowed.Values() {
		substituted, err := plainSubstituteVersioned(el, req, v)
		if err != nil {
			return false, err
		}
		prefix, ok := parseIPNetwork(substituted)
		if !ok {
			continue
		}
		if prefix.Contains(addr) != vr.negated() {
			return true, nil
		}
	}
	return false, nil
}

// parseIPNetwork parses s as a CIDR block, or as a bare address widened to
// its host-mask CIDR (e.g. "10.0.0.1" -> "10.0.0.1/32").
func parseIPNetwork(s string) (netip.Prefix, bool) {
	if p, err := netip.ParsePrefix(s); err == nil {
		return p, true
	}
	if addr, err := netip.ParseAddr(s); err == nil {
		return netip.PrefixFrom(addr, addr.BitLen()), true
	}
	return netip.Prefix{}, false
}

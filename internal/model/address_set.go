package model

import "strings"

// AddressSet is a set of lowercase contract addresses.
type AddressSet map[string]struct{}

func NewAddressSet(addresses ...string) AddressSet {
	set := make(AddressSet, len(addresses))
	for _, addr := range addresses {
		set[strings.ToLower(addr)] = struct{}{}
	}
	return set
}

func (s AddressSet) Contains(address string) bool {
	_, ok := s[strings.ToLower(address)]
	return ok
}

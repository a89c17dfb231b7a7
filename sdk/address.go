package sdk

import "strings"

type AddressDomain string

const (
	AddressDomainUser     AddressDomain = "user"
	AddressDomainContract AddressDomain = "contract"
	AddressDomainSystem   AddressDomain = "system"
)

type AddressType string

const (
	AddressTypeStacks  AddressType = "stacks"
	AddressTypeEVM     AddressType = "evm"
	AddressTypeKey     AddressType = "key"
	AddressTypeHive    AddressType = "hive"
	AddressTypeSystem  AddressType = "system"
	AddressTypeUnknown AddressType = "unknown"
)

// Address is an opaque caller identity. Ledgers only ever compare it for equality.
type Address string

// String returns the literal representation (like hive:alice) of the address.
func (a Address) String() string {
	return string(a)
}

// Domain checks the prefix to tell user, contract and system identities apart.
// Example payload: sdk.Address("contract:charity").Domain()
func (a Address) Domain() AddressDomain {
	if strings.HasPrefix(a.String(), "system:") {
		return AddressDomainSystem
	}
	if strings.HasPrefix(a.String(), "contract:") {
		return AddressDomainContract
	}
	return AddressDomainUser
}

// Type inspects the prefix to categorize the address (stacks, evm, hive,...).
// Stacks principals are recognised by their SP (mainnet) or ST (testnet) version prefix.
func (a Address) Type() AddressType {
	s := a.String()
	switch {
	case strings.HasPrefix(s, "did:pkh:eip155"):
		return AddressTypeEVM
	case strings.HasPrefix(s, "did:key:"):
		return AddressTypeKey
	case strings.HasPrefix(s, "hive:"):
		return AddressTypeHive
	case strings.HasPrefix(s, "system:"):
		return AddressTypeSystem
	case len(s) > 2 && (strings.HasPrefix(s, "ST") || strings.HasPrefix(s, "SP")):
		return AddressTypeStacks
	default:
		return AddressTypeUnknown
	}
}

// IsValid returns false if the address type detection failed, used as a light sanity check.
func (a Address) IsValid() bool {
	return a.Type() != AddressTypeUnknown
}

package contract

import "charity_ledger/sdk"

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// packU64LE appends the encoded number to dst and returns the new slice.
func packU64LE(x uint64, dst []byte) []byte {
	return append(dst,
		byte(x),
		byte(x>>8),
		byte(x>>16),
		byte(x>>24),
		byte(x>>32),
		byte(x>>40),
		byte(x>>48),
		byte(x>>56),
	)
}

// IDKey builds prefix|id, used for entities keyed by a sequential id.
func IDKey(prefix byte, id uint64) string {
	var buf [9]byte
	buf[0] = prefix
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// AddressKey builds prefix|address for per-identity values like donor totals.
func AddressKey(prefix byte, addr sdk.Address) string {
	addrStr := addr.String()
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, prefix)
	buf = append(buf, addrStr...)
	return string(buf)
}

// AddressIDKey builds prefix|id|address. The id goes first because it has a fixed width,
// which keeps two (address, id) pairs from ever colliding.
func AddressIDKey(prefix byte, addr sdk.Address, id uint64) string {
	addrStr := addr.String()
	buf := make([]byte, 0, 1+8+len(addrStr))
	buf = append(buf, prefix)
	buf = packU64LE(id, buf)
	buf = append(buf, addrStr...)
	return string(buf)
}

package donations

import (
	"charity_ledger/contract"
	"charity_ledger/sdk"
)

const (
	// TotalDonationsKey holds the running sum of every donation amount.
	TotalDonationsKey = "total:don"
	// DonationsCount counts donations across all donors.
	DonationsCount = "count:don"
)

const (
	// kDonorTotal tracks the cumulative amount per donor.
	kDonorTotal byte = 0x01
	// kDonorCount is the per-donor counter handing out donation indexes.
	kDonorCount byte = 0x02
	// kDonationRecord stores encoded DonationRecord blobs keyed by index and donor.
	kDonationRecord byte = 0x03
)

func donorTotalKey(donor sdk.Address) string {
	return contract.AddressKey(kDonorTotal, donor)
}

func donorCountKey(donor sdk.Address) string {
	return contract.AddressKey(kDonorCount, donor)
}

func donationRecordKey(donor sdk.Address, id uint64) string {
	return contract.AddressIDKey(kDonationRecord, donor, id)
}

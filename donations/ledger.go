// Package donations records donations against the caller identity and keeps
// per-donor and global totals in contract state.
package donations

import (
	"charity_ledger/contract"
	"charity_ledger/sdk"
)

// Ledger is the donation contract. All state lives in the host kv store, so two
// Ledgers on the same host see the same donations.
type Ledger struct {
	host sdk.SDK
}

// New binds a ledger to host.
func New(host sdk.SDK) *Ledger {
	return &Ledger{host: host}
}

// Donate credits amount to the current sender and stores the donation record.
// Amount and note are taken as given, including zero or negative amounts.
// The returned index comes from the sender's own donation counter, so each donor sees
// 0, 1, 2, ... regardless of other donors. It is not a global donation id; the global
// count is kept separately and read with GetDonationTotalCount.
func (l *Ledger) Donate(amount contract.Amount, note string) contract.Result {
	env := l.host.GetEnv()
	donor := env.Sender.Address

	donationID := contract.NextID(l.host, donorCountKey(donor))
	contract.NextID(l.host, DonationsCount)

	contract.AddAmount(l.host, TotalDonationsKey, amount)
	contract.AddAmount(l.host, donorTotalKey(donor), amount)

	contract.SaveObject(l.host, donationRecordKey(donor, donationID), DonationRecord{
		Amount:    amount,
		Timestamp: env.BlockHeight,
		Note:      note,
	})

	emitDonatedEvent(l.host, donationID, donor, amount)
	return contract.Ok(donationID)
}

// GetTotalDonations returns the sum of every donation recorded so far.
func (l *Ledger) GetTotalDonations() contract.Amount {
	return contract.GetAmount(l.host, TotalDonationsKey)
}

// GetDonorTotal returns the cumulative amount donated by donor, 0 when unknown.
func (l *Ledger) GetDonorTotal(donor sdk.Address) contract.Amount {
	return contract.GetAmount(l.host, donorTotalKey(donor))
}

// GetDonationDetails looks up a single donation by donor and index.
func (l *Ledger) GetDonationDetails(donor sdk.Address, donationID uint64) (*DonationRecord, bool) {
	var rec DonationRecord
	if !contract.LoadObject(l.host, donationRecordKey(donor, donationID), &rec) {
		return nil, false
	}
	return &rec, true
}

// GetDonationCount is the number of donations donor has made, which is also the
// index their next donation will get.
func (l *Ledger) GetDonationCount(donor sdk.Address) uint64 {
	return contract.GetCount(l.host, donorCountKey(donor))
}

// GetDonationTotalCount counts donations across all donors.
func (l *Ledger) GetDonationTotalCount() uint64 {
	return contract.GetCount(l.host, DonationsCount)
}

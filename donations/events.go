package donations

import (
	"fmt"

	"charity_ledger/contract"
	"charity_ledger/sdk"
)

// emitDonatedEvent leaves a "dn" line so indexers can rebuild totals from logs alone.
func emitDonatedEvent(host sdk.SDK, donationID uint64, donor sdk.Address, amount contract.Amount) {
	host.Log(fmt.Sprintf(
		"dn|id:%d|by:%s|am:%d",
		donationID,
		donor.String(),
		amount,
	))
}

package projects

import (
	"fmt"

	"charity_ledger/contract"
	"charity_ledger/sdk"
)

// emitInitEvent records who owns the ledger once the config is written.
func emitInitEvent(host sdk.SDK, owner sdk.Address) {
	host.Log(fmt.Sprintf("init|owner:%s", owner.String()))
}

// emitProjectCreatedEvent gives explorers a neat ping without scanning full storage diffs.
func emitProjectCreatedEvent(host sdk.SDK, projectID uint64, createdBy sdk.Address) {
	host.Log(fmt.Sprintf(
		"pc|id:%d|by:%s",
		projectID,
		createdBy.String(),
	))
}

// emitFundsAllocated carries the new project total so the invariant can be replayed from logs.
func emitFundsAllocated(host sdk.SDK, allocationID uint64, projectID uint64, amount contract.Amount, total contract.Amount) {
	host.Log(fmt.Sprintf(
		"af|id:%d|pId:%d|am:%d|tot:%d",
		allocationID,
		projectID,
		amount,
		total,
	))
}

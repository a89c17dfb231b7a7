// Package projects is the owner-run fund allocation ledger: the owner creates named
// projects and allocates funds to them, and anybody can read them back.
package projects

import (
	"charity_ledger/contract"
	"charity_ledger/sdk"
)

// Ledger is the project allocation contract bound to a host.
type Ledger struct {
	host sdk.SDK
}

// New binds a ledger to host and seeds owner as the contract owner unless the
// host state already carries one.
func New(host sdk.SDK, owner sdk.Address) *Ledger {
	l := &Ledger{host: host}
	l.Init(owner)
	return l
}

// Init writes the owner config if none exists yet and reports whether it did.
// An existing owner is never replaced.
func (l *Ledger) Init(owner sdk.Address) bool {
	if isContractInitialized(l.host) {
		return false
	}
	saveContractConfig(l.host, &ContractConfig{Owner: owner})
	emitInitEvent(l.host, owner)
	return true
}

// Owner returns the configured owner, empty when the ledger was never initialized.
func (l *Ledger) Owner() sdk.Address {
	if owner := getContractOwner(l.host); owner != nil {
		return *owner
	}
	return ""
}

// CreateProject stores a new active project with zero totals. Only the owner may call it.
func (l *Ledger) CreateProject(name, description string) contract.Result {
	sender := l.host.GetEnv().Sender.Address
	if !isContractOwner(l.host, sender) {
		return contract.Fail(contract.ErrCodeUnauthorized)
	}

	id := contract.NextID(l.host, ProjectsCount)
	saveProject(l.host, &Project{
		ID:          id,
		Name:        name,
		Description: description,
		Active:      true,
	})

	emitProjectCreatedEvent(l.host, id, sender)
	return contract.Ok(id)
}

// AllocateFunds adds amount to a project's total and records the allocation.
// The owner check runs before the project lookup, so a stranger probing ids only ever
// sees 403. Nothing is written on failure.
func (l *Ledger) AllocateFunds(projectID uint64, amount contract.Amount) contract.Result {
	env := l.host.GetEnv()
	if !isContractOwner(l.host, env.Sender.Address) {
		return contract.Fail(contract.ErrCodeUnauthorized)
	}

	prj, ok := loadProject(l.host, projectID)
	if !ok {
		return contract.Fail(contract.ErrCodeNotFound)
	}

	id := contract.NextID(l.host, AllocationsCount)
	prj.TotalAllocated += amount
	saveProject(l.host, prj)
	saveAllocation(l.host, &Allocation{
		ID:        id,
		ProjectID: projectID,
		Amount:    amount,
		Timestamp: env.BlockHeight,
	})

	emitFundsAllocated(l.host, id, projectID, amount, prj.TotalAllocated)
	return contract.Ok(id)
}

// GetProject returns the project with the given id.
func (l *Ledger) GetProject(projectID uint64) (*Project, bool) {
	return loadProject(l.host, projectID)
}

// GetAllocation returns the allocation with the given id.
func (l *Ledger) GetAllocation(allocationID uint64) (*Allocation, bool) {
	return loadAllocation(l.host, allocationID)
}

// GetProjectCount is the number of projects created so far.
func (l *Ledger) GetProjectCount() uint64 {
	return contract.GetCount(l.host, ProjectsCount)
}

// GetAllocationCount is the number of allocations recorded so far.
func (l *Ledger) GetAllocationCount() uint64 {
	return contract.GetCount(l.host, AllocationsCount)
}

// ListProjects walks the id range and returns every project in creation order.
func (l *Ledger) ListProjects() []*Project {
	n := l.GetProjectCount()
	out := make([]*Project, 0, n)
	for id := uint64(0); id < n; id++ {
		if prj, ok := loadProject(l.host, id); ok {
			out = append(out, prj)
		}
	}
	return out
}

package projects

import "charity_ledger/contract"

const (
	// ContractConfigKey stores the encoded ContractConfig (owner).
	ContractConfigKey = "cfg"
	// ProjectsCount holds an integer counter for projects (used for generating IDs).
	ProjectsCount = "count:proj"
	// AllocationsCount holds an integer counter for allocations (used for generating IDs).
	AllocationsCount = "count:alloc"
)

const (
	// kProject stores serialized Project blobs.
	kProject byte = 0x10
	// kAllocation stores serialized Allocation blobs.
	kAllocation byte = 0x11
)

func projectKey(id uint64) string {
	return contract.IDKey(kProject, id)
}

func allocationKey(id uint64) string {
	return contract.IDKey(kAllocation, id)
}

package projects

import (
	"charity_ledger/contract"
	"charity_ledger/sdk"
)

func saveProject(host sdk.SDK, prj *Project) {
	contract.SaveObject(host, projectKey(prj.ID), *prj)
}

func loadProject(host sdk.SDK, id uint64) (*Project, bool) {
	var prj Project
	if !contract.LoadObject(host, projectKey(id), &prj) {
		return nil, false
	}
	return &prj, true
}

func saveAllocation(host sdk.SDK, a *Allocation) {
	contract.SaveObject(host, allocationKey(a.ID), *a)
}

func loadAllocation(host sdk.SDK, id uint64) (*Allocation, bool) {
	var a Allocation
	if !contract.LoadObject(host, allocationKey(id), &a) {
		return nil, false
	}
	return &a, true
}

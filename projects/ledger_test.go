package projects_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charity_ledger/contract"
	"charity_ledger/projects"
)

// TestCreateProject checks the first project gets id 0 and starts active with zero totals.
func TestCreateProject(t *testing.T) {
	l, _ := newTestLedger(t)

	res := l.CreateProject("Clean Water Initiative", "Providing clean water to rural communities")

	assert.True(t, res.Success)
	assert.Equal(t, uint64(0), res.Value)

	prj, ok := l.GetProject(0)
	require.True(t, ok)
	assert.Equal(t, "Clean Water Initiative", prj.Name)
	assert.Equal(t, "Providing clean water to rural communities", prj.Description)
	assert.True(t, prj.Active)
	assert.Equal(t, contract.Amount(0), prj.TotalAllocated)
	assert.Equal(t, contract.Amount(0), prj.TotalSpent)
}

// TestProjectTextKeepsRawBytes checks name and description survive storage byte for byte.
func TestProjectTextKeepsRawBytes(t *testing.T) {
	l, _ := newTestLedger(t)
	name := "Water \xfe\xff"
	desc := "line one\nline \"two\" \x80"

	res := l.CreateProject(name, desc)
	require.True(t, res.Success)

	prj, ok := l.GetProject(res.Value)
	require.True(t, ok)
	assert.Equal(t, []byte(name), []byte(prj.Name))
	assert.Equal(t, []byte(desc), []byte(prj.Description))
}

// TestAllocateFunds checks the project total and the allocation record after one allocation.
func TestAllocateFunds(t *testing.T) {
	l, _ := newTestLedger(t)
	projectID := createDefaultProject(t, l)

	res := l.AllocateFunds(projectID, 5000)

	assert.True(t, res.Success)
	assert.Equal(t, uint64(0), res.Value)

	prj, ok := l.GetProject(projectID)
	require.True(t, ok)
	assert.Equal(t, contract.Amount(5000), prj.TotalAllocated)

	alloc, ok := l.GetAllocation(0)
	require.True(t, ok)
	assert.Equal(t, uint64(0), alloc.ProjectID)
	assert.Equal(t, contract.Amount(5000), alloc.Amount)
	assert.Equal(t, blockHeight, alloc.Timestamp)
}

// TestAllocateFundsMissingProject checks a 404 and that nothing was written.
func TestAllocateFundsMissingProject(t *testing.T) {
	l, host := newTestLedger(t)
	before := host.Snapshot()

	res := l.AllocateFunds(999, 1000)

	assert.False(t, res.Success)
	assert.Equal(t, contract.ErrCodeNotFound, res.Error)
	assert.ErrorIs(t, res.Err(), contract.ErrNotFound)
	assert.Equal(t, before, host.Snapshot())
	assert.Equal(t, uint64(0), l.GetAllocationCount())
}

// TestNonOwnerIsRejected checks both state-changing calls fail with 403 for strangers.
func TestNonOwnerIsRejected(t *testing.T) {
	l, host := newTestLedger(t)
	projectID := createDefaultProject(t, l)

	host.SetSender(outsider)
	before := host.Snapshot()

	create := l.CreateProject("Hijack", "not mine")
	assert.False(t, create.Success)
	assert.Equal(t, contract.ErrCodeUnauthorized, create.Error)
	assert.ErrorIs(t, create.Err(), contract.ErrUnauthorized)

	alloc := l.AllocateFunds(projectID, 10)
	assert.False(t, alloc.Success)
	assert.Equal(t, contract.ErrCodeUnauthorized, alloc.Error)

	// 403 wins over 404 for unknown projects too.
	missing := l.AllocateFunds(999, 10)
	assert.Equal(t, contract.ErrCodeUnauthorized, missing.Error)

	assert.Equal(t, before, host.Snapshot())
	assert.Equal(t, uint64(1), l.GetProjectCount())
}

// TestTotalAllocatedMatchesAllocations spreads allocations over projects and sums them back up.
func TestTotalAllocatedMatchesAllocations(t *testing.T) {
	l, _ := newTestLedger(t)
	a := createDefaultProject(t, l)
	b := createDefaultProject(t, l)
	require.Equal(t, uint64(1), b)

	plan := []struct {
		project uint64
		amount  int64
	}{
		{a, 100}, {b, 250}, {a, 75}, {a, 0}, {b, 1000},
	}
	for i, step := range plan {
		assert.Equal(t, uint64(i), allocate(t, l, step.project, step.amount))
	}

	sums := map[uint64]contract.Amount{}
	for id := uint64(0); id < l.GetAllocationCount(); id++ {
		alloc, ok := l.GetAllocation(id)
		require.True(t, ok)
		assert.Equal(t, id, alloc.ID)
		sums[alloc.ProjectID] += alloc.Amount
	}

	for _, prj := range l.ListProjects() {
		assert.Equal(t, sums[prj.ID], prj.TotalAllocated, "project %d", prj.ID)
	}
	assert.Equal(t, contract.Amount(175), sums[a])
	assert.Equal(t, contract.Amount(1250), sums[b])
}

// TestListProjects returns projects in id order.
func TestListProjects(t *testing.T) {
	l, _ := newTestLedger(t)
	assert.Empty(t, l.ListProjects())

	l.CreateProject("one", "")
	l.CreateProject("two", "")
	l.CreateProject("three", "")

	list := l.ListProjects()
	require.Len(t, list, 3)
	for i, name := range []string{"one", "two", "three"} {
		assert.Equal(t, uint64(i), list[i].ID)
		assert.Equal(t, name, list[i].Name)
	}
}

// TestOwnerIsNotReplaced makes sure binding a second ledger keeps the stored owner.
func TestOwnerIsNotReplaced(t *testing.T) {
	l, host := newTestLedger(t)
	assert.Equal(t, ownerAddress, l.Owner())

	again := projects.New(host, outsider)
	assert.Equal(t, ownerAddress, again.Owner())
	assert.False(t, again.Init(outsider))

	host.SetSender(outsider)
	assert.False(t, again.CreateProject("x", "y").Success)
}

// TestUninitializedLedgerRejectsEveryone covers state wiped after construction.
func TestUninitializedLedgerRejectsEveryone(t *testing.T) {
	l, host := newTestLedger(t)
	host.Reset()

	assert.Equal(t, contract.ErrCodeUnauthorized, l.CreateProject("x", "y").Error)
	assert.True(t, l.Init(ownerAddress))
	assert.True(t, l.CreateProject("x", "y").Success)
}

// TestLookupsMiss covers the missing-entity answers.
func TestLookupsMiss(t *testing.T) {
	l, _ := newTestLedger(t)

	_, ok := l.GetProject(0)
	assert.False(t, ok)
	_, ok = l.GetAllocation(0)
	assert.False(t, ok)
}

// TestTotalAllocatedWrapsLikeInt64 pins overflow behaviour: totals follow int64
// arithmetic, so the total still equals the int64 sum of its allocations.
func TestTotalAllocatedWrapsLikeInt64(t *testing.T) {
	l, _ := newTestLedger(t)
	projectID := createDefaultProject(t, l)

	allocate(t, l, projectID, math.MaxInt64)
	allocate(t, l, projectID, 1)

	prj, ok := l.GetProject(projectID)
	require.True(t, ok)
	assert.Equal(t, contract.Amount(math.MinInt64), prj.TotalAllocated)

	var sum contract.Amount
	for id := uint64(0); id < l.GetAllocationCount(); id++ {
		alloc, ok := l.GetAllocation(id)
		require.True(t, ok)
		sum += alloc.Amount
	}
	assert.Equal(t, sum, prj.TotalAllocated)
}

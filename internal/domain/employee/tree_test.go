package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

// Three level hierarchy: one head, two leads, one staff member under each.
func treeFixture() []Employee {
	return []Employee{
		{ID: "0190a001-0000-7000-8000-000000000001", Name: "Budi Santoso", Position: "Kepala Dinas", Email: "budi@worklog.id"},
		{ID: "0190a001-0000-7000-8000-000000000002", Name: "Ahmad Wijaya", Position: "Kepala Bidang", Email: "ahmad@worklog.id", SupervisorID: strPtr("0190a001-0000-7000-8000-000000000001")},
		{ID: "0190a001-0000-7000-8000-000000000003", Name: "Siti Rahayu", Position: "Kepala Bidang", Email: "siti@worklog.id", SupervisorID: strPtr("0190a001-0000-7000-8000-000000000001")},
		{ID: "0190a001-0000-7000-8000-000000000004", Name: "Dedi Kurniawan", Position: "Staf", Email: "dedi@worklog.id", SupervisorID: strPtr("0190a001-0000-7000-8000-000000000002")},
		{ID: "0190a001-0000-7000-8000-000000000005", Name: "Rina Permata", Position: "Staf", Email: "rina@worklog.id", SupervisorID: strPtr("0190a001-0000-7000-8000-000000000003")},
	}
}

func TestBuildOrganizationTree(t *testing.T) {
	tree := BuildOrganizationTree(treeFixture())
	require.NotNil(t, tree)

	assert.Equal(t, "Budi Santoso", tree.Name)
	assert.Len(t, tree.Children, 2)
	assert.Equal(t, 3, tree.Depth())
	assert.Equal(t, 2, tree.LeafCount())

	// Children are ordered by name.
	assert.Equal(t, "Ahmad Wijaya", tree.Children[0].Name)
	assert.Equal(t, "Siti Rahayu", tree.Children[1].Name)

	require.Len(t, tree.Children[0].Children, 1)
	assert.Equal(t, "Dedi Kurniawan", tree.Children[0].Children[0].Name)
}

func TestBuildOrganizationTreeEmpty(t *testing.T) {
	assert.Nil(t, BuildOrganizationTree(nil))
	assert.Nil(t, BuildOrganizationTree([]Employee{}))
}

func TestBuildOrganizationTreeSingleEmployee(t *testing.T) {
	tree := BuildOrganizationTree([]Employee{
		{ID: "0190a001-0000-7000-8000-00000000000a", Name: "Solo", Position: "Director", Email: "solo@worklog.id"},
	})
	require.NotNil(t, tree)
	assert.Equal(t, "Solo", tree.Name)
	assert.Empty(t, tree.Children)
	assert.Equal(t, 1, tree.Depth())
	assert.Equal(t, 1, tree.LeafCount())
}

func TestBuildOrganizationTreeMultipleRoots(t *testing.T) {
	employees := []Employee{
		{ID: "0190a001-0000-7000-8000-000000000009", Name: "Later Root", Position: "Head", Email: "later@worklog.id"},
		{ID: "0190a001-0000-7000-8000-000000000001", Name: "First Root", Position: "Head", Email: "first@worklog.id"},
		{ID: "0190a001-0000-7000-8000-000000000005", Name: "Child", Position: "Staf", Email: "child@worklog.id", SupervisorID: strPtr("0190a001-0000-7000-8000-000000000001")},
	}

	// The employee with the lowest id wins, regardless of input order.
	tree := BuildOrganizationTree(employees)
	require.NotNil(t, tree)
	assert.Equal(t, "First Root", tree.Name)
	assert.Len(t, tree.Children, 1)
}

func TestBuildSubtree(t *testing.T) {
	employees := treeFixture()

	subtree := BuildSubtree(employees, "0190a001-0000-7000-8000-000000000002")
	require.NotNil(t, subtree)
	assert.Equal(t, "Ahmad Wijaya", subtree.Name)
	assert.Equal(t, 2, subtree.Depth())
	assert.Equal(t, 1, subtree.LeafCount())

	assert.Nil(t, BuildSubtree(employees, "missing-id"))
}

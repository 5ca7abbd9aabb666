package employee

import "sort"

// OrgNode is one node of the nested organization structure.
type OrgNode struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Position string     `json:"position"`
	Email    string     `json:"email"`
	Children []*OrgNode `json:"children"`
}

// BuildOrganizationTree builds the nested organization structure from a flat
// employee list. Children are grouped through a supervisor index built once,
// so construction is linear in the number of employees.
//
// When more than one employee has no supervisor, the one with the lowest id is
// the canonical root. IDs are UUIDv7, so the lowest id is also the earliest
// created employee and the choice is stable across calls.
//
// Returns nil when the list is empty.
func BuildOrganizationTree(employees []Employee) *OrgNode {
	var roots []Employee
	for _, e := range employees {
		if e.SupervisorID == nil {
			roots = append(roots, e)
		}
	}
	if len(roots) == 0 {
		return nil
	}

	sort.Slice(roots, func(i, j int) bool { return roots[i].ID < roots[j].ID })

	return buildSubtree(roots[0], childIndex(employees))
}

// BuildSubtree builds the nested structure rooted at rootID, or nil when the
// root is not in the list.
func BuildSubtree(employees []Employee, rootID string) *OrgNode {
	for _, e := range employees {
		if e.ID == rootID {
			return buildSubtree(e, childIndex(employees))
		}
	}
	return nil
}

// childIndex maps supervisor id to that supervisor's direct subordinates,
// each group sorted by name for stable output.
func childIndex(employees []Employee) map[string][]Employee {
	index := make(map[string][]Employee, len(employees))
	for _, e := range employees {
		if e.SupervisorID != nil {
			index[*e.SupervisorID] = append(index[*e.SupervisorID], e)
		}
	}
	for id := range index {
		children := index[id]
		sort.Slice(children, func(i, j int) bool { return children[i].Name < children[j].Name })
	}
	return index
}

func buildSubtree(root Employee, index map[string][]Employee) *OrgNode {
	node := &OrgNode{
		ID:       root.ID,
		Name:     root.Name,
		Position: root.Position,
		Email:    root.Email,
		Children: []*OrgNode{},
	}
	for _, child := range index[root.ID] {
		node.Children = append(node.Children, buildSubtree(child, index))
	}
	return node
}

// Depth returns the number of levels in the tree rooted at n.
func (n *OrgNode) Depth() int {
	if n == nil {
		return 0
	}
	max := 0
	for _, child := range n.Children {
		if d := child.Depth(); d > max {
			max = d
		}
	}
	return max + 1
}

// LeafCount returns the number of nodes without children.
func (n *OrgNode) LeafCount() int {
	if n == nil {
		return 0
	}
	if len(n.Children) == 0 {
		return 1
	}
	total := 0
	for _, child := range n.Children {
		total += child.LeafCount()
	}
	return total
}

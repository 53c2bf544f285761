package planner

import "github.com/codeready-toolchain/maestro/pkg/models"

// orderSteps validates the dependency graph and returns the drafts in
// topological order. Ties break first-seen, so the model's own ordering is
// preserved where dependencies allow. Unknown dependency names and cycles
// are structure parse errors.
func orderSteps(drafts []models.StepDraft) ([]models.StepDraft, error) {
	byName := make(map[string]int, len(drafts))
	for i, d := range drafts {
		if d.Name == "" {
			return nil, &ParseError{Phase: PhaseStructure, Detail: "step without a name"}
		}
		if _, dup := byName[d.Name]; dup {
			return nil, &ParseError{Phase: PhaseStructure, Detail: "duplicate step name " + d.Name}
		}
		byName[d.Name] = i
	}

	indegree := make([]int, len(drafts))
	dependents := make([][]int, len(drafts))
	for i, d := range drafts {
		for _, dep := range d.DependsOn {
			j, ok := byName[dep]
			if !ok {
				return nil, &ParseError{Phase: PhaseStructure, Detail: "step " + d.Name + " depends on unknown step " + dep}
			}
			if j == i {
				return nil, &ParseError{Phase: PhaseStructure, Detail: "step " + d.Name + " depends on itself"}
			}
			indegree[i]++
			dependents[j] = append(dependents[j], i)
		}
	}

	// Kahn's algorithm; the queue is kept in first-seen order.
	var queue []int
	for i := range drafts {
		if indegree[i] == 0 {
			queue = append(queue, i)
		}
	}

	ordered := make([]models.StepDraft, 0, len(drafts))
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		ordered = append(ordered, drafts[i])
		for _, j := range dependents[i] {
			indegree[j]--
			if indegree[j] == 0 {
				queue = append(queue, j)
			}
		}
	}
	if len(ordered) != len(drafts) {
		return nil, &ParseError{Phase: PhaseStructure, Detail: "dependency graph contains a cycle"}
	}
	return ordered, nil
}

// criticalPathLength is the longest dependency chain through ordered
// drafts, in steps. A fully parallel plan has length 1.
func criticalPathLength(ordered []models.StepDraft) int {
	if len(ordered) == 0 {
		return 0
	}
	depth := make(map[string]int, len(ordered))
	longest := 1
	for _, d := range ordered {
		best := 0
		for _, dep := range d.DependsOn {
			if depth[dep] > best {
				best = depth[dep]
			}
		}
		depth[d.Name] = best + 1
		if depth[d.Name] > longest {
			longest = depth[d.Name]
		}
	}
	return longest
}

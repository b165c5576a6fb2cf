package registry

// order sorts definitions topologically (Kahn). Among ready definitions
// the earliest registered goes first, so independent values keep their
// registration order. Callers hold r.mu.
func (r *Registry) order() ([]int, error) {
	n := len(r.defs)
	indegree := make([]int, n)
	consumers := make([][]int, n)

	for i, def := range r.defs {
		for _, dep := range def.Deps {
			j, ok := r.index[dep]
			if !ok {
				return nil, &UnknownNameError{
					Name:       dep,
					Requester:  def.Name,
					Reason:     "not registered",
					Suggestion: r.suggest(dep),
				}
			}
			if j == i {
				return nil, &CyclicDependencyError{Cycle: []string{def.Name, def.Name}}
			}
			indegree[i]++
			consumers[j] = append(consumers[j], i)
		}
	}

	done := make([]bool, n)
	order := make([]int, 0, n)
	for len(order) < n {
		next := -1
		for i := 0; i < n; i++ {
			if !done[i] && indegree[i] == 0 {
				next = i
				break
			}
		}
		if next < 0 {
			return nil, &CyclicDependencyError{Cycle: r.findCycle(done)}
		}
		done[next] = true
		order = append(order, next)
		for _, c := range consumers[next] {
			indegree[c]--
		}
	}
	return order, nil
}

// findCycle walks dependencies among the unsorted definitions until a
// name repeats, and returns the loop it closes.
func (r *Registry) findCycle(done []bool) []string {
	start := -1
	for i := range r.defs {
		if !done[i] {
			start = i
			break
		}
	}
	if start < 0 {
		return nil
	}

	seen := map[int]int{}
	var path []int
	cur := start
	for {
		if at, ok := seen[cur]; ok {
			names := make([]string, 0, len(path)-at+1)
			for _, i := range path[at:] {
				names = append(names, r.defs[i].Name)
			}
			return append(names, r.defs[cur].Name)
		}
		seen[cur] = len(path)
		path = append(path, cur)

		for _, dep := range r.defs[cur].Deps {
			if j := r.index[dep]; !done[j] {
				cur = j
				break
			}
		}
	}
}

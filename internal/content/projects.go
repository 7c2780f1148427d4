package content

import "fmt"

// Projects returns the showcased projects in display order.
func Projects() []Project {
	return []Project{
		{
			Title:       "NEURAL",
			Tags:        []string{"Python", "C++"},
			Description: "Optimized inference engine for low-latency neural processing on the edge.",
		},
		{
			Title:       "QUBIT",
			Tags:        []string{"Go", "React"},
			Description: "Visual debugger for quantum circuit execution and state monitoring.",
		},
		{
			Title:       "SHARD",
			Tags:        []string{"Rust", "Wasm"},
			Description: "Distributed file storage protocol with sub-millisecond propagation.",
		},
		{
			Title:       "KINETIC",
			Tags:        []string{"Swift", "ThreeJS"},
			Description: "Motion-sensitive architectural visualization using volumetric rendering.",
		},
	}
}

// NodeLabel is the corner label of the project at zero-based index i.
func NodeLabel(i int) string {
	return fmt.Sprintf("%03d_NODE", i+1)
}

// Section header copy.
const (
	WorkKicker  = "Stack // 2026"
	WorkTitle   = "Verified Deployments"
	WorkStatus  = "Status: Online"
	LaunchLabel = "Execute_Launch"
)

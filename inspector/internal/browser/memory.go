package browser

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/process"
)

// residentMemory sums RSS over a process and all of its descendants.
// Chrome keeps renderers and the GPU process as children of the browser.
func residentMemory(ctx context.Context, pid int) (uint64, error) {
	root, err := process.NewProcessWithContext(ctx, int32(pid))
	if err != nil {
		return 0, fmt.Errorf("browser: process %d: %w", pid, err)
	}

	var total uint64
	seen := map[int32]bool{}
	queue := []*process.Process{root}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if seen[p.Pid] {
			continue
		}
		seen[p.Pid] = true

		mem, err := p.MemoryInfoWithContext(ctx)
		if err != nil {
			// Renderers come and go between listing and reading.
			continue
		}
		total += mem.RSS

		children, err := p.ChildrenWithContext(ctx)
		if err == nil {
			queue = append(queue, children...)
		}
	}
	if len(seen) == 1 && total == 0 {
		return 0, fmt.Errorf("browser: no memory info for %d", pid)
	}
	return total, nil
}

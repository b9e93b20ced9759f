/*
© 2026–present nstree contributors
ISC License
*/

package main

import (
	"fmt"
	"os"
	"time"

	gosysinfo "github.com/elastic/go-sysinfo"
	"github.com/elastic/go-sysinfo/types"

	"github.com/relleum/nstree/nstree"
)

// printDiag reports process start time and resident memory alongside the
// engine's node count, grounded on the teacher's parlp.ProcessStartTime
// (SPEC_FULL.md, DOMAIN STACK: go-sysinfo). tr may be nil (the -diag flag
// can be used before any tree exists).
func printDiag(tr *nstree.Tree) {
	proc, err := gosysinfo.Self()
	if err != nil {
		fmt.Fprintf(os.Stderr, "nstree: go-sysinfo.Self: %v\n", err)
		return
	}
	info, err := proc.Info()
	if err != nil {
		fmt.Fprintf(os.Stderr, "nstree: go-sysinfo.Info: %v\n", err)
		return
	}

	fmt.Printf("pid: %d\n", info.PID)
	fmt.Printf("started: %s\n", info.StartTime.Local().Format(time.RFC3339))
	fmt.Printf("uptime: %s\n", time.Since(info.StartTime).Round(time.Second))

	if mp, ok := proc.(types.MemoryInfoProvider); ok {
		if mem, merr := mp.Memory(); merr == nil {
			fmt.Printf("resident memory: %d bytes\n", mem.Resident)
		}
	}

	if tr != nil && tr.Initialized() {
		fmt.Printf("tree nodes: %d\n", tr.Count())
	} else {
		fmt.Println("tree nodes: (none)")
	}
}

// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/zyedidia/generic/mapset"

	"ravio/pkg/game/logic"
	"ravio/pkg/game/progress"
	"ravio/pkg/game/search"
	"ravio/pkg/game/world"
)

const worldDumpFilename = "world.txt"

// reachMark is the one-character reachability tag of a check or location.
func reachMark(ok bool) rune {
	if ok {
		return '+'
	}
	return '-'
}

// DumpWorld writes every location of w with its checks and paths. Entries
// are tagged '+' when reachable from start and '-' otherwise; start is not
// modified.
func DumpWorld(out io.Writer, w *world.World, start *progress.Progress) {
	reach := mapset.New[world.LocationID]()
	for _, id := range search.Locations(w, start) {
		reach.Put(id)
	}
	checks := mapset.New[*world.Check]()
	for _, c := range search.Reachable(w, start) {
		checks.Put(c)
	}

	fmt.Fprintf(out, "start: %q\n", w.Start().ID)
	fmt.Fprintf(out, "locations: %d\n", len(w.Locations()))
	fmt.Fprintf(out, "checks: %d\n", w.Len())
	fmt.Fprintf(out, "randomizable: %d\n", w.Randomizable())
	fmt.Fprintf(out, "reachable_locations: %d\n", reach.Size())
	fmt.Fprintf(out, "reachable_checks: %d\n", checks.Size())
	fmt.Fprintf(out, "goal_met: %v\n", logic.CanPass(w.Goal(), start))

	for _, loc := range w.Locations() {
		fmt.Fprintf(out, "\n%c %q course: %q\n", reachMark(reach.Has(loc.ID)), loc.ID, loc.Course)
		for _, c := range loc.Checks {
			fmt.Fprintf(out, "  %c check: %q kind: %s", reachMark(checks.Has(c)), c.Name, c.Kind)
			if d, ok := c.Dungeon(); ok {
				fmt.Fprintf(out, " dungeon: %q", d.Abbrev())
			}
			if c.IsQuest() {
				fmt.Fprintf(out, " quest: %q", c.Quest)
			}
			fmt.Fprintln(out)
		}
		for _, p := range loc.Paths {
			fmt.Fprintf(out, "  %c path: %q\n", reachMark(logic.CanPass(p.Gate, start)), p.To)
		}
	}
}

// DumpWorldToFile writes DumpWorld's output to world.txt under dir and
// returns the file's path.
func DumpWorldToFile(dir string, w *world.World, start *progress.Progress) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, worldDumpFilename)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	DumpWorld(f, w, start)
	return path, f.Close()
}

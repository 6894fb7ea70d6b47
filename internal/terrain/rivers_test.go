package terrain

import (
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"landgen/internal/core"
	pkgcore "landgen/pkg/core"
)

func testRiverParams() RiverParams {
	return RiverParams{
		Count:          2,
		Branches:       2,
		Points:         32,
		Width:          0.06,
		Depth:          0.15,
		MaxStep:        0.08,
		Falloff:        FalloffQuadratic,
		AvoidCrossings: true,
	}
}

func flatGrid(res int, h float64) *core.FloatGrid {
	grid := core.NewFloatGrid(res, res)
	for i := range grid.Values() {
		grid.Values()[i] = h
	}
	return grid
}

func TestPlanRiversDeterministic(t *testing.T) {
	grid := flatGrid(64, 0.5)
	a := planRivers(pkgcore.NewStream(17, riverStreamOffset), grid, testRiverParams())
	b := planRivers(pkgcore.NewStream(17, riverStreamOffset), grid, testRiverParams())
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same stream produced different river layouts")
	}
}

func TestPlanRiversNoneWhenDisabled(t *testing.T) {
	grid := flatGrid(64, 0.5)
	p := testRiverParams()
	p.Count = 0
	if paths := planRivers(pkgcore.NewStream(1, riverStreamOffset), grid, p); paths != nil {
		t.Fatalf("expected no paths with count 0, got %d", len(paths))
	}
}

func TestPlanRiversOrderingAndParents(t *testing.T) {
	grid := flatGrid(64, 0.5)
	p := testRiverParams()
	paths := planRivers(pkgcore.NewStream(23, riverStreamOffset), grid, p)

	if len(paths) < p.Count {
		t.Fatalf("got %d paths, want at least %d mains", len(paths), p.Count)
	}
	for i := 0; i < p.Count; i++ {
		if paths[i].Kind != PathMain {
			t.Fatalf("path %d is not a main path", i)
		}
		if paths[i].Parent != -1 {
			t.Fatalf("main path %d has parent %d", i, paths[i].Parent)
		}
	}
	for i := p.Count; i < len(paths); i++ {
		branch := paths[i]
		if branch.Kind != PathBranch {
			t.Fatalf("path %d after the mains is not a branch", i)
		}
		if branch.Parent < 0 || branch.Parent >= p.Count {
			t.Fatalf("branch %d has out-of-range parent %d", i, branch.Parent)
		}
		onParent := false
		for _, q := range paths[branch.Parent].Points {
			if q == branch.Origin {
				onParent = true
				break
			}
		}
		if !onParent {
			t.Fatalf("branch %d origin %v is not a point of its parent", i, branch.Origin)
		}
		if branch.Points[0] != branch.Origin {
			t.Fatalf("branch %d does not start at its origin", i)
		}
	}
}

func TestPlanRiversContinuityAndBounds(t *testing.T) {
	grid := flatGrid(64, 0.5)
	p := testRiverParams()

	for seed := int64(1); seed <= 8; seed++ {
		paths := planRivers(pkgcore.NewStream(seed, riverStreamOffset), grid, p)
		for pi, path := range paths {
			if len(path.Points) < 2 {
				t.Fatalf("seed %d path %d has %d points", seed, pi, len(path.Points))
			}
			for i, pt := range path.Points {
				if pt.X() < 0 || pt.X() > 1 || pt.Y() < 0 || pt.Y() > 1 {
					t.Fatalf("seed %d path %d point %d = %v leaves the unit square", seed, pi, i, pt)
				}
				if i > 0 {
					d := pt.Sub(path.Points[i-1]).Len()
					if d > p.MaxStep+1e-12 {
						t.Fatalf("seed %d path %d step %d = %v exceeds max step %v", seed, pi, i, d, p.MaxStep)
					}
				}
			}
		}
	}
}

func TestPlanMainPathSpansEdges(t *testing.T) {
	grid := flatGrid(64, 0.5)
	p := testRiverParams()
	for seed := int64(1); seed <= 8; seed++ {
		path := planMainPath(pkgcore.NewStream(seed, riverStreamOffset), grid, p)
		if got := path.Points[0].Y(); got != 0 {
			t.Fatalf("seed %d main path starts at y=%v, want top edge", seed, got)
		}
		if len(path.Points) != p.Points {
			t.Fatalf("seed %d main path has %d points, want %d", seed, len(path.Points), p.Points)
		}
		// The walk is damped, so it may not reach the bottom edge exactly,
		// but it must make clear progress toward it.
		last := path.Points[len(path.Points)-1].Y()
		if last < 0.5 {
			t.Fatalf("seed %d main path ends at y=%v, expected progress past midway", seed, last)
		}
	}
}

func TestBranchProfileNarrowerThanParent(t *testing.T) {
	grid := flatGrid(64, 0.5)
	p := testRiverParams()
	paths := planRivers(pkgcore.NewStream(9, riverStreamOffset), grid, p)
	for i, path := range paths {
		if path.Kind != PathBranch {
			continue
		}
		parent := paths[path.Parent]
		if path.Profile.Width >= parent.Profile.Width {
			t.Fatalf("branch %d width %v not narrower than parent %v", i, path.Profile.Width, parent.Profile.Width)
		}
		if path.Profile.Depth >= parent.Profile.Depth {
			t.Fatalf("branch %d depth %v not shallower than parent %v", i, path.Profile.Depth, parent.Profile.Depth)
		}
	}
}

func TestClampLen(t *testing.T) {
	v := clampLen(mgl64.Vec2{0.3, 0.4}, 0.1)
	if got := v.Len(); got > 0.1+1e-12 {
		t.Fatalf("clamped length %v exceeds 0.1", got)
	}
	short := mgl64.Vec2{0.01, 0}
	if clampLen(short, 0.1) != short {
		t.Fatal("vector under the limit must pass through unchanged")
	}
}

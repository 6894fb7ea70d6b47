package terrain

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"landgen/internal/core"
	pkgcore "landgen/pkg/core"
)

// PathKind tags a river path as a main course or a branch.
type PathKind uint8

const (
	// PathMain runs from one border edge to the opposite edge.
	PathMain PathKind = iota
	// PathBranch starts at an interior point of an earlier path.
	PathBranch
)

// RiverProfile holds the carving dimensions of one path.
type RiverProfile struct {
	Width float64
	Depth float64
}

// RiverPath is an ordered centerline of normalized points in [0,1]x[0,1].
// Consecutive points are never further apart than the configured max step.
type RiverPath struct {
	Kind    PathKind
	Parent  int        // index of the parent path, -1 for main paths
	Origin  mgl64.Vec2 // attachment point on the parent, zero for main paths
	Points  []mgl64.Vec2
	Profile RiverProfile
}

// Branch headings that would cross an earlier path are deflected by this
// angle before the step is retried.
const crossingDeflection = math.Pi / 5

const crossingRetries = 4

// planRivers generates all river centerlines: mains first, then branches in
// generation order. One stream drives every path, so the layout for a given
// seed is independent of anything drawn elsewhere in the pipeline.
func planRivers(rng *pkgcore.RNG, grid *core.FloatGrid, p RiverParams) []RiverPath {
	if p.Count <= 0 {
		return nil
	}
	paths := make([]RiverPath, 0, p.Count*(1+p.Branches))
	for i := 0; i < p.Count; i++ {
		paths = append(paths, planMainPath(rng, grid, p))
	}
	mains := len(paths)
	for parent := 0; parent < mains; parent++ {
		for b := 0; b < p.Branches; b++ {
			if path, ok := planBranchPath(rng, paths, parent, p); ok {
				paths = append(paths, path)
			}
		}
	}
	return paths
}

// planMainPath walks from a random point on the top edge to a random point on
// the bottom edge. Each step moves halfway toward a perturbed interpolation
// target, which damps direction changes while following the perturbed course.
func planMainPath(rng *pkgcore.RNG, grid *core.FloatGrid, p RiverParams) RiverPath {
	start := mgl64.Vec2{rng.Float64(), 0}
	end := mgl64.Vec2{rng.Float64(), 1}

	points := make([]mgl64.Vec2, 0, p.Points)
	points = append(points, start)
	cur := start

	for i := 1; i < p.Points; i++ {
		t := float64(i) / float64(p.Points-1)
		target := start.Add(end.Sub(start).Mul(t))

		jitter := mgl64.Vec2{rng.Signed(), rng.Signed()}.Mul(p.MaxStep)
		target = target.Add(jitter)

		if p.DownhillBias {
			target = biasDownhill(rng, grid, cur, target, p.MaxStep)
		}

		step := target.Sub(cur).Mul(0.5)
		step = clampLen(step, p.MaxStep)
		cur = clampVec01(cur.Add(step))
		points = append(points, cur)
	}

	return RiverPath{
		Kind:    PathMain,
		Parent:  -1,
		Points:  points,
		Profile: RiverProfile{Width: p.Width, Depth: p.Depth},
	}
}

// planBranchPath grows a shorter path from a random interior point of the
// parent. It advances by a fixed step length plus jitter; when crossing
// avoidance is on, steps that come too close to an earlier path rotate the
// heading and retry.
func planBranchPath(rng *pkgcore.RNG, paths []RiverPath, parent int, p RiverParams) (RiverPath, bool) {
	parentPts := paths[parent].Points
	if len(parentPts) < 3 {
		return RiverPath{}, false
	}
	originIdx := 1 + rng.IntN(len(parentPts)-2)
	origin := parentPts[originIdx]

	count := p.Points / 2
	if count < 2 {
		count = 2
	}
	stepLen := p.MaxStep * 0.5
	proximity := p.Width
	if proximity < stepLen {
		proximity = stepLen
	}

	heading := rng.Angle()
	dir := mgl64.Vec2{math.Cos(heading), math.Sin(heading)}

	points := make([]mgl64.Vec2, 0, count)
	points = append(points, origin)
	cur := origin

	for i := 1; i < count; i++ {
		jitter := mgl64.Vec2{rng.Signed(), rng.Signed()}.Mul(stepLen * 0.5)
		next := cur.Add(dir.Mul(stepLen)).Add(jitter)

		if p.AvoidCrossings {
			for try := 0; try < crossingRetries && nearEarlierPath(paths, parent, next, proximity); try++ {
				dir = mgl64.Rotate2D(crossingDeflection).Mul2x1(dir)
				next = cur.Add(dir.Mul(stepLen)).Add(jitter)
			}
		}

		step := clampLen(next.Sub(cur), p.MaxStep)
		cur = clampVec01(cur.Add(step))
		points = append(points, cur)
	}

	return RiverPath{
		Kind:   PathBranch,
		Parent: parent,
		Origin: origin,
		Points: points,
		Profile: RiverProfile{
			Width: p.Width * 0.6,
			Depth: p.Depth * 0.7,
		},
	}, true
}

// nearEarlierPath reports whether pt comes within proximity of any path that
// was generated before the branch. The parent is skipped because the branch
// necessarily starts on it.
func nearEarlierPath(paths []RiverPath, parent int, pt mgl64.Vec2, proximity float64) bool {
	for i := range paths {
		if i == parent {
			continue
		}
		for _, q := range paths[i].Points {
			if q.Sub(pt).Len() < proximity {
				return true
			}
		}
	}
	return false
}

// biasDownhill steers the target toward the negative height gradient at the
// current point. When the local gradient is flat it falls back to a bounded
// random search over nearby cells for a lower one.
func biasDownhill(rng *pkgcore.RNG, grid *core.FloatGrid, cur, target mgl64.Vec2, maxStep float64) mgl64.Vec2 {
	const flatGradient = 1e-6
	g := gradientAt(grid, cur)
	if g.Len() > flatGradient {
		return target.Add(g.Normalize().Mul(-maxStep))
	}

	best := target
	bestH := heightAt(grid, cur)
	found := false
	for i := 0; i < 6; i++ {
		cand := clampVec01(cur.Add(mgl64.Vec2{rng.Signed(), rng.Signed()}.Mul(maxStep * 2)))
		if h := heightAt(grid, cand); h < bestH {
			bestH = h
			best = cand
			found = true
		}
	}
	if found {
		return best
	}
	return target
}

// gradientAt computes the central-difference height gradient at a normalized
// position, with one-sided differences at the grid border.
func gradientAt(grid *core.FloatGrid, pt mgl64.Vec2) mgl64.Vec2 {
	x, y := cellOf(grid, pt)
	x0, x1 := x-1, x+1
	if x0 < 0 {
		x0 = 0
	}
	if x1 > grid.W-1 {
		x1 = grid.W - 1
	}
	y0, y1 := y-1, y+1
	if y0 < 0 {
		y0 = 0
	}
	if y1 > grid.H-1 {
		y1 = grid.H - 1
	}
	gx := (grid.At(x1, y) - grid.At(x0, y)) * 0.5
	gy := (grid.At(x, y1) - grid.At(x, y0)) * 0.5
	return mgl64.Vec2{gx, gy}
}

// heightAt reads the grid cell under a normalized position.
func heightAt(grid *core.FloatGrid, pt mgl64.Vec2) float64 {
	x, y := cellOf(grid, pt)
	return grid.At(x, y)
}

// cellOf maps a normalized position to clamped cell coordinates.
func cellOf(grid *core.FloatGrid, pt mgl64.Vec2) (int, int) {
	x := int(pt.X() * float64(grid.W-1))
	y := int(pt.Y() * float64(grid.H-1))
	if x < 0 {
		x = 0
	} else if x > grid.W-1 {
		x = grid.W - 1
	}
	if y < 0 {
		y = 0
	} else if y > grid.H-1 {
		y = grid.H - 1
	}
	return x, y
}

// clampLen shortens v to at most max while keeping its direction.
func clampLen(v mgl64.Vec2, max float64) mgl64.Vec2 {
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	return v.Mul(max / l)
}

// clampVec01 clamps both components to [0, 1].
func clampVec01(v mgl64.Vec2) mgl64.Vec2 {
	x, y := v.X(), v.Y()
	if x < 0 {
		x = 0
	} else if x > 1 {
		x = 1
	}
	if y < 0 {
		y = 0
	} else if y > 1 {
		y = 1
	}
	return mgl64.Vec2{x, y}
}

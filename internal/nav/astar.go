package nav

import (
	"container/heap"
	"math"
)

func heuristic(a, b Tile) float64 {
	dx := math.Abs(float64(a.X - b.X))
	dy := math.Abs(float64(a.Y - b.Y))
	if dx > dy {
		return dx + (math.Sqrt2-1)*dy
	}
	return dy + (math.Sqrt2-1)*dx
}

type pathNode struct {
	idx    int
	g      float64
	f      float64
	index  int
	parent *pathNode
}

type pathQueue []*pathNode

func (pq pathQueue) Len() int { return len(pq) }

func (pq pathQueue) Less(i, j int) bool { return pq[i].f < pq[j].f }

func (pq pathQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *pathQueue) Push(x any) {
	n := len(*pq)
	item := x.(*pathNode)
	item.index = n
	*pq = append(*pq, item)
}

func (pq *pathQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}

// FindPath runs A* from src to dst. The result is empty when src == dst,
// when either end is not walkable, or when no route exists.
func (g *Graph) FindPath(src, dst Tile) *Path {
	if src == dst || !g.Walkable(src) || !g.Walkable(dst) {
		return &Path{}
	}

	start := g.index(src.X, src.Y)
	goal := g.index(dst.X, dst.Y)

	open := &pathQueue{}
	heap.Init(open)
	heap.Push(open, &pathNode{idx: start, f: heuristic(src, dst)})
	gScore := map[int]float64{start: 0}
	closed := make(map[int]struct{})

	for open.Len() > 0 {
		current := heap.Pop(open).(*pathNode)
		if current.idx == goal {
			return g.reconstruct(current)
		}
		if _, done := closed[current.idx]; done {
			continue
		}
		closed[current.idx] = struct{}{}

		for _, e := range g.edges[current.idx] {
			if _, done := closed[e.to]; done {
				continue
			}
			tentative := current.g + e.cost
			if best, seen := gScore[e.to]; seen && tentative >= best {
				continue
			}
			gScore[e.to] = tentative
			heap.Push(open, &pathNode{
				idx:    e.to,
				g:      tentative,
				f:      tentative + heuristic(g.tile(e.to), dst),
				parent: current,
			})
		}
	}
	return &Path{}
}

func (g *Graph) reconstruct(end *pathNode) *Path {
	var tiles []Tile
	for n := end; n != nil; n = n.parent {
		tiles = append(tiles, g.tile(n.idx))
	}
	steps := make([]Step, 0, len(tiles)-1)
	for i := len(tiles) - 1; i > 0; i-- {
		from, to := tiles[i], tiles[i-1]
		steps = append(steps, Step{X: to.X - from.X, Y: to.Y - from.Y})
	}
	return &Path{steps: steps}
}

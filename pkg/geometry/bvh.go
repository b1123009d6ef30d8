package geometry

import (
	"errors"
	"math/rand"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ErrEmptyBVH is returned when a BVH is built over no objects
var ErrEmptyBVH = errors.New("geometry: cannot build a BVH over zero objects")

// bvhNode is either a leaf holding one object or a branch with two child nodes
type bvhNode struct {
	box         core.AABB
	leaf        bool
	object      Handle // leaf only
	left, right int32  // branch only; indices into BVH.nodes
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection.
// Nodes are stored flat with the root at index 0; the tree is immutable once built.
type BVH struct {
	nodes []bvhNode
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes int
	LeafNodes  int
	MaxDepth   int
}

// NewBVH constructs a BVH over the given objects of w. Each node splits along
// an axis drawn uniformly from random.
func NewBVH(w *World, objects []Handle, random *rand.Rand) (*BVH, error) {
	if len(objects) == 0 {
		return nil, ErrEmptyBVH
	}

	// Sorting happens in place, keep the caller's order intact
	objectsCopy := make([]Handle, len(objects))
	copy(objectsCopy, objects)

	bvh := &BVH{nodes: make([]bvhNode, 0, 2*len(objects)-1)}
	bvh.build(w, objectsCopy, random)
	return bvh, nil
}

// BuildBVH constructs a BVH over objects and adds it to the world
func (w *World) BuildBVH(objects []Handle, random *rand.Rand) (Handle, error) {
	bvh, err := NewBVH(w, objects, random)
	if err != nil {
		return 0, err
	}
	return w.Add(bvh), nil
}

func (*BVH) isSurface() {}

// build appends the subtree for objects and returns the index of its root
func (bvh *BVH) build(w *World, objects []Handle, random *rand.Rand) int32 {
	index := int32(len(bvh.nodes))
	bvh.nodes = append(bvh.nodes, bvhNode{})

	if len(objects) == 1 {
		bvh.nodes[index] = bvhNode{
			box:    w.BoundingBox(objects[0]),
			leaf:   true,
			object: objects[0],
		}
		return index
	}

	axis := random.Intn(3)
	sort.Slice(objects, func(i, j int) bool {
		return w.BoundingBox(objects[i]).Axis(axis).Min < w.BoundingBox(objects[j]).Axis(axis).Min
	})

	mid := len(objects) / 2
	left := bvh.build(w, objects[:mid], random)
	right := bvh.build(w, objects[mid:], random)

	bvh.nodes[index] = bvhNode{
		box:   bvh.nodes[left].box.Union(bvh.nodes[right].box),
		left:  left,
		right: right,
	}
	return index
}

// BoundingBox returns the overall bounding box of the BVH
func (bvh *BVH) BoundingBox() core.AABB {
	return bvh.nodes[0].box
}

func (bvh *BVH) hit(w *World, ray core.Ray, rayT core.Interval, sampler core.Sampler) (material.HitRecord, bool) {
	return bvh.hitNode(0, w, ray, rayT, sampler)
}

func (bvh *BVH) hitNode(index int32, w *World, ray core.Ray, rayT core.Interval, sampler core.Sampler) (material.HitRecord, bool) {
	node := &bvh.nodes[index]
	if !node.box.Hit(ray, rayT) {
		return material.HitRecord{}, false
	}

	if node.leaf {
		return w.Hit(node.object, ray, rayT, sampler)
	}

	leftHit, hitLeft := bvh.hitNode(node.left, w, ray, rayT, sampler)

	// The right child only matters if it is closer than the left hit
	rightT := rayT
	if hitLeft {
		rightT = core.NewInterval(rayT.Min, leftHit.T)
	}
	if rightHit, hitRight := bvh.hitNode(node.right, w, ray, rightT, sampler); hitRight {
		return rightHit, true
	}

	return leftHit, hitLeft
}

// Stats returns statistics about the BVH structure
func (bvh *BVH) Stats() BVHStats {
	stats := BVHStats{}
	bvh.collectStats(0, 0, &stats)
	return stats
}

// collectStats recursively collects statistics about the BVH
func (bvh *BVH) collectStats(index int32, depth int, stats *BVHStats) {
	stats.TotalNodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	node := &bvh.nodes[index]
	if node.leaf {
		stats.LeafNodes++
		return
	}
	bvh.collectStats(node.left, depth+1, stats)
	bvh.collectStats(node.right, depth+1, stats)
}

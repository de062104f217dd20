package hull

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// task fans fn out over worker goroutines, each handling one contiguous
// chunk of the index range [0, n). fn receives its worker id and chunk
// bounds [start, end).
func task(workersCount, n int, fn func(worker, start, end int)) {
	var wg sync.WaitGroup
	chunkSize := (n + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		start := workerID * chunkSize
		end := min(start+chunkSize, n)
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(worker, start, end int) {
			defer wg.Done()
			fn(worker, start, end)
		}(workerID, start, end)
	}
	wg.Wait()
}

// scanResult is one worker's best candidate from a farthest-point scan.
type scanResult struct {
	index int
	dist  float64
}

// farthestInChunk scans outside-set positions [start, end) for the point
// farthest in front of face, keeping the first strict maximum beyond
// tolerance. The face's own vertices are skipped.
func (b *builder) farthestInChunk(face HullFace, start, end int) scanResult {
	best := scanResult{index: None, dist: b.reg.tol}
	for _, pi := range b.outside.indices[start:end] {
		if face.ContainsVertex(pi) {
			continue
		}
		if d := b.reg.PlaneDist(face, b.pts[pi]); d > best.dist {
			best.dist = d
			best.index = pi
		}
	}
	return best
}

// farthestPoint returns the outside point farthest in front of face, or
// ok == false when nothing lies beyond tolerance. Large scans are chunked
// across workers; the strict-maximum merge in ascending chunk order keeps
// the result identical to the sequential scan, lowest index winning ties.
func (b *builder) farthestPoint(face HullFace) (pt mgl64.Vec3, index int, ok bool) {
	n := b.outside.len()

	var best scanResult
	if b.workers > 1 && n >= parallelScanMinPoints {
		// Pre-fill every slot: workers whose chunk is empty never report.
		results := b.scanResults
		for i := range results {
			results[i] = scanResult{index: None, dist: b.reg.tol}
		}
		task(b.workers, n, func(worker, start, end int) {
			results[worker] = b.farthestInChunk(face, start, end)
		})
		best = scanResult{index: None, dist: b.reg.tol}
		for _, r := range results {
			if r.dist > best.dist {
				best = r
			}
		}
	} else {
		best = b.farthestInChunk(face, 0, n)
	}

	if best.index == None {
		return Vec3Unset, None, false
	}
	return b.pts[best.index], best.index, true
}

// Package scene implements the SceneSegmenter: it groups
// classified intent spans into CameraScenes, merging adjacent typing runs,
// splitting spatially discontinuous spans, and clustering focus regions.
package scene

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/vedantwpatil/autodirector/internal/geometry"
	"github.com/vedantwpatil/autodirector/internal/model"
)

func byTime[T any](t func(T) float64) func(T, T) int {
	return func(a, b T) int {
		switch {
		case t(a) < t(b):
			return -1
		case t(a) > t(b):
			return 1
		default:
			return 0
		}
	}
}

// spatialSplitThreshold is the normalized-distance threshold beyond which a
// single intent span is split into multiple scenes.
const spatialSplitThreshold = 0.4

// typingMergeGap is the maximum gap between adjacent same-context typing
// spans for them to merge into one scene.
const typingMergeGap = 2.0

// clusterDistance and clusterJoinWindow parameterize the DBSCAN-like
// focus-region clustering.
const (
	clusterDistance   = 0.1
	clusterJoinWindow = 1.0
	clusterMinPoints  = 2
)

// Segment builds the sorted, non-overlapping, duration-covering scene list
// from classified intent spans.
func Segment(spans []model.IntentSpan, events []model.UnifiedEvent, duration float64) []model.CameraScene {
	merged := mergeAdjacentTyping(spans)

	var scenes []model.CameraScene
	for _, s := range merged {
		scenes = append(scenes, splitSpatialDiscontinuities(s, events)...)
	}

	slices.SortFunc(scenes, byTime(func(s model.CameraScene) float64 { return s.StartTime }))
	for i := range scenes {
		scenes[i].ID = fmt.Sprintf("scene-%03d", i)
		sceneEvents := eventsInSpan(events, scenes[i].StartTime, scenes[i].EndTime)
		scenes[i].FocusRegions = clusterFocusRegions(sceneEvents)
		scenes[i].AppContext = dominantAppContext(sceneEvents)
	}
	return scenes
}

func mergeAdjacentTyping(spans []model.IntentSpan) []model.IntentSpan {
	if len(spans) == 0 {
		return nil
	}
	sorted := append([]model.IntentSpan(nil), spans...)
	slices.SortFunc(sorted, byTime(func(s model.IntentSpan) float64 { return s.StartTime }))

	out := []model.IntentSpan{sorted[0]}
	for _, s := range sorted[1:] {
		last := &out[len(out)-1]
		sameTyping := last.Intent.Kind == model.IntentTyping && s.Intent.Kind == model.IntentTyping &&
			last.Intent.Context == s.Intent.Context
		if sameTyping && s.StartTime-last.EndTime < typingMergeGap {
			last.EndTime = s.EndTime
			last.AnchorEvents = append(last.AnchorEvents, s.AnchorEvents...)
			if s.Confidence > last.Confidence {
				last.Confidence = s.Confidence
			}
			continue
		}
		out = append(out, s)
	}
	return out
}

// splitSpatialDiscontinuities breaks a span into multiple scenes wherever
// consecutive anchor events jump more than spatialSplitThreshold apart.
func splitSpatialDiscontinuities(span model.IntentSpan, events []model.UnifiedEvent) []model.CameraScene {
	anchors := append([]model.UnifiedEvent(nil), span.AnchorEvents...)
	slices.SortFunc(anchors, byTime(func(e model.UnifiedEvent) float64 { return e.Time }))

	var breakpoints []float64
	for i := 1; i < len(anchors); i++ {
		if geometry.Distance(anchors[i-1].Position, anchors[i].Position) > spatialSplitThreshold {
			mid := (anchors[i-1].Time + anchors[i].Time) / 2
			breakpoints = append(breakpoints, mid)
		}
	}

	if len(breakpoints) == 0 {
		return []model.CameraScene{{
			StartTime:     span.StartTime,
			EndTime:       span.EndTime,
			PrimaryIntent: span.Intent,
		}}
	}

	bounds := append([]float64{span.StartTime}, breakpoints...)
	bounds = append(bounds, span.EndTime)
	var scenes []model.CameraScene
	for i := 0; i+1 < len(bounds); i++ {
		scenes = append(scenes, model.CameraScene{
			StartTime:     bounds[i],
			EndTime:       bounds[i+1],
			PrimaryIntent: span.Intent,
		})
	}
	return scenes
}

func eventsInSpan(events []model.UnifiedEvent, start, end float64) []model.UnifiedEvent {
	var out []model.UnifiedEvent
	for _, e := range events {
		if e.Time >= start && e.Time <= end {
			out = append(out, e)
		}
	}
	return out
}

func dominantAppContext(events []model.UnifiedEvent) string {
	counts := map[string]int{}
	for _, e := range events {
		if e.Meta.AppBundleID != "" {
			counts[e.Meta.AppBundleID]++
		}
	}
	best := ""
	bestCount := 0
	for app, c := range counts {
		if c > bestCount {
			best = app
			bestCount = c
		}
	}
	return best
}

// clusterFocusRegions implements the DBSCAN-like clustering:
// events within clusterDistance normalized units and clusterJoinWindow
// seconds of an existing cluster member join it; clusters reaching
// clusterMinPoints become focus regions (their bounding box).
func clusterFocusRegions(events []model.UnifiedEvent) []geometry.NormRect {
	var points []model.UnifiedEvent
	for _, e := range events {
		switch e.Kind {
		case model.EventClick, model.EventMouseMove, model.EventDragStart, model.EventDragEnd, model.EventUIStateChange:
			points = append(points, e)
		}
	}
	slices.SortFunc(points, byTime(func(e model.UnifiedEvent) float64 { return e.Time }))

	assigned := make([]int, len(points)) // -1 = unassigned
	for i := range assigned {
		assigned[i] = -1
	}
	nextCluster := 0

	for i := range points {
		if assigned[i] != -1 {
			continue
		}
		assigned[i] = nextCluster
		// expand: repeatedly absorb unassigned points reachable from any
		// member already in this cluster.
		changed := true
		for changed {
			changed = false
			for j := range points {
				if assigned[j] != -1 {
					continue
				}
				for k := range points {
					if assigned[k] != nextCluster {
						continue
					}
					if geometry.Distance(points[j].Position, points[k].Position) <= clusterDistance &&
						absFloat(points[j].Time-points[k].Time) <= clusterJoinWindow {
						assigned[j] = nextCluster
						changed = true
						break
					}
				}
			}
		}
		nextCluster++
	}

	clusters := make(map[int][]geometry.Point)
	for i, c := range assigned {
		clusters[c] = append(clusters[c], points[i].Position)
	}

	var regions []geometry.NormRect
	clusterIDs := make([]int, 0, len(clusters))
	for id := range clusters {
		clusterIDs = append(clusterIDs, id)
	}
	slices.Sort(clusterIDs)
	for _, id := range clusterIDs {
		pts := clusters[id]
		if len(pts) >= clusterMinPoints {
			regions = append(regions, geometry.BoundingBox(pts))
		}
	}
	return regions
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Package dtw computes Dynamic Time Warping (DTW) distances between two
// numeric series, with an optional alignment path.
//
// The two series are indexed by their own index types, so an alignment
// path is a list of Coord[A, B] pairs and the compiler keeps positions of
// one series out of the other:
//
//	type sensorA struct{ idx.DefaultDomain }
//	type sensorB struct{ idx.DefaultDomain }
//	type TickA = idx.Of[uint32, sensorA]
//	type TickB = idx.Of[uint32, sensorB]
//
//	opts := dtw.DefaultOptions()
//	opts.ReturnPath = true
//	dist, path, err := dtw.DTW(a.Slice, b.Slice, &opts) // path []dtw.Coord[TickA, TickB]
//
// Features:
//   - FullMatrix mode: O(N·M) memory, supports ReturnPath.
//   - TwoRows mode: O(M) memory, distance only.
//   - Sakoe–Chiba window (|i−j| ≤ Window) for speed and locality.
//   - SlopePenalty added to every non-diagonal step.
//
// Complexity: O(N·M) time, or O(N·(2W+1)) with a window.
package dtw

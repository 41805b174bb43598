// Package synchrony measures local order in oscillator communities.
//
//   - [OrderParameters]: per-community Kuramoto order parameter
//   - [Window]: fixed-size block averaging of the synchrony series
//   - [Compute]: metastability, chimera index and mean synchrony from the
//     downsampled series
package synchrony

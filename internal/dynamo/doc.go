// Package dynamo provides core numeric primitives for oscillator simulation.
//
// The package defines the shared low-level pieces the rest of the
// simulation is built on:
//
//   - [Phases]: vector of oscillator phase angles with wrapping and
//     NaN/Inf validation
//   - [SimulationError]: step-stamped error wrapper for failed runs
//   - [ParallelFor]: chunked worker helper for per-oscillator loops
//   - [TrigTable]: precomputed sin/cos lookup for rendering paths
//
// # Phase Convention
//
// All phase angles are normalized into (-pi, pi]:
//
//	theta := dynamo.WrapAngle(raw)
package dynamo

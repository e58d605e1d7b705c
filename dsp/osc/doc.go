// Package osc implements a per-sample audio signal generator with two
// phase-coupled oscillators (leader/follower hard sync), four periodic
// shapes, and three noise colors.
//
// An [Oscillator] is a leaf node for a block-based host: the host hands it a
// pre-allocated output structure and per-block control values, and the
// oscillator fills channel 0 of every output bus. Controls may be block-rate
// (one value per block) or sample-rate (one value per sample). All state,
// the two phases and the noise filter memory, lives in the instance and
// persists across blocks.
//
// The per-sample loop performs no allocation, locking, or I/O, so Process is
// safe to call from a real-time audio callback. A single instance must only
// be driven from one goroutine.
package osc

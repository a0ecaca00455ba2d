// Package log defines the logging interface used across numerics and typed
// logging fields.
//
// Adapters (such as the zap package) implement Logger so policies and
// assertions stay independent of the logging backend.
package log

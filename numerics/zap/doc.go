// Package zap adapts go.uber.org/zap to the numerics log.Logger interface.
//
// Use New with a Config (or LoadConfig to read it from the environment) to
// obtain a JSON logger whose baseline level follows the deployment environment.
package zap

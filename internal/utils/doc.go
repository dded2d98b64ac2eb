// Package utils provides small helpers shared by the bridge packages:
// a preconfigured HTTP client for the remote sync source and a time-ordered
// identifier generator.
package utils

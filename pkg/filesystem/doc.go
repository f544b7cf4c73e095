// Package filesystem holds the FS abstraction used by the on-disk stores
// and its OS implementation.
package filesystem

// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error values for the reusebuf library.

package api

import "fmt"

// Errors shared across packages.
var (
	ErrSlabReleased = fmt.Errorf("slab already released")
	ErrSlabSize     = fmt.Errorf("invalid slab size")
)

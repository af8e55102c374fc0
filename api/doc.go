// Package api
// Author: momentics <momentics@gmail.com>
//
// Public contracts shared by the reusebuf packages: the single-element
// sink abstraction, the overwrite-permission hook consulted by growable
// buffers, and pool accounting types.
package api

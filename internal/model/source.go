// Package model defines the data structures shared by the migration engine.
package model

import "fmt"

// Path represents a file system path.
type Path string

// Version is a framework major version (e.g. 17).
type Version int

// String renders the version as a plain integer.
func (v Version) String() string {
	return fmt.Sprintf("%d", int(v))
}

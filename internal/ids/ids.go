// Package ids generates the opaque identifiers used for every stored entity.
package ids

import gonanoid "github.com/matoous/go-nanoid/v2"

// New returns a 21 character URL-safe NanoID.
func New() string {
	return gonanoid.Must()
}

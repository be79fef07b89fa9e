// Package layer provides the retained drawable primitive that views own.
//
// A [Shape] holds an outline plus stroke properties and is mutated in place
// for its whole lifetime. Hosts render shapes into any [draw.Image]; the
// stroking follows the usual retained-layer conventions: butt caps, each
// sub-path stroked independently, and dash patterns restarting at every
// sub-path.
package layer

// Package crate reads the Cargo manifest of the crate being packaged.
//
// Only the fields packaging depends on are decoded: the package name,
// the optional [lib] name override, and the declared crate types. All
// artifact names (static library, public header, bundle) derive from the
// manifest here so every stage of a run agrees on them.
package crate

// Package pkgmanifest loads the description of a Swift package by running
// `swift package dump-package` and decoding its JSON output into a Package.
//
// The dump format has changed across toolchain releases. Product kinds were
// once a plain "product_type" string and are now a nested "type" object keyed
// by kind; both are accepted and folded into Product.IsExecutable. Dependency
// name lists may hold nulls, which are dropped during decoding.
package pkgmanifest

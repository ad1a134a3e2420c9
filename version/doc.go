// Package version exposes build metadata for the taskbridge binary.
//
// Values are injected with ldflags:
//
//	go build -ldflags "\
//	  -X github.com/ncobase/taskbridge/version.Version=1.2.3 \
//	  -X github.com/ncobase/taskbridge/version.Revision=abc123"
//
// Unset values fall back to the module build info recorded by the Go
// toolchain.
package version

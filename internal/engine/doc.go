// Package engine contains the scanning logic shared by both scanners. It
// walks the tree under a root, reads each eligible file once, runs the
// detectors and collects findings in discovery order. This package is
// internal; external consumers should use the stable facade in pkg/core.
package engine

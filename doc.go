// Package graphconv is a small, pure-Go toolkit for spectral graph
// convolution on dense adjacency matrices.
//
// 🚀 What is graphconv?
//
//	A CPU-only library that brings together:
//		• Dense matrices: row-major storage, safe accessors, kernels
//		• Adjacency builders: edge lists → A, degree vectors
//		• Graph convolution: H = ReLU(D^-1/2 · (A+I) · D^-1/2 · X · W)
//
// ✨ Why graphconv?
//
//   - Deterministic – fixed loop orders, seeded weight initialization
//   - Safe – shape errors instead of panics, copies instead of aliases
//   - Concurrent – read-mostly layers, row-parallel multiplication
//   - Extensible – stage hooks (WithHook) observe every intermediate
//
// Everything is organized under two subpackages:
//
//	matrix/ — Dense, kernels, element-wise ops, BuildAdjacency
//	gcn/    — the normalized graph convolution layer
//
// Quick ASCII example:
//
//	    ⟲   ⟲   ⟲
//	    0   1───2
//
//	every node carries a self-loop; nodes 1 and 2 share an edge.
//
//	go get github.com/katalvlaran/graphconv/gcn
package graphconv

// SPDX-License-Identifier: MIT
// Package matrix - dense adjacency builder from an index edge list.
//
// Policy & Contracts:
//   - Adjacency: 0 for "no edge", 1 (unweighted) or Edge.Weight (weighted).
//   - Undirected edges mirror into [v,u]; loops write a single diagonal cell.
//
// Determinism:
//   - Edges are applied in slice order.
//   - AllowMulti=false ⇒ first-edge-wins (ordered or unordered key by directedness).
//   - AllowMulti=true  ⇒ last-write-wins on the shared cell.

package matrix

import "fmt"

const opBuildAdjacency = "BuildAdjacency"

// defaultWeight - unit weight for unweighted adjacency writes.
const defaultWeight = 1.0

// orderedPair builds (u,v) key for directed de-duplication.
func orderedPair(u, v int) pairKey { return pairKey{u: u, v: v} }

// unorderedPair builds {min,max} key for undirected de-duplication.
func unorderedPair(u, v int) pairKey {
	if u <= v {
		return pairKey{u: u, v: v}
	}

	return pairKey{u: v, v: u}
}

// BuildAdjacency constructs an n×n dense adjacency matrix from edges.
//
// Implementation:
//   - Stage 1: validate n > 0 and allocate n×n with the resolved numeric policy.
//   - Stage 2: for each edge, validate endpoints and weight, apply the loop
//     and multi-edge policies, then write [u,v] (and [v,u] when undirected).
//
// Inputs:
//   - n: number of nodes.
//   - edges: index edge list; endpoints in [0, n).
//   - opts: WithDirected/WithWeighted/WithAllowLoops/WithAllowMulti and numeric policy.
//
// Errors:
//   - ErrInvalidDimensions (n <= 0).
//   - ErrUnknownVertex (endpoint outside [0, n)).
//   - ErrInvalidWeight (weighted mode, NaN/±Inf weight).
//
// Complexity:
//   - Time O(n^2 + E), Space O(n^2).
func BuildAdjacency(n int, edges []Edge, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	mat, err := NewDenseWith(n, n, opts...)
	if err != nil {
		return nil, matrixErrorf(opBuildAdjacency, err)
	}

	seen := make(map[pairKey]struct{}, len(edges))
	var (
		key pairKey
		w   float64
	)
	for ei, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, matrixErrorf(opBuildAdjacency, fmt.Errorf("edge %d (%d→%d): %w", ei, e.From, e.To, ErrUnknownVertex))
		}
		if e.From == e.To && !o.allowLoops {
			continue
		}

		w = defaultWeight
		if o.weighted {
			w = e.Weight
			if o.validateNaNInf && !isFinite(w) {
				return nil, matrixErrorf(opBuildAdjacency, fmt.Errorf("edge %d (%d→%d): %w", ei, e.From, e.To, ErrInvalidWeight))
			}
		}

		if !o.allowMulti {
			if o.directed {
				key = orderedPair(e.From, e.To)
			} else {
				key = unorderedPair(e.From, e.To)
			}
			if _, dup := seen[key]; dup {
				continue // first-edge-wins
			}
			seen[key] = struct{}{}
		}

		mat.data[e.From*n+e.To] = w
		if !o.directed && e.From != e.To {
			mat.data[e.To*n+e.From] = w
		}
	}

	return mat, nil
}

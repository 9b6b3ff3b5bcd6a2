// Package pkg provides the libraries behind posthop, a solver for the
// cheapest route along a line of posts.
//
// # Overview
//
// A route starts at post 0, ends at post n-1 and may skip any post in
// between. Travelling from post i to a later post j costs the (i, j) cell of
// an upper-triangular cost matrix. The pkg directory is organized as:
//
//  1. [cost] - The cost matrix, its validation and checked arithmetic
//  2. [route] - The three solvers: brute force, divide and conquer, dynamic programming
//  3. [generate] - Random matrices under the independent and cumulative policies
//  4. [io] - Tab-separated and JSON matrix codecs
//  5. [pipeline] - Limits, caching, batch solving and cross-solver reports
//  6. [render] - Graphviz DOT and SVG drawings with the route highlighted
//  7. [cache], [errors], [observability], [buildinfo] - Supporting infrastructure
//
// # Architecture
//
// The typical data flow through posthop:
//
//	TSV/JSON file or generator
//	         ↓
//	    [io] / [generate] (build a *cost.Matrix)
//	         ↓
//	    [pipeline] (limits, cache lookup, run solvers)
//	         ↓
//	    [route] (BruteForce, DivideAndConquer, Dynamic)
//	         ↓
//	    Report table, JSON or SVG
//
// # Quick Start
//
//	m, err := io.ImportTable("cumulative-cost-table-25.tsv")
//	if err != nil {
//	    return err
//	}
//	res, err := route.Dynamic(m)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res, res.Cost)
//
// Only the dynamic programming solver is practical beyond a few dozen posts;
// the other two are exponential and exist to cross-check it.
package pkg

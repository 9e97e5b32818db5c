// ABOUTME: Root package for the btgc library providing version information
// ABOUTME: The collector lives in gc; graph and heapdump provide introspection

// Package btgc provides a back-tracing incremental garbage collector
// embedded as a library. Client code allocates heap objects through a
// collector and wires them together with collector-aware references;
// object graphs that no root reference can reach, reference cycles
// included, are detected by walking inbound edges backwards from
// randomly chosen candidates and are finalized and freed in small
// increments interleaved with allocation.
//
// The collector itself is in package gc. Package graph analyzes heap
// snapshots (paths to roots, dominators, retained sizes) and package
// heapdump serializes them.
package btgc

// Version is the semantic version of the btgc library
const Version = "0.1.0-dev"

// Package storage implements the storage manager (C4) — the per-tile
// state machine that, given a requested format and access mode, ensures
// a tile's data is present in that format by invoking constructors,
// validators, discarders and format converters along the shortest
// conversion path, tracked by a validity bitmask.
//
// This is grounded directly on original_source/src/storage/storage_manager.hpp
// (the spla C++ reference): a BFS over a fixed, registration-time
// conversion graph, restarted from the set of currently-valid formats,
// with ties among candidate edges broken by registration order.
//
// Manager is generic over the format-code type (format.VecCode for
// vector tiles, format.MatCode for matrix tiles) because the state
// machine's shape — constructors, validators, discarders, converters,
// shortest-path search — is identical for both; only the concrete tile
// payload types and the code enumeration differ.
package storage

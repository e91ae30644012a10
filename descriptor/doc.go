// Package descriptor implements the per-operation configuration bag
// (C6): a fixed, small enum of parameters, each optionally carrying a
// string value, with O(1) set/get/remove and key-building for
// algorithm dispatch.
//
// Grounded on original_source/include/spla-cpp/SplaDescriptor.hpp: the
// same Param enum, the same set-with-optional-string/get/remove/dup
// surface, ported from an unordered_map<Param,string> to a Go map keyed
// by the Param enum.
package descriptor

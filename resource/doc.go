// Package resource implements the generic resource model: conversion between
// JSON:API style {type, id, attributes} envelopes and typed instances, driven
// entirely by each resource type's field mapping table.
//
// A resource type is a Definition: a wire type identifier, a mapping.Table
// and optional constant sets. Type is the ready-made implementation; concrete
// resource packages declare one per remote entity and never implement
// conversion themselves.
//
// Decoding rules:
//   - The envelope type must equal the expected type identifier, verbatim.
//   - Every declared attribute is present on the instance, null when absent
//     from the payload. Sparse field sets are normal.
//   - Unmapped wire keys are ignored (logged at debug level), never stored.
//   - Objects carrying a string "type" member are decoded as nested
//     instances, resolved through the codec's Resolver.
//
// Encoding rules:
//   - The envelope is stamped with the type identifier and the instance id.
//   - Null attributes are omitted so only fields the caller set are sent.
//   - Values outside the supported kinds (see primitive.KindEnum) fail with
//     *UnsupportedValueError.
//
// Errors are returned as-is, never wrapped, and match the package sentinels
// with errors.Is.
//
// A Codec holds no mutable state after construction; tables and types are
// immutable, so everything here is safe for concurrent use.
package resource

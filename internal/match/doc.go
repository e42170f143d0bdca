// Package match provides identifier tokenization and fuzzy key matching for
// field mapping tables.
//
// Key functions:
//   - SnakeCase: derives a local attribute name from a camelCase wire key
//   - GoIdent: derives an exported Go identifier from a key or constant token
//   - NormalizeIdent: case and separator insensitive form used for comparison
//   - Closest: picks the declared key nearest to an unknown one
package match

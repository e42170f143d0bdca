// Package diagnostic provides structured errors and warnings collected while
// resource type definitions are checked.
//
// Definition problems are reported all at once rather than on the first hit:
//   - Duplicate wire or local keys in a field mapping table
//   - Empty or duplicated resource type identifiers
//   - Constant sets attached to undeclared attributes
//   - Empty or repeated constant tokens
package diagnostic

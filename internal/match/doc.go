// Package match scores how close two identifiers are and suggests the
// closest names for typos in override keys and configured type names.
//
// Key functions:
//   - Normalize: lowercases and strips separators so "order_id" equals "OrderID"
//   - Distance: Levenshtein edit distance
//   - Suggest: candidates above a similarity threshold, best first
package match

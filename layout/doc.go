// Package layout reconstructs paragraph structure from positioned text runs.
//
// A content stream yields runs in drawing order, which rarely matches
// reading order. [Reconstruct] sorts runs top-to-bottom then left-to-right,
// groups them into lines by vertical proximity, splits lines into paragraphs
// where the vertical gap exceeds a threshold, and merges adjacent runs that
// share formatting. Both thresholds live in [Config]; [DefaultConfig]
// matches typical single-column body text.
package layout

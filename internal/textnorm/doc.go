// Package textnorm normalizes decomposed Unicode in playlist text.
//
// It precomposes base-character + combining-mark sequences (NFD-style
// output from some playlist exporters) into the single precomposed code
// points that filesystems and path comparisons expect. Combining-class
// lookups come from golang.org/x/text/unicode/norm per rune; no table of
// combining code points is built up front.
package textnorm

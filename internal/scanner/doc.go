// Package scanner discovers playlist files (.m3u, .m3u8) under the
// configured input directory.
package scanner

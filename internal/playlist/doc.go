// Package playlist provides parsing and rewriting of M3U/M3U8 playlist files.
//
// The format is line-oriented: lines starting with '#' are directives
// (#EXTM3U, #EXTINF, comments) and blank lines are padding; every other line
// is a path to an audio file. Parsing keeps the original text intact —
// directive lines, blank lines, line-ending style, and the exact bytes of
// each path line — because rewriting works by substituting the raw path-line
// text inside the original content rather than reassembling the file.
//
// Path lines are Unicode-precomposed (see internal/textnorm) before becoming
// audiopath.AudioPath values, so references compare equal regardless of how
// the exporter encoded diacritics.
package playlist

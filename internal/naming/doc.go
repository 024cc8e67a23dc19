// Package naming derives output file names from input image paths.
//
// Normalize turns the stem of an arbitrary path into a string that is safe to
// embed in a generated file name; OutputPath assembles the final
// <dir>/<name>_<effect>.jpg location. The transliteration is deliberately
// narrow: only é, à and è are folded to ASCII and every other non-ASCII rune is
// passed through as-is.
package naming

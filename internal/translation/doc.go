// Package translation applies the static term dictionary to tokens, lines
// and whole term files. Matching is exact and case-insensitive; the casing
// of the source token is carried over to the translation.
package translation

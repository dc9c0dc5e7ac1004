// Package sit walks a tree of SIT (Sensitive Information Type) folders
// grouped by category and translates the English term files of every
// eligible folder into the target language folder. It is the main
// coordinator between the dictionary, the translator and the file system.
package sit

// Package termfile reads and writes SIT term files: UTF-8 text made of
// whitespace-separated tokens over several lines.
package termfile

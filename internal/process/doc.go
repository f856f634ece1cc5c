// Package process terminates browser process trees left behind by the
// PDF printer.
package process

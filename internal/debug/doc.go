// Package debug provides optional file-based debug logging.
//
// When the FLEX_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise, logging is a no-op until
// Init or SetOutput is called.
package debug

// Package client talks to a Kalavara master over HTTP. Today that is a
// single call: volume self-registration at startup.
package client

// Package form turns raw user input into typed API payloads.
//
// Every form holds the strings exactly as typed. Payload methods validate
// and normalize them, returning a *saferoute.ValidationError naming the
// first offending field; nothing here performs I/O, so a failed Payload
// never reaches the network.
package form

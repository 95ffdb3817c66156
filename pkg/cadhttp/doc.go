// Package cadhttp bridges a CAD session over HTTP.
//
// # Architecture
//
// The package has two halves that share one JSON wire format:
//
//   - [Server]: mounts any [cad.Session] behind a chi router, so a host
//     process (typically one owning a memory document next to the real
//     CAD application) can serve drafting operations to remote clients.
//   - [Client]: implements [cad.Session] on top of the same routes, so a
//     [cad.Client] can drive a remote host exactly like a local one.
//
// Because both halves speak cad.Session, bridges compose: a client can be
// wrapped by another server, and tests can run the full loop in-process
// with httptest.
//
// # Errors
//
// Structured error codes travel in the response body and survive the round
// trip: a LAYER_NOT_FOUND raised by the host comes back out of the client
// as a LAYER_NOT_FOUND. Transport failures surface as HOST_UNAVAILABLE.
//
// # Usage
//
//	srv := cadhttp.NewServer(memory.NewDocument())
//	go http.ListenAndServe(":8437", srv)
//
//	session, err := cadhttp.NewClient("http://drafting-host:8437")
//	client := cad.NewClient(session)
package cadhttp

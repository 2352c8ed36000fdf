// Package workspace is the client facade for the note-taking workspace HTTP API.
//
// Every domain operation the tool handlers need is a method on the API
// interface. Client implements API over HTTP: each call POSTs a JSON body to
// <base>/api/<group>/<action> and decodes the workspace envelope
//
//	{"code": 0, "msg": "", "data": ...}
//
// A non-zero code is returned as *APIError. Transport failures, non-2xx
// statuses and malformed envelopes are wrapped with the endpoint name so tool
// output always says which call failed.
//
// Timeouts are enforced by the underlying http.Client. Callers pass their
// request context, which is honoured for cancellation.
package workspace

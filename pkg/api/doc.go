// Package api serves layout passes over HTTP.
//
// # Endpoints
//
//	GET  /healthz     engine name, callback convention and build version
//	POST /v1/layout   layout document in, [document.Result] JSON out
//
// The request body is a layout document. Its format comes from the format
// query parameter ("toml", "yaml", "json") or the Content-Type header, and
// defaults to JSON. Every response to /v1/layout carries an X-Layout-ID
// header; invalid documents get 400 with a JSON body naming the error code:
//
//	{"code": "INVALID_STYLE_INPUT", "error": "unknown align \"middle\""}
//
// The engine is not reentrant, so passes are serialized per [Server].
//
// # Usage
//
//	srv := api.New(yoga.Default())
//	err := api.ListenAndServe(ctx, ":8080", srv)
package api

// Package server exposes an [linguist.Index] over HTTP.
//
// # Routes
//
//	GET /healthz                 {"status":"ok","version":V,"languages":N}
//	GET /v1/languages[?type=T]   all languages, optionally of one category
//	GET /v1/languages/{name}     lookup by name or alias
//	GET /v1/extensions/{ext}     lookup by bare extension ("rs", not ".rs")
//	GET /v1/modes/{mode}         lookup by CodeMirror mode
//
// Lookups are case-insensitive. A miss is a 404 with a JSON body:
//
//	{"code":"NOT_FOUND","message":"no language with extension \"foo\""}
//
// Every error body uses the same shape. The HTTP status follows the code:
// NOT_FOUND is 404, INVALID_INPUT is 400, UNSUPPORTED (a method the route
// does not serve) is 405 and INTERNAL_ERROR is 500.
//
// Every response carries an X-Request-ID header; a caller-supplied value is
// echoed back, otherwise a UUID is generated.
//
// [linguist.Index]: github.com/matzehuels/linguist/pkg/linguist.Index
package server

// Package collect implements the email collection endpoint.
//
// The endpoint accepts POST requests with a JSON body
//
//	{"email": "jane@example.com", "platform": "mac", "timestamp": "2024-05-01T10:00:00.000Z"}
//
// and answers:
//
//	200 {"success":true,"message":"Email collected successfully"}
//	400 {"error":"Invalid email address"}   email missing or without "@"
//	405 {"error":"Method not allowed"}      any method but POST
//	500 {"error":"Internal server error"}   the sink failed or panicked
//
// Validation only checks the email and never depends on the sink. Valid
// records are handed to exactly one Sink.Accept call; Multi fans out to
// several stores behind that single call. Concrete stores live in the sinks
// subpackage.
package collect

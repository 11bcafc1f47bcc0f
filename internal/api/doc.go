// Package api handles incoming HTTP requests, request validation and
// response formatting for the auth and task endpoints. It translates HTTP
// concerns into calls on the auth and task services and maps their errors
// back onto status codes and safe client messages.
package api

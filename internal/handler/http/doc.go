// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and the single point where
// service-layer errors are classified into business codes and written as
// response envelopes. Correlation-id tagging, authentication, payload
// validation, and request logging are all handled at this layer before
// requests are forwarded to the service layer.
package http

// Package server serves symptom extraction and diagnosis over a JSON HTTP
// API, with Prometheus metrics.
//
// Successful responses are wrapped as {"status":"ok","data":...} and
// failures as {"status":"error","error":"..."}.
package server

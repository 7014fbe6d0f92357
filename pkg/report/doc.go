// Package report renders diagnoses, detections and the symptom listing for
// the terminal, or as JSON or YAML for other programs.
package report

// Package symptom defines the fixed checklist of symptoms understood by the
// diagnosis engine, and [Set], the per-request record of which of them are
// present.
//
// A [Set] always carries every known symptom. Constructors that accept
// external input either ignore unknown names ([FromMap]) or reject them
// ([FromNames]), so the engine never sees an identifier outside [All].
package symptom

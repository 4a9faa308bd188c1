// Package profile loads engine parameter profiles from YAML.
//
// A Profile mirrors the options of every distance engine plus the cost
// model parameters, so a deployment can tune matching behavior without
// recompiling. Parsing starts from Default() and overlays the document, so
// a profile file only needs the fields it changes; unknown keys are
// rejected. Translation helpers turn the flat profile into each engine's
// Options value.
package profile

// Package sitevoice turns a company website into a structured bundle of
// customer-voice evidence: quoted testimonials with attributed author and
// company, plus the surrounding marketing content (sections, stats, value
// propositions, images, links) needed for downstream profiling.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, sqlite/).
package sitevoice

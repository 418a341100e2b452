// Package services defines shared utilities consumed by the analysis
// pipeline and its external tool integrations.
//
// Key responsibilities:
//   - Context helpers that stamp the series/season being processed and a
//     run correlation id for logging and tracing.
//   - Structured error markers plus the Wrap helper that classify failures
//     into the propagation policy a scan follows: per-episode errors stay
//     local, per-season errors abandon only that season, and
//     setup/configuration errors abort the run.
//
// Use these helpers when wiring new pipeline logic so operational behaviour
// (error handling, observability) stays uniform across packages.
package services

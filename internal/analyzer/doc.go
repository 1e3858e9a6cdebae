// Package analyzer implements the transport-security analysis engine.
//
// Architecture overview:
//
//   - Analyzer is the sole entry point. Analyze runs the port probe as a
//     gate, then the certificate inspection and header audit concurrently,
//     and assembles the findings into a Report.
//   - Probes (ProbePort, InspectCertificate, AuditHeaders) never return
//     errors for network failures; every failure mode is classified into
//     the result, so a Report is produced for unreachable hosts too.
//   - Grading, scoring, issue extraction, business impact and
//     recommendations are pure functions over the assembled Result,
//     driven by the immutable rule tables in Config.
//   - Runner coordinates concurrent analyses of many targets with a
//     worker pool and a global rate limit.
//
// The package holds no mutable shared state, so one Analyzer may serve
// any number of concurrent callers.
package analyzer

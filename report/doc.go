/*
Package report renders a probe.AuditResult for people and for programs.

Every format carries every AuditResult field along with the derived score, verdict and
per-check findings. The text and HTML formats are produced with templates which have
the sprig function map available; text may be coloured with ANSI sequences. JSON and
YAML are flat documents suitable for downstream tooling.
*/
package report

// Package addrparse turns text into core address and socket values.
//
// All syntax handling is delegated to net/netip; accepted input is rebuilt
// through the backend construction contracts, so the parser works with any
// backend pair and never inspects storage. Zoned literals such as
// "fe80::1%eth0" are rejected because the core carries numeric scope-ids
// only, and only in socket addresses.
//
// The core types render text but do not read it. This package is the one
// place in the module where text becomes values.
package addrparse

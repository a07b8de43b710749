// Package stdaddr provides canonical array-backed backends and ready-made
// instantiations of the generic address types.
//
// Most programs that do not bring their own storage should use this package:
// Addr4, Addr6, Addr, AddrPort4, AddrPort6 and AddrPort are plain aliases
// for the core types over the V4, V6, Sock4 and Sock6 backends, so values
// created here interoperate directly with any API written against the
// generic layer.
package stdaddr

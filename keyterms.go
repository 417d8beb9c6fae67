// Package keyterms provides a client session for extracting the most
// significant terms from free text via an external scoring service.
//
// This package contains domain types, interfaces and the session state
// machine. Implementations live in subdirectories named after their primary
// dependency (e.g., http/, fs/, clipboard/, trafilatura/).
package keyterms

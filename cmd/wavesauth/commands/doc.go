// Package commands defines the wavesauth CLI.
//
// Commands
//
//   - verify     Check a wallet auth response (signature, and optionally address)
//   - address    Derive the address of a public key
//   - validate   Check an address checksum and chain id
//   - keygen     Derive a key pair from a seed phrase, a hex seed or fresh randomness
//   - sign       Sign an auth message the way the wallet does
//   - message    Print or decode the bytes of an auth message
//   - kat        Run a Blake2b known-answer file
//
// Every flag can also be set from the environment with the WAVESAUTH_
// prefix (WAVESAUTH_CHAIN_ID=T) or from the file given with --config.
package commands

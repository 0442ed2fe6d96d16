// Package dealership provides a small in-memory record-keeping model for a
// vehicle dealership. It is designed to be self-contained, auditable within a
// single process, and deliberately free of persistence or network concerns.
//
// The core functionalities include:
//   - Catalog Management: Holding the fixed set of vehicles and sellers known
//     to the dealership, keyed by plate and seller id respectively, in
//     catalog insertion order.
//   - Sales Recording: Registering one-time sales (at most one per vehicle
//     plate) with a wall-clock timestamp from an injectable clock.
//   - Queries: Computing available stock (unsold vehicles), listing recorded
//     sales, and filtering sales by seller, all as derived views over copies
//     of the underlying records.
//   - Catalog Codec: Reading and writing the initial catalog in a
//     human-readable JSONL format. Recorded sales are never persisted.
//
// This package serves as the foundational logic for the `dlr` command-line
// tool, which is responsible for loading catalogs, formatting output and
// orchestrating demonstration scenarios; the ledger itself never logs,
// retries, or formats anything for display.
package dealership

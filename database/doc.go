// Package database provides the Store interface the migration engine uses to
// keep its ledger of applied migration and seed IDs, along with an
// implementation for each supported embedded database dialect.
//
// The Store interface is generic and not tied to any specific database. To run
// the engine against a database it does not know about, implement [Store] and
// pass it to the provider with the custom dialect.
package database

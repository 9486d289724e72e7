// Package repository handles all interactions with the database.
//
// It contains the raw SQL queries and methods to fetch, persist, update, and
// delete rows, abstracting SQL away from the service layer. Each entity has
// an interface (so services can be tested against fakes) and a pgx-backed
// implementation. Write operations run inside a transaction with a deferred
// rollback, so any exit path that is not a clean commit leaves no partial
// writes behind.
//
// Driver errors are returned untranslated: constraint violations are
// detected by the store at write time and converted into client-facing
// errors by the sqlerr package, which avoids a check-then-write race on
// unique natural keys.
package repository

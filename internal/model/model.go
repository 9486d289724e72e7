// Package model holds the persisted domain entities.
//
// Each struct maps one row of its table. Entities hold surrogate ids
// generated by the store; natural keys (category name, training center name,
// athlete national id) are enforced unique by the schema.
package model

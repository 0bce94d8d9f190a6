// Package model defines the flat user record collected by the wizard together
// with the logical field names used across validation, presentation and
// persistence. JSON tags mirror the logical names so the stored payload stays
// readable (`{"firstName": "...", "department": "..."}`); the password
// confirmation never leaves memory.
package model

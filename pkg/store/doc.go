// Package store is the persistence bridge between the wizard and a durable
// local key/value store. Records are written as JSON under a single key
// (DefaultKey, "userInfo"). Reads never fail loudly: Load reports absent or
// unparsable values as "no stored record".
//
// Backends live in sub-packages: memory (tests, ephemeral runs), bbolt (the
// default file store) and sqlite.
package store

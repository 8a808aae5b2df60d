// Package collection reads distro collection files: YAML documents that map
// a package's direct dependencies to version/branch references.
//
// Two kinds of files appear in a distro metadata checkout. Versioned
// package files follow the pattern <name><revision>.yaml (math7.yaml,
// sim9.yaml) and describe one package's dependency pins. Collection files
// (collection-<codename>.yaml) pin a whole release. Both share the same
// body: a top-level "repositories" mapping from package name to a record
// with at least a version field.
//
// [LoadLatest] builds the latest-revision index used by the dependant
// scans, [Index.Dependants] and [Index.ExtendOneHop] produce the dependant
// edge set consumed by package dag, and the remaining files cover version
// lookup and rewriting.
package collection

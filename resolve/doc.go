// Package resolve picks lowering rules for source shapes ahead of runtime.
//
// The bridge code generator cannot enumerate every composition of containers
// a user's data model will use. Instead it asks this package, at generation
// time, which unique rule chain applies to a source type; the answer is a
// Rule tree mirroring the type's structure, one rule per layer. Generation
// fails (and with it the build of the bridge) when no rule applies to a
// layer or when two rules apply, so a lowering that reaches runtime can no
// longer fail.
//
// # Frontends
//
// Two frontends produce the same Rule trees:
//
//	Resolver.Resolve(reflect.Type)   walk a real Go type
//	ParseShape("list<option<u8>>")   parse a shape expression
//
// # Outputs
//
// From a Rule tree the generator obtains:
//
//	Emit(rule)          the Go expression composing package lower constructors
//	BoundaryType(rule)  the WIT description of the boundary-side type
//	rule.Shape()        the canonical shape expression
//
// # Optional Leaves
//
// Nominal leaf types are held in a registry. ForeignRef and Trace are always
// registered; time.Time and time.Duration register under the bridge_datetime
// build tag, uuid.UUID under bridge_uuid. Registration happens at package
// init, so the active build configuration decides the leaf set.
package resolve

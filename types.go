package valibot

// UnknownPolicy controls how an object schema handles input keys it did not
// declare. Strip is the default behavior.
type UnknownPolicy int

const (
	UnknownStrip       UnknownPolicy = iota // Drop unknown keys (default).
	UnknownStrict                           // Reject unknown keys with an issue.
	UnknownPassthrough                      // Preserve unknown keys in the output.
)

// Reason is the abstract cause family attached to an Issue, identifying
// which family of schema emitted it.
type Reason string

const (
	ReasonType    Reason = "type"
	ReasonString  Reason = "string"
	ReasonNumber  Reason = "number"
	ReasonBigint  Reason = "bigint"
	ReasonBoolean Reason = "boolean"
	ReasonDate    Reason = "date"
	ReasonArray   Reason = "array"
	ReasonTuple   Reason = "tuple"
	ReasonObject  Reason = "object"
	ReasonRecord  Reason = "record"
	ReasonMap     Reason = "map"
	ReasonSet     Reason = "set"
	ReasonBlob    Reason = "blob"
	ReasonAny     Reason = "any"
)

// Origin distinguishes whether an issue came from a map/record key schema or
// its value schema. No schema in this repository sets it: Record and Map
// issues carry an empty Origin, and the key or value side is recorded only
// by the path item kind (record-key-side, map-value-side, ...).
type Origin string

const (
	OriginKey   Origin = "key"
	OriginValue Origin = "value"
)

// PathItemKind enumerates the container descents a Path can be made of.
type PathItemKind string

const (
	PathObjectKey   PathItemKind = "object-key"
	PathArrayIndex  PathItemKind = "array-index"
	PathTupleIndex  PathItemKind = "tuple-index"
	PathMapKey      PathItemKind = "map-key-side"
	PathMapValue    PathItemKind = "map-value-side"
	PathRecordKey   PathItemKind = "record-key-side"
	PathRecordValue PathItemKind = "record-value-side"
	PathSetIndex    PathItemKind = "set-index"
)

// ParseInfo is the caller-provided parse configuration. It is threaded by
// value; extending Path for a child never mutates the parent's copy.
type ParseInfo struct {
	AbortEarly     bool
	AbortPipeEarly bool
	Path           []PathItem
}

// WithPathItem returns a copy of info with item appended to Path. A fresh
// backing array is allocated so sibling calls built from the same parent
// info cannot observe each other's descent.
func (info ParseInfo) WithPathItem(item PathItem) ParseInfo {
	next := make([]PathItem, len(info.Path)+1)
	copy(next, info.Path)
	next[len(info.Path)] = item
	info.Path = next
	return info
}

// ValidateInfo is the read-only view passed to pipe actions and leaf
// validators.
type ValidateInfo struct {
	Reason         Reason
	Path           []PathItem
	AbortEarly     bool
	AbortPipeEarly bool
	Origin         Origin
}

// ToValidateInfo projects a ParseInfo into the ValidateInfo view handed to
// pipe actions and leaf validators, tagging it with the calling schema's
// Reason and the given origin. Every caller in this repository passes an
// empty origin.
func (info ParseInfo) ToValidateInfo(reason Reason, origin Origin) ValidateInfo {
	return ValidateInfo{
		Reason:         reason,
		Path:           info.Path,
		AbortEarly:     info.AbortEarly,
		AbortPipeEarly: info.AbortPipeEarly,
		Origin:         origin,
	}
}

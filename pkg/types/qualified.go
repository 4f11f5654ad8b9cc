package types

// Origin tags a result with the kind of source that produced it
type Origin int

const (
	// OriginRemote marks results produced by the remote template service
	OriginRemote Origin = iota
	// OriginLocal marks results produced by the local template directory
	OriginLocal
	// OriginMixed marks results produced by the aggregator, whatever the
	// number of sources that contributed
	OriginMixed
)

// String returns the string representation of the origin
func (o Origin) String() string {
	switch o {
	case OriginRemote:
		return "remote"
	case OriginLocal:
		return "local"
	case OriginMixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// QualifiedString is the successful result of a generate or list operation.
type QualifiedString struct {
	Value  string
	Origin Origin
}

// NewQualifiedString creates a result tagged with origin
func NewQualifiedString(value string, origin Origin) QualifiedString {
	return QualifiedString{Value: value, Origin: origin}
}

// IsEmpty reports whether the result carries no text
func (q QualifiedString) IsEmpty() bool {
	return q.Value == ""
}

package shear

// FieldLister lets a type report its own declared fields instead of having
// them enumerated through reflection.
//
// This is the hook for generated code: a generator can emit PurgeFields from
// the struct definition, and the Purger will use it in preference to any
// configured FieldSource.
//
//	func (AsyncDriver) PurgeFields() []shear.FieldDescriptor {
//	    return []shear.FieldDescriptor{
//	        {Name: "Timeout", Marked: true},
//	        {Name: "QueueDepth", Marked: true},
//	    }
//	}
type FieldLister interface {
	// PurgeFields returns the declared fields of the receiver's type in
	// declaration order. It is called on a zero value.
	PurgeFields() []FieldDescriptor
}

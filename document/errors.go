package document

import "github.com/rupor-github/rtfdoc/common"

// The error taxonomy of spec.md §7 lives in common (OpError, ValidationError,
// ResourceError, EncodingError, AssemblyError) so that leaf packages below
// document in the import graph — rtfsub, render, assemble — can return it
// without importing document itself. These aliases keep the document.*Error
// / document.New*Error spellings callers in this package already use.
type OpError = common.OpError
type ValidationError = common.ValidationError
type ResourceError = common.ResourceError
type EncodingError = common.EncodingError
type AssemblyError = common.AssemblyError

// NewValidationError constructs a ValidationError for the named field.
func NewValidationError(field, reason string) *ValidationError {
	return common.NewValidationError(field, reason)
}

// NewResourceError constructs a ResourceError.
func NewResourceError(resource string, err error) *ResourceError {
	return common.NewResourceError(resource, err)
}

// NewEncodingError constructs an EncodingError.
func NewEncodingError(text string, err error) *EncodingError {
	return common.NewEncodingError(text, err)
}

// NewAssemblyError constructs an AssemblyError.
func NewAssemblyError(reason, path string) *AssemblyError {
	return common.NewAssemblyError(reason, path)
}

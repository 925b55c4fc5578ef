// Package errors provides the structured error type used across the character creator.
//
// Errors carry a Code, a user-facing Message, an optional Cause and free-form metadata:
//
//	err := errors.NotFound("no saved character").
//	    WithMeta("key", key)
//
// Wrapping keeps the code of an existing *Error and defaults to Internal otherwise:
//
//	if err := store.Set(ctx, key, value); err != nil {
//	    return errors.Wrap(err, "failed to persist settings")
//	}
//
// # Error kinds
//
// The application only distinguishes a few situations:
//   - Load errors: the trait catalog could not be fetched (Unavailable) or
//     parsed (DataLoss). Use IsLoadError to detect either.
//   - FailedPrecondition: an operation needs the catalog but it is not loaded yet.
//   - NotFound: a storage key holds no record.
//   - InvalidArgument: a caller passed something unusable (nil character,
//     non-togglable trait code, bad configuration).
//
// Storage write failures are not errors from the caller's point of view.
// Components log them as warnings and carry on.
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Store == nil {
//	    vb.RequiredField("Store")
//	}
//	return vb.Build()
package errors

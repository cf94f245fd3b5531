// Package errors provides the structured error type used across equipbest.
//
// Every error carries a Code, a user-facing Message, an optional Cause and
// free-form Meta. Codes map onto gRPC status codes so handlers can return
// them unchanged.
//
// # Creating errors
//
//	err := errors.InvalidArgument("slot is required")
//	err := errors.NotFoundf("settings for %s not found", name)
//	err := errors.FailedPrecondition("character profile is not set").
//	    WithMeta("slot", slot.String())
//
// # Wrapping
//
//	if err := repo.Append(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to journal transfers")
//	}
//
// Wrap keeps the code of a wrapped *Error and defaults to Internal for
// anything else.
//
// # Checking
//
//	if errors.IsNotFound(err) {
//	    settings = equipment.DefaultSettings()
//	}
//
// # Layer guidelines
//
// Repositories return NotFound / InvalidArgument / Internal. The upgrade
// orchestrator returns InvalidArgument for bad input and FailedPrecondition
// when no character profile has been supplied. Ineligible or incompatible
// candidates are never errors. Handlers convert with ToGRPCError.
package errors

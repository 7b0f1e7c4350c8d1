// Package main provides the poseek CLI: schema authoring, annotation
// storage, interactive annotate sessions, and CSV/COCO export.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/poseek/poseek/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// userErrors are failures caused by the invocation rather than the
// system; they exit with the user-error code.
var userErrors = []error{
	types.ErrPoseNameEmpty,
	types.ErrNoBodyParts,
	types.ErrBodyPartEmpty,
	types.ErrDuplicateBodyPart,
	types.ErrConnectionOutOfRange,
	types.ErrConnectionSelfLoop,
	types.ErrDuplicateConnection,
	types.ErrUnknownBodyPart,
	types.ErrUnknownImage,
	types.ErrNoImages,
	types.ErrNoActiveSchema,
	types.ErrNotFound,
	types.ErrInvalidData,
	types.ErrBackendEmpty,
	types.ErrBackendUnknown,
}

func exitCode(err error) int {
	for _, userErr := range userErrors {
		if errors.Is(err, userErr) {
			return exitUserError
		}
	}
	return exitSysError
}

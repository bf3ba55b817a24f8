package cmd

import (
	"log"

	"github.com/quatton/scitech/pkg/scsdk/scerr"
)

// exitIfSdkError turns SDK errors into user-facing guidance before exiting.
// Non-SDK errors fall back to log.Fatalf.
func exitIfSdkError(err error) {
	if err == nil {
		return
	}
	switch {
	case scerr.IsCode(err, scerr.CodeUnauthorized):
		log.Fatalf("%v: run 'scitechctl login' to authenticate", err)
	default:
		log.Fatalf("%v", err)
	}
}

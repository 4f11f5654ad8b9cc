// Package validation decides which requested template names a source
// supports and builds the message reported for the ones it does not.
package validation

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/gig/pkg/errors"
)

// MsgUnsupportedFormat is the message reported for unsupported names.
const MsgUnsupportedFormat = "Following template names are not supported: %s.\nFor the list of available template names, try '--list'."

// ParseListing splits a listing body into the set of names it contains.
// Blank lines are ignored and surrounding whitespace is trimmed.
func ParseListing(body string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, line := range strings.Split(body, "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		set[name] = struct{}{}
	}
	return set
}

// Missing returns the requested names absent from listing, in request order.
// A name requested twice is reported once.
func Missing(requested []string, listing map[string]struct{}) []string {
	var missing []string
	seen := make(map[string]struct{}, len(requested))
	for _, name := range requested {
		if _, ok := listing[name]; ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		missing = append(missing, name)
	}
	return missing
}

// UnsupportedMessage formats the message for the given unsupported names.
func UnsupportedMessage(names []string) string {
	return fmt.Sprintf(MsgUnsupportedFormat, strings.Join(names, ", "))
}

// Check returns nil when every requested name appears in the listing body,
// otherwise a generic failure naming the missing ones.
func Check(requested []string, listingBody string) *errors.ProgramExit {
	missing := Missing(requested, ParseListing(listingBody))
	if len(missing) == 0 {
		return nil
	}
	return errors.New(errors.ExitGeneric, UnsupportedMessage(missing))
}

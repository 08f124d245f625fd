package command

import (
	"errors"
	"strings"
	"unicode"
)

// Name identifies one of the recognized commands. Anything else is
// NameUnknown, which is a normal result rather than a failure.
type Name string

const (
	NameRide     Name = "ride"
	NameEstimate Name = "estimate"
	NameHelp     Name = "help"
	NameAccept   Name = "accept"
	NameUnknown  Name = "unknown"
)

// ErrBadRideFormat signals a ride/estimate argument with no " to " separator.
var ErrBadRideFormat = errors.New("ride argument missing ' to ' separator")

// splitCommand splits raw input on the first whitespace run. The first token
// picks the command; the rest, lower-cased, is the argument.
func splitCommand(raw string) (Name, string) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return NameUnknown, ""
	}

	word, rest := trimmed, ""
	if i := strings.IndexFunc(trimmed, unicode.IsSpace); i >= 0 {
		word, rest = trimmed[:i], trimmed[i:]
	}
	arg := strings.ToLower(strings.TrimLeftFunc(rest, unicode.IsSpace))

	switch Name(strings.ToLower(word)) {
	case NameRide:
		return NameRide, arg
	case NameEstimate:
		return NameEstimate, arg
	case NameHelp:
		return NameHelp, arg
	case NameAccept:
		return NameAccept, arg
	default:
		return NameUnknown, arg
	}
}

// addressPair is a parsed "origin to destination" argument, still free text.
type addressPair struct {
	Origin      string
	Destination string
}

// parseAddressPair splits on the literal " to " separator and strips an
// optional leading "from " off the origin.
func parseAddressPair(arg string) (addressPair, error) {
	origin, destination, found := strings.Cut(arg, " to ")
	if !found {
		return addressPair{}, ErrBadRideFormat
	}

	origin = strings.TrimSpace(origin)
	origin = strings.TrimPrefix(origin, "from ")

	return addressPair{
		Origin:      origin,
		Destination: strings.TrimSpace(destination),
	}, nil
}

// Package base64 inspects data URI strings used for inline file uploads.
package base64

import "strings"

// ContentType extracts the MIME type from a data URI such as
// "data:image/png;base64,...". It returns an empty string when the
// input is not a base64 data URI.
func ContentType(uri string) string {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return ""
	}

	contentType, _, ok := strings.Cut(rest, ";base64,")
	if !ok {
		return ""
	}

	return contentType
}

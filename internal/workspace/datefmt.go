package workspace

import "strings"

// ISOToDisplay converts an edit-format date (YYYY-MM-DD) to the backend's
// display format (DD/MM/YYYY). Empty input transmits as an empty string;
// anything that doesn't split into three parts is passed through untouched.
func ISOToDisplay(iso string) string {
	iso = strings.TrimSpace(iso)
	if iso == "" {
		return ""
	}
	parts := strings.Split(iso, "-")
	if len(parts) != 3 {
		return iso
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

// DisplayToISO is the inverse conversion, used when pre-filling an edit field
// from a stored incident.
func DisplayToISO(display string) string {
	display = strings.TrimSpace(display)
	if display == "" {
		return ""
	}
	parts := strings.Split(display, "/")
	if len(parts) != 3 {
		return display
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}

package scene

import "strings"

// DocumentSeparator starts every document in a Unity scene file.
const DocumentSeparator = "--- !u!"

// SplitDocuments splits a scene file into record blocks. Each block holds
// everything after a separator up to the next one; the text before the first
// separator is returned as the first block. Content without any separator
// comes back as a single block.
func SplitDocuments(content string) []string {
	return strings.Split(content, DocumentSeparator)
}

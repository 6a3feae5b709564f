package service

import "strings"

// Folder paths travel in query parameters as /-joined id sequences
// (?section=<id>&folder=<id1>/<id2>). The encoding round-trips
// losslessly for ids that do not themselves contain a slash, which
// generated ids never do.

// EncodeFolderPath joins folder ids into the query-parameter form.
func EncodeFolderPath(ids []string) string {
	return strings.Join(ids, "/")
}

// DecodeFolderPath splits the query-parameter form back into folder
// ids. Empty segments from leading, trailing or doubled slashes are
// dropped, so "" decodes to an empty path (the section root).
func DecodeFolderPath(encoded string) []string {
	if encoded == "" {
		return []string{}
	}
	parts := strings.Split(encoded, "/")
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			ids = append(ids, part)
		}
	}
	return ids
}

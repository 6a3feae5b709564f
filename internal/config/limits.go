package config

const (
	// MaxSectionNameLength caps section display names. Names should be
	// short and descriptive; the UI truncates beyond this anyway.
	MaxSectionNameLength = 255

	// MaxFolderNameLength caps folder display names.
	MaxFolderNameLength = 255

	// MaxFileNameLength caps file display names.
	MaxFileNameLength = 255

	// MaxSearchTermLength caps the search term. Longer terms cannot
	// match anything a user typed on purpose.
	MaxSearchTermLength = 255

	// MaxMoveBatch caps the number of file ids in one move request.
	MaxMoveBatch = 500

	// MaxPathDepth caps folder path length on requests. Deeper
	// hierarchies indicate malformed input, not real trees.
	MaxPathDepth = 50
)

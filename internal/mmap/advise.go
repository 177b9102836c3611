package mmap

// AccessPattern is a read-ahead hint for a mapping.
type AccessPattern int

const (
	// AccessNormal drops any earlier hint.
	AccessNormal AccessPattern = iota
	// AccessSequential suits a single front-to-back parse.
	AccessSequential
	// AccessWillNeed asks the kernel to start paging the file in now.
	AccessWillNeed
)

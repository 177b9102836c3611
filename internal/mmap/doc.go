// Package mmap maps local input files read-only.
//
// Point files are parsed straight from the page cache instead of being
// copied into a buffer first. A Mapping always covers the whole file and
// is never written.
//
//	m, err := mmap.Open("points.txt")
//	if err != nil { ... }
//	defer m.Close()
//
//	_ = m.Advise(mmap.AccessSequential)
//	data, err := m.Bytes()
//
// On Unix the mapping uses mmap(2) and madvise(2). On Windows it uses
// MapViewOfFile, and Advise does nothing.
package mmap

package domain

// FileContent is the raw text of one retrieved file. It is produced by
// the tree walker, handed to the extraction engine exactly once, and
// then discarded; nothing retains it past matcher processing.
type FileContent struct {
	Path string
	Size int64
	Text string
}

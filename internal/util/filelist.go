package util

import "strings"

// Attachment references and their original filenames are persisted as
// comma-joined strings. The two lists are index-aligned; every mutation
// rebuilds both strings from parts instead of patching them in place so
// they cannot drift apart.

func SplitFileList(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}

	return out
}

func JoinFileList(parts []string) string {
	clean := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			clean = append(clean, p)
		}
	}

	return strings.Join(clean, ",")
}

// AppendFileEntries adds url/filename pairs to both lists and returns the
// rebuilt strings.
func AppendFileEntries(files, filenames string, urls, names []string) (string, string) {
	fileParts := append(SplitFileList(files), urls...)
	nameParts := append(SplitFileList(filenames), names...)

	return JoinFileList(fileParts), JoinFileList(nameParts)
}

// RemoveFileEntry drops one url from the files list and the filename at
// the same index, keeping the two lists aligned. Unknown urls are a no-op.
func RemoveFileEntry(files, filenames, url string) (string, string) {
	fileParts := SplitFileList(files)
	nameParts := SplitFileList(filenames)

	url = strings.TrimSpace(url)
	for i, f := range fileParts {
		if f != url {
			continue
		}

		fileParts = append(fileParts[:i], fileParts[i+1:]...)
		if i < len(nameParts) {
			nameParts = append(nameParts[:i], nameParts[i+1:]...)
		}
		break
	}

	return JoinFileList(fileParts), JoinFileList(nameParts)
}

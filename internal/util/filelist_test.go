package util

import (
	"reflect"
	"testing"
)

func TestSplitFileList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"Empty string", "", nil},
		{"Single entry", "a.pdf", []string{"a.pdf"}},
		{"Multiple entries", "a.pdf,b.png,c.txt", []string{"a.pdf", "b.png", "c.txt"}},
		{"Whitespace around entries", " a.pdf , b.png ", []string{"a.pdf", "b.png"}},
		{"Empty segments dropped", "a.pdf,,b.png,", []string{"a.pdf", "b.png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitFileList(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitFileList() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppendFileEntries(t *testing.T) {
	files, names := AppendFileEntries("u1,u2", "a,b", []string{"u3"}, []string{"c"})
	if files != "u1,u2,u3" {
		t.Errorf("files = %q, want %q", files, "u1,u2,u3")
	}
	if names != "a,b,c" {
		t.Errorf("filenames = %q, want %q", names, "a,b,c")
	}

	files, names = AppendFileEntries("", "", []string{"u1", "u2"}, []string{"a", "b"})
	if files != "u1,u2" || names != "a,b" {
		t.Errorf("append to empty lists = %q/%q, want %q/%q", files, names, "u1,u2", "a,b")
	}
}

func TestRemoveFileEntry(t *testing.T) {
	tests := []struct {
		name          string
		files         string
		filenames     string
		url           string
		wantFiles     string
		wantFilenames string
	}{
		{"Remove middle entry", "u1,u2,u3", "a,b,c", "u2", "u1,u3", "a,c"},
		{"Remove first entry", "u1,u2", "a,b", "u1", "u2", "b"},
		{"Remove last remaining entry", "u1", "a", "u1", "", ""},
		{"Unknown url is a no-op", "u1,u2", "a,b", "u9", "u1,u2", "a,b"},
		{"Url with surrounding spaces", "u1,u2", "a,b", " u2 ", "u1", "a"},
		{"Only first occurrence removed", "u1,u2,u1", "a,b,c", "u1", "u2,u1", "b,c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, names := RemoveFileEntry(tt.files, tt.filenames, tt.url)
			if files != tt.wantFiles || names != tt.wantFilenames {
				t.Errorf("RemoveFileEntry() = %q/%q, want %q/%q", files, names, tt.wantFiles, tt.wantFilenames)
			}
		})
	}
}

// Both lists must stay index-aligned after any sequence of mutations.
func TestFileListAlignment(t *testing.T) {
	files, names := "", ""
	files, names = AppendFileEntries(files, names, []string{"u1", "u2", "u3"}, []string{"a", "b", "c"})
	files, names = RemoveFileEntry(files, names, "u2")
	files, names = AppendFileEntries(files, names, []string{"u4"}, []string{"d"})

	fileParts := SplitFileList(files)
	nameParts := SplitFileList(names)
	if len(fileParts) != len(nameParts) {
		t.Fatalf("lists drifted: %d files vs %d filenames", len(fileParts), len(nameParts))
	}

	wantFiles := []string{"u1", "u3", "u4"}
	wantNames := []string{"a", "c", "d"}
	if !reflect.DeepEqual(fileParts, wantFiles) || !reflect.DeepEqual(nameParts, wantNames) {
		t.Errorf("after mutations got %v/%v, want %v/%v", fileParts, nameParts, wantFiles, wantNames)
	}
}

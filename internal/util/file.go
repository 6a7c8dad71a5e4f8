package util

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
)

// Example output for "notes.pdf": "8f14e45f-....pdf". Original filenames
// are kept in the payload row's file_filenames list, not in the key.
func ToUniqueObjectName(fileName string) string {
	return uuid.NewString() + filepath.Ext(fileName)
}

func ToFolderObjectKey(folder, objectName string) string {
	return fmt.Sprintf("%s/%s", folder, filepath.Base(objectName))
}

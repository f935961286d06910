package services

import (
	"github.com/blogem/editpilot/models"
)

// ResolveIdentifiers fills the missing half of an id/path pair.
// The dictionary is searched before the image slots and the earliest match wins.
// A half that cannot be resolved stays empty.
func ResolveIdentifiers(id, path string, dictionary []models.DictionaryEntry, slots []models.ImageSlot) (string, string) {
	if (id != "" && path != "") || (id == "" && path == "") {
		return id, path
	}

	for _, entry := range dictionary {
		if matchesSlot(id, path, entry.ID, entry.Path) {
			return fillPair(id, path, entry.ID, entry.Path)
		}
	}

	for _, slot := range slots {
		if matchesSlot(id, path, slot.ID, slot.Path) {
			return fillPair(id, path, slot.ID, slot.Path)
		}
	}

	return id, path
}

func matchesSlot(id, path, slotID, slotPath string) bool {
	return (id != "" && id == slotID) || (path != "" && path == slotPath)
}

func fillPair(id, path, slotID, slotPath string) (string, string) {
	if id == "" {
		id = slotID
	}
	if path == "" {
		path = slotPath
	}
	return id, path
}

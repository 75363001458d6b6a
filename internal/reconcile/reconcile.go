// Package reconcile merges locally-selected files with the server's
// authoritative listing into one display list. Pure functions only;
// network effects belong to the caller.
package reconcile

import "github.com/Aaqilyousuf/documind-cli/internal/models"

// Merge rebuilds the display list after a registry refresh. Local
// entries already confirmed uploaded are dropped (the fresh server
// list supersedes them); still-pending selections survive in the order
// they were added and precede the server documents, which keep server
// order. A refresh therefore never loses in-flight work.
func Merge(local []models.Selection, fresh []models.Document) []models.Selection {
	merged := make([]models.Selection, 0, len(local)+len(fresh))
	for _, sel := range local {
		if !sel.Uploaded {
			merged = append(merged, sel)
		}
	}
	for _, doc := range fresh {
		merged = append(merged, FromDocument(doc))
	}
	return merged
}

// FromDocument maps a server document into the display-list shape.
func FromDocument(doc models.Document) models.Selection {
	return models.Selection{
		Name:       doc.Name,
		Size:       doc.Size,
		MimeType:   doc.MimeType,
		Uploaded:   true,
		DocumentID: doc.ID,
	}
}

// Remove drops the entry at index. ok is false when index is out of
// range. When the removed entry was uploaded, the caller owns the
// follow-up registry delete; Remove itself never touches the network.
func Remove(list []models.Selection, index int) (remaining []models.Selection, removed models.Selection, ok bool) {
	if index < 0 || index >= len(list) {
		return list, models.Selection{}, false
	}
	removed = list[index]
	remaining = make([]models.Selection, 0, len(list)-1)
	remaining = append(remaining, list[:index]...)
	remaining = append(remaining, list[index+1:]...)
	return remaining, removed, true
}

// Package organize relocates root-level bucket objects into folders keyed by
// file extension.
package organize

import (
	"context"
	"path"
	"strings"

	"S3Keep/internal/logging"
	"S3Keep/internal/s3"
)

// DefaultCategory collects every extension without an explicit mapping.
const DefaultCategory = "others"

// Store is the subset of gateway operations the organizer needs.
// *s3.Client implements this interface.
type Store interface {
	ListObjects(ctx context.Context) ([]s3.Object, error)
	CopyObject(ctx context.Context, sourceKey, destKey string) error
	DeleteObject(ctx context.Context, key string) error
}

// Organizer classifies keys via a static extension to category mapping loaded
// once at startup.
type Organizer struct {
	byExtension map[string]string
}

func New(categories map[string][]string) *Organizer {
	byExt := make(map[string]string)
	for category, exts := range categories {
		for _, ext := range exts {
			byExt[strings.ToLower(ext)] = category
		}
	}
	return &Organizer{byExtension: byExt}
}

func (o *Organizer) CategoryFor(ext string) string {
	if category, ok := o.byExtension[strings.ToLower(ext)]; ok {
		return category
	}
	return DefaultCategory
}

// Move describes one relocated object.
type Move struct {
	From string
	To   string
}

// Organize moves every root-level object (key without a path separator) under
// its category folder via copy-then-delete. Each object is independent: one
// failure is logged and counted, the rest proceed. Keys already inside a
// folder are excluded by enumeration, so a second pass moves nothing.
func (o *Organizer) Organize(ctx context.Context, store Store) (moved []Move, failed int, err error) {
	objects, err := store.ListObjects(ctx)
	if err != nil {
		return nil, 0, err
	}

	for _, obj := range objects {
		if strings.Contains(obj.Key, "/") {
			continue
		}
		category := o.CategoryFor(path.Ext(obj.Key))
		destKey := category + "/" + obj.Key

		if err := store.CopyObject(ctx, obj.Key, destKey); err != nil {
			logging.Log.Error().Err(err).Str("key", obj.Key).Msg("organize: copy failed")
			failed++
			continue
		}
		if err := store.DeleteObject(ctx, obj.Key); err != nil {
			logging.Log.Error().Err(err).Str("key", obj.Key).Msg("organize: delete of original failed")
			failed++
			continue
		}
		logging.Log.Info().Str("from", obj.Key).Str("to", destKey).Msg("organized object")
		moved = append(moved, Move{From: obj.Key, To: destKey})
	}
	return moved, failed, nil
}

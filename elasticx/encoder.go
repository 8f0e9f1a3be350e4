package elasticx

import (
	"bytes"
	"encoding/json"

	"github.com/vespry/x/errorx"
)

type Action string

const (
	ActionIndex  Action = "index"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// BulkPayloadEncoder turns an ordered sequence of pending changes into the
// newline-delimited action/document payload understood by the store's bulk
// endpoint. Encode returns the payload, the number of changes it represents
// and, on a mapping resolution failure, an error raised before any network
// effect.
type BulkPayloadEncoder interface {
	Encode(changes []PendingChange) (payload []byte, n int, err error)
}

// NDJSONEncoder is the default encoder. For every change it emits an action
// metadata line, followed by the document line for add-or-update actions.
// Input order is preserved exactly.
type NDJSONEncoder struct {
	resolver MappingResolver
}

var _ BulkPayloadEncoder = (*NDJSONEncoder)(nil)

func NewNDJSONEncoder(resolver MappingResolver) *NDJSONEncoder {
	return &NDJSONEncoder{resolver: resolver}
}

type bulkActionMeta struct {
	Index string `json:"_index"`
	Type  string `json:"_type,omitempty"`
	ID    string `json:"_id"`
}

func (e *NDJSONEncoder) Encode(changes []PendingChange) ([]byte, int, error) {
	var buf bytes.Buffer

	for _, change := range changes {
		mapping, err := e.resolver.Resolve(change.EntityType)
		if err != nil {
			return nil, 0, err
		}

		action := ActionIndex
		if change.Delete {
			action = ActionDelete
		}

		meta, err := json.Marshal(map[Action]bulkActionMeta{
			action: {
				Index: mapping.Index,
				Type:  mapping.DocumentType,
				ID:    change.ID,
			},
		})
		if err != nil {
			return nil, 0, errorx.InternalErrorf("failed to encode bulk action metadata: %s", err)
		}

		buf.Write(meta)
		buf.WriteByte('\n')

		if change.Delete {
			continue
		}

		doc, err := json.Marshal(change.Document)
		if err != nil {
			return nil, 0, errorx.InvalidArgumentErrorf("failed to encode document %s/%s: %s", mapping.Index, change.ID, err)
		}

		buf.Write(doc)
		buf.WriteByte('\n')
	}

	return buf.Bytes(), len(changes), nil
}

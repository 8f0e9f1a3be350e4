package elasticx

import (
	"encoding/json"
	"fmt"
)

// bulkResponse is the aggregate body returned by the bulk endpoint on a
// 200-class status. Items are keyed by action name; a 200 at the transport
// level says nothing about the per-item statuses inside.
type bulkResponse struct {
	Took   int                         `json:"took"`
	Errors bool                        `json:"errors"`
	Items  []map[string]bulkResultItem `json:"items"`
}

// bulkResultItem is one entry of the response items array. Consumed
// transiently while scanning for per-item failures; never persisted.
type bulkResultItem struct {
	Index  string `json:"_index"`
	Type   string `json:"_type"`
	ID     string `json:"_id"`
	Status int    `json:"status"`
	Result string `json:"result"`
}

// path identifies the item's resource for failure messages. The document
// type segment is omitted for stores that no longer echo one.
func (i bulkResultItem) path() string {
	if i.Type == "" {
		return fmt.Sprintf("%s/%s", i.Index, i.ID)
	}
	return fmt.Sprintf("%s/%s/%s", i.Index, i.Type, i.ID)
}

type getDocumentResponse struct {
	Index  string          `json:"_index"`
	Type   string          `json:"_type"`
	ID     string          `json:"_id"`
	Found  bool            `json:"found"`
	Source json.RawMessage `json:"_source"`
}

package handler

import (
	"encoding/json"
	"fmt"
)

// applyPatch overlays a partial JSON object onto an existing record. The
// record id and timestamps are never patchable; the store owns them.
func applyPatch(existing any, patch map[string]any, out any) error {
	delete(patch, "id")
	delete(patch, "createdAt")
	delete(patch, "updatedAt")

	base := map[string]any{}
	data, err := json.Marshal(existing)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	if err := json.Unmarshal(data, &base); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	for k, v := range patch {
		base[k] = v
	}

	merged, err := json.Marshal(base)
	if err != nil {
		return fmt.Errorf("encode merged record: %w", err)
	}
	if err := json.Unmarshal(merged, out); err != nil {
		return fmt.Errorf("apply update: %w", err)
	}
	return nil
}

// internal/backend/resource.go
package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
)

// Item is a schemaless content record as the admin manager sees it. The six
// managed content families share one CRUD contract and differ only in their
// fields, so the manager works on raw records instead of six typed copies.
type Item map[string]any

// ID collapses the backend's _id/id alias.
func (it Item) ID() string {
	if v, found := it["_id"].(string); found && v != "" {
		return v
	}
	v, _ := it["id"].(string)
	return v
}

// Order returns the display order; missing decodes to 0.
func (it Item) Order() int {
	switch v := it["order"].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// Str returns a string field, "" when absent or differently typed.
func (it Item) Str(key string) string {
	v, _ := it[key].(string)
	return v
}

// Bool returns a boolean field.
func (it Item) Bool(key string) bool {
	v, _ := it[key].(bool)
	return v
}

// ComputedImageURL is the derived display URL set by the transform pass.
func (it Item) ComputedImageURL() string { return it.Str("computedImageUrl") }

// Resource is the generic CRUD client for one managed content family
// (hero slides, stats, about cards, areas, videos, vision/mission items).
// Singleton sections use Create as an upsert and DeleteAll as the reset.
type Resource struct {
	c          *Client
	base       string   // e.g. "/home/hero"
	wrapKeys   []string // response wrapper keys for this family
	imageField string   // raw image field to derive computedImageUrl from
}

// Resource builds a CRUD client for one endpoint family. imageField may be
// empty for families without images (stats, videos).
func (c *Client) Resource(base, imageField string, wrapKeys ...string) *Resource {
	return &Resource{c: c, base: base, wrapKeys: append(wrapKeys, "item", "data"), imageField: imageField}
}

// List fetches all records, sorted ascending by order (stable; missing
// order sorts as 0).
func (r *Resource) List(ctx context.Context) Result[[]Item] {
	res := getList[Item](r.c, ctx, r.base, false, r.wrapKeys...)
	if !res.Success {
		return res
	}
	for _, it := range res.Data {
		r.transform(it)
	}
	sort.SliceStable(res.Data, func(i, j int) bool {
		return res.Data[i].Order() < res.Data[j].Order()
	})
	return res
}

// GetSingleton fetches the lone record of a singleton family (the base
// path serves the object directly, no id segment).
func (r *Resource) GetSingleton(ctx context.Context) Result[Item] {
	res := getOne[Item](r.c, ctx, r.base, true, r.wrapKeys...)
	if res.Success {
		r.transform(res.Data)
	}
	return res
}

// Get fetches one record by id.
func (r *Resource) Get(ctx context.Context, id string) Result[Item] {
	res := getOne[Item](r.c, ctx, r.base+"/"+id, true, r.wrapKeys...)
	if res.Success {
		r.transform(res.Data)
	}
	return res
}

// Create posts a new record. A nil file means a JSON body (URL-referenced
// image); a file switches the call to multipart. Never both shapes at once.
func (r *Resource) Create(ctx context.Context, fields map[string]string, file *Upload) Result[Item] {
	return r.write(ctx, http.MethodPost, r.base, fields, file)
}

// Update rewrites a record by id, with the same JSON/multipart selection
// as Create.
func (r *Resource) Update(ctx context.Context, id string, fields map[string]string, file *Upload) Result[Item] {
	return r.write(ctx, http.MethodPut, r.base+"/"+id, fields, file)
}

// Delete removes one record.
func (r *Resource) Delete(ctx context.Context, id string) Result[Item] {
	return mutate[Item](r.c, ctx, http.MethodDelete, r.base+"/"+id, nil, r.wrapKeys...)
}

// DeleteAll resets the whole family (the bulk endpoint), or the singleton
// for singleton sections.
func (r *Resource) DeleteAll(ctx context.Context) Result[Item] {
	return mutate[Item](r.c, ctx, http.MethodDelete, r.base, nil, r.wrapKeys...)
}

func (r *Resource) write(ctx context.Context, method, path string, fields map[string]string, file *Upload) Result[Item] {
	var raw json.RawMessage
	var ce *callError
	if file != nil {
		raw, ce = r.c.doMultipart(ctx, method, path, fields, []Upload{*file})
	} else {
		payload := make(map[string]string, len(fields))
		for k, v := range fields {
			payload[k] = v
		}
		body, err := jsonBody(payload)
		if err != nil {
			return Result[Item]{Error: err.Error()}
		}
		raw, ce = r.c.do(ctx, method, path, body, "application/json", true)
	}
	if ce != nil {
		return fail[Item](ce)
	}
	var item Item
	if len(raw) > 0 {
		_ = json.Unmarshal(unwrap(raw, r.wrapKeys...), &item)
	}
	if item != nil {
		r.transform(item)
	}
	return ok(item)
}

func (r *Resource) transform(it Item) {
	if it == nil {
		return
	}
	if id := it.ID(); id != "" {
		it["id"] = id
	}
	if r.imageField != "" {
		it["computedImageUrl"] = r.c.ImageURL(it.Str(r.imageField), it.Bool("useUpload"))
	}
}
